package ports

import "go.trai.ch/ripple/internal/core/domain"

// ReportWriter defines the interface for persisting resolution reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=report.go -destination=mocks/mock_report.go -package=mocks
type ReportWriter interface {
	// Write persists the report at the given path for downstream CI steps.
	Write(path string, report domain.Report) error
}
