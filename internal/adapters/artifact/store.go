// Package artifact persists resolution reports for downstream CI steps.
package artifact

import (
	"encoding/json"
	"os"
	"path/filepath"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ReportWriter = (*Store)(nil)

// Store implements ports.ReportWriter using a flat JSON file.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Write persists the report at the given path. The file is written to a
// temporary sibling first and renamed into place, so a consumer polling the
// path never observes a half-written report.
func (s *Store) Write(path string, report domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal report")
	}

	path = filepath.Clean(path)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for report")
	}

	tmp, err := os.CreateTemp(dir, ".report-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create temporary report file")
	}

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write report")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to close report file")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.With(zerr.Wrap(err, "failed to move report into place"), "path", path)
	}

	return nil
}

// Read loads a previously written report. Used by downstream tooling and
// the store's own tests.
func Read(path string) (domain.Report, error) {
	data, err := os.ReadFile(filepath.Clean(path)) //nolint:gosec // path is provided by caller
	if err != nil {
		return domain.Report{}, zerr.Wrap(err, "failed to read report")
	}
	var report domain.Report
	if err := json.Unmarshal(data, &report); err != nil {
		return domain.Report{}, zerr.Wrap(err, "failed to unmarshal report")
	}
	return report, nil
}
