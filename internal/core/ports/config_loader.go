// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/ripple/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings for the repository rooted at cwd. A missing
	// config file yields the defaults, not an error.
	Load(cwd string) (domain.Settings, error)
}
