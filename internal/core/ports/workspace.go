package ports

import (
	"context"

	"go.trai.ch/ripple/internal/core/domain"
)

// WorkspaceLoader defines the interface for loading the package universe.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type WorkspaceLoader interface {
	// Load scans the repository rooted at root and returns the full,
	// internally consistent package universe. Failure to materialize the
	// universe is fatal for the whole resolution.
	Load(ctx context.Context, root string, settings domain.Settings) (*domain.Universe, error)
}
