package ports

import "context"

// ChangeSource defines the interface for enumerating changed file paths.
//
//go:generate mockgen -source=changes.go -destination=mocks/mock_changes.go -package=mocks
type ChangeSource interface {
	// ChangedFiles returns the repository-relative paths (with "/"
	// separators) of all files that differ between the working state and
	// the baseline ref. An empty result is legitimate: nothing changed.
	ChangedFiles(ctx context.Context, root, baseline string) ([]string, error)
}
