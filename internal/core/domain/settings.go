package domain

// Settings holds the workspace configuration. The packages root and the
// baseline ref are explicit values rather than ambient globals so the core
// stays testable in isolation.
type Settings struct {
	// PackagesRoot is the single path segment under which package
	// directories live.
	PackagesRoot string

	// Baseline is the git ref the change set is computed against.
	Baseline string

	// Ignore lists glob patterns excluded from workspace scanning.
	Ignore []string
}

// DefaultSettings returns the configuration used when no config file is
// present.
func DefaultSettings() Settings {
	return Settings{
		PackagesRoot: "packages",
		Baseline:     "origin/main",
	}
}
