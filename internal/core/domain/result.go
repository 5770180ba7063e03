package domain

// AffectedResult is the outcome of a resolution run. Both lists are sorted
// in the canonical order, contain no duplicates, and are disjoint: a package
// that changed is never also reported as a mere depender.
type AffectedResult struct {
	// Changed are the packages directly modified by the change set.
	Changed []*Package

	// Dependents are the packages that depend, directly or transitively,
	// on a changed package.
	Dependents []*Package
}

// Empty reports whether the change set touched no live package.
func (r *AffectedResult) Empty() bool {
	return len(r.Changed) == 0 && len(r.Dependents) == 0
}

// Report is the serializable form of an AffectedResult, written as a CI
// artifact for downstream build and publish steps.
type Report struct {
	Baseline    string   `json:"baseline"`
	Changed     []string `json:"changed"`
	Dependents  []string `json:"dependents"`
	Fingerprint string   `json:"fingerprint"`
}
