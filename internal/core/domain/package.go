package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// Package is one version record of a monorepo package. Records are read-only
// once loaded; a resolution run never mutates the universe.
type Package struct {
	// ID addresses this record within the universe.
	ID PackageID

	// Dir is the repository-relative directory the record was loaded from.
	Dir InternedString

	// Dependencies are the identities of this record's direct dependencies.
	Dependencies []PackageID
}

// Universe is the full collection of known package records, keyed by
// identity rather than by object reference so that lookups survive
// reloading.
type Universe struct {
	pkgs map[PackageID]*Package
}

// NewUniverse creates a new empty Universe.
func NewUniverse() *Universe {
	return &Universe{
		pkgs: make(map[PackageID]*Package),
	}
}

// Add inserts a package record.
// It returns an error if a record with the same identity already exists.
func (u *Universe) Add(p *Package) error {
	if _, exists := u.pkgs[p.ID]; exists {
		return zerr.With(ErrPackageExists, "package", p.ID.String())
	}
	u.pkgs[p.ID] = p
	return nil
}

// Lookup returns the record addressed by the given identity. An identity
// with the Latest line addresses the package's current latest record
// directly.
func (u *Universe) Lookup(id PackageID) (*Package, bool) {
	p, ok := u.pkgs[id]
	return p, ok
}

// Len returns the number of known records.
func (u *Universe) Len() int {
	return len(u.pkgs)
}

// All returns every record in canonical order.
func (u *Universe) All() []*Package {
	pkgs := make([]*Package, 0, len(u.pkgs))
	for _, p := range u.pkgs {
		pkgs = append(pkgs, p)
	}
	SortPackages(pkgs)
	return pkgs
}

// SortPackages sorts records in place by the canonical total order.
func SortPackages(pkgs []*Package) {
	slices.SortFunc(pkgs, func(a, b *Package) int {
		return a.ID.Compare(b.ID)
	})
}
