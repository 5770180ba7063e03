// Package affected implements the affected-package resolution engine.
package affected

import (
	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver computes affected-package sets over a package universe. It holds
// no per-run state: every resolution builds its reverse index from scratch,
// so concurrent runs on different universes are independent.
type Resolver struct {
	log ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(log ports.Logger) *Resolver {
	return &Resolver{log: log}
}

// BuildReverseIndex maps every package in the universe to the identities of
// its direct dependers. Every known record appears as a key, even with no
// dependers; a dependency on a record outside the universe adds a key that
// the closure simply never reaches from live seeds. Plain edge reversal,
// O(edges), no acyclicity required.
func BuildReverseIndex(u *domain.Universe) map[domain.PackageID][]domain.PackageID {
	index := make(map[domain.PackageID][]domain.PackageID, u.Len())

	for _, p := range u.All() {
		if _, ok := index[p.ID]; !ok {
			index[p.ID] = nil
		}
		for _, dep := range p.Dependencies {
			index[dep] = append(index[dep], p.ID)
		}
	}

	return index
}

// Resolve computes the changed and dependent package sets for the given
// changed file paths. Identities whose record no longer exists are dropped:
// a deleted package is not an error, it just has nothing left to
// revalidate. Both output lists are canonically sorted and disjoint.
func (r *Resolver) Resolve(u *domain.Universe, changedPaths []string, packagesRoot string) *domain.AffectedResult {
	classifier := domain.PathClassifier{PackagesRoot: packagesRoot}

	changed := make([]*domain.Package, 0)
	seeds := make([]domain.PackageID, 0)
	for _, id := range classifier.ExtractChanged(changedPaths) {
		p, ok := u.Lookup(id)
		if !ok {
			r.log.Info("skipping deleted package " + id.String())
			continue
		}
		changed = append(changed, p)
		seeds = append(seeds, p.ID)
	}

	index := BuildReverseIndex(u)
	reachable := domain.Closure(seeds, func(id domain.PackageID) []domain.PackageID {
		return index[id]
	})

	// A changed package is never reported as dependent on itself, even
	// through a cycle or a self-dependency.
	for _, s := range seeds {
		delete(reachable, s)
	}

	dependents := make([]*domain.Package, 0, len(reachable))
	for id := range reachable {
		if p, ok := u.Lookup(id); ok {
			dependents = append(dependents, p)
		}
	}

	domain.SortPackages(changed)
	domain.SortPackages(dependents)

	return &domain.AffectedResult{
		Changed:    changed,
		Dependents: dependents,
	}
}

// AllDependencies returns the seed packages plus every package they depend
// on transitively, sorted and deduplicated. Dependency identities without a
// live record are skipped.
func AllDependencies(u *domain.Universe, seeds []*domain.Package) []*domain.Package {
	ids := make([]domain.PackageID, len(seeds))
	for i, p := range seeds {
		ids[i] = p.ID
	}

	reachable := domain.Closure(ids, func(id domain.PackageID) []domain.PackageID {
		p, ok := u.Lookup(id)
		if !ok {
			return nil
		}
		return p.Dependencies
	})

	out := make([]*domain.Package, 0, len(reachable))
	for id := range reachable {
		if p, ok := u.Lookup(id); ok {
			out = append(out, p)
		}
	}
	domain.SortPackages(out)
	return out
}

// ResolveTargets looks up user-supplied package references. Unlike deleted
// changed packages, a reference the user asked for by name must exist.
func ResolveTargets(u *domain.Universe, refs []string) ([]*domain.Package, error) {
	pkgs := make([]*domain.Package, 0, len(refs))
	for _, ref := range refs {
		id, err := domain.ParsePackageID(ref)
		if err != nil {
			return nil, err
		}
		p, ok := u.Lookup(id)
		if !ok {
			return nil, zerr.With(domain.ErrPackageNotFound, "package", id.String())
		}
		pkgs = append(pkgs, p)
	}
	return pkgs, nil
}
