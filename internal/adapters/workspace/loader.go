package workspace

import (
	"context"
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.WorkspaceLoader = (*Loader)(nil)

// Loader implements ports.WorkspaceLoader by scanning package manifests.
type Loader struct {
	walker *Walker
	log    ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(walker *Walker, log ports.Logger) *Loader {
	return &Loader{
		walker: walker,
		log:    log,
	}
}

// manifest is the subset of package.json the universe needs.
type manifest struct {
	Name         string            `json:"name"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
}

type record struct {
	id   domain.PackageID
	dir  string
	deps map[string]string
}

// Load scans root/<packagesRoot> and returns the package universe. Manifests
// are parsed concurrently; identities come from directory locations, and a
// manifest whose declared name disagrees with its directory is an error.
func (l *Loader) Load(ctx context.Context, root string, settings domain.Settings) (*domain.Universe, error) {
	base := filepath.Join(root, settings.PackagesRoot)
	if _, err := os.Stat(base); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "packages root not found"), "path", base)
	}

	var paths []string
	for p, err := range l.walker.Manifests(root, settings.PackagesRoot, settings.Ignore) {
		if err != nil {
			return nil, zerr.Wrap(err, "failed to scan packages root")
		}
		if _, ok := recordIdentity(settings.PackagesRoot, p); ok {
			paths = append(paths, p)
		}
	}

	records := make([]record, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, relPath := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rec, err := l.parseRecord(root, settings.PackagesRoot, relPath)
			if err != nil {
				return err
			}
			records[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// First collect every identity, then resolve dependency references:
	// a range that pins a major only addresses that line when the exact
	// record exists.
	known := make(map[domain.PackageID]struct{}, len(records))
	for _, rec := range records {
		known[rec.id] = struct{}{}
	}

	universe := domain.NewUniverse()
	for _, rec := range records {
		p := &domain.Package{
			ID:           rec.id,
			Dir:          domain.NewInternedString(rec.dir),
			Dependencies: dependencyIDs(rec.deps, known),
		}
		if err := universe.Add(p); err != nil {
			return nil, err
		}
	}

	return universe, nil
}

func (l *Loader) parseRecord(root, packagesRoot, relPath string) (record, error) {
	id, _ := recordIdentity(packagesRoot, relPath)

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(relPath))) //nolint:gosec // paths come from the walker
	if err != nil {
		return record{}, zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", relPath)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return record{}, zerr.With(zerr.Wrap(err, "failed to parse manifest"), "path", relPath)
	}

	if m.Name != "" && m.Name != id.Name.String() {
		err := zerr.With(domain.ErrManifestNameMismatch, "path", relPath)
		return record{}, zerr.With(err, "declared_name", m.Name)
	}

	return record{
		id:   id,
		dir:  path.Dir(relPath),
		deps: m.Dependencies,
	}, nil
}

// recordIdentity maps a repository-relative manifest path to the record it
// defines. Only packagesRoot/<name>/package.json (the latest line) and
// packagesRoot/<name>/<version dir>/package.json are records; anything
// deeper is a fixture or vendored tree, not a package.
func recordIdentity(packagesRoot, relPath string) (domain.PackageID, bool) {
	segments := strings.Split(relPath, "/")
	if len(segments) < 3 || segments[0] != packagesRoot || segments[len(segments)-1] != manifestName {
		return domain.PackageID{}, false
	}

	switch len(segments) {
	case 3:
		return domain.NewPackageID(segments[1], domain.Latest), true
	case 4:
		if v, ok := domain.ParseMajorVersion(segments[2]); ok {
			return domain.NewPackageID(segments[1], v), true
		}
	}
	return domain.PackageID{}, false
}

// dependencyIDs resolves manifest dependency entries to identities. The
// major hinted by a range like "^3.2.1" addresses the v3 line when that
// record exists; everything else addresses the latest line. Names with no
// record at all are preserved as latest identities, the resolver treats
// them as dangling.
func dependencyIDs(deps map[string]string, known map[domain.PackageID]struct{}) []domain.PackageID {
	if len(deps) == 0 {
		return nil
	}
	ids := make([]domain.PackageID, 0, len(deps))
	for name, rng := range deps {
		ids = append(ids, dependencyID(name, rng, known))
	}
	return ids
}

func dependencyID(name, rng string, known map[domain.PackageID]struct{}) domain.PackageID {
	if major, ok := rangeMajor(rng); ok {
		id := domain.NewPackageID(name, major)
		if _, exists := known[id]; exists {
			return id
		}
	}
	return domain.NewPackageID(name, domain.Latest)
}

// rangeMajor extracts the major hinted by a semver range such as "^3.2.1"
// or ">=2". Ranges without a leading version ("*", "latest") hint nothing.
func rangeMajor(rng string) (domain.MajorVersion, bool) {
	s := strings.TrimLeft(rng, "^~=<> ")
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	// Reuse the directory-token parser for the numeric part.
	return domain.ParseMajorVersion("v" + s[:end])
}
