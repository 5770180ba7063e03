// Package workspace loads the package universe from the repository tree.
package workspace

import (
	"io/fs"
	"iter"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// manifestName is the file that defines a package record.
const manifestName = "package.json"

// Walker discovers candidate package manifests under the packages root.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Manifests yields the repository-relative, slash-separated paths of every
// package.json below root/<packagesRoot>. Version-control directories are
// always skipped; ignore patterns are doublestar globs matched against the
// repository-relative path. A failure to read any part of the tree is
// yielded as the final pair: a universe built from a partial walk would
// silently drop records.
func (w *Walker) Manifests(root, packagesRoot string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		base := filepath.Join(root, packagesRoot)
		err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if d.Name() == ".git" || d.Name() == ".jj" {
					return filepath.SkipDir
				}
				if matchesAny(ignores, rel) {
					return filepath.SkipDir
				}
				return nil
			}

			if d.Name() != manifestName || matchesAny(ignores, rel) {
				return nil
			}

			if !yield(rel, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func matchesAny(patterns []string, rel string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}
