package domain

import "strings"

// PathClassifier maps repository-relative file paths to the package identity
// they belong to. Paths use "/" as the segment separator regardless of
// platform, matching what version control reports.
type PathClassifier struct {
	// PackagesRoot is the directory name under which all package
	// directories live, e.g. "packages".
	PackagesRoot string
}

// Classify maps a single path to a package identity. It is pure and total:
// paths outside the packages root, or too shallow to sit inside a package
// directory, report false rather than failing. A third segment that parses
// as a major-version directory selects that line; anything else belongs to
// the latest line.
func (c PathClassifier) Classify(path string) (PackageID, bool) {
	segments := strings.Split(path, "/")
	if len(segments) < 3 {
		return PackageID{}, false
	}
	if segments[0] != c.PackagesRoot {
		return PackageID{}, false
	}
	name := segments[1]
	if name == "" {
		return PackageID{}, false
	}

	major := Latest
	if v, ok := ParseMajorVersion(segments[2]); ok {
		major = v
	}
	return NewPackageID(name, major), true
}

// ExtractChanged classifies every path and returns the deduplicated set of
// affected identities. A name maps to several identities when multiple
// version directories changed; a specific major and the latest line changing
// together stay two independent identities, both in need of revalidation.
// The output order is not significant.
func (c PathClassifier) ExtractChanged(paths []string) []PackageID {
	seen := make(map[PackageID]struct{})
	ids := make([]PackageID, 0, len(paths))

	for _, path := range paths {
		id, ok := c.Classify(path)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}
