// Package domain contains the core domain models and business logic for
// affected-package resolution.
package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// MajorVersion identifies one version line of a package. A package may have
// several concurrently supported major versions; each one is addressed and
// affected independently.
type MajorVersion int

// Latest addresses the package's current latest version record.
const Latest MajorVersion = -1

// IsLatest reports whether the version addresses the latest line.
func (v MajorVersion) IsLatest() bool {
	return v == Latest
}

// String returns "latest" or the directory form "v<N>".
func (v MajorVersion) String() string {
	if v == Latest {
		return "latest"
	}
	return "v" + strconv.Itoa(int(v))
}

// Compare imposes the canonical total order on version lines: numeric majors
// ascending, with the latest line greater than every numeric major.
func (v MajorVersion) Compare(other MajorVersion) int {
	switch {
	case v == other:
		return 0
	case v == Latest:
		return 1
	case other == Latest:
		return -1
	case v < other:
		return -1
	default:
		return 1
	}
}

// ParseMajorVersion parses a major-version directory token such as "v3".
// It is total: any token that is not "v" followed by decimal digits reports
// false instead of failing.
func ParseMajorVersion(token string) (MajorVersion, bool) {
	rest, ok := strings.CutPrefix(token, "v")
	if !ok || rest == "" {
		return 0, false
	}
	for _, r := range rest {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		// Only possible on overflow since the token is all digits.
		return 0, false
	}
	return MajorVersion(n), true
}

// PackageID is the (name, major version) key addressing one version line of
// a package. Identity is structural: two IDs are equal iff name and major
// match exactly, and the latest line is distinct from every numeric line of
// the same name.
type PackageID struct {
	Name  InternedString
	Major MajorVersion
}

// NewPackageID creates a PackageID from a raw name and version line.
func NewPackageID(name string, major MajorVersion) PackageID {
	return PackageID{
		Name:  NewInternedString(name),
		Major: major,
	}
}

// String returns the canonical "name@latest" or "name@v<N>" form.
func (id PackageID) String() string {
	return id.Name.String() + "@" + id.Major.String()
}

// Compare imposes the canonical total order used for all sorted output:
// by name, then by version line.
func (id PackageID) Compare(other PackageID) int {
	if c := strings.Compare(id.Name.String(), other.Name.String()); c != 0 {
		return c
	}
	return id.Major.Compare(other.Major)
}

// ParsePackageID parses a user-supplied package reference of the form
// "name", "name@v3" or "name@latest". A bare name addresses the latest line.
func ParsePackageID(ref string) (PackageID, error) {
	name, suffix, found := strings.Cut(ref, "@")
	if name == "" {
		return PackageID{}, zerr.With(ErrInvalidPackageRef, "ref", ref)
	}
	if !found || suffix == "latest" {
		return NewPackageID(name, Latest), nil
	}
	major, ok := ParseMajorVersion(suffix)
	if !ok {
		return PackageID{}, zerr.With(ErrInvalidPackageRef, "ref", ref)
	}
	return NewPackageID(name, major), nil
}
