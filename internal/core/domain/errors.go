package domain

import "go.trai.ch/zerr"

var (
	// ErrPackageExists is returned when adding a record whose identity is
	// already present in the universe.
	ErrPackageExists = zerr.New("package already exists")

	// ErrPackageNotFound is returned when a requested package record does
	// not exist in the universe.
	ErrPackageNotFound = zerr.New("package not found")

	// ErrInvalidPackageRef is returned when a user-supplied package
	// reference cannot be parsed.
	ErrInvalidPackageRef = zerr.New("invalid package reference")

	// ErrManifestNameMismatch is returned when a manifest declares a name
	// that does not match its directory.
	ErrManifestNameMismatch = zerr.New("manifest name does not match directory")
)
