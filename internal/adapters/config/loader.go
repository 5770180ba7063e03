// Package config provides the configuration loader for ripple.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/ripple/internal/core/domain"
	"go.trai.ch/ripple/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileLoader)(nil)

// FileLoader implements ports.ConfigLoader using a YAML file.
type FileLoader struct {
	Filename string
}

// NewLoader creates a loader for the default ripple.yaml file.
func NewLoader() *FileLoader {
	return &FileLoader{Filename: "ripple.yaml"}
}

// ripplefile represents the structure of the ripple.yaml configuration file.
type ripplefile struct {
	Version      string   `yaml:"version"`
	PackagesRoot string   `yaml:"packagesRoot"`
	Baseline     string   `yaml:"baseline"`
	Ignore       []string `yaml:"ignore"`
}

// Load reads the settings from the given working directory. A missing file
// yields the defaults so the tool works unconfigured in CI.
func (l *FileLoader) Load(cwd string) (domain.Settings, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, zerr.Wrap(err, "failed to read config file")
	}

	var file ripplefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return domain.Settings{}, zerr.Wrap(err, "failed to parse config file")
	}

	settings := domain.DefaultSettings()
	if file.PackagesRoot != "" {
		settings.PackagesRoot = file.PackagesRoot
	}
	if file.Baseline != "" {
		settings.Baseline = file.Baseline
	}
	settings.Ignore = file.Ignore

	// The classifier matches the packages root against the first path
	// segment, so it must be a single segment.
	if strings.Contains(settings.PackagesRoot, "/") || filepath.IsAbs(settings.PackagesRoot) {
		return domain.Settings{}, zerr.With(
			zerr.New("packagesRoot must be a single path segment"),
			"packages_root", settings.PackagesRoot,
		)
	}

	return settings, nil
}
