package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ripple/internal/adapters/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "ripple.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return tmpDir
}

func TestLoad_Success(t *testing.T) {
	dir := writeConfig(t, `
version: "1"
packagesRoot: types
baseline: origin/master
ignore:
  - "**/node_modules"
`)

	settings, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "types", settings.PackagesRoot)
	assert.Equal(t, "origin/master", settings.Baseline)
	assert.Equal(t, []string{"**/node_modules"}, settings.Ignore)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	settings, err := config.NewLoader().Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "packages", settings.PackagesRoot)
	assert.Equal(t, "origin/main", settings.Baseline)
	assert.Empty(t, settings.Ignore)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := writeConfig(t, `baseline: origin/develop`)

	settings, err := config.NewLoader().Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "packages", settings.PackagesRoot)
	assert.Equal(t, "origin/develop", settings.Baseline)
}

func TestLoad_Malformed(t *testing.T) {
	dir := writeConfig(t, "packagesRoot: [broken")

	_, err := config.NewLoader().Load(dir)
	assert.Error(t, err)
}

func TestLoad_MultiSegmentPackagesRoot(t *testing.T) {
	dir := writeConfig(t, `packagesRoot: nested/packages`)

	_, err := config.NewLoader().Load(dir)
	assert.Error(t, err)
}
