package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hashuniq.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
ignore = ["*.tmp", "desktop.ini"]
exclude-path = ["**/.git/**"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"*.tmp", "desktop.ini"}, cfg.Ignore)
	assert.Equal(t, []string{"**/.git/**"}, cfg.ExcludePath)
}

func TestLoadEmpty(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Empty(t, cfg.Ignore)
	assert.Empty(t, cfg.ExcludePath)
}

func TestLoadUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, `ignroe = ["*.tmp"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown key")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.toml"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeConfig(t, `ignore = "*.tmp`))
	require.Error(t, err)
}
