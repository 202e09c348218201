package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte("file = \"/tmp/main.ledger\"\n"), 0o644))

	config, err := loadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/main.ledger", config.File)
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadConfigInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	assert.NoError(t, os.WriteFile(path, []byte("file = [not toml"), 0o644))

	_, err := loadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
