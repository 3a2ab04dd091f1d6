package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	t.Setenv("GESTOR_DATA_DIR", "")
	t.Setenv("GESTOR_THEME", "")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	t.Setenv("GESTOR_DATA_DIR", "")
	t.Setenv("GESTOR_THEME", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dracula\nnotifications: true\nlog:\n  level: debug\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.Theme)
	assert.True(t, cfg.Notifications)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, Default().DataDir, cfg.DataDir)
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GESTOR_DATA_DIR", dir)
	t.Setenv("GESTOR_THEME", "gruvbox")

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_dir: /somewhere/else\ntheme: nord\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Equal(t, "gruvbox", cfg.Theme)
	assert.Equal(t, filepath.Join(dir, "gestor.db"), cfg.DBPath())
	assert.Equal(t, filepath.Join(dir, "gestor.log"), cfg.LogPath())
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("GESTOR_DATA_DIR", "")
	t.Setenv("GESTOR_THEME", "")

	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := Default()
	cfg.DataDir = "/data"
	cfg.Notifications = true
	cfg.Log.File = "stderr"
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, "stderr", loaded.LogPath())
}

func TestPathPrecedence(t *testing.T) {
	t.Setenv("GESTOR_CONFIG", "/tmp/explicit.yaml")
	p, err := Path()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/explicit.yaml", p)

	t.Setenv("GESTOR_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err = Path()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg", "gestor", "config.yaml"), p)
}
