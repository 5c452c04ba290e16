package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	oldHome := os.Getenv("HOME")
	os.Setenv("HOME", dir)
	t.Cleanup(func() { os.Setenv("HOME", oldHome) })
	return dir
}

func TestSaveConfigCreatesDirectories(t *testing.T) {
	withTempHome(t)

	cfg := Default()
	err := cfg.Save()
	require.NoError(t, err)

	info, err := os.Stat(Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadConfigNonExistent(t *testing.T) {
	withTempHome(t)

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoadOrDefaultMissingFileFallsBack(t *testing.T) {
	withTempHome(t)

	cfg, err := LoadOrDefault()
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestSaveLoadRoundtripWithAllFields(t *testing.T) {
	withTempHome(t)

	original := Config{
		VisibleCount: 9,
		Overscan:     4,
		Direction:    "horizontal",
		DataFile:     "/tmp/rows.yaml",
		DemoRows:     500,
		MouseWheel:   true,
	}

	require.NoError(t, original.Save())

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, original, *loaded)
}

func TestLoadConfigAppliesDefaultsForMissingFields(t *testing.T) {
	dir := withTempHome(t)

	cfgDir := filepath.Join(dir, ".vlist")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	err := os.WriteFile(filepath.Join(cfgDir, "config"), []byte("visible_count: 11\n"), 0600)
	require.NoError(t, err)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 11, loaded.VisibleCount)
	assert.Equal(t, 2, loaded.Overscan)
	assert.Equal(t, "vertical", loaded.Direction)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	dir := withTempHome(t)

	cfgDir := filepath.Join(dir, ".vlist")
	require.NoError(t, os.MkdirAll(cfgDir, 0700))
	err := os.WriteFile(filepath.Join(cfgDir, "config"), []byte("overscan: [nope"), 0600)
	require.NoError(t, err)

	_, err = Load()
	assert.Error(t, err)

	_, err = LoadOrDefault()
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"negative visible count", func(c *Config) { c.VisibleCount = -1 }, "visible_count"},
		{"negative overscan", func(c *Config) { c.Overscan = -2 }, "overscan"},
		{"bad direction", func(c *Config) { c.Direction = "diagonal" }, "direction"},
		{"negative demo rows", func(c *Config) { c.DemoRows = -10 }, "demo_rows"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateZeroVisibleCountAllowed(t *testing.T) {
	// Zero means "no visible count configured": the item extent is then
	// supplied or measured directly.
	cfg := Default()
	cfg.VisibleCount = 0
	assert.NoError(t, cfg.Validate())
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	withTempHome(t)

	cfg := Default()
	cfg.Overscan = -1
	assert.Error(t, cfg.Save())
}

func TestPathReturnsCorrectLocation(t *testing.T) {
	path := Path()
	assert.Contains(t, path, ".vlist")
	assert.Contains(t, path, "config")
}
