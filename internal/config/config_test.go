package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BDTK_CACHE_DIR", "/tmp/bdtk-test")
	t.Setenv("BDTK_CLASSES_URL", "https://example.com/classes.json")
	t.Setenv("BDTK_THEMES", "/a/dark.theme.css: /b/light.theme.css :")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bdtk-test", s.CacheDir)
	assert.Equal(t, "https://example.com/classes.json", s.ClassesURL)
	assert.Equal(t, []string{"/a/dark.theme.css", "/b/light.theme.css"}, s.ThemePaths)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BDTK_CACHE_DIR", "")
	t.Setenv("BDTK_CLASSES_URL", "")
	t.Setenv("BDTK_THEMES", "")

	s, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, s.CacheDir)
	assert.Contains(t, s.CacheDir, "bdtk")
	assert.Empty(t, s.ClassesURL)
	assert.Empty(t, s.ThemePaths)
}
