// Package config resolves the few settings shared across the tools from the
// environment, with an optional .env file in the working directory.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Settings are the environment-driven defaults.
type Settings struct {
	CacheDir   string   // BDTK_CACHE_DIR
	ClassesURL string   // BDTK_CLASSES_URL (empty means the built-in default)
	ThemePaths []string // BDTK_THEMES, colon-separated
}

// Load reads .env if present, then the environment. A missing .env is not
// an error.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := &Settings{
		ClassesURL: os.Getenv("BDTK_CLASSES_URL"),
	}

	if dir := os.Getenv("BDTK_CACHE_DIR"); dir != "" {
		s.CacheDir = dir
	} else {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		s.CacheDir = filepath.Join(base, "bdtk")
	}

	if themes := os.Getenv("BDTK_THEMES"); themes != "" {
		for _, p := range strings.Split(themes, ":") {
			if p = strings.TrimSpace(p); p != "" {
				s.ThemePaths = append(s.ThemePaths, p)
			}
		}
	}
	return s, nil
}
