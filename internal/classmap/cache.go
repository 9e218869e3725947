package classmap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/blueflashxs/bdtk/internal/textfile"
)

const (
	cacheFileName = "discordclasses.json"
	hashFileName  = "classes.sha256"
	reportSubdir  = "reports"
)

// Cache persists the last-fetched mapping under a local directory, together
// with a SHA-256 sidecar of the canonical encoding and timestamped update
// reports.
type Cache struct {
	Dir string
}

// NewCache creates the cache directory if needed.
func NewCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory %s: %w", dir, err)
	}
	return &Cache{Dir: dir}, nil
}

// Load returns the cached mapping, or nil when no cache exists yet.
func (c *Cache) Load() (Mapping, error) {
	path := filepath.Join(c.Dir, cacheFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cache %s: %w", path, err)
	}
	return ParseMapping(data)
}

// Save writes the mapping and its hash sidecar.
func (c *Cache) Save(m Mapping) error {
	data, err := m.Canonical()
	if err != nil {
		return fmt.Errorf("failed to encode mapping for cache: %w", err)
	}
	if err := os.WriteFile(filepath.Join(c.Dir, cacheFileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}
	hash := textfile.SHA256Bytes(data)
	if err := os.WriteFile(filepath.Join(c.Dir, hashFileName), []byte(hash+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write hash sidecar: %w", err)
	}
	return nil
}

// Hash returns the stored sidecar hash, or "" when absent.
func (c *Cache) Hash() string {
	data, err := os.ReadFile(filepath.Join(c.Dir, hashFileName))
	if err != nil {
		return ""
	}
	return string(data)
}

// HashMatches reports whether the sidecar hash matches the canonical
// encoding of m. A match means the snapshot is byte-identical to the cached
// one and a full diff can be skipped. No sidecar means no match.
func (c *Cache) HashMatches(m Mapping) bool {
	stored := strings.TrimSpace(c.Hash())
	if stored == "" {
		return false
	}
	data, err := m.Canonical()
	if err != nil {
		return false
	}
	return stored == textfile.SHA256Bytes(data)
}

// ReportDir returns (and creates) the directory for timestamped reports.
func (c *Cache) ReportDir() (string, error) {
	dir := filepath.Join(c.Dir, reportSubdir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory %s: %w", dir, err)
	}
	return dir, nil
}
