package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/crcf-labs/crcf/internal/output"
)

const (
	cacheFileName = "version-check.json"
	// DefaultCacheMaxAge is how long a release lookup is trusted.
	DefaultCacheMaxAge = 24 * time.Hour
)

// VersionCache is the last release lookup, tied to the repository that was
// queried and the binary version that queried it.
type VersionCache struct {
	Repo            string    `json:"repo"`
	CurrentVersion  string    `json:"current_version"`
	LatestVersion   string    `json:"latest_version"`
	ReleaseURL      string    `json:"release_url,omitempty"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// LoadCache reads the version cache from the config directory.
// Returns nil, nil if the cache file does not exist (first run).
func LoadCache(configDir string) (*VersionCache, error) {
	data, err := os.ReadFile(filepath.Join(configDir, cacheFileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version cache: %w", err)
	}

	var cache VersionCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing version cache: %w", err)
	}
	return &cache, nil
}

// SaveCache writes the version cache to the config directory. The file is
// replaced by rename so a concurrent reader never sees a partial write.
func SaveCache(configDir string, cache *VersionCache) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version cache: %w", err)
	}

	tmp, err := os.CreateTemp(configDir, cacheFileName+".*")
	if err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing version cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(configDir, cacheFileName)); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	return nil
}

// cached returns the cache entry that describes this binary, or nil when
// there is none. An entry for another repository or another running version
// says nothing about this one. Unreadable caches count as missing.
func (u *Updater) cached(configDir string) *VersionCache {
	cache, err := LoadCache(configDir)
	if err != nil {
		output.Debug("ignoring version cache", "err", err)
		return nil
	}
	if cache == nil || cache.Repo != u.repo || cache.CurrentVersion != u.currentVersion {
		return nil
	}
	return cache
}

// fresh reports whether cache was written within DefaultCacheMaxAge.
func (u *Updater) fresh(cache *VersionCache) bool {
	return cache != nil && u.now().Sub(cache.CheckedAt) <= DefaultCacheMaxAge
}
