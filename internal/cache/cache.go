// Package cache tracks a SHA-256 hash per schema file so
// pkg/compiler.Builder and cmd/xdrc's compile command can skip
// re-running the parser/resolver/codegen pipeline on a .x file whose
// bytes have not changed since the last successful generation.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Cache is the persisted schema-freshness record: one hex SHA-256 digest
// per schema path, keyed by the same path callers pass to NeedsRegeneration.
type Cache struct {
	Hashes map[string]string `json:"hashes"`
	path   string
}

// New creates an empty cache that will persist to cachePath on Save.
func New(cachePath string) *Cache {
	return &Cache{
		Hashes: make(map[string]string),
		path:   cachePath,
	}
}

// Load reads a previously saved cache from cachePath. A missing file is
// not an error — it means every schema is being compiled for the first
// time — and yields an empty cache rather than failing the build.
func Load(cachePath string) (*Cache, error) {
	c := New(cachePath)

	data, err := os.ReadFile(cachePath)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	if err := json.Unmarshal(data, &c.Hashes); err != nil {
		return nil, fmt.Errorf("failed to parse cache: %w", err)
	}

	return c, nil
}

// Save persists the cache's current hashes to disk so the next
// invocation of cmd/xdrc can pick up where this one left off.
func (c *Cache) Save() error {
	dir := filepath.Dir(c.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	data, err := json.MarshalIndent(c.Hashes, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal cache: %w", err)
	}

	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write cache: %w", err)
	}

	return nil
}

// NeedsRegeneration reports whether srcPath's current contents hash
// differently than the last recorded hash (or have no recorded hash at
// all), and if so records the new hash so a second call in the same run
// reports up to date. Builder.Run and cmd/xdrc's --incremental flag use
// this to skip a schema file whose generated output is still current.
func (c *Cache) NeedsRegeneration(srcPath string) (bool, error) {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return true, err
	}

	hash := sha256.Sum256(data)
	currentHash := hex.EncodeToString(hash[:])

	cached, exists := c.Hashes[srcPath]
	if !exists || cached != currentHash {
		c.Hashes[srcPath] = currentHash
		return true, nil
	}

	return false, nil
}

// UpdateHash records srcPath's current hash without asking whether it
// changed, for a caller that already decided to recompile and just needs
// the cache to reflect the new state.
func (c *Cache) UpdateHash(srcPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	hash := sha256.Sum256(data)
	c.Hashes[srcPath] = hex.EncodeToString(hash[:])
	return nil
}

// Remove drops srcPath's recorded hash, forcing its next
// NeedsRegeneration check to report stale.
func (c *Cache) Remove(srcPath string) {
	delete(c.Hashes, srcPath)
}

// Clear drops every recorded hash, forcing a full recompilation of every
// schema on the next run.
func (c *Cache) Clear() {
	c.Hashes = make(map[string]string)
}
