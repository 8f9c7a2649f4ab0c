// Package cache provides a small gob-backed file cache with TTL used by the
// CLI for metadata listings. Server-side tool calls never go through it.
package cache

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTTL is the default time-to-live for cached entries. Field and
// species listings only change when MyGene.info ships a new build.
var DefaultTTL = 24 * time.Hour

// DefaultDir is the default cache directory
var DefaultDir string

func init() {
	cacheHome, err := os.UserCacheDir()
	if err != nil {
		DefaultDir = filepath.Join(os.TempDir(), "mygene-mcp")
	} else {
		DefaultDir = filepath.Join(cacheHome, "mygene-mcp")
	}
}

// Entry represents a cached item
type Entry[T any] struct {
	Value     T
	CreatedAt time.Time
}

// Cache stores one gob file per key under dir/namespace
type Cache[T any] struct {
	dir string
	ttl time.Duration
}

// New creates a cache rooted at DefaultDir under the given namespace
func New[T any](namespace string) *Cache[T] {
	return &Cache[T]{
		dir: filepath.Join(DefaultDir, namespace),
		ttl: DefaultTTL,
	}
}

// SetDir moves the cache root
func (c *Cache[T]) SetDir(dir string) {
	c.dir = dir
}

// SetTTL updates the cache TTL
func (c *Cache[T]) SetTTL(d time.Duration) {
	c.ttl = d
}

// normalizeKey converts a cache key into a filesystem-safe format
func normalizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, key)
}

// GetOrSet returns the cached value for key if fresh, otherwise calls fn and
// stores the result. forceUpdate skips the read and always refreshes.
// A failed cache write is not an error; the value is still returned.
func (c *Cache[T]) GetOrSet(key string, fn func() (T, error), forceUpdate bool) (T, error) {
	path := filepath.Join(c.dir, normalizeKey(key)+".gob")

	if !forceUpdate {
		if entry, err := loadEntry[T](path); err == nil {
			if time.Since(entry.CreatedAt) < c.ttl {
				return entry.Value, nil
			}
		}
	}

	value, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}

	saveEntry(path, Entry[T]{Value: value, CreatedAt: time.Now()})
	return value, nil
}

// Clear removes all cached entries in this namespace
func (c *Cache[T]) Clear() error {
	return os.RemoveAll(c.dir)
}

func loadEntry[T any](path string) (*Entry[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entry Entry[T]
	if err := gob.NewDecoder(f).Decode(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func saveEntry[T any](path string, entry Entry[T]) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gob.NewEncoder(f).Encode(entry)
}
