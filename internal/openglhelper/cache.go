package openglhelper

import (
	"errors"
	"fmt"
	"io"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache owns GPU objects keyed by path. Entries live until evicted, pushed out
// by the capacity limit, or cleared; every removal closes the object.
type Cache[T io.Closer] struct {
	load    func(path string) (T, error)
	entries *lru.Cache[string, T]
	// close errors from entries pushed out by the capacity limit, reported by Clear
	pending []error
}

// NewCache creates a cache that loads missing entries with load.
// A capacity of zero or less means unlimited.
func NewCache[T io.Closer](load func(path string) (T, error), capacity int) *Cache[T] {
	if capacity <= 0 {
		capacity = math.MaxInt
	}
	c := &Cache[T]{load: load}
	// The size is always positive, which is the only error NewWithEvict returns.
	c.entries, _ = lru.NewWithEvict(capacity, func(_ string, v T) {
		if err := v.Close(); err != nil {
			c.pending = append(c.pending, err)
		}
	})
	return c
}

// TextureCache caches textures by file path.
type TextureCache = Cache[*Texture]

// NewTextureCache creates a texture cache loading files with opts.
func NewTextureCache(opts TextureOptions, capacity int) *TextureCache {
	return NewCache(func(path string) (*Texture, error) {
		return LoadTexture(path, opts)
	}, capacity)
}

// Load returns the cached entry for path, loading it on a miss.
func (c *Cache[T]) Load(path string) (T, error) {
	if v, ok := c.entries.Get(path); ok {
		return v, nil
	}

	v, err := c.load(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("cache load %s: %w", path, err)
	}
	c.entries.Add(path, v)
	return v, nil
}

// Get returns the cached entry without loading.
func (c *Cache[T]) Get(path string) (T, bool) {
	return c.entries.Get(path)
}

// Evict closes and removes path. It reports whether the entry existed and
// the error from closing it.
func (c *Cache[T]) Evict(path string) (bool, error) {
	if !c.entries.Remove(path) {
		return false, nil
	}
	return true, c.takePending()
}

// Clear closes and removes every entry, most recently used first. The error
// also includes close failures of entries the capacity limit pushed out.
func (c *Cache[T]) Clear() error {
	keys := c.entries.Keys() // oldest first
	for i := len(keys) - 1; i >= 0; i-- {
		c.entries.Remove(keys[i])
	}
	return c.takePending()
}

// Close clears the cache so it can be registered with Resources.
func (c *Cache[T]) Close() error {
	return c.Clear()
}

// Len returns the number of cached entries.
func (c *Cache[T]) Len() int {
	return c.entries.Len()
}

func (c *Cache[T]) takePending() error {
	err := errors.Join(c.pending...)
	c.pending = nil
	return err
}
