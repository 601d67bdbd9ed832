package internal

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 16

type cacheEntry struct {
	key     string
	texture *sdl.Texture
}

// TextureCache is a small LRU cache for rendered content textures.
// Segment labels change rarely but are redrawn every frame, so caching
// the rendered texture avoids a surface round-trip per segment per frame.
type TextureCache struct {
	entries map[string]*list.Element
	order   *list.List // front = most recently used
	maxSize int
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
	}
}

// Get returns the cached texture for key, or nil. A hit marks the entry
// most recently used.
func (c *TextureCache) Get(key string) *sdl.Texture {
	element, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.order.MoveToFront(element)
	return element.Value.(*cacheEntry).texture
}

// Set stores a texture under key, evicting the least recently used entry
// when the cache is full. Storing over an existing key destroys the old
// texture if it differs.
func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if element, ok := c.entries[key]; ok {
		entry := element.Value.(*cacheEntry)
		if entry.texture != texture && entry.texture != nil {
			entry.texture.Destroy()
		}
		entry.texture = texture
		c.order.MoveToFront(element)
		return
	}

	if c.order.Len() >= c.maxSize {
		c.evictOldest()
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, texture: texture})
}

// Len returns the number of cached entries.
func (c *TextureCache) Len() int {
	return c.order.Len()
}

// Keys returns the cached keys from most to least recently used.
func (c *TextureCache) Keys() []string {
	keys := make([]string, 0, c.order.Len())
	for element := c.order.Front(); element != nil; element = element.Next() {
		keys = append(keys, element.Value.(*cacheEntry).key)
	}
	return keys
}

func (c *TextureCache) evictOldest() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	entry := c.order.Remove(oldest).(*cacheEntry)
	delete(c.entries, entry.key)
	if entry.texture != nil {
		entry.texture.Destroy()
	}
}

// Destroy releases every cached texture and empties the cache.
func (c *TextureCache) Destroy() {
	for element := c.order.Front(); element != nil; element = element.Next() {
		if texture := element.Value.(*cacheEntry).texture; texture != nil {
			texture.Destroy()
		}
	}
	c.entries = make(map[string]*list.Element)
	c.order.Init()
}
