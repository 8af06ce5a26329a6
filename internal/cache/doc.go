// Package cache provides the bounded LRU map that holds rasterized glyphs.
//
//	c := cache.New[rune, *Glyph](512)
//	g := c.GetOrCreate('A', func() *Glyph { return rasterize('A') })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
