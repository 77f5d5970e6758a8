package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryCacheDeletePrefix(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set("artworks:gallery::", 1, time.Minute)
	c.Set("artworks:for_sale:a1:", 2, time.Minute)
	c.Set("sitemap", 3, time.Minute)

	c.DeletePrefix("artworks:")

	_, ok := c.Get("artworks:gallery::")
	assert.False(t, ok)
	_, ok = c.Get("artworks:for_sale:a1:")
	assert.False(t, ok)
	v, ok := c.Get("sitemap")
	assert.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)
	c.Set("k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)
	_, ok := c.Get("k")
	assert.False(t, ok)
}
