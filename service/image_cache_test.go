package service

import (
	"os"
	"path/filepath"
	"testing"

	"catalog-image-warmer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageCache_SaveAndRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "images")
	cache, err := NewImageCache(dir)
	require.NoError(t, err)

	key := CacheKey("https://cdn.example.com/a_small.jpg", models.Dimension{Width: 90, Height: 90}, models.FitCrop)
	assert.False(t, cache.Exists(key))

	require.NoError(t, cache.Save(key, []byte("jpeg bytes")))
	assert.True(t, cache.Exists(key))

	data, err := cache.Read(key)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestImageCache_ReadMissing(t *testing.T) {
	cache, err := NewImageCache(t.TempDir())
	require.NoError(t, err)

	_, err = cache.Read("nope.jpg")
	assert.Error(t, err)
}

func TestCacheKey(t *testing.T) {
	size := models.Dimension{Width: 100, Height: 50}
	base := CacheKey("https://cdn.example.com/a.jpg", size, models.FitCrop)

	assert.Equal(t, base, CacheKey("https://cdn.example.com/a.jpg", size, models.FitCrop))
	assert.NotEqual(t, base, CacheKey("https://cdn.example.com/a.jpg", size, models.FitContain))
	assert.NotEqual(t, base, CacheKey("https://cdn.example.com/a.jpg", models.Dimension{Width: 50, Height: 100}, models.FitCrop))
	assert.NotEqual(t, base, CacheKey("https://cdn.example.com/b.jpg", size, models.FitCrop))
	assert.Regexp(t, `^[0-9a-f]{40}_100x50_crop\.jpg$`, base)
}
