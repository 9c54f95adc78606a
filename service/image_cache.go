package service

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"catalog-image-warmer/models"

	"github.com/disintegration/imaging"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultCacheDir is used when no cache directory is configured
	DefaultCacheDir = "cache/images"
	// Quality settings
	qualitySmall = 60
	qualityLarge = 75
	// Variants up to this size (max dimension) use qualitySmall
	maxSizeSmall = 300
)

// ImageCache stores transformed image variants as JPEG files on disk
type ImageCache struct {
	dir string
}

// NewImageCache creates an ImageCache rooted at dir, creating the directory if needed
func NewImageCache(dir string) (*ImageCache, error) {
	if dir == "" {
		dir = DefaultCacheDir
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &ImageCache{dir: dir}, nil
}

// CacheKey returns the file name of the variant of imageURL at the given size and fit
func CacheKey(imageURL string, size models.Dimension, fit models.FitMode) string {
	sum := sha1.Sum([]byte(imageURL))
	return fmt.Sprintf("%s_%dx%d_%s.jpg", hex.EncodeToString(sum[:]), size.Width, size.Height, fit)
}

// Path returns the cache file path for a given key
func (c *ImageCache) Path(key string) string {
	return filepath.Join(c.dir, key)
}

// Exists checks if a cached variant exists
func (c *ImageCache) Exists(key string) bool {
	_, err := os.Stat(c.Path(key))
	return err == nil
}

// Read reads a cached variant
func (c *ImageCache) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(c.Path(key))
	if err != nil {
		return nil, fmt.Errorf("failed to read from cache: %w", err)
	}
	return data, nil
}

// Save writes a variant to the cache. The file is renamed into place so readers never
// see a partial image.
func (c *ImageCache) Save(key string, imageData []byte) error {
	tmp, err := os.CreateTemp(c.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if _, err := tmp.Write(imageData); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}
	if err := os.Rename(tmp.Name(), c.Path(key)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write to cache: %w", err)
	}

	logrus.Debugf("✓ Image cached: %s", c.Path(key))
	return nil
}

// encodeVariant encodes img as JPEG, using a lower quality for small variants
func encodeVariant(img image.Image) ([]byte, error) {
	quality := qualityLarge
	if b := img.Bounds(); b.Dx() <= maxSizeSmall && b.Dy() <= maxSizeSmall {
		quality = qualitySmall
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode to JPEG: %w", err)
	}
	return buf.Bytes(), nil
}
