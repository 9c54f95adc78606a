package service

import (
	"testing"

	"catalog-image-warmer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
)

func TestProductFromDriveFile(t *testing.T) {
	p, ok := productFromDriveFile(&drive.File{Id: "abc123", Name: "RO_RO-BE-IT0001-C.PNG", MimeType: "image/png"})

	assert.True(t, ok)
	assert.Equal(t, models.Product{
		Title:  "RO_RO-BE-IT0001-C",
		Images: []models.ProductImage{{Src: "https://lh3.googleusercontent.com/d/abc123"}},
	}, p)
	assert.Equal(t, "https://lh3.googleusercontent.com/d/abc123", p.FirstImageURL())
}

func TestProductFromDriveFile_Rejected(t *testing.T) {
	for _, f := range []*drive.File{
		nil,
		{Id: "1", Name: "notes.txt", MimeType: "text/plain"},
		{Id: "2", Name: "folder", MimeType: "application/vnd.google-apps.folder"},
	} {
		_, ok := productFromDriveFile(f)
		assert.False(t, ok)
	}
}

func TestPreloadAllImages_DriveProductsStayDistinct(t *testing.T) {
	var items []models.CatalogItem
	for _, f := range []*drive.File{
		{Id: "AAA", Name: "a.png", MimeType: "image/png"},
		{Id: "BBB", Name: "b.jpg", MimeType: "image/jpeg"},
	} {
		p, ok := productFromDriveFile(f)
		require.True(t, ok)
		items = append(items, p)
	}

	loader := &recordingLoader{}
	PreloadAllImages(loader, items, 300, 300, false)

	assert.Equal(t, []string{
		"https://lh3.googleusercontent.com/d/AAA_large",
		"https://lh3.googleusercontent.com/d/BBB_large",
	}, loader.fetchedURLs())
}
