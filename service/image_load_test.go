package service

import (
	"image"
	"testing"

	"catalog-image-warmer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedTarget is an ImageTarget with a fixed layout size
type fixedTarget struct {
	width, height int
	img           image.Image
}

func (f *fixedTarget) LayoutSize() (int, int) { return f.width, f.height }
func (f *fixedTarget) SetImage(img image.Image) { f.img = img }

func TestLoadRemoteImageIntoViewWithoutSize(t *testing.T) {
	loader := &recordingLoader{}
	target := &fixedTarget{}
	called := false

	LoadRemoteImageIntoViewWithoutSize(loader, "https://cdn.example.com/img/shoe.jpg", target, 320, 200, true, func(error) { called = true })

	require.Len(t, loader.loads, 1)
	call := loader.loads[0]
	assert.Equal(t, models.LoadRequest{
		URL:  "https://cdn.example.com/img/shoe_large.jpg",
		Size: models.SizeHint{FitToTarget: true},
		Fit:  models.FitCrop,
	}, call.req)
	assert.Same(t, target, call.target)

	call.cb(nil)
	assert.True(t, called)
}

func TestLoadImageResourceIntoSizedView(t *testing.T) {
	loader := &recordingLoader{}
	target := &fixedTarget{width: 90, height: 40}

	LoadImageResourceIntoSizedView(loader, "https://cdn.example.com/img/hat.png", target, false, nil)

	require.Len(t, loader.loads, 1)
	assert.Equal(t, models.LoadRequest{
		URL:  "https://cdn.example.com/img/hat_small.png",
		Size: models.SizeHint{Dimension: models.Dimension{Width: 90, Height: 40}},
		Fit:  models.FitContain,
	}, loader.loads[0].req)
}

func TestLoadImageResourceIntoSizedView_NoSource(t *testing.T) {
	loader := &recordingLoader{}

	LoadImageResourceIntoSizedView(loader, "", &fixedTarget{width: 10, height: 10}, false, nil)

	require.Len(t, loader.loads, 1)
	assert.Empty(t, loader.loads[0].req.URL)
}
