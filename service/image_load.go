package service

import (
	"catalog-image-warmer/models"
	"catalog-image-warmer/utils"
)

// LoadRemoteImageIntoViewWithoutSize loads imageSrc into a target whose size is only known
// once it is laid out (for example one that stretches to its parent).
// parentWidth and parentHeight must be non-zero so that a suitable size tier can be
// requested from the server; the image itself is scaled to the target's final size.
func LoadRemoteImageIntoViewWithoutSize(loader ImageLoaderInterface, imageSrc string, target models.ImageTarget, parentWidth, parentHeight int, crop bool, cb models.LoadCallback) {
	imageURL, _ := utils.SizedImageURL(imageSrc, parentWidth, parentHeight)
	loader.LoadInto(models.LoadRequest{
		URL:  imageURL,
		Size: models.SizeHint{FitToTarget: true},
		Fit:  models.FitModeFor(crop),
	}, target, cb)
}

// LoadImageResourceIntoSizedView loads imageSrc into a target with a fixed layout size
func LoadImageResourceIntoSizedView(loader ImageLoaderInterface, imageSrc string, target models.ImageTarget, crop bool, cb models.LoadCallback) {
	width, height := target.LayoutSize()
	imageURL, _ := utils.SizedImageURL(imageSrc, width, height)
	loader.LoadInto(models.LoadRequest{
		URL:  imageURL,
		Size: models.SizeHint{Dimension: models.Dimension{Width: width, Height: height}},
		Fit:  models.FitModeFor(crop),
	}, target, cb)
}
