package service

import "catalog-image-warmer/models"

// ImageLoaderInterface defines the contract for the image loading collaborator.
// Both methods return immediately; the work completes in the background.
type ImageLoaderInterface interface {
	// Fetch downloads and caches an image without displaying it. Failures are not reported.
	Fetch(req models.FetchRequest)
	// LoadInto loads an image into target and calls cb when done
	LoadInto(req models.LoadRequest, target models.ImageTarget, cb models.LoadCallback)
}
