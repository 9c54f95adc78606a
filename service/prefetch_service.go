package service

import (
	"catalog-image-warmer/models"
	"catalog-image-warmer/utils"

	"github.com/sirupsen/logrus"
)

// PreloadImages warms the image cache for the items that follow lastVisibleIndex.
// Useful for rows that are just below the fold.
//
// At most count items starting at lastVisibleIndex+1 are considered, clipped to the list.
// Each item's primary image is requested at the size tier that fits width x height,
// cropped or contained according to crop. Requests are dispatched in list order and the
// call returns without waiting for any of them. Repeated URLs are dispatched again; the
// loader is expected to coalesce them.
func PreloadImages(loader ImageLoaderInterface, items []models.CatalogItem, lastVisibleIndex, count, width, height int, crop bool) {
	if len(items) == 0 {
		return
	}

	start, end := utils.PrefetchWindow(len(items), lastVisibleIndex, count)

	imageURLs := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		if u := utils.StripQueryFromURL(primaryImageURL(items[i])); u != "" {
			imageURLs = append(imageURLs, u)
		}
	}

	fit := models.FitModeFor(crop)
	size := models.Dimension{Width: width, Height: height}
	dispatched := 0
	for _, imageURL := range imageURLs {
		sizedURL, ok := utils.SizedImageURL(imageURL, width, height)
		if !ok {
			continue
		}
		loader.Fetch(models.FetchRequest{URL: sizedURL, Size: size, Fit: fit})
		dispatched++
	}

	logrus.Debugf("🔥 PreloadImages: dispatched %d fetches for window [%d, %d)", dispatched, start, end)
}

// PreloadAllImages warms the image cache for every item in the list.
// It issues one request per item with no back-pressure, so use it sparingly;
// PreloadImages with a window is almost always the better choice.
func PreloadAllImages(loader ImageLoaderInterface, items []models.CatalogItem, width, height int, crop bool) {
	PreloadImages(loader, items, -1, len(items), width, height, crop)
}

// primaryImageURL returns the image shown for an item, or "" for items without one
func primaryImageURL(item models.CatalogItem) string {
	switch v := item.(type) {
	case models.Collection:
		return v.ImageURL
	case *models.Collection:
		if v != nil {
			return v.ImageURL
		}
	case models.Product:
		return v.FirstImageURL()
	case *models.Product:
		if v != nil {
			return v.FirstImageURL()
		}
	}
	return ""
}
