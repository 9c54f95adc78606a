package utils

import (
	"net/url"
	"strings"

	"catalog-image-warmer/models"

	"github.com/sirupsen/logrus"
)

// sizeBucket maps an inclusive upper bound in pixels to the suffix the CDN understands
type sizeBucket struct {
	maxPixels int
	suffix    string
}

// sizeBuckets must stay sorted by maxPixels. See
// http://docs.shopify.com/themes/filters/product-img-url for the suffix names.
var sizeBuckets = []sizeBucket{
	{16, "_pico"},
	{32, "_icon"},
	{50, "_thumb"},
	{100, "_small"},
	{160, "_compact"},
	{240, "_medium"},
	{480, "_large"},
	{600, "_grande"},
	{1024, "_1024x1024"},
}

const largestSizeSuffix = "_2048x2048"

// ImageSuffixForDimensions returns the size suffix for a target area of width x height pixels.
// The larger side picks the bucket. Zero and negative sizes land in the smallest bucket.
func ImageSuffixForDimensions(width, height int) string {
	pixels := models.Dimension{Width: width, Height: height}.Largest()
	for _, b := range sizeBuckets {
		if pixels <= b.maxPixels {
			return b.suffix
		}
	}
	return largestSizeSuffix
}

// SizedImageURL returns the URL of a resized variant of baseURL that is at least as large
// as the given target width and height.
// Returns false when baseURL is empty, cannot be parsed or has no path (mailto:x.jpg).
// The query string and the escaping of the path are kept as is.
func SizedImageURL(baseURL string, width, height int) (string, bool) {
	if baseURL == "" {
		return "", false
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		logrus.WithError(err).WithField("url", baseURL).Debug("Getting sized image URL")
		return "", false
	}

	if u.Opaque != "" {
		logrus.WithField("url", baseURL).Debug("Getting sized image URL: opaque URL has no path")
		return "", false
	}

	// Work on the escaped form so %2F and friends survive the rewrite
	rawPath := insertSizeSuffix(u.EscapedPath(), ImageSuffixForDimensions(width, height))
	path, err := url.PathUnescape(rawPath)
	if err != nil {
		logrus.WithError(err).WithField("url", baseURL).Debug("Getting sized image URL")
		return "", false
	}
	u.Path = path
	u.RawPath = rawPath
	return u.String(), true
}

// insertSizeSuffix puts suffix in front of the last '.' of path, or at its end if there is none
func insertSizeSuffix(path, suffix string) string {
	// The CDN always stores images with an extension, but a bare path still gets a suffix
	dot := strings.LastIndexByte(path, '.')
	if dot == -1 {
		return path + suffix
	}
	return path[:dot] + suffix + path[dot:]
}

// StripQueryFromURL returns imageURL without anything from its last '?' on
func StripQueryFromURL(imageURL string) string {
	if i := strings.LastIndexByte(imageURL, '?'); i != -1 {
		return imageURL[:i]
	}
	return imageURL
}
