package models

import "image"

// FitMode controls how a fetched image is scaled into the target box
type FitMode int

const (
	// FitContain scales the image to fit entirely inside the box
	FitContain FitMode = iota
	// FitCrop scales the image to fill the box and crops the overflow around the center
	FitCrop
)

// FitModeFor maps the crop flag used by callers to a FitMode
func FitModeFor(crop bool) FitMode {
	if crop {
		return FitCrop
	}
	return FitContain
}

func (f FitMode) String() string {
	if f == FitCrop {
		return "crop"
	}
	return "contain"
}

// Dimension is a target display area in pixels
type Dimension struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Largest returns the larger of the two sides
func (d Dimension) Largest() int {
	if d.Width > d.Height {
		return d.Width
	}
	return d.Height
}

// SizeHint is either an explicit Dimension or a request to size from the target's layout
type SizeHint struct {
	Dimension
	FitToTarget bool
}

// FetchRequest asks the image loader to download and cache an image without displaying it
type FetchRequest struct {
	URL  string
	Size Dimension
	Fit  FitMode
}

// LoadRequest asks the image loader to load an image into a target
type LoadRequest struct {
	URL  string
	Size SizeHint
	Fit  FitMode
}

// ImageTarget is the destination of a LoadRequest (a view, a tile, a test recorder)
type ImageTarget interface {
	// LayoutSize returns the target's laid out size in pixels
	LayoutSize() (width, height int)
	SetImage(img image.Image)
}

// LoadCallback is called once a LoadRequest completes. err is nil on success.
type LoadCallback func(err error)
