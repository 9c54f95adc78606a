package models

// CatalogItem is an entry of the storefront catalog that can carry a primary image.
// The set of variants is closed: only Collection and Product implement it.
type CatalogItem interface {
	catalogItem()
}

// Collection represents a group of products shown as a single tile
type Collection struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"imageUrl"` // Empty when the collection has no image
}

func (Collection) catalogItem() {}

// ProductImage represents one image attached to a product
type ProductImage struct {
	ID       int64  `json:"id"`
	Src      string `json:"src"`
	Position int    `json:"position"`
}

// Product represents a sellable product with its images in display order
type Product struct {
	ID     int64          `json:"id"`
	Title  string         `json:"title"`
	Images []ProductImage `json:"images"`
}

func (Product) catalogItem() {}

// FirstImageURL returns the source of the product's first image, or "" if it has none
func (p Product) FirstImageURL() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0].Src
}
