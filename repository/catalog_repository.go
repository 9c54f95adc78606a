package repository

import (
	"context"
	"fmt"

	"catalog-image-warmer/db"
	"catalog-image-warmer/models"

	"github.com/sirupsen/logrus"
)

const (
	kindCollection = "collection"
	kindProduct    = "product"
)

// listCatalogItemsQuery returns published collections and products in display order.
// Products only carry their first image, which is all the catalog grid shows.
const listCatalogItemsQuery = `
	SELECT kind, id, title, image_id, image_src
	FROM (
		SELECT
			'collection' AS kind,
			c.id,
			c.title,
			0::bigint AS image_id,
			COALESCE(c.image_url, '') AS image_src,
			c.position
		FROM collections c
		WHERE c.published = true

		UNION ALL

		SELECT
			'product' AS kind,
			p.id,
			p.title,
			COALESCE(pi.id, 0) AS image_id,
			COALESCE(pi.src, '') AS image_src,
			p.position
		FROM products p
		LEFT JOIN LATERAL (
			SELECT id, src
			FROM product_images
			WHERE product_id = p.id
			ORDER BY position ASC
			LIMIT 1
		) pi ON true
		WHERE p.published = true
	) catalog
	ORDER BY position ASC, kind ASC, id ASC
`

// catalogRow is one row of listCatalogItemsQuery
type catalogRow struct {
	kind     string
	id       int64
	title    string
	imageID  int64
	imageSrc string
}

// toItem converts a row into its catalog variant
func (r catalogRow) toItem() (models.CatalogItem, error) {
	switch r.kind {
	case kindCollection:
		return models.Collection{ID: r.id, Title: r.title, ImageURL: r.imageSrc}, nil
	case kindProduct:
		p := models.Product{ID: r.id, Title: r.title}
		if r.imageSrc != "" {
			p.Images = []models.ProductImage{{ID: r.imageID, Src: r.imageSrc}}
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown catalog item kind %q", r.kind)
	}
}

// CatalogRepository reads the storefront catalog from PostgreSQL
type CatalogRepository struct{}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// ListCatalogItems retrieves all published collections and products in display order
func (r *CatalogRepository) ListCatalogItems(ctx context.Context) ([]models.CatalogItem, error) {
	rows, err := db.DB.QueryContext(ctx, listCatalogItemsQuery)
	if err != nil {
		logrus.Errorf("❌ Error querying catalog items: %v", err)
		return nil, fmt.Errorf("failed to query catalog items: %w", err)
	}
	defer rows.Close()

	var items []models.CatalogItem
	for rows.Next() {
		var row catalogRow
		if err := rows.Scan(&row.kind, &row.id, &row.title, &row.imageID, &row.imageSrc); err != nil {
			logrus.Errorf("❌ Error scanning catalog item: %v", err)
			continue
		}

		item, err := row.toItem()
		if err != nil {
			logrus.Warnf("⚠️  Skipping catalog row id=%d: %v", row.id, err)
			continue
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logrus.Errorf("❌ Error iterating catalog items: %v", err)
		return nil, fmt.Errorf("failed to iterate catalog items: %w", err)
	}

	logrus.Debugf("✓ Fetched %d catalog items", len(items))
	return items, nil
}
