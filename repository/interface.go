package repository

import (
	"context"

	"catalog-image-warmer/models"
)

// CatalogRepositoryInterface defines the contract for reading the ordered catalog
type CatalogRepositoryInterface interface {
	ListCatalogItems(ctx context.Context) ([]models.CatalogItem, error)
}
