package repository

import (
	"testing"

	"catalog-image-warmer/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogRow_ToItem(t *testing.T) {
	tests := []struct {
		name string
		row  catalogRow
		want models.CatalogItem
	}{
		{
			name: "collection",
			row:  catalogRow{kind: kindCollection, id: 7, title: "Summer", imageSrc: "https://cdn.example.com/c/summer.jpg"},
			want: models.Collection{ID: 7, Title: "Summer", ImageURL: "https://cdn.example.com/c/summer.jpg"},
		},
		{
			name: "collection without image",
			row:  catalogRow{kind: kindCollection, id: 8, title: "Empty"},
			want: models.Collection{ID: 8, Title: "Empty"},
		},
		{
			name: "product",
			row:  catalogRow{kind: kindProduct, id: 3, title: "Hoodie", imageID: 30, imageSrc: "https://cdn.example.com/p/hoodie.png"},
			want: models.Product{ID: 3, Title: "Hoodie", Images: []models.ProductImage{{ID: 30, Src: "https://cdn.example.com/p/hoodie.png"}}},
		},
		{
			name: "product without images",
			row:  catalogRow{kind: kindProduct, id: 4, title: "Bare"},
			want: models.Product{ID: 4, Title: "Bare"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.row.toItem()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalogRow_ToItemUnknownKind(t *testing.T) {
	_, err := catalogRow{kind: "bundle", id: 1}.toItem()
	assert.Error(t, err)
}
