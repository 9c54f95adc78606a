package service

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"

	"catalog-image-warmer/models"
	"catalog-image-warmer/repository"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

var driveImageMimeTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/jpg":  true,
	"image/gif":  true,
	"image/webp": true,
}

// DriveService serves a Google Drive folder of images as a catalog: every image file
// becomes a product with a single image.
// Implements repository.CatalogRepositoryInterface
type DriveService struct {
	client   *drive.Service
	folderID string
}

// Ensure DriveService implements CatalogRepositoryInterface
var _ repository.CatalogRepositoryInterface = (*DriveService)(nil)

// NewDriveService creates a new DriveService instance
// credentialsPath should be the path to the Service Account JSON file
func NewDriveService(ctx context.Context, credentialsPath, folderID string) (*DriveService, error) {
	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{
		client:   driveService,
		folderID: folderID,
	}, nil
}

// ListCatalogItems lists the image files of the folder, ordered by name
func (ds *DriveService) ListCatalogItems(ctx context.Context) ([]models.CatalogItem, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", ds.folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Context(ctx).
			Q(query).
			OrderBy("name").
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("failed to list files: %w", err)
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	items := make([]models.CatalogItem, 0, len(allFiles))
	for _, file := range allFiles {
		product, ok := productFromDriveFile(file)
		if !ok {
			continue
		}
		items = append(items, product)
	}

	logrus.Infof("📦 Found %d images in Drive folder %s", len(items), ds.folderID)
	return items, nil
}

// productFromDriveFile maps an image file to a product; other files are rejected.
// The file id is kept in the URL path so it survives query stripping.
func productFromDriveFile(file *drive.File) (models.Product, bool) {
	if file == nil || !driveImageMimeTypes[strings.ToLower(file.MimeType)] {
		return models.Product{}, false
	}

	return models.Product{
		Title: strings.TrimSuffix(file.Name, path.Ext(file.Name)),
		Images: []models.ProductImage{{
			Src: driveImageURL(file.Id),
		}},
	}, true
}

func driveImageURL(fileID string) string {
	return "https://lh3.googleusercontent.com/d/" + url.PathEscape(fileID)
}
