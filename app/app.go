package app

import (
	"context"
	"fmt"
	"net/http"

	"catalog-image-warmer/app/controller"
	"catalog-image-warmer/app/router"
	"catalog-image-warmer/config"
	"catalog-image-warmer/db"
	"catalog-image-warmer/repository"
	"catalog-image-warmer/service"

	"github.com/sirupsen/logrus"
)

// App holds the initialized application
type App struct {
	Handler http.Handler
	loader  *service.ImageLoader
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	catalog, err := newCatalog(ctx, cfg)
	if err != nil {
		return nil, err
	}

	cache, err := service.NewImageCache(cfg.Prefetch.CacheDir)
	if err != nil {
		return nil, err
	}

	loader := service.NewImageLoader(service.ImageLoaderOptions{
		Workers:   cfg.Prefetch.Workers,
		QueueSize: cfg.Prefetch.QueueSize,
		Client:    &http.Client{Timeout: cfg.Prefetch.Timeout()},
		Cache:     cache,
	})

	controllers := &router.Controllers{
		Image: controller.NewImageController(catalog, loader),
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)

	return &App{Handler: mux, loader: loader}, nil
}

// newCatalog picks the catalog source named in the configuration
func newCatalog(ctx context.Context, cfg *config.Config) (repository.CatalogRepositoryInterface, error) {
	switch cfg.Catalog.Source {
	case config.SourceDrive:
		logrus.Infof("📁 Using Google Drive folder %s as catalog", cfg.Catalog.DriveFolderID)
		return service.NewDriveService(ctx, cfg.Catalog.CredentialsPath, cfg.Catalog.DriveFolderID)
	case config.SourcePostgres:
		if err := db.InitDB(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repository.NewCatalogRepository(), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// Close releases the loader and the database connection
func (a *App) Close() {
	a.loader.Close()
	if err := db.CloseDB(); err != nil {
		logrus.Warnf("⚠️  Failed to close database: %v", err)
	}
}
