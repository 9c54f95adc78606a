package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"catalog-image-warmer/models"
	"catalog-image-warmer/repository"
	"catalog-image-warmer/service"
	"catalog-image-warmer/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const catalogTimeout = 30 * time.Second

// ImageController handles HTTP requests for sized image URLs and cache warming
type ImageController struct {
	repository repository.CatalogRepositoryInterface
	loader     service.ImageLoaderInterface
}

// NewImageController creates a new ImageController
func NewImageController(repo repository.CatalogRepositoryInterface, loader service.ImageLoaderInterface) *ImageController {
	return &ImageController{
		repository: repo,
		loader:     loader,
	}
}

// GetSizedImageURL handles GET /images/sized?src=...&width=...&height=...
func (c *ImageController) GetSizedImageURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	src := strings.TrimSpace(query.Get("src"))
	if src == "" {
		http.Error(w, "src parameter is required", http.StatusBadRequest)
		return
	}

	width, err := parseDimension(query.Get("width"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid width: %v", err), http.StatusBadRequest)
		return
	}
	height, err := parseDimension(query.Get("height"))
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid height: %v", err), http.StatusBadRequest)
		return
	}

	sizedURL, ok := utils.SizedImageURL(src, width, height)
	if !ok {
		logrus.Warnf("⚠️  GetSizedImageURL: could not size %q", src)
		http.Error(w, "src is not a valid URL", http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, models.SizedImageResponse{
		URL:    sizedURL,
		Suffix: utils.ImageSuffixForDimensions(width, height),
	})
}

// Prefetch handles POST /images/prefetch
// Loads the catalog and dispatches cache-warming fetches for the requested window
func (c *ImageController) Prefetch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.PrefetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logrus.Errorf("❌ Prefetch: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if req.Width <= 0 || req.Height <= 0 {
		http.Error(w, "width and height must be greater than 0", http.StatusBadRequest)
		return
	}
	if !req.All && req.Count <= 0 {
		http.Error(w, "count must be greater than 0", http.StatusBadRequest)
		return
	}

	batchID := uuid.NewString()
	log := logrus.WithField("batch", batchID)

	ctx, cancel := context.WithTimeout(r.Context(), catalogTimeout)
	defer cancel()

	items, err := c.repository.ListCatalogItems(ctx)
	if err != nil {
		log.Errorf("❌ Prefetch: Error fetching catalog: %v", err)
		http.Error(w, fmt.Sprintf("Failed to fetch catalog: %v", err), http.StatusInternalServerError)
		return
	}

	var start, end int
	if req.All {
		start, end = 0, len(items)
		service.PreloadAllImages(c.loader, items, req.Width, req.Height, req.Crop)
	} else {
		start, end = utils.PrefetchWindow(len(items), req.LastVisibleIndex, req.Count)
		service.PreloadImages(c.loader, items, req.LastVisibleIndex, req.Count, req.Width, req.Height, req.Crop)
	}

	log.Infof("🔥 Prefetch: window [%d, %d) of %d items, %dx%d %s",
		start, end, len(items), req.Width, req.Height, models.FitModeFor(req.Crop))

	writeJSON(w, http.StatusAccepted, models.PrefetchResponse{
		BatchID:     batchID,
		WindowStart: start,
		WindowEnd:   end,
		Items:       len(items),
	})
}

func parseDimension(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("value is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("❌ Failed to encode response: %v", err)
	}
}
