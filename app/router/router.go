package router

import (
	"net/http"

	"catalog-image-warmer/app/controller"
)

type Controllers struct {
	Image *controller.ImageController
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers the application routes on mux
func SetupRoutes(mux *http.ServeMux, controllers *Controllers) {
	mux.HandleFunc("/ping", pingHandler)

	// Sized variant URL for a catalog image
	mux.HandleFunc("/images/sized", controllers.Image.GetSizedImageURL)

	// Warm the image cache for the items below the fold
	mux.HandleFunc("/images/prefetch", controllers.Image.Prefetch)
}
