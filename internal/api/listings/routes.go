package listings

import (
	"net/http"

	"github.com/gardianmky/listings/internal/store"
)

// RegisterRoutes adds all listing endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store, pageSize int) {
	h := &Handler{store: s, pageSize: pageSize}

	mux.HandleFunc("GET /api/listings", h.List)
	mux.HandleFunc("GET /api/listings/export", h.Export)
	mux.HandleFunc("GET /api/listings/{listingID}", h.Get)
	mux.HandleFunc("GET /api/search", h.Search)
}
