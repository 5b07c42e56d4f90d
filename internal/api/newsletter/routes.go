package newsletter

import (
	"net/http"

	"github.com/gardianmky/listings/internal/store"
)

// RegisterRoutes adds the newsletter endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, s *store.Store) {
	h := &Handler{store: s}

	mux.HandleFunc("POST /api/newsletter/subscribe", h.Subscribe)
}
