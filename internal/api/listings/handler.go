package listings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gardianmky/listings/internal/api"
	"github.com/gardianmky/listings/internal/domain"
	"github.com/gardianmky/listings/internal/search"
	"github.com/gardianmky/listings/internal/store"
)

// Handler handles listing HTTP requests.
type Handler struct {
	store    *store.Store
	pageSize int
}

// List handles GET /api/listings. Optional parameters: type (sale, rent,
// commercial), limit, offset.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	all, err := h.store.Listings.All(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error(), corrID)
		return
	}

	// An empty property type applies no category routing, so the bare
	// endpoint returns the whole collection.
	var f domain.Filters
	if t := r.URL.Query().Get("type"); t != "" {
		switch t {
		case domain.PropertyTypeSale, domain.PropertyTypeRent, domain.PropertyTypeCommercial:
			f.PropertyType = t
		}
	}
	results := search.Filter(all, f)

	offset := queryInt(r, "offset", 0)
	limit := queryInt(r, "limit", len(results))
	if offset > len(results) {
		offset = len(results)
	}
	results = results[offset:]
	if limit >= 0 && limit < len(results) {
		results = results[:limit]
	}

	api.WriteData(w, http.StatusOK, results)
}

// Get handles GET /api/listings/{listingID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("listingID")
	corrID := api.CorrelationID(r.Context())

	l, err := h.store.Listings.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			api.WriteError(w, http.StatusNotFound, "Listing not found", corrID)
			return
		}
		api.WriteError(w, http.StatusInternalServerError, err.Error(), corrID)
		return
	}

	api.WriteData(w, http.StatusOK, l)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fallback
	}
	return n
}
