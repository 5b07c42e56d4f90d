package listings

import (
	"net/http"

	"github.com/gardianmky/listings/internal/api"
	"github.com/gardianmky/listings/internal/domain"
	"github.com/gardianmky/listings/internal/search"
)

// SearchResponse is the data payload for a search request: one page of
// results plus the counts the result UI derives its controls from.
type SearchResponse struct {
	Listings      []domain.Listing `json:"listings"`
	TotalResults  int              `json:"totalResults"`
	TotalPages    int              `json:"totalPages"`
	Page          int              `json:"page"`
	PageSize      int              `json:"pageSize"`
	ActiveFilters int              `json:"activeFilters"`
	Query         string           `json:"query,omitempty"`
}

// Search handles GET /api/search. The full filter state is carried in the
// query string; absent parameters imply defaults and unrecognized values
// fall back rather than erroring.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	f := domain.ParseFilters(r.URL.Query())

	all, err := h.store.Listings.All(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error(), corrID)
		return
	}

	result := search.Run(all, f, h.pageSize)

	api.WriteData(w, http.StatusOK, SearchResponse{
		Listings:      result.Listings,
		TotalResults:  result.Total,
		TotalPages:    result.TotalPages,
		Page:          result.Page,
		PageSize:      result.PageSize,
		ActiveFilters: f.ActiveCount(),
		Query:         f.Encode(),
	})
}
