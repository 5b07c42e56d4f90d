package listings

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"strings"

	"github.com/gardianmky/listings/internal/api"
	"github.com/gardianmky/listings/internal/domain"
	"github.com/gardianmky/listings/internal/search"
)

// Export handles GET /api/listings/export. It applies the same filter and
// sort parameters as Search but streams the entire filtered collection as
// CSV, without pagination.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	f := domain.ParseFilters(r.URL.Query())

	all, err := h.store.Listings.All(r.Context())
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error(), corrID)
		return
	}

	rows := search.Sort(search.Filter(all, f), f.SortBy)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="listings.csv"`)
	w.WriteHeader(http.StatusOK)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{
		"listingID", "type", "heading", "price",
		"street", "suburb", "state", "postcode",
		"bedrooms", "bathrooms", "carSpaces", "landSize", "categories",
	})
	for i := range rows {
		l := &rows[i]
		_ = cw.Write([]string{
			l.ListingID,
			l.Type,
			l.Heading,
			l.Price,
			l.Address.Street,
			l.Address.Suburb,
			l.Address.State,
			l.Address.Postcode,
			strconv.Itoa(l.AttributeInt("bedrooms")),
			strconv.Itoa(l.AttributeInt("bathrooms")),
			strconv.Itoa(l.AttributeInt("carSpaces")),
			l.AttributeValue("landSize"),
			strings.Join(l.Categories, ";"),
		})
	}
	cw.Flush()
}
