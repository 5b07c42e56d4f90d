// Package search implements the listing search pipeline: a pure, synchronous
// transformation that applies the active filters to an in-memory listing
// collection, sorts the survivors, and slices out one page of results.
package search

import "github.com/gardianmky/listings/internal/domain"

// Result is one page of search results plus collection-level counts.
type Result struct {
	Listings   []domain.Listing `json:"listings"`
	Total      int              `json:"totalResults"`
	TotalPages int              `json:"totalPages"`
	Page       int              `json:"page"`
	PageSize   int              `json:"pageSize"`
}

// Run executes the full pipeline (filter, sort, paginate) over the given
// collection. It never mutates its input and never fails: malformed filter
// values degrade to defaults inside the predicates.
func Run(listings []domain.Listing, f domain.Filters, pageSize int) Result {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := Filter(listings, f)
	sorted := Sort(filtered, f.SortBy)
	page := Paginate(sorted, f.Page, pageSize)

	return Result{
		Listings:   page,
		Total:      len(filtered),
		TotalPages: TotalPages(len(filtered), pageSize),
		Page:       f.Page,
		PageSize:   pageSize,
	}
}
