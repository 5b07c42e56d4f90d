package search

import "github.com/gardianmky/listings/internal/domain"

// DefaultPageSize is the canonical results-per-page count. The page size is
// configurable so category pages and the general search share one value.
const DefaultPageSize = 12

// Paginate returns the given 1-based page of listings. A page past the end
// of the collection yields an empty slice rather than clamping to the last
// page; callers that want clamping can compare against TotalPages first.
func Paginate(listings []domain.Listing, page, pageSize int) []domain.Listing {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(listings) {
		return []domain.Listing{}
	}

	end := start + pageSize
	if end > len(listings) {
		end = len(listings)
	}
	return listings[start:end]
}

// TotalPages returns ceil(total / pageSize) with a floor of one page.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
