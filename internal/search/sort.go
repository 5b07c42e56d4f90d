package search

import (
	"sort"

	"github.com/gardianmky/listings/internal/domain"
)

// Sort returns listings ordered by the given sort key. The input slice is
// not modified. Unrecognized keys fall back to "newest", which orders by
// descending numeric listing ID (the feed's proxy for date listed). Ties
// keep their incoming order.
func Sort(listings []domain.Listing, key string) []domain.Listing {
	sorted := make([]domain.Listing, len(listings))
	copy(sorted, listings)

	switch key {
	case domain.SortPriceLow:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PriceValue() < sorted[j].PriceValue()
		})
	case domain.SortPriceHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].PriceValue() > sorted[j].PriceValue()
		})
	case domain.SortBedsHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].AttributeInt("bedrooms") > sorted[j].AttributeInt("bedrooms")
		})
	case domain.SortLandHigh:
		sort.SliceStable(sorted, func(i, j int) bool {
			return landSize(&sorted[i]) > landSize(&sorted[j])
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return domain.LeadingDigitValue(sorted[i].ListingID) > domain.LeadingDigitValue(sorted[j].ListingID)
		})
	}

	return sorted
}

func landSize(l *domain.Listing) int {
	v, ok := l.Attribute("landSize")
	if !ok {
		return 0
	}
	return domain.LeadingDigitValue(v)
}
