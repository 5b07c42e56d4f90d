package search

import (
	"strings"

	"github.com/gardianmky/listings/internal/domain"
)

// Filter returns the subset of listings that satisfy every active filter in
// f. Each filter field with a non-default value contributes one independent
// predicate; a listing survives only if all of them pass. Predicate order
// does not affect the result set.
func Filter(listings []domain.Listing, f domain.Filters) []domain.Listing {
	filtered := make([]domain.Listing, 0, len(listings))
	for i := range listings {
		if matches(&listings[i], f) {
			filtered = append(filtered, listings[i])
		}
	}
	return filtered
}

func matches(l *domain.Listing, f domain.Filters) bool {
	if !matchesPropertyType(l, f.PropertyType) {
		return false
	}

	if f.Keywords != "" && !matchesKeywords(l, f.Keywords) {
		return false
	}

	if f.Location != "" && !matchesLocation(l, f.Location) {
		return false
	}

	if f.PropertyCategory != "" && !l.HasCategory(f.PropertyCategory) {
		return false
	}

	if f.Bedrooms != "" && l.AttributeInt("bedrooms") < domain.LeadingDigitValue(f.Bedrooms) {
		return false
	}
	if f.Bathrooms != "" && l.AttributeInt("bathrooms") < domain.LeadingDigitValue(f.Bathrooms) {
		return false
	}
	if f.CarSpaces != "" && l.AttributeInt("carSpaces") < domain.LeadingDigitValue(f.CarSpaces) {
		return false
	}

	if f.LandSize != "" {
		// A listing with no land-size attribute at all is excluded when
		// this filter is active.
		v, ok := l.Attribute("landSize")
		if !ok {
			return false
		}
		if domain.LeadingDigitValue(v) < domain.LeadingDigitValue(f.LandSize) {
			return false
		}
	}

	if f.MinPrice != "" || f.MaxPrice != "" {
		price := l.PriceValue()
		if f.MinPrice != "" && price < domain.DigitValue(f.MinPrice) {
			return false
		}
		if f.MaxPrice != "" && price > domain.DigitValue(f.MaxPrice) {
			return false
		}
	}

	if f.Status != "" && l.Status() != f.Status {
		return false
	}

	// Every requested feature must be present. Unrecognized feature ids
	// never match, so they exclude the listing rather than passing it.
	for _, feat := range f.Features {
		if !l.HasFeature(feat) {
			return false
		}
	}

	if f.PropertyType == domain.PropertyTypeCommercial && !matchesCommercial(l, f) {
		return false
	}

	if f.PropertyType == domain.PropertyTypeRent && !matchesRental(l, f) {
		return false
	}

	return true
}

// matchesPropertyType routes listings into the sale/rent/commercial
// categories. The feed has no explicit sale-vs-rent flag, so residential
// listings are routed by rental markers in the display price.
func matchesPropertyType(l *domain.Listing, propertyType string) bool {
	switch propertyType {
	case domain.PropertyTypeSale:
		return l.Type == domain.TypeResidential && !l.IsRental()
	case domain.PropertyTypeRent:
		return l.Type == domain.TypeResidential && l.IsRental()
	case domain.PropertyTypeCommercial:
		return l.IsCommercial()
	}
	return true
}

// matchesKeywords is a case-insensitive substring match across heading,
// address fields, display price, and category tags.
func matchesKeywords(l *domain.Listing, keywords string) bool {
	kw := strings.ToLower(keywords)
	if strings.Contains(strings.ToLower(l.Heading), kw) ||
		strings.Contains(strings.ToLower(l.Address.Street), kw) ||
		strings.Contains(strings.ToLower(l.Address.Suburb), kw) ||
		strings.Contains(strings.ToLower(l.Address.State), kw) ||
		strings.Contains(l.Address.Postcode, kw) ||
		strings.Contains(strings.ToLower(l.Price), kw) {
		return true
	}
	for _, c := range l.Categories {
		if strings.Contains(strings.ToLower(c), kw) {
			return true
		}
	}
	return false
}

func matchesLocation(l *domain.Listing, location string) bool {
	loc := strings.ToLower(location)
	return strings.Contains(strings.ToLower(l.Address.Suburb), loc) ||
		strings.Contains(strings.ToLower(l.Address.Street), loc) ||
		strings.Contains(strings.ToLower(l.Address.State), loc) ||
		strings.Contains(l.Address.Postcode, loc)
}

// matchesCommercial applies the commercial-only filters: minimum floor area
// and the sale-vs-lease method inferred from the display price.
func matchesCommercial(l *domain.Listing, f domain.Filters) bool {
	if f.FloorArea != "" {
		v, ok := l.Attribute("floorArea")
		if !ok {
			return false
		}
		if domain.LeadingDigitValue(v) < domain.LeadingDigitValue(f.FloorArea) {
			return false
		}
	}

	if f.CommercialType != "" {
		price := strings.ToLower(l.Price)
		switch f.CommercialType {
		case "Sale":
			if !strings.Contains(price, "sale") && strings.Contains(price, "lease") {
				return false
			}
		case "Lease":
			if !strings.Contains(price, "lease") {
				return false
			}
		}
	}

	return true
}

// matchesRental applies the rental-only flags. Furnished and pets-allowed
// are inferred from the heading or category tags.
func matchesRental(l *domain.Listing, f domain.Filters) bool {
	if f.Furnished && !l.HeadingOrCategoryContains("furnished") {
		return false
	}
	if f.PetsAllowed && !l.HeadingOrCategoryContains("pet") {
		return false
	}
	return true
}
