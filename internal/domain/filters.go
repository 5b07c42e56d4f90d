package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// Property type categories recognized in the "type" query parameter.
const (
	PropertyTypeSale       = "sale"
	PropertyTypeRent       = "rent"
	PropertyTypeCommercial = "commercial"
)

// Sort keys recognized in the "sortBy" query parameter. Unrecognized keys
// fall back to SortNewest.
const (
	SortNewest    = "newest"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortBedsHigh  = "beds_high"
	SortLandHigh  = "land_high"
)

// Filters holds the full search criteria: one optional field per filter,
// plus the sort key and the 1-based page number. The zero values in
// DefaultFilters mean "not active"; the URL query string is the durable
// representation across page loads.
type Filters struct {
	PropertyType     string   `json:"propertyType"`
	Location         string   `json:"location,omitempty"`
	MinPrice         string   `json:"minPrice,omitempty"`
	MaxPrice         string   `json:"maxPrice,omitempty"`
	Bedrooms         string   `json:"bedrooms,omitempty"`
	Bathrooms        string   `json:"bathrooms,omitempty"`
	CarSpaces        string   `json:"carSpaces,omitempty"`
	LandSize         string   `json:"landSize,omitempty"`
	Keywords         string   `json:"keywords,omitempty"`
	Features         []string `json:"features,omitempty"`
	PropertyCategory string   `json:"propertyCategory,omitempty"`
	SortBy           string   `json:"sortBy"`
	Page             int      `json:"page"`
	Status           string   `json:"status,omitempty"`
	RecentlyAdded    bool     `json:"recentlyAdded,omitempty"`
	OpenHouse        bool     `json:"openHouse,omitempty"`

	// Rental-specific flags, only meaningful when PropertyType is "rent".
	Furnished     bool   `json:"furnished,omitempty"`
	PetsAllowed   bool   `json:"petsAllowed,omitempty"`
	AvailableFrom string `json:"availableFrom,omitempty"`
	LeaseLength   string `json:"leaseLength,omitempty"`

	// Commercial-specific fields, only meaningful when PropertyType is
	// "commercial".
	CommercialType string `json:"commercialType,omitempty"`
	FloorArea      string `json:"floorArea,omitempty"`
}

// DefaultFilters returns the all-empty filter state: property type "sale",
// sort "newest", page 1.
func DefaultFilters() Filters {
	return Filters{
		PropertyType: PropertyTypeSale,
		SortBy:       SortNewest,
		Page:         1,
	}
}

// ParseFilters reads a URL query into a Filters value. Absent parameters
// keep their defaults, unrecognized property types fall back to "sale", and
// a non-numeric page falls back to 1.
func ParseFilters(q url.Values) Filters {
	f := DefaultFilters()

	if t := q.Get("type"); t != "" {
		switch t {
		case PropertyTypeSale, PropertyTypeRent, PropertyTypeCommercial:
			f.PropertyType = t
		}
	}

	f.Location = q.Get("location")
	f.MinPrice = q.Get("minPrice")
	f.MaxPrice = q.Get("maxPrice")
	f.Bedrooms = q.Get("bedrooms")
	f.Bathrooms = q.Get("bathrooms")
	f.CarSpaces = q.Get("carSpaces")
	f.LandSize = q.Get("landSize")
	f.Keywords = q.Get("keywords")
	f.PropertyCategory = q.Get("propertyCategory")
	f.Status = q.Get("status")
	f.AvailableFrom = q.Get("availableFrom")
	f.LeaseLength = q.Get("leaseLength")
	f.CommercialType = q.Get("commercialType")
	f.FloorArea = q.Get("floorArea")

	if v := q.Get("features"); v != "" {
		for _, feat := range strings.Split(v, ",") {
			if feat != "" {
				f.Features = append(f.Features, feat)
			}
		}
	}

	if v := q.Get("sortBy"); v != "" {
		f.SortBy = v
	}

	if v := q.Get("page"); v != "" {
		if page, err := strconv.Atoi(v); err == nil && page > 0 {
			f.Page = page
		}
	}

	f.RecentlyAdded = q.Get("recentlyAdded") == "true"
	f.OpenHouse = q.Get("openHouse") == "true"
	f.Furnished = q.Get("furnished") == "true"
	f.PetsAllowed = q.Get("petsAllowed") == "true"

	return f
}

// Values serializes the filter state to URL query parameters. Only
// non-default fields are emitted, so default fields round-trip by omission.
func (f Filters) Values() url.Values {
	q := url.Values{}

	if f.PropertyType != "" {
		q.Set("type", f.PropertyType)
	}
	setIf(q, "location", f.Location)
	setIf(q, "minPrice", f.MinPrice)
	setIf(q, "maxPrice", f.MaxPrice)
	setIf(q, "bedrooms", f.Bedrooms)
	setIf(q, "bathrooms", f.Bathrooms)
	setIf(q, "carSpaces", f.CarSpaces)
	setIf(q, "landSize", f.LandSize)
	setIf(q, "keywords", f.Keywords)
	if len(f.Features) > 0 {
		q.Set("features", strings.Join(f.Features, ","))
	}
	setIf(q, "propertyCategory", f.PropertyCategory)
	if f.SortBy != SortNewest {
		q.Set("sortBy", f.SortBy)
	}
	if f.Page != 1 {
		q.Set("page", strconv.Itoa(f.Page))
	}
	setIf(q, "status", f.Status)
	if f.RecentlyAdded {
		q.Set("recentlyAdded", "true")
	}
	if f.OpenHouse {
		q.Set("openHouse", "true")
	}
	if f.Furnished {
		q.Set("furnished", "true")
	}
	if f.PetsAllowed {
		q.Set("petsAllowed", "true")
	}
	setIf(q, "availableFrom", f.AvailableFrom)
	setIf(q, "leaseLength", f.LeaseLength)
	setIf(q, "commercialType", f.CommercialType)
	setIf(q, "floorArea", f.FloorArea)

	return q
}

// Encode returns the query-string form of Values, suitable for history
// replacement in a browsing client.
func (f Filters) Encode() string {
	return f.Values().Encode()
}

// ActiveCount returns the number of non-default filter fields, excluding
// the property type, page number, and sort order. Drives the UI badge.
func (f Filters) ActiveCount() int {
	count := 0
	for _, set := range []bool{
		f.Location != "",
		f.MinPrice != "",
		f.MaxPrice != "",
		f.Bedrooms != "",
		f.Bathrooms != "",
		f.CarSpaces != "",
		f.LandSize != "",
		f.Keywords != "",
		len(f.Features) > 0,
		f.PropertyCategory != "",
		f.Status != "",
		f.RecentlyAdded,
		f.OpenHouse,
		f.Furnished,
		f.PetsAllowed,
		f.AvailableFrom != "",
		f.LeaseLength != "",
		f.CommercialType != "",
		f.FloorArea != "",
	} {
		if set {
			count++
		}
	}
	return count
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
