package search

import (
	"net/url"

	"github.com/gardianmky/listings/internal/domain"
)

// State is the single source of truth for the current search criteria. It
// wraps a Filters value with the mutation rules the site relies on: partial
// updates reset pagination, resets preserve the property type, and every
// change is serializable back to the URL. State is not safe for concurrent
// use; it models a single browsing session.
type State struct {
	Filters domain.Filters

	// Loading is raised by every mutation and lowered by Done once the
	// caller has re-run the pipeline.
	Loading bool
}

// NewState returns a State holding the default filters.
func NewState() *State {
	return &State{Filters: domain.DefaultFilters()}
}

// NewStateFromQuery initializes a State from a URL query. This runs once
// per session; re-parsing after the state has started emitting URL updates
// would overwrite user input with stale parameters.
func NewStateFromQuery(q url.Values) *State {
	return &State{Filters: domain.ParseFilters(q)}
}

// Patch is a partial filter update. Nil fields are left unchanged. Unless
// Page is set explicitly, applying a patch resets the page number to 1.
type Patch struct {
	PropertyType     *string
	Location         *string
	MinPrice         *string
	MaxPrice         *string
	Bedrooms         *string
	Bathrooms        *string
	CarSpaces        *string
	LandSize         *string
	Keywords         *string
	Features         *[]string
	PropertyCategory *string
	SortBy           *string
	Page             *int
	Status           *string
	RecentlyAdded    *bool
	OpenHouse        *bool
	Furnished        *bool
	PetsAllowed      *bool
	AvailableFrom    *string
	LeaseLength      *string
	CommercialType   *string
	FloorArea        *string
}

// Update merges the patch into the current filters. Any update that does
// not explicitly set the page number resets it to 1.
func (s *State) Update(p Patch) {
	f := &s.Filters

	setString(&f.PropertyType, p.PropertyType)
	setString(&f.Location, p.Location)
	setString(&f.MinPrice, p.MinPrice)
	setString(&f.MaxPrice, p.MaxPrice)
	setString(&f.Bedrooms, p.Bedrooms)
	setString(&f.Bathrooms, p.Bathrooms)
	setString(&f.CarSpaces, p.CarSpaces)
	setString(&f.LandSize, p.LandSize)
	setString(&f.Keywords, p.Keywords)
	if p.Features != nil {
		f.Features = append([]string(nil), (*p.Features)...)
	}
	setString(&f.PropertyCategory, p.PropertyCategory)
	setString(&f.SortBy, p.SortBy)
	setString(&f.Status, p.Status)
	setBool(&f.RecentlyAdded, p.RecentlyAdded)
	setBool(&f.OpenHouse, p.OpenHouse)
	setBool(&f.Furnished, p.Furnished)
	setBool(&f.PetsAllowed, p.PetsAllowed)
	setString(&f.AvailableFrom, p.AvailableFrom)
	setString(&f.LeaseLength, p.LeaseLength)
	setString(&f.CommercialType, p.CommercialType)
	setString(&f.FloorArea, p.FloorArea)

	if p.Page != nil {
		f.Page = *p.Page
	} else {
		f.Page = 1
	}

	s.Loading = true
}

// Reset restores every field to its default except the property type.
func (s *State) Reset() {
	propertyType := s.Filters.PropertyType
	s.Filters = domain.DefaultFilters()
	s.Filters.PropertyType = propertyType
	s.Loading = true
}

// ClearFilter restores exactly one field, named by its query parameter, to
// its type-appropriate empty value and resets the page to 1. Clearing an
// already-clear field is a no-op beyond the page reset, so the operation is
// idempotent.
func (s *State) ClearFilter(name string) {
	f := &s.Filters

	switch name {
	case "propertyType", "type":
		f.PropertyType = domain.PropertyTypeSale
	case "location":
		f.Location = ""
	case "minPrice":
		f.MinPrice = ""
	case "maxPrice":
		f.MaxPrice = ""
	case "bedrooms":
		f.Bedrooms = ""
	case "bathrooms":
		f.Bathrooms = ""
	case "carSpaces":
		f.CarSpaces = ""
	case "landSize":
		f.LandSize = ""
	case "keywords":
		f.Keywords = ""
	case "features":
		f.Features = nil
	case "propertyCategory":
		f.PropertyCategory = ""
	case "sortBy":
		f.SortBy = domain.SortNewest
	case "status":
		f.Status = ""
	case "recentlyAdded":
		f.RecentlyAdded = false
	case "openHouse":
		f.OpenHouse = false
	case "furnished":
		f.Furnished = false
	case "petsAllowed":
		f.PetsAllowed = false
	case "availableFrom":
		f.AvailableFrom = ""
	case "leaseLength":
		f.LeaseLength = ""
	case "commercialType":
		f.CommercialType = ""
	case "floorArea":
		f.FloorArea = ""
	}

	f.Page = 1
	s.Loading = true
}

// Done lowers the loading flag after results have been recomputed.
func (s *State) Done() {
	s.Loading = false
}

// ActiveFilterCount returns the number of active (non-default) filters,
// excluding property type, page, and sort order.
func (s *State) ActiveFilterCount() int {
	return s.Filters.ActiveCount()
}

// Query serializes the current filters to URL query parameters. Only
// non-default fields appear.
func (s *State) Query() url.Values {
	return s.Filters.Values()
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst, src *bool) {
	if src != nil {
		*dst = *src
	}
}
