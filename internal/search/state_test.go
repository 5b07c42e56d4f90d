package search_test

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/gardianmky/listings/internal/domain"
	"github.com/gardianmky/listings/internal/search"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
func boolPtr(b bool) *bool    { return &b }

func TestStateUpdateResetsPage(t *testing.T) {
	s := search.NewState()
	s.Update(search.Patch{Page: intPtr(3)})
	if s.Filters.Page != 3 {
		t.Fatalf("page = %d, want 3", s.Filters.Page)
	}

	// Any update not touching the page resets it to 1.
	s.Update(search.Patch{Bedrooms: strPtr("3")})
	if s.Filters.Page != 1 {
		t.Errorf("page after filter update = %d, want 1", s.Filters.Page)
	}
	if s.Filters.Bedrooms != "3" {
		t.Errorf("bedrooms = %q, want 3", s.Filters.Bedrooms)
	}
	if !s.Loading {
		t.Error("update should raise the loading flag")
	}
}

func TestStateUpdateLeavesUnsetFields(t *testing.T) {
	s := search.NewState()
	s.Update(search.Patch{Location: strPtr("Mackay"), MinPrice: strPtr("400000")})
	s.Update(search.Patch{Bedrooms: strPtr("3")})

	if s.Filters.Location != "Mackay" || s.Filters.MinPrice != "400000" {
		t.Errorf("unset patch fields were overwritten: %+v", s.Filters)
	}
}

func TestStateReset(t *testing.T) {
	s := search.NewState()
	s.Update(search.Patch{
		PropertyType: strPtr(domain.PropertyTypeRent),
		Bedrooms:     strPtr("3"),
		Furnished:    boolPtr(true),
		Page:         intPtr(4),
	})

	s.Reset()

	if s.Filters.PropertyType != domain.PropertyTypeRent {
		t.Errorf("reset changed property type to %q", s.Filters.PropertyType)
	}
	if s.Filters.Bedrooms != "" || s.Filters.Furnished {
		t.Errorf("reset left filters active: %+v", s.Filters)
	}
	if s.Filters.Page != 1 {
		t.Errorf("reset page = %d, want 1", s.Filters.Page)
	}
}

func TestClearFilterIdempotent(t *testing.T) {
	s := search.NewState()
	s.Update(search.Patch{Bedrooms: strPtr("3"), Page: intPtr(2)})

	s.ClearFilter("bedrooms")
	once := s.Filters

	s.ClearFilter("bedrooms")
	twice := s.Filters

	if once.Bedrooms != "" || once.Page != 1 {
		t.Errorf("after clear: bedrooms=%q page=%d, want empty and 1", once.Bedrooms, once.Page)
	}
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("clearing twice diverged: %+v vs %+v", once, twice)
	}
}

func TestClearFilterFeatures(t *testing.T) {
	s := search.NewState()
	feats := []string{"pool", "garage"}
	s.Update(search.Patch{Features: &feats})

	s.ClearFilter("features")
	if len(s.Filters.Features) != 0 {
		t.Errorf("features after clear = %v, want empty", s.Filters.Features)
	}
}

func TestStateFromQueryAndBack(t *testing.T) {
	q := url.Values{}
	q.Set("type", "rent")
	q.Set("bedrooms", "2")
	q.Set("furnished", "true")

	s := search.NewStateFromQuery(q)
	if s.Filters.PropertyType != domain.PropertyTypeRent || s.Filters.Bedrooms != "2" || !s.Filters.Furnished {
		t.Fatalf("parsed state = %+v", s.Filters)
	}

	out := s.Query()
	if out.Get("type") != "rent" || out.Get("bedrooms") != "2" || out.Get("furnished") != "true" {
		t.Errorf("serialized query = %v", out)
	}
	// Defaults stay out of the URL.
	if out.Get("page") != "" || out.Get("sortBy") != "" {
		t.Errorf("default fields leaked into query: %v", out)
	}
}

func TestActiveFilterCount(t *testing.T) {
	s := search.NewState()
	if got := s.ActiveFilterCount(); got != 0 {
		t.Fatalf("fresh state active count = %d, want 0", got)
	}

	s.Update(search.Patch{
		Location: strPtr("Mackay"),
		Bedrooms: strPtr("3"),
		SortBy:   strPtr(domain.SortPriceHigh),
	})
	if got := s.ActiveFilterCount(); got != 2 {
		t.Errorf("active count = %d, want 2 (sort never counts)", got)
	}
}

func TestDoneLowersLoading(t *testing.T) {
	s := search.NewState()
	s.Update(search.Patch{Keywords: strPtr("pool")})
	if !s.Loading {
		t.Fatal("loading should be raised")
	}
	s.Done()
	if s.Loading {
		t.Error("loading should be lowered after Done")
	}
}
