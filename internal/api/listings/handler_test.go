package listings_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gardianmky/listings/internal/api/listings"
	"github.com/gardianmky/listings/internal/database"
	"github.com/gardianmky/listings/internal/domain"
	"github.com/gardianmky/listings/internal/seed"
	"github.com/gardianmky/listings/internal/store"
	"github.com/gardianmky/listings/internal/testhelpers"
)

func setupMux(t *testing.T) *http.ServeMux {
	t.Helper()
	db := testhelpers.NewTestDB(t)
	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := seed.Seed(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	mux := http.NewServeMux()
	listings.RegisterRoutes(mux, store.New(db), 12)
	return mux
}

func get(t *testing.T, mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	var env struct {
		Data    json.RawMessage `json:"data"`
		Status  int             `json:"status"`
		Success bool            `json:"success"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if !env.Success {
		t.Fatalf("envelope reports failure: %s", rec.Body.String())
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
}

func TestListAll(t *testing.T) {
	mux := setupMux(t)

	rec := get(t, mux, "/api/listings")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []domain.Listing
	decodeData(t, rec, &got)
	if len(got) != len(seed.Listings()) {
		t.Errorf("listed %d listings, want %d", len(got), len(seed.Listings()))
	}
}

func TestListByType(t *testing.T) {
	mux := setupMux(t)

	var rentals []domain.Listing
	decodeData(t, get(t, mux, "/api/listings?type=rent"), &rentals)
	if len(rentals) == 0 {
		t.Fatal("no rentals returned")
	}
	for _, l := range rentals {
		if !l.IsRental() {
			t.Errorf("listing %s in rent results is not a rental (price %q)", l.ListingID, l.Price)
		}
	}

	var commercial []domain.Listing
	decodeData(t, get(t, mux, "/api/listings?type=commercial"), &commercial)
	for _, l := range commercial {
		if !l.IsCommercial() {
			t.Errorf("listing %s in commercial results is not commercial", l.ListingID)
		}
	}
}

func TestListLimitOffset(t *testing.T) {
	mux := setupMux(t)

	var firstTwo []domain.Listing
	decodeData(t, get(t, mux, "/api/listings?limit=2"), &firstTwo)
	if len(firstTwo) != 2 {
		t.Fatalf("limit=2 returned %d listings", len(firstTwo))
	}

	var next []domain.Listing
	decodeData(t, get(t, mux, "/api/listings?limit=2&offset=2"), &next)
	if len(next) != 2 {
		t.Fatalf("offset page returned %d listings", len(next))
	}
	if next[0].ListingID == firstTwo[0].ListingID {
		t.Error("offset did not advance past the first page")
	}
}

func TestGetListing(t *testing.T) {
	mux := setupMux(t)

	rec := get(t, mux, "/api/listings/101")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got domain.Listing
	decodeData(t, rec, &got)
	if got.ListingID != "101" {
		t.Errorf("listingID = %q, want 101", got.ListingID)
	}
	if len(got.Attributes) == 0 || len(got.Images) == 0 {
		t.Errorf("listing detail missing children: %+v", got)
	}
}

func TestGetListingNotFound(t *testing.T) {
	mux := setupMux(t)

	rec := get(t, mux, "/api/listings/999999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}

	var env struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if env.Success {
		t.Error("success should be false on 404")
	}
	if env.Message == "" {
		t.Error("404 envelope should carry a message")
	}
}

func TestSearchDefaults(t *testing.T) {
	mux := setupMux(t)

	rec := get(t, mux, "/api/search")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res listings.SearchResponse
	decodeData(t, rec, &res)

	if res.Page != 1 || res.PageSize != 12 {
		t.Errorf("page/pageSize = %d/%d, want 1/12", res.Page, res.PageSize)
	}
	if res.ActiveFilters != 0 {
		t.Errorf("activeFilters = %d, want 0", res.ActiveFilters)
	}
	// Default type is sale, so rentals and commercial stock are excluded.
	for _, l := range res.Listings {
		if l.IsRental() || l.IsCommercial() {
			t.Errorf("default search returned non-sale listing %s", l.ListingID)
		}
	}
}

func TestSearchFiltersAndSorts(t *testing.T) {
	mux := setupMux(t)

	rec := get(t, mux, "/api/search?bedrooms=4&sortBy=price_high")
	var res listings.SearchResponse
	decodeData(t, rec, &res)

	if res.TotalResults == 0 {
		t.Fatal("expected results for bedrooms=4")
	}
	if res.ActiveFilters != 1 {
		t.Errorf("activeFilters = %d, want 1", res.ActiveFilters)
	}

	prev := int(^uint(0) >> 1)
	for _, l := range res.Listings {
		if l.AttributeInt("bedrooms") < 4 {
			t.Errorf("listing %s has %d bedrooms, want >= 4", l.ListingID, l.AttributeInt("bedrooms"))
		}
		if p := l.PriceValue(); p > prev {
			t.Errorf("price order violated at listing %s", l.ListingID)
		} else {
			prev = p
		}
	}
}

func TestSearchEchoesQuery(t *testing.T) {
	mux := setupMux(t)

	rec := get(t, mux, "/api/search?type=rent&petsAllowed=true")
	var res listings.SearchResponse
	decodeData(t, rec, &res)

	if !strings.Contains(res.Query, "type=rent") || !strings.Contains(res.Query, "petsAllowed=true") {
		t.Errorf("query echo = %q, want type and petsAllowed present", res.Query)
	}
}

func TestExportCSV(t *testing.T) {
	mux := setupMux(t)

	rec := get(t, mux, "/api/listings/export?type=sale")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", got)
	}

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	if len(lines) < 2 {
		t.Fatalf("export has %d lines, want header plus rows", len(lines))
	}
	if !strings.HasPrefix(lines[0], "listingID,") {
		t.Errorf("header row = %q", lines[0])
	}
}
