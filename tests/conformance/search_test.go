package conformance_test

import (
	"net/http"
	"testing"
)

func searchData(t *testing.T, query string) map[string]any {
	t.Helper()
	resp := doRequest(t, http.MethodGet, "/api/search"+query, nil)
	mustStatus(t, resp, http.StatusOK)

	data, ok := dataOf(t, readEnvelope(t, resp)).(map[string]any)
	if !ok {
		t.Fatal("search data is not an object")
	}
	return data
}

func TestSearchDefaultState(t *testing.T) {
	resetServer(t)

	data := searchData(t, "")

	if data["page"] != float64(1) {
		t.Errorf("page = %v, want 1", data["page"])
	}
	if data["pageSize"] != float64(12) {
		t.Errorf("pageSize = %v, want 12", data["pageSize"])
	}
	if data["activeFilters"] != float64(0) {
		t.Errorf("activeFilters = %v, want 0", data["activeFilters"])
	}
	if data["totalResults"] == float64(0) {
		t.Error("default search returned no results")
	}
}

func TestSearchCategoryCounts(t *testing.T) {
	resetServer(t)

	total := 0.0
	for _, typ := range []string{"sale", "rent", "commercial"} {
		data := searchData(t, "?type="+typ)
		n, _ := data["totalResults"].(float64)
		if n == 0 {
			t.Errorf("type %s returned no results", typ)
		}
		total += n
	}

	// The three categories partition the collection.
	all := searchData(t, "") // baseline: sale only
	if saleOnly, _ := all["totalResults"].(float64); saleOnly >= total {
		t.Errorf("sale-only count %v should be less than category total %v", saleOnly, total)
	}
}

func TestSearchFilterNarrowsResults(t *testing.T) {
	resetServer(t)

	unfiltered := searchData(t, "")
	filtered := searchData(t, "?bedrooms=4")

	u, _ := unfiltered["totalResults"].(float64)
	f, _ := filtered["totalResults"].(float64)
	if f == 0 {
		t.Fatal("bedrooms=4 returned no results")
	}
	if f >= u {
		t.Errorf("filtered count %v should be below unfiltered %v", f, u)
	}
	if filtered["activeFilters"] != float64(1) {
		t.Errorf("activeFilters = %v, want 1", filtered["activeFilters"])
	}
}

func TestSearchPastEndPageIsEmpty(t *testing.T) {
	resetServer(t)

	data := searchData(t, "?page=99")
	results, ok := data["listings"].([]any)
	if !ok {
		t.Fatalf("listings is %T, want array", data["listings"])
	}
	if len(results) != 0 {
		t.Errorf("page 99 returned %d results, want 0", len(results))
	}
	if data["page"] != float64(99) {
		t.Errorf("page = %v, want echo of 99", data["page"])
	}
}

func TestSearchInvalidValuesFallBack(t *testing.T) {
	resetServer(t)

	data := searchData(t, "?type=castle&page=abc&sortBy=shiniest")

	if data["page"] != float64(1) {
		t.Errorf("page = %v, want fallback to 1", data["page"])
	}
	if data["totalResults"] == float64(0) {
		t.Error("fallback search should still return the sale collection")
	}
}
