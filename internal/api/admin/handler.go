package admin

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"

	"github.com/gardianmky/listings/internal/api"
	"github.com/gardianmky/listings/internal/seed"
)

// Handler serves the admin API at /_gardian/.
type Handler struct {
	db *sql.DB
}

// dataTableNames lists all data tables in foreign-key-safe deletion order.
var dataTableNames = []string{
	"listing_agents",
	"listing_images",
	"listing_attributes",
	"listing_categories",
	"listings",
	"subscribers",
}

// Reset drops all data from all tables and re-runs seeds.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := ResetData(r.Context(), h.db); err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error(), api.CorrelationID(r.Context()))
		return
	}
	api.WriteData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// SeedData runs seed data without dropping existing data first.
func (h *Handler) SeedData(w http.ResponseWriter, r *http.Request) {
	if err := seed.Seed(r.Context(), h.db); err != nil {
		api.WriteError(w, http.StatusInternalServerError,
			fmt.Sprintf("failed to seed: %s", err), api.CorrelationID(r.Context()))
		return
	}
	api.WriteData(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ResetData clears all data tables and re-seeds. Exported for reuse by
// tests or other callers.
func ResetData(ctx context.Context, db *sql.DB) error {
	for _, table := range dataTableNames {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", table)); err != nil { //nolint:gosec // table names are hardcoded constants
			return fmt.Errorf("clear table %s: %w", table, err)
		}
	}
	return seed.Seed(ctx, db)
}
