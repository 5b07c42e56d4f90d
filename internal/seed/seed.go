// Package seed provides the mock listing data the site serves until a real
// upstream feed is configured. Seeding is idempotent: records are upserted
// by listing ID.
package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gardianmky/listings/internal/store"
)

// Seed upserts all mock listings into the database.
func Seed(ctx context.Context, db *sql.DB) error {
	listings := store.NewSQLiteListingStore(db)
	for _, l := range Listings() {
		if err := listings.Put(ctx, &l); err != nil {
			return fmt.Errorf("seed listing %s: %w", l.ListingID, err)
		}
	}
	return nil
}
