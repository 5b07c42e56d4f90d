package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gardianmky/listings/internal/domain"
)

// ListingStore defines persistence for the listing collection.
type ListingStore interface {
	Put(ctx context.Context, l *domain.Listing) error
	Get(ctx context.Context, id string) (*domain.Listing, error)
	All(ctx context.Context) ([]domain.Listing, error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// SQLiteListingStore implements ListingStore backed by SQLite.
type SQLiteListingStore struct {
	db *sql.DB
}

// NewSQLiteListingStore creates a new SQLiteListingStore.
func NewSQLiteListingStore(db *sql.DB) *SQLiteListingStore {
	return &SQLiteListingStore{db: db}
}

// Put upserts a full listing record, replacing its categories, attributes,
// images, and agents. The listing ID must be non-empty.
func (s *SQLiteListingStore) Put(ctx context.Context, l *domain.Listing) error {
	if l.ListingID == "" {
		return fmt.Errorf("put listing: empty listing id")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin put listing: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO listings (id, agency_id, listing_type, heading, price, street, suburb, state, postcode, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			agency_id = excluded.agency_id,
			listing_type = excluded.listing_type,
			heading = excluded.heading,
			price = excluded.price,
			street = excluded.street,
			suburb = excluded.suburb,
			state = excluded.state,
			postcode = excluded.postcode,
			updated_at = excluded.updated_at`,
		l.ListingID, l.AgencyID, l.Type, l.Heading, l.Price,
		l.Address.Street, l.Address.Suburb, l.Address.State, l.Address.Postcode,
		now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert listing %s: %w", l.ListingID, err)
	}

	// Child rows are replaced wholesale; the upstream record is the source
	// of truth for all of them.
	for _, table := range []string{"listing_categories", "listing_attributes", "listing_images", "listing_agents"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE listing_id = ?", l.ListingID); err != nil {
			return fmt.Errorf("clear %s for %s: %w", table, l.ListingID, err)
		}
	}

	for _, c := range l.Categories {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO listing_categories (listing_id, category) VALUES (?, ?)`,
			l.ListingID, c,
		); err != nil {
			return fmt.Errorf("insert category: %w", err)
		}
	}

	for i, a := range l.Attributes {
		if _, err := tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO listing_attributes (listing_id, attr_key, label, value, display_order) VALUES (?, ?, ?, ?, ?)`,
			l.ListingID, a.Key, a.Label, a.Value, i,
		); err != nil {
			return fmt.Errorf("insert attribute %s: %w", a.Key, err)
		}
	}

	for i, img := range l.Images {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO listing_images (listing_id, display_order, url, image_type) VALUES (?, ?, ?, ?)`,
			l.ListingID, i, img.URL, img.Type,
		); err != nil {
			return fmt.Errorf("insert image: %w", err)
		}
	}

	for i, a := range l.Agents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO listing_agents (listing_id, display_order, agent_id, name, title, phone, mobile, image_url)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			l.ListingID, i, a.AgentID, a.Name, a.Title, a.Phone, a.Mobile, a.ImageURL,
		); err != nil {
			return fmt.Errorf("insert agent: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit put listing: %w", err)
	}
	return nil
}

// Get fetches a single listing with all child records. Returns ErrNotFound
// when the ID does not exist.
func (s *SQLiteListingStore) Get(ctx context.Context, id string) (*domain.Listing, error) {
	var l domain.Listing
	err := s.db.QueryRowContext(ctx,
		`SELECT id, agency_id, listing_type, heading, price, street, suburb, state, postcode
		 FROM listings WHERE id = ?`, id,
	).Scan(&l.ListingID, &l.AgencyID, &l.Type, &l.Heading, &l.Price,
		&l.Address.Street, &l.Address.Suburb, &l.Address.State, &l.Address.Postcode)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get listing %s: %w", id, err)
	}

	if err := s.loadChildren(ctx, map[string]*domain.Listing{l.ListingID: &l}); err != nil {
		return nil, err
	}
	return &l, nil
}

// All returns the full listing collection, ordered by ID, with all child
// records attached. The search pipeline operates on this in memory.
func (s *SQLiteListingStore) All(ctx context.Context) ([]domain.Listing, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, agency_id, listing_type, heading, price, street, suburb, state, postcode
		 FROM listings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(&l.ListingID, &l.AgencyID, &l.Type, &l.Heading, &l.Price,
			&l.Address.Street, &l.Address.Suburb, &l.Address.State, &l.Address.Postcode); err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing rows: %w", err)
	}

	byID := make(map[string]*domain.Listing, len(listings))
	for i := range listings {
		byID[listings[i].ListingID] = &listings[i]
	}
	if err := s.loadChildren(ctx, byID); err != nil {
		return nil, err
	}
	return listings, nil
}

// Count returns the number of listings.
func (s *SQLiteListingStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count listings: %w", err)
	}
	return n, nil
}

// DeleteAll removes every listing; child rows cascade.
func (s *SQLiteListingStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM listings`); err != nil {
		return fmt.Errorf("delete listings: %w", err)
	}
	return nil
}

// loadChildren attaches categories, attributes, images, and agents to the
// given listings in one pass per table.
func (s *SQLiteListingStore) loadChildren(ctx context.Context, byID map[string]*domain.Listing) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT listing_id, category FROM listing_categories ORDER BY listing_id, category`)
	if err != nil {
		return fmt.Errorf("load categories: %w", err)
	}
	for rows.Next() {
		var id, category string
		if err := rows.Scan(&id, &category); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan category: %w", err)
		}
		if l, ok := byID[id]; ok {
			l.Categories = append(l.Categories, category)
		}
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("category rows: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT listing_id, attr_key, label, value FROM listing_attributes ORDER BY listing_id, display_order`)
	if err != nil {
		return fmt.Errorf("load attributes: %w", err)
	}
	for rows.Next() {
		var id string
		var a domain.Attribute
		if err := rows.Scan(&id, &a.Key, &a.Label, &a.Value); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan attribute: %w", err)
		}
		if l, ok := byID[id]; ok {
			l.Attributes = append(l.Attributes, a)
		}
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("attribute rows: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT listing_id, url, image_type FROM listing_images ORDER BY listing_id, display_order`)
	if err != nil {
		return fmt.Errorf("load images: %w", err)
	}
	for rows.Next() {
		var id string
		var img domain.Image
		if err := rows.Scan(&id, &img.URL, &img.Type); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan image: %w", err)
		}
		if l, ok := byID[id]; ok {
			l.Images = append(l.Images, img)
		}
	}
	_ = rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("image rows: %w", err)
	}

	rows, err = s.db.QueryContext(ctx,
		`SELECT listing_id, agent_id, name, title, phone, mobile, image_url
		 FROM listing_agents ORDER BY listing_id, display_order`)
	if err != nil {
		return fmt.Errorf("load agents: %w", err)
	}
	for rows.Next() {
		var id string
		var a domain.Agent
		if err := rows.Scan(&id, &a.AgentID, &a.Name, &a.Title, &a.Phone, &a.Mobile, &a.ImageURL); err != nil {
			_ = rows.Close()
			return fmt.Errorf("scan agent: %w", err)
		}
		if l, ok := byID[id]; ok {
			l.Agents = append(l.Agents, a)
		}
	}
	_ = rows.Close()
	return rows.Err()
}
