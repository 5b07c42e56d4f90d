package store

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// Store holds all sub-stores used by the application.
type Store struct {
	DB          *sql.DB
	Listings    ListingStore
	Subscribers SubscriberStore
}

// New creates a Store with all sub-stores initialized.
func New(db *sql.DB) *Store {
	return &Store{
		DB:          db,
		Listings:    NewSQLiteListingStore(db),
		Subscribers: NewSQLiteSubscriberStore(db),
	}
}
