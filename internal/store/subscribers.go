package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// SubscriberStore defines persistence for newsletter subscriptions.
type SubscriberStore interface {
	// Subscribe records an email address. It is idempotent: subscribing an
	// existing address reports created=false and no error.
	Subscribe(ctx context.Context, email string) (created bool, err error)
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

// SQLiteSubscriberStore implements SubscriberStore backed by SQLite.
type SQLiteSubscriberStore struct {
	db *sql.DB
}

// NewSQLiteSubscriberStore creates a new SQLiteSubscriberStore.
func NewSQLiteSubscriberStore(db *sql.DB) *SQLiteSubscriberStore {
	return &SQLiteSubscriberStore{db: db}
}

// Subscribe inserts the email, lowercased and trimmed. Duplicate addresses
// are ignored.
func (s *SQLiteSubscriberStore) Subscribe(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	now := time.Now().UTC().Format(time.RFC3339)

	res, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO subscribers (email, created_at) VALUES (?, ?)`,
		email, now,
	)
	if err != nil {
		return false, fmt.Errorf("subscribe %s: %w", email, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("subscribe rows affected: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of subscribers.
func (s *SQLiteSubscriberStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count subscribers: %w", err)
	}
	return n, nil
}

// DeleteAll removes every subscriber.
func (s *SQLiteSubscriberStore) DeleteAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM subscribers`); err != nil {
		return fmt.Errorf("delete subscribers: %w", err)
	}
	return nil
}
