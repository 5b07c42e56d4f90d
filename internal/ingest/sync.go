// Package ingest pulls listings from the upstream Renet API into the local
// store, optionally short-circuiting through a Redis cache.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gardianmky/listings/internal/cache"
	"github.com/gardianmky/listings/internal/domain"
	"github.com/gardianmky/listings/internal/renet"
	"github.com/gardianmky/listings/internal/store"
)

const cacheKey = "renet:listings"

// Syncer copies upstream listings into the local store.
type Syncer struct {
	client   *renet.Client
	listings store.ListingStore
	cache    *cache.Cache // may be nil
	ttl      time.Duration
}

// NewSyncer creates a Syncer. cache may be nil to disable caching.
func NewSyncer(client *renet.Client, listings store.ListingStore, c *cache.Cache, ttl time.Duration) *Syncer {
	return &Syncer{client: client, listings: listings, cache: c, ttl: ttl}
}

// Sync fetches the upstream listing set and upserts every listing. A warm
// cache entry is used instead of calling upstream; a fresh fetch repopulates
// the cache. Returns the number of listings upserted.
func (s *Syncer) Sync(ctx context.Context) (int, error) {
	listings, fromCache, err := s.fetch(ctx)
	if err != nil {
		return 0, err
	}

	for i := range listings {
		if err := s.listings.Put(ctx, &listings[i]); err != nil {
			return 0, fmt.Errorf("upsert listing %s: %w", listings[i].ListingID, err)
		}
	}

	slog.Info("listing sync complete",
		"count", len(listings),
		"from_cache", fromCache,
	)
	return len(listings), nil
}

func (s *Syncer) fetch(ctx context.Context) (listings []domain.Listing, fromCache bool, err error) {
	if s.cache != nil {
		payload, ok, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			slog.Warn("cache read failed, falling back to upstream", "error", err)
		} else if ok {
			if err := json.Unmarshal([]byte(payload), &listings); err == nil {
				return listings, true, nil
			}
			slog.Warn("cache entry corrupt, falling back to upstream")
		}
	}

	listings, err = s.client.FetchListings(ctx, renet.ListParams{})
	if err != nil {
		return nil, false, fmt.Errorf("fetch upstream listings: %w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(listings); err == nil {
			if err := s.cache.Set(ctx, cacheKey, string(payload), s.ttl); err != nil {
				slog.Warn("cache write failed", "error", err)
			}
		}
	}
	return listings, false, nil
}
