package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gardianmky/listings/internal/api"
	"github.com/gardianmky/listings/internal/api/admin"
	"github.com/gardianmky/listings/internal/api/listings"
	"github.com/gardianmky/listings/internal/api/newsletter"
	"github.com/gardianmky/listings/internal/cache"
	"github.com/gardianmky/listings/internal/config"
	"github.com/gardianmky/listings/internal/database"
	"github.com/gardianmky/listings/internal/ingest"
	"github.com/gardianmky/listings/internal/renet"
	"github.com/gardianmky/listings/internal/seed"
	"github.com/gardianmky/listings/internal/store"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer func() { _ = db.Close() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := database.Migrate(ctx, db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if err := seed.Seed(ctx, db); err != nil {
		return fmt.Errorf("seed data: %w", err)
	}

	s := store.New(db)

	// Pull the live listing set when an upstream token is configured. A
	// failed sync is logged and the server starts on seed data.
	if cfg.RenetToken != "" {
		syncListings(ctx, cfg, s)
	}

	mux := http.NewServeMux()

	listings.RegisterRoutes(mux, s, cfg.PageSize)
	newsletter.RegisterRoutes(mux, s)
	admin.RegisterRoutes(mux, s.DB)

	// Catch-all: return 404 in the standard envelope.
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		corrID := api.CorrelationID(r.Context())
		api.WriteError(w, http.StatusNotFound,
			fmt.Sprintf("No route found for %s %s", r.Method, r.URL.Path),
			corrID,
		)
	})

	handler := api.Chain(mux,
		api.Recovery(),
		api.RequestID(),
		api.Auth(cfg.AuthToken),
		api.JSONContentType(),
		api.Logging(),
	)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		slog.Info("shutting down server")
		if err := srv.Shutdown(context.Background()); err != nil {
			slog.Error("server shutdown error", "error", err)
		}
	}()

	slog.Info("starting gardian server", "addr", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

func syncListings(ctx context.Context, cfg config.Config, s *store.Store) {
	client, err := renet.NewClient(cfg.RenetBaseURL, cfg.RenetToken, nil)
	if err != nil {
		slog.Error("renet client setup failed, skipping sync", "error", err)
		return
	}

	var c *cache.Cache
	if cfg.RedisAddr != "" {
		c, err = cache.New(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			slog.Warn("redis unavailable, syncing without cache", "error", err)
			c = nil
		} else {
			defer func() { _ = c.Close() }()
		}
	}

	syncer := ingest.NewSyncer(client, s.Listings, c, cfg.CacheTTL)
	if _, err := syncer.Sync(ctx); err != nil {
		slog.Error("listing sync failed, serving seed data", "error", err)
	}
}
