package admin

import (
	"database/sql"
	"net/http"
)

// RegisterRoutes adds the admin endpoints to the given mux.
func RegisterRoutes(mux *http.ServeMux, db *sql.DB) {
	h := &Handler{db: db}

	mux.HandleFunc("POST /_gardian/reset", h.Reset)
	mux.HandleFunc("POST /_gardian/seed", h.SeedData)
}
