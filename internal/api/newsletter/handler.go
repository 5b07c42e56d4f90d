package newsletter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gardianmky/listings/internal/api"
	"github.com/gardianmky/listings/internal/store"
)

// Handler handles newsletter subscription requests.
type Handler struct {
	store *store.Store
}

// Subscribe handles POST /api/newsletter/subscribe.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	corrID := api.CorrelationID(r.Context())

	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.WriteError(w, http.StatusBadRequest, "Invalid input JSON", corrID)
		return
	}

	email := strings.TrimSpace(body.Email)
	if !validEmail(email) {
		api.WriteError(w, http.StatusBadRequest, "A valid email address is required", corrID)
		return
	}

	created, err := h.store.Subscribers.Subscribe(r.Context(), email)
	if err != nil {
		api.WriteError(w, http.StatusInternalServerError, err.Error(), corrID)
		return
	}

	api.WriteData(w, http.StatusOK, map[string]any{
		"subscribed": true,
		"new":        created,
	})
}

// validEmail is a deliberately loose check: one "@" with a dot somewhere
// after it. The mail provider does the real validation on send.
func validEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}
