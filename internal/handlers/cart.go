package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/billalcoom/bistro-gobackend/internal/auth"
	"github.com/billalcoom/bistro-gobackend/internal/models"
)

type cartStore interface {
	AddEntry(ctx context.Context, entry *models.CartEntry) (string, error)
	EntriesByEmail(ctx context.Context, email string) ([]models.CartEntry, error)
	DeleteEntry(ctx context.Context, id string) (int64, error)
}

type CartHandler struct {
	service cartStore
}

func NewCartHandler(service cartStore) *CartHandler {
	return &CartHandler{service: service}
}

func (h *CartHandler) AddEntry(w http.ResponseWriter, r *http.Request) {
	var entry models.CartEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.AddEntry(r.Context(), &entry)
	if err != nil {
		log.Printf("Failed to add cart entry: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to add cart entry")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// GetEntries lists the cart for the email in the query string. The
// caller may only read their own cart: a token whose email differs
// from the query email gets 403. No email at all yields an empty list.
func (h *CartHandler) GetEntries(w http.ResponseWriter, r *http.Request, claims *auth.Claims) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusOK, []models.CartEntry{})
		return
	}
	if email != claims.Email {
		writeError(w, http.StatusForbidden, "forbidden access")
		return
	}

	entries, err := h.service.EntriesByEmail(r.Context(), email)
	if err != nil {
		log.Printf("Failed to fetch cart for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "failed to fetch cart")
		return
	}

	writeJSON(w, http.StatusOK, entries)
}

func (h *CartHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	deleted, err := h.service.DeleteEntry(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete cart entry %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to delete cart entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
