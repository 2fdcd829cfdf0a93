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

type menuStore interface {
	MenuList(ctx context.Context) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) (string, error)
	DeleteMenuItem(ctx context.Context, id string) (int64, error)
}

type MenuHandler struct {
	service menuStore
}

func NewMenuHandler(service menuStore) *MenuHandler {
	return &MenuHandler{service: service}
}

func (h *MenuHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.MenuList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch menu: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch menu")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// CreateMenuItem adds a dish to the catalog. Admin only.
func (h *MenuHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request, _ *auth.Claims) {
	var item models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.service.CreateMenuItem(r.Context(), &item)
	if err != nil {
		log.Printf("Failed to create menu item: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create menu item")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// DeleteMenuItem removes a dish from the catalog. Admin only.
func (h *MenuHandler) DeleteMenuItem(w http.ResponseWriter, r *http.Request, _ *auth.Claims) {
	id := mux.Vars(r)["id"]

	deleted, err := h.service.DeleteMenuItem(r.Context(), id)
	if err != nil {
		log.Printf("Failed to delete menu item %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to delete menu item")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deletedCount": deleted})
}
