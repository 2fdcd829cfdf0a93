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

// userStore is what the user routes need from storage.
type userStore interface {
	CreateUser(ctx context.Context, user *models.User) (string, bool, error)
	UserList(ctx context.Context) ([]models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	PromoteToAdmin(ctx context.Context, id string) (int64, error)
}

type UserHandler struct {
	service userStore
}

func NewUserHandler(service userStore) *UserHandler {
	return &UserHandler{service: service}
}

// CreateUser registers a user on first sign-in. Re-posting an existing
// email is a no-op.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if user.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	id, existed, err := h.service.CreateUser(r.Context(), &user)
	if err != nil {
		log.Printf("Failed to create user %s: %v", user.Email, err)
		writeError(w, http.StatusInternalServerError, "failed to create user")
		return
	}
	if existed {
		writeJSON(w, http.StatusOK, map[string]string{"message": "user has already existed"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"insertedId": id})
}

// GetUsers lists every registered user. Admin only.
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request, _ *auth.Claims) {
	users, err := h.service.UserList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch users: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch users")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// CheckAdmin reports whether the email in the path is an admin. Only
// the user themself may ask; any other identity gets {"admin":false}
// rather than an error.
func (h *UserHandler) CheckAdmin(w http.ResponseWriter, r *http.Request, claims *auth.Claims) {
	email := mux.Vars(r)["email"]

	if claims.Email != email {
		writeJSON(w, http.StatusOK, map[string]bool{"admin": false})
		return
	}

	isAdmin, err := h.service.IsAdmin(r.Context(), email)
	if err != nil {
		log.Printf("Failed to check admin role for %s: %v", email, err)
		writeError(w, http.StatusInternalServerError, "failed to check role")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"admin": isAdmin})
}

// PromoteUser sets the admin role on the user with the path id.
func (h *UserHandler) PromoteUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	modified, err := h.service.PromoteToAdmin(r.Context(), id)
	if err != nil {
		log.Printf("Failed to promote user %s: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to promote user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"modifiedCount": modified})
}
