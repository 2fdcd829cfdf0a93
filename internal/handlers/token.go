package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/billalcoom/bistro-gobackend/internal/auth"
)

type TokenHandler struct {
	secret string
}

func NewTokenHandler(secret string) *TokenHandler {
	return &TokenHandler{secret: secret}
}

// IssueToken signs a 7-day access token for the posted user payload.
// The route is open: the frontend calls it right after its own sign-in
// flow completes.
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var user struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if user.Email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := auth.NewAccessToken(h.secret, user.Email, user.Name)
	if err != nil {
		log.Printf("Failed to sign token for %s: %v", user.Email, err)
		writeError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
