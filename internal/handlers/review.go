package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/billalcoom/bistro-gobackend/internal/models"
)

type reviewStore interface {
	ReviewList(ctx context.Context) ([]models.Review, error)
}

type ReviewHandler struct {
	service reviewStore
}

func NewReviewHandler(service reviewStore) *ReviewHandler {
	return &ReviewHandler{service: service}
}

func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ReviewList(r.Context())
	if err != nil {
		log.Printf("Failed to fetch reviews: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to fetch reviews")
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}
