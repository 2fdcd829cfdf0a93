package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/billalcoom/bistro-gobackend/internal/auth"
	"github.com/billalcoom/bistro-gobackend/internal/models"
)

type statsProvider interface {
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	OrderStats(ctx context.Context) ([]models.CategoryStat, error)
}

type StatsHandler struct {
	service statsProvider
}

func NewStatsHandler(service statsProvider) *StatsHandler {
	return &StatsHandler{service: service}
}

// AdminStats serves the dashboard counters. Admin only.
func (h *StatsHandler) AdminStats(w http.ResponseWriter, r *http.Request, _ *auth.Claims) {
	stats, err := h.service.AdminStats(r.Context())
	if err != nil {
		log.Printf("Failed to compute admin stats: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to compute admin stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// OrderStats serves the per-category revenue rollup. Admin only.
func (h *StatsHandler) OrderStats(w http.ResponseWriter, r *http.Request, _ *auth.Claims) {
	stats, err := h.service.OrderStats(r.Context())
	if err != nil {
		log.Printf("Failed to compute order stats: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to compute order stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
