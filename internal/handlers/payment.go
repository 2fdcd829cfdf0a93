package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/billalcoom/bistro-gobackend/internal/auth"
	"github.com/billalcoom/bistro-gobackend/internal/mailer"
	"github.com/billalcoom/bistro-gobackend/internal/models"
)

type chargeIntenter interface {
	CreatePaymentIntent(ctx context.Context, price float64) (string, error)
}

type paymentStore interface {
	CompletePayment(ctx context.Context, payment *models.Payment) (string, int64, error)
}

type confirmationQueue interface {
	Enqueue(c mailer.Confirmation)
}

type PaymentHandler struct {
	processor chargeIntenter
	store     paymentStore
	mail      confirmationQueue
}

func NewPaymentHandler(processor chargeIntenter, store paymentStore, mail confirmationQueue) *PaymentHandler {
	return &PaymentHandler{processor: processor, store: store, mail: mail}
}

// CreatePaymentIntent opens a charge with the processor for the posted
// price and returns the client secret the frontend completes the
// charge with.
func (h *PaymentHandler) CreatePaymentIntent(w http.ResponseWriter, r *http.Request, _ *auth.Claims) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Price <= 0 {
		writeError(w, http.StatusBadRequest, "price must be positive")
		return
	}

	secret, err := h.processor.CreatePaymentIntent(r.Context(), body.Price)
	if err != nil {
		log.Printf("Failed to create payment intent: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
}

// CompletePayment records the posted payment, clears the purchased
// cart entries and queues the confirmation email. The email is
// fire-and-forget; its outcome never affects this response.
func (h *PaymentHandler) CompletePayment(w http.ResponseWriter, r *http.Request, claims *auth.Claims) {
	var payment models.Payment
	if err := json.NewDecoder(r.Body).Decode(&payment); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if payment.Email == "" {
		payment.Email = claims.Email
	}

	insertedID, deleted, err := h.store.CompletePayment(r.Context(), &payment)
	if err != nil {
		log.Printf("Failed to complete payment for %s: %v", payment.Email, err)
		writeError(w, http.StatusInternalServerError, "failed to complete payment")
		return
	}

	h.mail.Enqueue(mailer.Confirmation{
		To:            payment.Email,
		TransactionID: payment.TransactionID,
		Price:         payment.Price,
	})

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"insertedId":       insertedID,
		"deletedCartCount": deleted,
	})
}
