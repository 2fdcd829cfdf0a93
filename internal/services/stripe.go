package services

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeService creates charge intents with the payment processor. The
// backend never completes the charge itself; the frontend does, using
// the client secret this service hands out.
type StripeService struct {
	api *client.API
}

func NewStripeService(secretKey string) *StripeService {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeService{api: api}
}

// CreatePaymentIntent opens a card charge for the given price in major
// currency units and returns the client secret.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(PriceToCents(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.api.PaymentIntents.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %v", err)
	}

	return intent.ClientSecret, nil
}

// PriceToCents truncates a decimal price to integer cents, the smallest
// unit the processor charges in.
func PriceToCents(price float64) int64 {
	return int64(price * 100)
}
