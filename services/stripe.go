package services

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// PaymentIntent is the subset of Stripe's payment-intent object the server
// needs. Handlers depend on this struct rather than Stripe's types.
type PaymentIntent struct {
	ID            string
	ClientSecret  string
	Amount        int64
	Currency      string
	Status        string
	CustomerEmail string
}

// StripeService creates and retrieves payment intents against the Stripe API.
type StripeService struct {
	client      *client.API
	currency    string
	description string
}

func NewStripeService(secretKey, currency string) *StripeService {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeService{
		client:      sc,
		currency:    currency,
		description: "Guardian Angel Studio Purchase",
	}
}

// CreatePaymentIntent requests a new intent for the given amount in minor
// currency units, tagged with the session key and customer email. No durable
// state is written on our side; retrying after a failure creates a fresh
// intent.
func (s *StripeService) CreatePaymentIntent(ctx context.Context, amount int64, sessionID, customerEmail string) (*PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(amount),
		Currency:    stripe.String(s.currency),
		Description: stripe.String(s.description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("session_id", sessionID)
	if customerEmail != "" {
		params.AddMetadata("customer_email", customerEmail)
		params.ReceiptEmail = stripe.String(customerEmail)
	}

	intent, err := s.client.PaymentIntents.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}
	return fromStripeIntent(intent), nil
}

// RetrievePaymentIntent fetches the intent's current state from Stripe.
// Stripe is the authoritative source for whether a payment succeeded.
func (s *StripeService) RetrievePaymentIntent(ctx context.Context, paymentIntentID string) (*PaymentIntent, error) {
	intent, err := s.client.PaymentIntents.Get(paymentIntentID, &stripe.PaymentIntentParams{
		Params: stripe.Params{Context: ctx},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payment intent: %w", err)
	}
	return fromStripeIntent(intent), nil
}

func fromStripeIntent(intent *stripe.PaymentIntent) *PaymentIntent {
	return &PaymentIntent{
		ID:            intent.ID,
		ClientSecret:  intent.ClientSecret,
		Amount:        intent.Amount,
		Currency:      string(intent.Currency),
		Status:        string(intent.Status),
		CustomerEmail: intent.Metadata["customer_email"],
	}
}
