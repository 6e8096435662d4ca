package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Akhona00/Guardian-Angel-website/models"

	"github.com/lib/pq"
)

// InsertPayment writes the payment row recorded at confirmation time. The
// payment_intent_id column is unique-constrained, so a second confirmation
// attempt for the same intent returns ErrPaymentExists instead of writing a
// duplicate.
func (db *DB) InsertPayment(ctx context.Context, payment models.Payment) (models.Payment, error) {
	itemsJSON, err := json.Marshal(payment.Items)
	if err != nil {
		return models.Payment{}, fmt.Errorf("failed to encode payment items: %w", err)
	}

	var customerEmail sql.NullString
	if payment.CustomerEmail != "" {
		customerEmail = sql.NullString{String: payment.CustomerEmail, Valid: true}
	}

	err = db.QueryRowContext(ctx, `
		INSERT INTO payments (payment_intent_id, session_id, amount, currency, status, customer_email, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		payment.PaymentIntentID, payment.SessionID, payment.Amount,
		payment.Currency, payment.Status, customerEmail, itemsJSON,
	).Scan(&payment.ID, &payment.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return models.Payment{}, ErrPaymentExists
		}
		return models.Payment{}, fmt.Errorf("failed to record payment: %w", err)
	}
	return payment, nil
}

// GetPaymentByIntentID looks up a payment by its Stripe payment-intent id.
func (db *DB) GetPaymentByIntentID(ctx context.Context, paymentIntentID string) (models.Payment, error) {
	var (
		payment       models.Payment
		customerEmail sql.NullString
		itemsJSON     []byte
	)
	err := db.QueryRowContext(ctx, `
		SELECT id, payment_intent_id, session_id, amount, currency, status, customer_email, items, created_at
		FROM payments
		WHERE payment_intent_id = $1`,
		paymentIntentID,
	).Scan(&payment.ID, &payment.PaymentIntentID, &payment.SessionID,
		&payment.Amount, &payment.Currency, &payment.Status,
		&customerEmail, &itemsJSON, &payment.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Payment{}, ErrNotFound
	}
	if err != nil {
		return models.Payment{}, fmt.Errorf("failed to fetch payment: %w", err)
	}

	payment.CustomerEmail = customerEmail.String
	if len(itemsJSON) > 0 {
		if err := json.Unmarshal(itemsJSON, &payment.Items); err != nil {
			return models.Payment{}, fmt.Errorf("failed to decode payment items: %w", err)
		}
	}
	return payment, nil
}
