package models

import "time"

// Payment is the durable record of a confirmed checkout. The cart's items
// are deleted when this row is written, so Items is the only surviving
// record of what was purchased.
type Payment struct {
	ID              int           `json:"id" db:"id"`
	PaymentIntentID string        `json:"payment_intent_id" db:"payment_intent_id"`
	SessionID       string        `json:"session_id" db:"session_id"`
	Amount          int64         `json:"amount" db:"amount"` // minor currency units
	Currency        string        `json:"currency" db:"currency"`
	Status          string        `json:"status" db:"status"`
	CustomerEmail   string        `json:"customer_email" db:"customer_email"`
	Items           []PaymentItem `json:"items" db:"items"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
}

// PaymentItem is one line of the cart snapshot taken at confirmation time.
type PaymentItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	ItemTotal float64 `json:"item_total"`
}

func (Payment) TableName() string {
	return "payments"
}

func (Payment) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS payments (
		id SERIAL PRIMARY KEY,
		payment_intent_id VARCHAR(255) UNIQUE NOT NULL,
		session_id VARCHAR(255) NOT NULL,
		amount INTEGER NOT NULL,
		currency VARCHAR(3) NOT NULL,
		status VARCHAR(50) NOT NULL,
		customer_email VARCHAR(255),
		items JSONB,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
}
