package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartItem struct {
	ID        int       `json:"id" db:"id"`
	CartID    int       `json:"cart_id" db:"cart_id"`
	ProductID int       `json:"product_id" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

func (CartItem) CreateTableSQL() string {
	return `
	CREATE TABLE IF NOT EXISTS cart_items (
		id SERIAL PRIMARY KEY,
		cart_id INTEGER REFERENCES carts(id) ON DELETE CASCADE,
		product_id INTEGER REFERENCES products(id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(cart_id, product_id)
	);`
}

// CartLine is a cart item joined with its product, as served to the
// storefront and snapshotted into payments at confirmation.
type CartLine struct {
	ItemID      int
	ProductID   int
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

// CartTotal is the sum of price*quantity over all lines.
func CartTotal(lines []CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// CartCount is the sum of quantities over all lines.
func CartCount(lines []CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}
	return count
}
