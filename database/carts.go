package database

import (
	"context"
	"fmt"

	"github.com/Akhona00/Guardian-Angel-website/models"
)

// GetOrCreateCart returns the cart for a session key, creating it if absent.
// The insert is an atomic upsert on the session_id unique constraint, so two
// concurrent calls for the same key resolve to a single row.
func (db *DB) GetOrCreateCart(ctx context.Context, sessionID string) (models.Cart, error) {
	var cart models.Cart
	err := db.QueryRowContext(ctx, `
		INSERT INTO carts (session_id) VALUES ($1)
		ON CONFLICT (session_id) DO UPDATE SET session_id = EXCLUDED.session_id
		RETURNING id, session_id, created_at`,
		sessionID,
	).Scan(&cart.ID, &cart.SessionID, &cart.CreatedAt)
	if err != nil {
		return models.Cart{}, fmt.Errorf("failed to get or create cart: %w", err)
	}
	return cart, nil
}

// AddCartItem upserts a line item: an existing (cart, product) row has the
// quantity added to it, otherwise a new row is created. The product must
// exist in the catalog.
func (db *DB) AddCartItem(ctx context.Context, sessionID string, productID, quantity int) error {
	if _, err := db.GetProduct(ctx, productID); err != nil {
		return err
	}

	cart, err := db.GetOrCreateCart(ctx, sessionID)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO cart_items (cart_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (cart_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		cart.ID, productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to add cart item: %w", err)
	}
	return nil
}

// SetCartItemQuantity replaces a line item's quantity. A quantity of zero
// deletes the line item; deleting an absent item is not an error.
func (db *DB) SetCartItemQuantity(ctx context.Context, sessionID string, productID, quantity int) error {
	if quantity == 0 {
		return db.RemoveCartItem(ctx, sessionID, productID)
	}

	_, err := db.ExecContext(ctx, `
		UPDATE cart_items SET quantity = $3
		WHERE cart_id = (SELECT id FROM carts WHERE session_id = $1)
		AND product_id = $2`,
		sessionID, productID, quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to update cart item: %w", err)
	}
	return nil
}

// RemoveCartItem deletes a line item if present. Idempotent.
func (db *DB) RemoveCartItem(ctx context.Context, sessionID string, productID int) error {
	_, err := db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = (SELECT id FROM carts WHERE session_id = $1)
		AND product_id = $2`,
		sessionID, productID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
	}
	return nil
}

// GetCartLines returns the session's line items joined with product data.
// A session with no cart yields an empty slice.
func (db *DB) GetCartLines(ctx context.Context, sessionID string) ([]models.CartLine, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT ci.id, p.id AS product_id, p.name, p.description, p.price, ci.quantity
		FROM cart_items ci
		JOIN carts c ON ci.cart_id = c.id
		JOIN products p ON ci.product_id = p.id
		WHERE c.session_id = $1
		ORDER BY ci.id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	var lines []models.CartLine
	for rows.Next() {
		var line models.CartLine
		if err := rows.Scan(&line.ItemID, &line.ProductID, &line.Name,
			&line.Description, &line.Price, &line.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// ClearCartItems deletes every line item for the session's cart. The cart
// header itself is retained.
func (db *DB) ClearCartItems(ctx context.Context, sessionID string) error {
	_, err := db.ExecContext(ctx, `
		DELETE FROM cart_items
		WHERE cart_id = (SELECT id FROM carts WHERE session_id = $1)`,
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
