package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Akhona00/Guardian-Angel-website/models"
)

// ListProducts returns the full catalog.
func (db *DB) ListProducts(ctx context.Context) ([]models.Product, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, description, price, created_at FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// GetProduct looks up a single product by id. Returns ErrProductNotFound if
// no such product exists.
func (db *DB) GetProduct(ctx context.Context, productID int) (models.Product, error) {
	var p models.Product
	err := db.QueryRowContext(ctx,
		`SELECT id, name, description, price, created_at FROM products WHERE id = $1`,
		productID,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch product: %w", err)
	}
	return p, nil
}
