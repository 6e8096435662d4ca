package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Akhona00/Guardian-Angel-website/models"

	_ "github.com/lib/pq"
)

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")
	// ErrProductNotFound is returned when a cart operation references an
	// unknown product.
	ErrProductNotFound = errors.New("product not found")
	// ErrPaymentExists is returned when a payment row already exists for a
	// payment intent. Callers should treat it as "already confirmed".
	ErrPaymentExists = errors.New("payment already recorded")
)

type DB struct {
	*sql.DB
}

// Connect opens a connection pool to the PostgreSQL database and verifies it
// with a ping.
func Connect(databaseURL string) (*DB, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}

// InitializeTables creates all tables if they don't exist, in foreign-key
// dependency order, and seeds the product catalog when it is empty.
func (db *DB) InitializeTables() error {
	tables := []interface {
		TableName() string
		CreateTableSQL() string
	}{
		models.Product{},
		models.Cart{},
		models.CartItem{},
		models.Contact{},
		models.Payment{},
	}

	for _, table := range tables {
		if _, err := db.Exec(table.CreateTableSQL()); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.TableName(), err)
		}
	}

	if err := db.seedProducts(); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	return nil
}

// seedProducts inserts the studio's service catalog if no products exist yet.
func (db *DB) seedProducts() error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM products`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		name        string
		description string
		price       string
	}{
		{"Design", "Professional design services for your business", "2000.00"},
		{"Professional Sound Hire", "High-quality audio equipment rental", "2000.00"},
		{"AI & Machine Learning", "Custom AI solutions and consulting", "2500.00"},
		{"Cyber Security", "Comprehensive security assessment and protection", "7000.00"},
		{"Photography", "Professional photography services", "2000.00"},
		{"Placement & Project Management", "Expert project management services", "2500.00"},
		{"Technical Support Services", "24/7 technical support and maintenance", "1500.00"},
		{"Videography", "Professional video production services", "2000.00"},
		{"Domain & Hosting", "Web hosting and domain registration", "3000.00"},
		{"Marketing", "Digital marketing and brand promotion", "1000.00"},
		{"Development", "Custom software development solutions", "5000.00"},
		{"Email Services", "Professional email hosting and management", "500.00"},
	}

	for _, p := range seed {
		_, err := db.Exec(
			`INSERT INTO products (name, description, price) VALUES ($1, $2, $3)`,
			p.name, p.description, p.price,
		)
		if err != nil {
			return err
		}
	}

	log.Printf("Seeded %d products", len(seed))
	return nil
}
