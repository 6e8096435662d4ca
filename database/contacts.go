package database

import (
	"context"
	"fmt"

	"github.com/Akhona00/Guardian-Angel-website/models"
)

// InsertContact persists a contact-form submission.
func (db *DB) InsertContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	err := db.QueryRowContext(ctx, `
		INSERT INTO contacts (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`,
		contact.Name, contact.Email, contact.Subject, contact.Message,
	).Scan(&contact.ID, &contact.CreatedAt)
	if err != nil {
		return models.Contact{}, fmt.Errorf("failed to save contact: %w", err)
	}
	return contact, nil
}
