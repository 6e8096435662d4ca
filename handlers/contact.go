package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/Akhona00/Guardian-Angel-website/models"

	"github.com/gin-gonic/gin"
)

// ContactStore persists contact-form submissions.
type ContactStore interface {
	InsertContact(ctx context.Context, contact models.Contact) (models.Contact, error)
}

// ContactRelay forwards a submission to the external form relay.
type ContactRelay interface {
	Forward(ctx context.Context, name, email, message string) error
}

type ContactHandler struct {
	store ContactStore
	relay ContactRelay
}

func NewContactHandler(store ContactStore, relay ContactRelay) *ContactHandler {
	return &ContactHandler{store: store, relay: relay}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact handles POST /api/contact. The row is persisted first; the
// relay is best-effort and its failure does not roll the row back, but it is
// reported to the caller.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "All fields are required.")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	contact, err := h.store.InsertContact(ctx, models.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "Failed to save contact.")
		return
	}

	if err := h.relay.Forward(ctx, req.Name, req.Email, req.Message); err != nil {
		log.Printf("contact %d saved but relay failed: %v", contact.ID, err)
		errorResponse(c, http.StatusInternalServerError, "Failed to send message.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
