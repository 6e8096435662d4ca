package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Akhona00/Guardian-Angel-website/database"
	"github.com/Akhona00/Guardian-Angel-website/models"

	"github.com/gin-gonic/gin"
)

// OrderStore is the payment lookup the order handler needs.
type OrderStore interface {
	GetPaymentByIntentID(ctx context.Context, paymentIntentID string) (models.Payment, error)
}

type OrderHandler struct {
	store OrderStore
}

func NewOrderHandler(store OrderStore) *OrderHandler {
	return &OrderHandler{store: store}
}

type orderResponse struct {
	ID              int                  `json:"id"`
	PaymentIntentID string               `json:"payment_intent_id"`
	Amount          float64              `json:"amount"`
	Currency        string               `json:"currency"`
	Status          string               `json:"status"`
	CustomerEmail   string               `json:"customer_email"`
	Items           []models.PaymentItem `json:"items"`
	CreatedAt       time.Time            `json:"created_at"`
}

// GetOrder handles GET /api/orders/:paymentIntentId. The stored amount is in
// minor currency units and is returned in major units.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	payment, err := h.store.GetPaymentByIntentID(ctx, c.Param("paymentIntentId"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			errorResponse(c, http.StatusNotFound, "Order not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, orderResponse{
		ID:              payment.ID,
		PaymentIntentID: payment.PaymentIntentID,
		Amount:          float64(payment.Amount) / 100,
		Currency:        payment.Currency,
		Status:          payment.Status,
		CustomerEmail:   payment.CustomerEmail,
		Items:           payment.Items,
		CreatedAt:       payment.CreatedAt,
	})
}
