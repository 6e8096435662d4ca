package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Akhona00/Guardian-Angel-website/database"
	"github.com/Akhona00/Guardian-Angel-website/models"
	"github.com/Akhona00/Guardian-Angel-website/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CheckoutStore is the data access the checkout flow needs.
type CheckoutStore interface {
	GetCartLines(ctx context.Context, sessionID string) ([]models.CartLine, error)
	InsertPayment(ctx context.Context, payment models.Payment) (models.Payment, error)
	ClearCartItems(ctx context.Context, sessionID string) error
}

// PaymentProvider is the external payment processor.
type PaymentProvider interface {
	CreatePaymentIntent(ctx context.Context, amount int64, sessionID, customerEmail string) (*services.PaymentIntent, error)
	RetrievePaymentIntent(ctx context.Context, paymentIntentID string) (*services.PaymentIntent, error)
}

type CheckoutHandler struct {
	store    CheckoutStore
	payments PaymentProvider
}

func NewCheckoutHandler(store CheckoutStore, payments PaymentProvider) *CheckoutHandler {
	return &CheckoutHandler{store: store, payments: payments}
}

type createPaymentIntentRequest struct {
	SessionID     string `json:"sessionId" binding:"required"`
	CustomerEmail string `json:"customerEmail"`
}

type confirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
	SessionID       string `json:"sessionId" binding:"required"`
}

// minorUnits converts a major-unit decimal amount to integer minor currency
// units, rounding to the nearest unit.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// CreatePaymentIntent handles POST /api/create-payment-intent. It computes
// the charge from the cart's current contents and asks Stripe for an intent.
// Nothing durable is written here; a failed call can simply be retried.
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	var req createPaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Session ID is required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	lines, err := h.store.GetCartLines(ctx, req.SessionID)
	if err != nil {
		internalError(c, err)
		return
	}
	if len(lines) == 0 {
		errorResponse(c, http.StatusBadRequest, "Cart is empty")
		return
	}

	amount := minorUnits(models.CartTotal(lines))
	intent, err := h.payments.CreatePaymentIntent(ctx, amount, req.SessionID, req.CustomerEmail)
	if err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret":    intent.ClientSecret,
		"paymentIntentId": intent.ID,
	})
}

// ConfirmPayment handles POST /api/confirm-payment. Stripe's view of the
// intent is authoritative for amount and status; the caller's claim is not
// trusted. The item snapshot is taken from the cart as it stands now, which
// can differ from the cart the amount was computed from if another tab
// mutated it between the two steps — the charged amount stays the money
// record, the live cart the itemization.
func (h *CheckoutHandler) ConfirmPayment(c *gin.Context) {
	var req confirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Payment Intent ID and Session ID are required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	intent, err := h.payments.RetrievePaymentIntent(ctx, req.PaymentIntentID)
	if err != nil {
		internalError(c, err)
		return
	}

	lines, err := h.store.GetCartLines(ctx, req.SessionID)
	if err != nil {
		internalError(c, err)
		return
	}

	snapshot := make([]models.PaymentItem, 0, len(lines))
	for _, line := range lines {
		lineTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
		snapshot = append(snapshot, models.PaymentItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price.InexactFloat64(),
			Quantity:  line.Quantity,
			ItemTotal: lineTotal.InexactFloat64(),
		})
	}

	payment, err := h.store.InsertPayment(ctx, models.Payment{
		PaymentIntentID: intent.ID,
		SessionID:       req.SessionID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Status:          intent.Status,
		CustomerEmail:   intent.CustomerEmail,
		Items:           snapshot,
	})
	if err != nil {
		if errors.Is(err, database.ErrPaymentExists) {
			// Second confirmation for the same intent. The first one
			// already recorded the payment and cleared the cart.
			errorResponse(c, http.StatusConflict, "Payment already confirmed")
			return
		}
		internalError(c, err)
		return
	}

	if err := h.store.ClearCartItems(ctx, req.SessionID); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"payment": payment,
	})
}
