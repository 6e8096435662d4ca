package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Akhona00/Guardian-Angel-website/database"
	"github.com/Akhona00/Guardian-Angel-website/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderRouter(store OrderStore) *gin.Engine {
	handler := NewOrderHandler(store)
	r := gin.New()
	r.GET("/api/orders/:paymentIntentId", handler.GetOrder)
	return r
}

func TestGetOrder_NotFound(t *testing.T) {
	r := orderRouter(&mockStore{paymentErr: database.ErrNotFound})

	w := doJSON(t, r, http.MethodGet, "/api/orders/pi_unknown", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestGetOrder_AmountInMajorUnits(t *testing.T) {
	store := &mockStore{payment: models.Payment{
		ID:              7,
		PaymentIntentID: "pi_123",
		SessionID:       "sess-1",
		Amount:          400000,
		Currency:        "zar",
		Status:          "succeeded",
		CustomerEmail:   "buyer@example.com",
		Items: []models.PaymentItem{
			{ProductID: 1, Name: "Design", Price: 2000, Quantity: 2, ItemTotal: 4000},
		},
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}}
	r := orderRouter(store)

	w := doJSON(t, r, http.MethodGet, "/api/orders/pi_123", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp orderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pi_123", resp.PaymentIntentID)
	assert.Equal(t, 4000.0, resp.Amount)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, 4000.0, resp.Items[0].ItemTotal)
}
