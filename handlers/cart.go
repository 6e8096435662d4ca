package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/Akhona00/Guardian-Angel-website/database"
	"github.com/Akhona00/Guardian-Angel-website/models"

	"github.com/gin-gonic/gin"
)

// CartStore is the cart access the cart handler needs.
type CartStore interface {
	AddCartItem(ctx context.Context, sessionID string, productID, quantity int) error
	SetCartItemQuantity(ctx context.Context, sessionID string, productID, quantity int) error
	RemoveCartItem(ctx context.Context, sessionID string, productID int) error
	GetCartLines(ctx context.Context, sessionID string) ([]models.CartLine, error)
}

type CartHandler struct {
	store CartStore
}

func NewCartHandler(store CartStore) *CartHandler {
	return &CartHandler{store: store}
}

type addCartItemRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateCartItemRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
	Quantity  *int   `json:"quantity" binding:"required"`
}

type removeCartItemRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	ProductID int    `json:"productId" binding:"required"`
}

type cartItemResponse struct {
	ID          int     `json:"id"`
	ProductID   int     `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// AddItem handles POST /api/cart/add. A repeated add for the same product
// increments the stored quantity rather than creating a second line item.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Session ID and Product ID are required")
		return
	}
	if req.Quantity < 0 {
		errorResponse(c, http.StatusBadRequest, "Quantity must not be negative")
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.store.AddCartItem(ctx, req.SessionID, req.ProductID, req.Quantity); err != nil {
		if errors.Is(err, database.ErrProductNotFound) {
			errorResponse(c, http.StatusNotFound, "Product not found")
			return
		}
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item added to cart"})
}

// GetCart handles GET /api/cart/:sessionId. A session with no cart yields an
// empty cart, not an error.
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := c.Param("sessionId")

	ctx, cancel := requestContext(c)
	defer cancel()

	lines, err := h.store.GetCartLines(ctx, sessionID)
	if err != nil {
		internalError(c, err)
		return
	}

	items := make([]cartItemResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, cartItemResponse{
			ID:          line.ItemID,
			ProductID:   line.ProductID,
			Name:        line.Name,
			Description: line.Description,
			Price:       line.Price.InexactFloat64(),
			Quantity:    line.Quantity,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": models.CartTotal(lines).StringFixed(2),
		"count": models.CartCount(lines),
	})
}

// UpdateItem handles PUT /api/cart/update. Quantity zero deletes the line
// item; otherwise the stored quantity is replaced, not incremented.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req updateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Invalid parameters")
		return
	}
	if *req.Quantity < 0 {
		errorResponse(c, http.StatusBadRequest, "Invalid parameters")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.store.SetCartItemQuantity(ctx, req.SessionID, req.ProductID, *req.Quantity); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Cart updated"})
}

// RemoveItem handles DELETE /api/cart/remove. Removing an absent item is a
// no-op.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	var req removeCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "Session ID and Product ID are required")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.store.RemoveCartItem(ctx, req.SessionID, req.ProductID); err != nil {
		internalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Item removed from cart"})
}
