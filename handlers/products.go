package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/Akhona00/Guardian-Angel-website/models"

	"github.com/gin-gonic/gin"
)

// ProductStore is the catalog access the product handler needs.
type ProductStore interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

type ProductHandler struct {
	store ProductStore
}

func NewProductHandler(store ProductStore) *ProductHandler {
	return &ProductHandler{store: store}
}

type productResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

// List handles GET /api/products.
func (h *ProductHandler) List(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()

	products, err := h.store.ListProducts(ctx)
	if err != nil {
		internalError(c, err)
		return
	}

	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.InexactFloat64(),
			CreatedAt:   p.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}
