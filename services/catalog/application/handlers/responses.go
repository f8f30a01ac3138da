package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/services/catalog/domain/models"
)

// ProductResponse is the JSON shape of a catalog product.
type ProductResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Oat milk"`
	Price       int64     `json:"price"       example:"349"`
	Quantity    int       `json:"quantity"    example:"12"`
	Description string    `json:"description,omitempty" example:"1 liter carton"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name ProductResponse

// ProductListResponse is the paginated catalog index payload.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total" example:"42"`
} // @name ProductListResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"product not found"`
} // @name CatalogErrorResponse

// MessageResponse is returned by mutations with no payload beyond a confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Product successfully deleted"`
} // @name CatalogMessageResponse

func toProductResponse(p *models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name.String(),
		Price:       p.Price,
		Quantity:    p.Quantity,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
