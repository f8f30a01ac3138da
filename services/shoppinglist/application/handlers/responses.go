package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/services/shoppinglist/domain/models"
)

// ListProductResponse is the JSON shape of a product on a list.
type ListProductResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Oat milk"`
	Price       int64     `json:"price"       example:"349"`
	Quantity    int       `json:"quantity"    example:"12"`
	Description string    `json:"description,omitempty" example:"1 liter carton"`
} // @name ListProductResponse

// ListResponse is the JSON shape of a shopping list.
type ListResponse struct {
	ID       uuid.UUID             `json:"id"        example:"123e4567-e89b-12d3-a456-426614174000"`
	Name     string                `json:"name"      example:"Weekly"`
	Status   string                `json:"status"    example:"OPEN"`
	ClosedAt *time.Time            `json:"closed_at" example:"2024-01-15T10:30:00Z"`
	UserID   uuid.UUID             `json:"user_id"   example:"550e8400-e29b-41d4-a716-446655440000"`
	Products []ListProductResponse `json:"products"`
} // @name ListResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"shopping list not found"`
} // @name ErrorResponse

// MessageResponse is returned by mutations with no payload beyond a confirmation.
type MessageResponse struct {
	Message string `json:"message" example:"Product successfully added to the shopping list"`
} // @name MessageResponse

func toListResponse(list *models.ShoppingList) ListResponse {
	products := make([]ListProductResponse, len(list.Products))
	for i, p := range list.Products {
		products[i] = ListProductResponse{
			ID:          p.ID,
			Name:        p.Name,
			Price:       p.Price,
			Quantity:    p.Quantity,
			Description: p.Description,
		}
	}
	return ListResponse{
		ID:       list.ID,
		Name:     list.Name.String(),
		Status:   string(list.Status),
		ClosedAt: list.ClosedAt,
		UserID:   list.OwnerID,
		Products: products,
	}
}
