package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/services/catalog/domain/models"
)

// QueryOpts contains pagination parameters for list queries.
type QueryOpts struct {
	Limit  int // Maximum number of records to return
	Offset int // Number of records to skip
}

// ProductRepository is the persistence interface for the Product aggregate.
// The domain layer owns this interface; infrastructure implements it.
type ProductRepository interface {
	Save(ctx context.Context, product *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)

	// Find retrieves a paginated list of products.
	// Returns the products slice and the total count (ignoring pagination).
	Find(ctx context.Context, opts QueryOpts) ([]*models.Product, int, error)

	// Update persists changes to an existing Product.
	// Returns ErrProductNotFound if no matching product exists.
	Update(ctx context.Context, product *models.Product) error

	// Delete removes a product by ID.
	// Returns ErrProductNotFound if no matching product exists.
	Delete(ctx context.Context, id uuid.UUID) error
}
