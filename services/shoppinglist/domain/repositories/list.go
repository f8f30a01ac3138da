package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/services/shoppinglist/domain/models"
)

// ListRepository is the persistence interface for the ShoppingList aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// The repository enforces no business invariants — ownership, lifecycle, and
// membership rules live in the application service. It only guarantees that
// each mutation is a single atomic write and that the association table's
// composite primary key backstops duplicate membership.
type ListRepository interface {
	// Save persists a new open list with an empty product set.
	Save(ctx context.Context, list *models.ShoppingList) error

	// GetByID retrieves a list, optionally eager-loading its product set.
	// Returns ErrListNotFound when no such list exists.
	GetByID(ctx context.Context, id uuid.UUID, withProducts bool) (*models.ShoppingList, error)

	// FindByOwner retrieves all lists owned by ownerID, each with its product
	// set loaded, in insertion order.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.ShoppingList, error)

	// FindProducts retrieves only the membership product set of one list.
	// Serves reads whose list header came from elsewhere, such as the cache.
	FindProducts(ctx context.Context, listID uuid.UUID) ([]models.ListProduct, error)

	// AddProduct inserts the membership row if absent. Idempotent at the
	// storage level — the caller tests membership before calling this.
	AddProduct(ctx context.Context, listID, productID uuid.UUID) error

	// RemoveProduct deletes the membership row if present; no-op if absent.
	RemoveProduct(ctx context.Context, listID, productID uuid.UUID) error

	// SetClosed updates the list's status and closed-at timestamp.
	SetClosed(ctx context.Context, listID uuid.UUID, closedAt time.Time) error
}

// ProductFinder is the port through which this context consults the product
// catalog. Read-only: membership mutations only need existence plus a
// snapshot of the product row.
type ProductFinder interface {
	// FindByID returns the product or catalog ErrProductNotFound.
	FindByID(ctx context.Context, productID uuid.UUID) (*models.ListProduct, error)
}
