package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/pkg/database"
	catalogdomain "github.com/ghuser/listkeeper/services/catalog/domain"
	"github.com/ghuser/listkeeper/services/shoppinglist/domain/models"
)

// ProductFinder implements repositories.ProductFinder by reading the catalog
// tables directly. It is the read-only port this context holds on the catalog.
type ProductFinder struct {
	db *database.Database
}

// NewProductFinder returns a ProductFinder backed by the given connection pool.
func NewProductFinder(db *database.Database) *ProductFinder {
	return &ProductFinder{db: db}
}

// FindByID returns the catalog product as a membership read model.
// Returns the catalog's ErrProductNotFound when no such product exists.
func (f *ProductFinder) FindByID(ctx context.Context, productID uuid.UUID) (*models.ListProduct, error) {
	const q = `
		SELECT id, name, price, quantity, COALESCE(description, '')
		FROM products
		WHERE id = $1`

	var p models.ListProduct
	err := f.db.DB().QueryRowContext(ctx, q, productID).Scan(
		&p.ID, &p.Name, &p.Price, &p.Quantity, &p.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return &p, nil
}
