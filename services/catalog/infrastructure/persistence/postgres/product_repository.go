package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"

	"github.com/ghuser/listkeeper/pkg/database"
	"github.com/ghuser/listkeeper/pkg/events"
	catalogdomain "github.com/ghuser/listkeeper/services/catalog/domain"
	domainevents "github.com/ghuser/listkeeper/services/catalog/domain/events"
	"github.com/ghuser/listkeeper/services/catalog/domain/models"
	"github.com/ghuser/listkeeper/services/catalog/domain/repositories"
)

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
type ProductRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewProductRepository returns a ProductRepository backed by the given
// connection pool and event bus. The bus is used to publish
// ProductCreatedEvents after a successful save.
func NewProductRepository(database *database.Database, bus *events.EventBus) *ProductRepository {
	return &ProductRepository{db: database, bus: bus}
}

// Save persists a new Product and publishes a ProductCreatedEvent within the
// same transaction.
func (r *ProductRepository) Save(ctx context.Context, product *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO products (id, name, price, quantity, description, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

		if _, err := tx.ExecContext(ctx, q,
			product.ID,
			product.Name.String(),
			product.Price,
			product.Quantity,
			nullableDescription(product.Description),
			product.CreatedAt,
			product.UpdatedAt,
		); err != nil {
			return fmt.Errorf("insert product: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, product); err != nil {
				return fmt.Errorf("publish product created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a Product by ID. Returns ErrProductNotFound if not found.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	const q = `
		SELECT id, name, price, quantity, COALESCE(description, ''), created_at, updated_at
		FROM products
		WHERE id = $1`

	product, err := scanProduct(r.db.DB().QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, catalogdomain.ErrProductNotFound
		}
		return nil, fmt.Errorf("query product: %w", err)
	}
	return product, nil
}

// Find retrieves a paginated list of products and the total count.
func (r *ProductRepository) Find(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	const q = `
		SELECT id, name, price, quantity, COALESCE(description, ''), created_at, updated_at
		FROM products
		ORDER BY created_at, id
		LIMIT $1 OFFSET $2`

	rows, err := r.db.DB().QueryContext(ctx, q, opts.Limit, opts.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var products []*models.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate products: %w", err)
	}

	var total int
	if err := r.db.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}
	return products, total, nil
}

// Update persists attribute changes to an existing Product.
// Returns ErrProductNotFound if no matching product exists.
func (r *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	const q = `
		UPDATE products
		SET name = $2, price = $3, quantity = $4, description = $5, updated_at = $6
		WHERE id = $1`

	res, err := r.db.DB().ExecContext(ctx, q,
		product.ID,
		product.Name.String(),
		product.Price,
		product.Quantity,
		nullableDescription(product.Description),
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

// Delete removes a product by ID. Returns ErrProductNotFound if no matching
// product exists.
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.DB().ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return catalogdomain.ErrProductNotFound
	}
	return nil
}

func (r *ProductRepository) publishCreated(tx *sql.Tx, product *models.Product) error {
	event := domainevents.ProductCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ProductID:  product.ID,
		Name:       product.Name.String(),
		Price:      product.Price,
		Quantity:   product.Quantity,
		OccurredAt: product.CreatedAt,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicProductCreated, msg)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	var (
		p    models.Product
		name string
	)
	if err := row.Scan(&p.ID, &name, &p.Price, &p.Quantity, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.Name = models.ProductName(name)
	return &p, nil
}

// nullableDescription maps the empty string to NULL so the optional column
// stays NULL-backed.
func nullableDescription(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
