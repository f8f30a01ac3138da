package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/listkeeper/pkg/database"
	"github.com/ghuser/listkeeper/pkg/events"
	listdomain "github.com/ghuser/listkeeper/services/shoppinglist/domain"
	domainevents "github.com/ghuser/listkeeper/services/shoppinglist/domain/events"
	"github.com/ghuser/listkeeper/services/shoppinglist/domain/models"
)

// ListRepository implements repositories.ListRepository against PostgreSQL.
//
// Membership rows live in shopping_list_products with a composite primary
// key on (shopping_list_id, product_id); that key is the storage-level
// backstop against duplicate membership.
type ListRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewListRepository returns a ListRepository backed by the given connection
// pool and event bus. The bus is used to publish list lifecycle events in the
// same transaction as the write.
func NewListRepository(db *database.Database, bus *events.EventBus) *ListRepository {
	return &ListRepository{db: db, bus: bus}
}

// Save persists a new ShoppingList and publishes a ListCreatedEvent within
// the same transaction.
func (r *ListRepository) Save(ctx context.Context, list *models.ShoppingList) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const q = `
			INSERT INTO shopping_lists (id, user_id, name, status, closed_at, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`
		if _, err := tx.ExecContext(ctx, q,
			list.ID, list.OwnerID, list.Name.String(), string(list.Status), list.ClosedAt, list.CreatedAt,
		); err != nil {
			return fmt.Errorf("insert shopping list: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, list); err != nil {
				return fmt.Errorf("publish list created: %w", err)
			}
		}
		return nil
	})
}

// GetByID retrieves a list by ID. Returns ErrListNotFound if not found.
func (r *ListRepository) GetByID(ctx context.Context, id uuid.UUID, withProducts bool) (*models.ShoppingList, error) {
	const q = `
		SELECT id, user_id, name, status, closed_at, created_at
		FROM shopping_lists
		WHERE id = $1`

	list, err := scanList(r.db.DB().QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, listdomain.ErrListNotFound
		}
		return nil, fmt.Errorf("query shopping list: %w", err)
	}

	if withProducts {
		products, err := r.loadProducts(ctx, []uuid.UUID{list.ID})
		if err != nil {
			return nil, err
		}
		list.Products = products[list.ID]
	}
	return list, nil
}

// FindByOwner retrieves all lists owned by ownerID in insertion order, with
// their product sets loaded.
func (r *ListRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.ShoppingList, error) {
	const q = `
		SELECT id, user_id, name, status, closed_at, created_at
		FROM shopping_lists
		WHERE user_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.DB().QueryContext(ctx, q, ownerID)
	if err != nil {
		return nil, fmt.Errorf("query shopping lists: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var lists []*models.ShoppingList
	var ids []uuid.UUID
	for rows.Next() {
		list, err := scanList(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shopping list: %w", err)
		}
		lists = append(lists, list)
		ids = append(ids, list.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate shopping lists: %w", err)
	}

	if len(ids) > 0 {
		products, err := r.loadProducts(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, list := range lists {
			list.Products = products[list.ID]
		}
	}
	return lists, nil
}

// AddProduct inserts the membership row. ON CONFLICT DO NOTHING makes the
// write idempotent at the storage level; uniqueness is decided by the caller
// before this point and backstopped by the composite primary key.
func (r *ListRepository) AddProduct(ctx context.Context, listID, productID uuid.UUID) error {
	const q = `
		INSERT INTO shopping_list_products (shopping_list_id, product_id)
		VALUES ($1, $2)
		ON CONFLICT (shopping_list_id, product_id) DO NOTHING`

	if _, err := r.db.DB().ExecContext(ctx, q, listID, productID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Referenced row vanished between the service's check and this write.
			return listdomain.ErrListNotFound
		}
		return fmt.Errorf("insert list membership: %w", err)
	}
	return nil
}

// RemoveProduct deletes the membership row; no-op if absent.
func (r *ListRepository) RemoveProduct(ctx context.Context, listID, productID uuid.UUID) error {
	const q = `
		DELETE FROM shopping_list_products
		WHERE shopping_list_id = $1 AND product_id = $2`

	if _, err := r.db.DB().ExecContext(ctx, q, listID, productID); err != nil {
		return fmt.Errorf("delete list membership: %w", err)
	}
	return nil
}

// SetClosed updates status and closed-at in a single row write and publishes
// a ListCheckedOutEvent within the same transaction.
func (r *ListRepository) SetClosed(ctx context.Context, listID uuid.UUID, closedAt time.Time) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		const q = `
			UPDATE shopping_lists
			SET status = $2, closed_at = $3
			WHERE id = $1
			RETURNING user_id`

		var ownerID uuid.UUID
		if err := tx.QueryRowContext(ctx, q, listID, string(models.StatusClosed), closedAt).Scan(&ownerID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return listdomain.ErrListNotFound
			}
			return fmt.Errorf("close shopping list: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCheckedOut(tx, listID, ownerID, closedAt); err != nil {
				return fmt.Errorf("publish list checked out: %w", err)
			}
		}
		return nil
	})
}

// FindProducts retrieves the membership product set of a single list. An
// unknown list yields an empty set, same as a known empty one.
func (r *ListRepository) FindProducts(ctx context.Context, listID uuid.UUID) ([]models.ListProduct, error) {
	products, err := r.loadProducts(ctx, []uuid.UUID{listID})
	if err != nil {
		return nil, err
	}
	return products[listID], nil
}

// loadProducts fetches the membership product sets for the given list IDs in
// one join query, grouped by list.
func (r *ListRepository) loadProducts(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID][]models.ListProduct, error) {
	const q = `
		SELECT slp.shopping_list_id, p.id, p.name, p.price, p.quantity, COALESCE(p.description, '')
		FROM shopping_list_products slp
		JOIN products p ON p.id = slp.product_id
		WHERE slp.shopping_list_id = ANY($1::uuid[])
		ORDER BY p.name, p.id`

	// database/sql has no native uuid-slice support; pass a postgres array literal.
	idStrs := make([]string, len(listIDs))
	for i, id := range listIDs {
		idStrs[i] = id.String()
	}
	idArray := "{" + strings.Join(idStrs, ",") + "}"

	rows, err := r.db.DB().QueryContext(ctx, q, idArray)
	if err != nil {
		return nil, fmt.Errorf("query list memberships: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	out := make(map[uuid.UUID][]models.ListProduct, len(listIDs))
	for rows.Next() {
		var listID uuid.UUID
		var p models.ListProduct
		if err := rows.Scan(&listID, &p.ID, &p.Name, &p.Price, &p.Quantity, &p.Description); err != nil {
			return nil, fmt.Errorf("scan list membership: %w", err)
		}
		out[listID] = append(out[listID], p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate list memberships: %w", err)
	}
	return out, nil
}

func (r *ListRepository) publishCreated(tx *sql.Tx, list *models.ShoppingList) error {
	event := domainevents.ListCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ListID:     list.ID,
		OwnerID:    list.OwnerID,
		Name:       list.Name.String(),
		OccurredAt: list.CreatedAt,
	}
	return r.publish(tx, domainevents.TopicListCreated, event.EventID, event)
}

func (r *ListRepository) publishCheckedOut(tx *sql.Tx, listID, ownerID uuid.UUID, closedAt time.Time) error {
	event := domainevents.ListCheckedOutEvent{
		EventID:    uuid.New(),
		Version:    1,
		ListID:     listID,
		OwnerID:    ownerID,
		OccurredAt: closedAt,
	}
	return r.publish(tx, domainevents.TopicListCheckedOut, event.EventID, event)
}

func (r *ListRepository) publish(tx *sql.Tx, topic string, eventID uuid.UUID, event any) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(topic, msg)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanList(row rowScanner) (*models.ShoppingList, error) {
	var list models.ShoppingList
	var name, status string
	var closedAt sql.NullTime
	if err := row.Scan(&list.ID, &list.OwnerID, &name, &status, &closedAt, &list.CreatedAt); err != nil {
		return nil, err
	}
	list.Name = models.ListName(name)
	list.Status = models.Status(status)
	if closedAt.Valid {
		t := closedAt.Time
		list.ClosedAt = &t
	}
	list.Products = []models.ListProduct{}
	return &list, nil
}
