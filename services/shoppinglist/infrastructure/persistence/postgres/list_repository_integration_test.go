package postgres

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/ghuser/listkeeper/pkg/config"
	"github.com/ghuser/listkeeper/pkg/database"
	"github.com/ghuser/listkeeper/pkg/logger"
	catalogdomain "github.com/ghuser/listkeeper/services/catalog/domain"
	listdomain "github.com/ghuser/listkeeper/services/shoppinglist/domain"
	"github.com/ghuser/listkeeper/services/shoppinglist/domain/models"
)

// setupTestDB starts a throwaway Postgres container and applies the goose
// migrations. Skipped in -short mode.
func setupTestDB(t *testing.T) *database.Database {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	log := logger.New(&config.Config{LogLevel: "error"})
	db, err := database.NewPool(ctx, dsn, log)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(db.Close)

	goose.SetBaseFS(os.DirFS("../../../../../migrations/shopping"))
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("goose dialect: %v", err)
	}
	if err := goose.Up(db.DB(), "."); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return db
}

func insertUser(t *testing.T, db *database.Database) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.DB().Exec(
		`INSERT INTO users (id, name, email, password_hash, password_salt, created_at)
		 VALUES ($1, $2, $3, $4, $5, now())`,
		id, "Test User", id.String()+"@example.com", []byte("hash"), []byte("salt"),
	)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return id
}

func insertProduct(t *testing.T, db *database.Database, name string) uuid.UUID {
	t.Helper()
	id := uuid.New()
	_, err := db.DB().Exec(
		`INSERT INTO products (id, name, price, quantity, created_at, updated_at)
		 VALUES ($1, $2, 349, 10, now(), now())`,
		id, name,
	)
	if err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return id
}

func newList(t *testing.T, ownerID uuid.UUID, name string) *models.ShoppingList {
	t.Helper()
	list, err := models.NewShoppingList(ownerID, models.ListName(name))
	if err != nil {
		t.Fatalf("new list: %v", err)
	}
	return list
}

func TestListRepository_Postgres(t *testing.T) {
	db := setupTestDB(t)
	// No event bus in the repository under test; persistence is exercised alone.
	repo := NewListRepository(db, nil)
	finder := NewProductFinder(db)
	ctx := context.Background()

	t.Run("Save and GetByID round trip", func(t *testing.T) {
		ownerID := insertUser(t, db)
		list := newList(t, ownerID, "Weekly")

		if err := repo.Save(ctx, list); err != nil {
			t.Fatalf("save: %v", err)
		}

		got, err := repo.GetByID(ctx, list.ID, true)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.OwnerID != ownerID || got.Name.String() != "Weekly" {
			t.Fatalf("round trip mismatch: %+v", got)
		}
		if got.Status != models.StatusOpen || got.ClosedAt != nil {
			t.Fatalf("expected open list, got %+v", got)
		}
		if len(got.Products) != 0 {
			t.Fatalf("expected empty product set, got %d", len(got.Products))
		}
	})

	t.Run("GetByID unknown returns ErrListNotFound", func(t *testing.T) {
		_, err := repo.GetByID(ctx, uuid.New(), false)
		if !errors.Is(err, listdomain.ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("AddProduct is idempotent at the storage level", func(t *testing.T) {
		ownerID := insertUser(t, db)
		productID := insertProduct(t, db, "Oat milk")
		list := newList(t, ownerID, "Weekly")
		if err := repo.Save(ctx, list); err != nil {
			t.Fatalf("save: %v", err)
		}

		if err := repo.AddProduct(ctx, list.ID, productID); err != nil {
			t.Fatalf("add: %v", err)
		}
		// The composite primary key absorbs the duplicate insert.
		if err := repo.AddProduct(ctx, list.ID, productID); err != nil {
			t.Fatalf("duplicate add: %v", err)
		}

		got, err := repo.GetByID(ctx, list.ID, true)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(got.Products) != 1 {
			t.Fatalf("expected exactly 1 membership row, got %d", len(got.Products))
		}
		if got.Products[0].Name != "Oat milk" {
			t.Fatalf("expected catalog snapshot, got %+v", got.Products[0])
		}
	})

	t.Run("AddProduct to unknown list maps the FK violation", func(t *testing.T) {
		productID := insertProduct(t, db, "Bread")
		err := repo.AddProduct(ctx, uuid.New(), productID)
		if !errors.Is(err, listdomain.ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("FindProducts reads the membership set alone", func(t *testing.T) {
		ownerID := insertUser(t, db)
		productID := insertProduct(t, db, "Coffee")
		list := newList(t, ownerID, "Weekly")
		if err := repo.Save(ctx, list); err != nil {
			t.Fatalf("save: %v", err)
		}
		if err := repo.AddProduct(ctx, list.ID, productID); err != nil {
			t.Fatalf("add: %v", err)
		}

		products, err := repo.FindProducts(ctx, list.ID)
		if err != nil {
			t.Fatalf("find products: %v", err)
		}
		if len(products) != 1 || products[0].Name != "Coffee" {
			t.Fatalf("unexpected membership set: %+v", products)
		}

		empty, err := repo.FindProducts(ctx, uuid.New())
		if err != nil {
			t.Fatalf("find products: %v", err)
		}
		if len(empty) != 0 {
			t.Fatalf("expected empty set for unknown list, got %d", len(empty))
		}
	})

	t.Run("RemoveProduct deletes the membership row", func(t *testing.T) {
		ownerID := insertUser(t, db)
		productID := insertProduct(t, db, "Eggs")
		list := newList(t, ownerID, "Weekly")
		if err := repo.Save(ctx, list); err != nil {
			t.Fatalf("save: %v", err)
		}
		if err := repo.AddProduct(ctx, list.ID, productID); err != nil {
			t.Fatalf("add: %v", err)
		}

		if err := repo.RemoveProduct(ctx, list.ID, productID); err != nil {
			t.Fatalf("remove: %v", err)
		}
		got, _ := repo.GetByID(ctx, list.ID, true)
		if len(got.Products) != 0 {
			t.Fatalf("expected empty set after remove, got %d", len(got.Products))
		}
	})

	t.Run("SetClosed persists status and timestamp", func(t *testing.T) {
		ownerID := insertUser(t, db)
		list := newList(t, ownerID, "Weekly")
		if err := repo.Save(ctx, list); err != nil {
			t.Fatalf("save: %v", err)
		}

		closedAt := time.Now().UTC().Truncate(time.Millisecond)
		if err := repo.SetClosed(ctx, list.ID, closedAt); err != nil {
			t.Fatalf("set closed: %v", err)
		}

		got, err := repo.GetByID(ctx, list.ID, false)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Status != models.StatusClosed {
			t.Fatalf("expected CLOSED, got %q", got.Status)
		}
		if got.ClosedAt == nil || !got.ClosedAt.Equal(closedAt) {
			t.Fatalf("ClosedAt mismatch: %v vs %v", got.ClosedAt, closedAt)
		}
	})

	t.Run("FindByOwner returns lists in insertion order with products", func(t *testing.T) {
		ownerID := insertUser(t, db)
		otherID := insertUser(t, db)
		productID := insertProduct(t, db, "Milk")

		first := newList(t, ownerID, "First")
		second := newList(t, ownerID, "Second")
		second.CreatedAt = first.CreatedAt.Add(time.Second)
		foreign := newList(t, otherID, "Foreign")
		for _, l := range []*models.ShoppingList{first, second, foreign} {
			if err := repo.Save(ctx, l); err != nil {
				t.Fatalf("save: %v", err)
			}
		}
		if err := repo.AddProduct(ctx, first.ID, productID); err != nil {
			t.Fatalf("add: %v", err)
		}

		lists, err := repo.FindByOwner(ctx, ownerID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(lists) != 2 {
			t.Fatalf("expected 2 lists, got %d", len(lists))
		}
		if lists[0].Name.String() != "First" || lists[1].Name.String() != "Second" {
			t.Fatalf("unexpected order: %q, %q", lists[0].Name, lists[1].Name)
		}
		if len(lists[0].Products) != 1 {
			t.Fatalf("expected product loaded on first list, got %d", len(lists[0].Products))
		}
	})

	t.Run("ProductFinder resolves catalog rows", func(t *testing.T) {
		productID := insertProduct(t, db, "Butter")

		p, err := finder.FindByID(ctx, productID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if p.Name != "Butter" || p.Price != 349 {
			t.Fatalf("unexpected product: %+v", p)
		}

		_, err = finder.FindByID(ctx, uuid.New())
		if !errors.Is(err, catalogdomain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}
