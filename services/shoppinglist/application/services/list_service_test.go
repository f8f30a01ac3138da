package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/listkeeper/pkg/cache"
	catalogdomain "github.com/ghuser/listkeeper/services/catalog/domain"
	listdomain "github.com/ghuser/listkeeper/services/shoppinglist/domain"
	"github.com/ghuser/listkeeper/services/shoppinglist/domain/models"
)

// fakeListRepository is an in-memory ListRepository for service-level tests.
type fakeListRepository struct {
	lists   map[uuid.UUID]*models.ShoppingList
	members map[uuid.UUID][]uuid.UUID // listID -> productIDs
	catalog *fakeProductFinder
}

func newFakeListRepository(catalog *fakeProductFinder) *fakeListRepository {
	return &fakeListRepository{
		lists:   make(map[uuid.UUID]*models.ShoppingList),
		members: make(map[uuid.UUID][]uuid.UUID),
		catalog: catalog,
	}
}

func (r *fakeListRepository) Save(_ context.Context, list *models.ShoppingList) error {
	stored := *list
	r.lists[list.ID] = &stored
	return nil
}

func (r *fakeListRepository) GetByID(_ context.Context, id uuid.UUID, withProducts bool) (*models.ShoppingList, error) {
	stored, ok := r.lists[id]
	if !ok {
		return nil, listdomain.ErrListNotFound
	}
	list := *stored
	list.Products = []models.ListProduct{}
	if withProducts {
		for _, productID := range r.members[id] {
			list.Products = append(list.Products, *r.catalog.products[productID])
		}
	}
	return &list, nil
}

func (r *fakeListRepository) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.ShoppingList, error) {
	var out []*models.ShoppingList
	for id, stored := range r.lists {
		if stored.OwnerID != ownerID {
			continue
		}
		list, err := r.GetByID(ctx, id, true)
		if err != nil {
			return nil, err
		}
		out = append(out, list)
	}
	return out, nil
}

func (r *fakeListRepository) FindProducts(_ context.Context, listID uuid.UUID) ([]models.ListProduct, error) {
	var out []models.ListProduct
	for _, productID := range r.members[listID] {
		out = append(out, *r.catalog.products[productID])
	}
	return out, nil
}

func (r *fakeListRepository) AddProduct(_ context.Context, listID, productID uuid.UUID) error {
	for _, id := range r.members[listID] {
		if id == productID {
			return nil // idempotent, matches ON CONFLICT DO NOTHING
		}
	}
	r.members[listID] = append(r.members[listID], productID)
	return nil
}

func (r *fakeListRepository) RemoveProduct(_ context.Context, listID, productID uuid.UUID) error {
	members := r.members[listID]
	for i, id := range members {
		if id == productID {
			r.members[listID] = append(members[:i], members[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeListRepository) SetClosed(_ context.Context, listID uuid.UUID, closedAt time.Time) error {
	stored, ok := r.lists[listID]
	if !ok {
		return listdomain.ErrListNotFound
	}
	stored.Status = models.StatusClosed
	at := closedAt.UTC()
	stored.ClosedAt = &at
	return nil
}

// fakeProductFinder is an in-memory catalog port.
type fakeProductFinder struct {
	products map[uuid.UUID]*models.ListProduct
}

func newFakeProductFinder() *fakeProductFinder {
	return &fakeProductFinder{products: make(map[uuid.UUID]*models.ListProduct)}
}

func (f *fakeProductFinder) add(name string) uuid.UUID {
	id := uuid.New()
	f.products[id] = &models.ListProduct{ID: id, Name: name, Price: 349, Quantity: 10}
	return id
}

func (f *fakeProductFinder) FindByID(_ context.Context, productID uuid.UUID) (*models.ListProduct, error) {
	p, ok := f.products[productID]
	if !ok {
		return nil, catalogdomain.ErrProductNotFound
	}
	return p, nil
}

// fakeListCache is an in-memory ListHeaderCache keyed like the Redis one,
// by owner and list ID.
type fakeListCache struct {
	entries map[string]*pkgcache.CachedList
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{entries: make(map[string]*pkgcache.CachedList)}
}

func (c *fakeListCache) key(ownerID, listID uuid.UUID) string {
	return ownerID.String() + ":" + listID.String()
}

func (c *fakeListCache) Get(_ context.Context, ownerID, listID uuid.UUID) (*pkgcache.CachedList, error) {
	entry, ok := c.entries[c.key(ownerID, listID)]
	if !ok {
		return nil, redis.Nil
	}
	return entry, nil
}

func (c *fakeListCache) Set(_ context.Context, list *pkgcache.CachedList) error {
	c.entries[c.key(list.OwnerID, list.ID)] = list
	return nil
}

func (c *fakeListCache) Delete(_ context.Context, ownerID, listID uuid.UUID) error {
	delete(c.entries, c.key(ownerID, listID))
	return nil
}

func newTestService() (*ListService, *fakeListRepository, *fakeProductFinder) {
	catalog := newFakeProductFinder()
	repo := newFakeListRepository(catalog)
	return NewListService(repo, catalog, nil), repo, catalog
}

func newCachedTestService() (*ListService, *fakeListRepository, *fakeListCache) {
	catalog := newFakeProductFinder()
	repo := newFakeListRepository(catalog)
	cache := newFakeListCache()
	return NewListService(repo, catalog, cache), repo, cache
}

func TestListService_Create(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates an open empty list owned by the caller", func(t *testing.T) {
		svc, _, _ := newTestService()

		list, err := svc.Create(ctx, userID, "Weekly")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.Status != models.StatusOpen {
			t.Fatalf("expected status %q, got %q", models.StatusOpen, list.Status)
		}
		if list.ClosedAt != nil {
			t.Fatalf("expected nil ClosedAt, got %v", list.ClosedAt)
		}
		if list.OwnerID != userID {
			t.Fatalf("expected owner %v, got %v", userID, list.OwnerID)
		}
		if len(list.Products) != 0 {
			t.Fatalf("expected empty product set, got %d", len(list.Products))
		}
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create(ctx, userID, "")
		if !errors.Is(err, listdomain.ErrInvalidListName) {
			t.Fatalf("expected ErrInvalidListName, got %v", err)
		}
	})

	t.Run("rejects a name over 255 characters", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create(ctx, userID, strings.Repeat("x", 256))
		if !errors.Is(err, listdomain.ErrInvalidListName) {
			t.Fatalf("expected ErrInvalidListName, got %v", err)
		}
	})
}

func TestListService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only the caller's lists", func(t *testing.T) {
		svc, _, _ := newTestService()
		alice, bob := uuid.New(), uuid.New()

		if _, err := svc.Create(ctx, alice, "Groceries"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Create(ctx, alice, "Hardware"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Create(ctx, bob, "Party"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lists, err := svc.List(ctx, alice)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lists) != 2 {
			t.Fatalf("expected 2 lists for alice, got %d", len(lists))
		}
		for _, l := range lists {
			if l.OwnerID != alice {
				t.Fatalf("foreign list leaked into alice's index: %v", l.ID)
			}
		}
	})

	t.Run("returns empty for a user with no lists", func(t *testing.T) {
		svc, _, _ := newTestService()

		lists, err := svc.List(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lists) != 0 {
			t.Fatalf("expected no lists, got %d", len(lists))
		}
	})
}

func TestListService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the owner's list", func(t *testing.T) {
		svc, _, _ := newTestService()
		userID := uuid.New()
		created, _ := svc.Create(ctx, userID, "Weekly")

		got, err := svc.Get(ctx, userID, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != created.ID {
			t.Fatalf("expected list %v, got %v", created.ID, got.ID)
		}
	})

	t.Run("returns ErrListNotFound for an unknown list", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Get(ctx, uuid.New(), uuid.New())
		if !errors.Is(err, listdomain.ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("rejects another user's access with the ownership error", func(t *testing.T) {
		svc, _, _ := newTestService()
		owner, stranger := uuid.New(), uuid.New()
		created, _ := svc.Create(ctx, owner, "Weekly")

		_, err := svc.Get(ctx, stranger, created.ID)
		if !errors.Is(err, listdomain.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
		if err.Error() != "You do not have permission to access this shopping list" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})
}

func TestListService_AddProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a product and it appears on subsequent reads", func(t *testing.T) {
		svc, _, catalog := newTestService()
		userID := uuid.New()
		list, _ := svc.Create(ctx, userID, "Weekly")
		productID := catalog.add("Oat milk")

		if err := svc.AddProduct(ctx, userID, list.ID, productID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := svc.Get(ctx, userID, list.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Contains(productID) {
			t.Fatal("expected product on the list after add")
		}
		if got.Products[0].Name != "Oat milk" {
			t.Fatalf("expected catalog snapshot on membership, got %q", got.Products[0].Name)
		}
	})

	t.Run("unknown list fails before the product is consulted", func(t *testing.T) {
		svc, _, _ := newTestService()

		err := svc.AddProduct(ctx, uuid.New(), uuid.New(), uuid.New())
		if !errors.Is(err, listdomain.ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("unknown product fails before ownership", func(t *testing.T) {
		svc, _, _ := newTestService()
		owner, stranger := uuid.New(), uuid.New()
		list, _ := svc.Create(ctx, owner, "Weekly")

		// The stranger would also fail ownership; the product lookup wins.
		err := svc.AddProduct(ctx, stranger, list.ID, uuid.New())
		if !errors.Is(err, catalogdomain.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("non-owner is rejected before the lifecycle check", func(t *testing.T) {
		svc, _, catalog := newTestService()
		owner, stranger := uuid.New(), uuid.New()
		list, _ := svc.Create(ctx, owner, "Weekly")
		productID := catalog.add("Oat milk")
		if _, err := svc.Checkout(ctx, owner, list.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The list is closed, but the stranger must see the ownership error.
		err := svc.AddProduct(ctx, stranger, list.ID, productID)
		if !errors.Is(err, listdomain.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("closed list rejects adds with the closed error", func(t *testing.T) {
		svc, _, catalog := newTestService()
		userID := uuid.New()
		list, _ := svc.Create(ctx, userID, "Weekly")
		productID := catalog.add("Oat milk")
		if err := svc.AddProduct(ctx, userID, list.ID, productID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Checkout(ctx, userID, list.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Already a member too; the lifecycle check wins over duplicate.
		err := svc.AddProduct(ctx, userID, list.ID, productID)
		if !errors.Is(err, listdomain.ErrListClosed) {
			t.Fatalf("expected ErrListClosed, got %v", err)
		}
		if err.Error() != "This shopping list is closed" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("duplicate add is rejected and leaves membership unchanged", func(t *testing.T) {
		svc, repo, catalog := newTestService()
		userID := uuid.New()
		list, _ := svc.Create(ctx, userID, "Weekly")
		productID := catalog.add("Oat milk")

		if err := svc.AddProduct(ctx, userID, list.ID, productID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := svc.AddProduct(ctx, userID, list.ID, productID)
		if !errors.Is(err, listdomain.ErrProductAlreadyOnList) {
			t.Fatalf("expected ErrProductAlreadyOnList, got %v", err)
		}
		if err.Error() != "This product is already on the shopping list" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
		if len(repo.members[list.ID]) != 1 {
			t.Fatalf("membership changed by rejected add: %d entries", len(repo.members[list.ID]))
		}
	})
}

func TestListService_RemoveProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("add then remove restores the empty set", func(t *testing.T) {
		svc, _, catalog := newTestService()
		userID := uuid.New()
		list, _ := svc.Create(ctx, userID, "Weekly")
		productID := catalog.add("Oat milk")

		if err := svc.AddProduct(ctx, userID, list.ID, productID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.RemoveProduct(ctx, userID, list.ID, productID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, _ := svc.Get(ctx, userID, list.ID)
		if got.Contains(productID) {
			t.Fatal("expected product gone after remove")
		}
	})

	t.Run("removing a non-member is rejected", func(t *testing.T) {
		svc, _, catalog := newTestService()
		userID := uuid.New()
		list, _ := svc.Create(ctx, userID, "Weekly")
		productID := catalog.add("Oat milk")

		err := svc.RemoveProduct(ctx, userID, list.ID, productID)
		if !errors.Is(err, listdomain.ErrProductNotOnList) {
			t.Fatalf("expected ErrProductNotOnList, got %v", err)
		}
		if err.Error() != "This product isn't on the shopping list" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("non-owner cannot remove", func(t *testing.T) {
		svc, _, catalog := newTestService()
		owner, stranger := uuid.New(), uuid.New()
		list, _ := svc.Create(ctx, owner, "Weekly")
		productID := catalog.add("Oat milk")
		if err := svc.AddProduct(ctx, owner, list.ID, productID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := svc.RemoveProduct(ctx, stranger, list.ID, productID)
		if !errors.Is(err, listdomain.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
	})

	t.Run("closed list rejects removes", func(t *testing.T) {
		svc, _, catalog := newTestService()
		userID := uuid.New()
		list, _ := svc.Create(ctx, userID, "Weekly")
		productID := catalog.add("Oat milk")
		if err := svc.AddProduct(ctx, userID, list.ID, productID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Checkout(ctx, userID, list.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		err := svc.RemoveProduct(ctx, userID, list.ID, productID)
		if !errors.Is(err, listdomain.ErrListClosed) {
			t.Fatalf("expected ErrListClosed, got %v", err)
		}
	})
}

func TestListService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("closes an open list and stamps the timestamp", func(t *testing.T) {
		svc, _, _ := newTestService()
		userID := uuid.New()
		list, _ := svc.Create(ctx, userID, "Weekly")

		before := time.Now().UTC()
		closed, err := svc.Checkout(ctx, userID, list.ID)
		after := time.Now().UTC()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if closed.Status != models.StatusClosed {
			t.Fatalf("expected status %q, got %q", models.StatusClosed, closed.Status)
		}
		if closed.ClosedAt == nil {
			t.Fatal("expected ClosedAt to be set")
		}
		if closed.ClosedAt.Before(before) || closed.ClosedAt.After(after) {
			t.Fatalf("ClosedAt %v not between %v and %v", closed.ClosedAt, before, after)
		}

		got, _ := svc.Get(ctx, userID, list.ID)
		if got.Status != models.StatusClosed {
			t.Fatal("close did not persist")
		}
	})

	t.Run("second checkout is rejected, never silently accepted", func(t *testing.T) {
		svc, _, _ := newTestService()
		userID := uuid.New()
		list, _ := svc.Create(ctx, userID, "Weekly")
		if _, err := svc.Checkout(ctx, userID, list.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := svc.Checkout(ctx, userID, list.ID)
		if !errors.Is(err, listdomain.ErrListAlreadyClosed) {
			t.Fatalf("expected ErrListAlreadyClosed, got %v", err)
		}
		if err.Error() != "This shopping list is already closed" {
			t.Fatalf("unexpected message: %q", err.Error())
		}
	})

	t.Run("non-owner cannot checkout", func(t *testing.T) {
		svc, _, _ := newTestService()
		owner, stranger := uuid.New(), uuid.New()
		list, _ := svc.Create(ctx, owner, "Weekly")

		_, err := svc.Checkout(ctx, stranger, list.ID)
		if !errors.Is(err, listdomain.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}

		got, _ := svc.Get(ctx, owner, list.ID)
		if got.Status != models.StatusOpen {
			t.Fatal("rejected checkout must not change state")
		}
	})

	t.Run("unknown list returns ErrListNotFound", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Checkout(ctx, uuid.New(), uuid.New())
		if !errors.Is(err, listdomain.ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("closed list keeps its product set frozen", func(t *testing.T) {
		svc, _, catalog := newTestService()
		userID := uuid.New()
		list, _ := svc.Create(ctx, userID, "Weekly")
		member := catalog.add("Oat milk")
		other := catalog.add("Bread")
		if err := svc.AddProduct(ctx, userID, list.ID, member); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Checkout(ctx, userID, list.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if err := svc.AddProduct(ctx, userID, list.ID, other); !errors.Is(err, listdomain.ErrListClosed) {
			t.Fatalf("expected ErrListClosed, got %v", err)
		}
		if err := svc.RemoveProduct(ctx, userID, list.ID, member); !errors.Is(err, listdomain.ErrListClosed) {
			t.Fatalf("expected ErrListClosed, got %v", err)
		}

		got, _ := svc.Get(ctx, userID, list.ID)
		if len(got.Products) != 1 || got.Products[0].ID != member {
			t.Fatal("product set changed after close")
		}
	})
}

func TestListService_HeaderCache(t *testing.T) {
	ctx := context.Background()

	t.Run("hit serves the header from the cache", func(t *testing.T) {
		svc, repo, cache := newCachedTestService()
		userID := uuid.New()
		list, err := svc.Create(ctx, userID, "Weekly")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		// Seed a divergent cached name so the winning source is observable.
		if err := cache.Set(ctx, &pkgcache.CachedList{
			ID:        list.ID,
			OwnerID:   userID,
			Name:      "Cached name",
			Status:    string(models.StatusOpen),
			CreatedAt: list.CreatedAt,
		}); err != nil {
			t.Fatalf("seed cache: %v", err)
		}

		got, err := svc.Get(ctx, userID, list.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name.String() != "Cached name" {
			t.Fatalf("expected the cached header, got %q", got.Name)
		}
		if repo.lists[list.ID].Name.String() != "Weekly" {
			t.Fatal("stored list must be untouched")
		}
	})

	t.Run("hit still reads the product set from the store", func(t *testing.T) {
		svc, _, _ := newCachedTestService()
		userID := uuid.New()
		catalog := svc.products.(*fakeProductFinder)
		list, err := svc.Create(ctx, userID, "Weekly")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := svc.Get(ctx, userID, list.ID); err != nil { // warms the header
			t.Fatalf("warm read: %v", err)
		}

		productID := catalog.add("Oat milk")
		if err := svc.AddProduct(ctx, userID, list.ID, productID); err != nil {
			t.Fatalf("add product: %v", err)
		}

		got, err := svc.Get(ctx, userID, list.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Products) != 1 || got.Products[0].ID != productID {
			t.Fatalf("expected fresh membership on a cached read, got %+v", got.Products)
		}
	})

	t.Run("miss falls back to the store and warms the entry", func(t *testing.T) {
		svc, _, cache := newCachedTestService()
		userID := uuid.New()
		list, err := svc.Create(ctx, userID, "Weekly")
		if err != nil {
			t.Fatalf("create: %v", err)
		}

		got, err := svc.Get(ctx, userID, list.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name.String() != "Weekly" {
			t.Fatalf("unexpected list: %+v", got)
		}

		warmed, err := cache.Get(ctx, userID, list.ID)
		if err != nil {
			t.Fatalf("expected a warmed entry, got %v", err)
		}
		if warmed.Name != "Weekly" || warmed.Status != string(models.StatusOpen) {
			t.Fatalf("unexpected warmed entry: %+v", warmed)
		}
	})

	t.Run("owner-scoped keys never serve another user", func(t *testing.T) {
		svc, _, cache := newCachedTestService()
		ownerID := uuid.New()
		strangerID := uuid.New()
		list, err := svc.Create(ctx, ownerID, "Weekly")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := svc.Get(ctx, ownerID, list.ID); err != nil { // warms the owner's key
			t.Fatalf("warm read: %v", err)
		}

		_, err = svc.Get(ctx, strangerID, list.ID)
		if !errors.Is(err, listdomain.ErrNotOwner) {
			t.Fatalf("expected ErrNotOwner, got %v", err)
		}
		if _, err := cache.Get(ctx, strangerID, list.ID); !errors.Is(err, redis.Nil) {
			t.Fatal("a rejected read must not warm the stranger's key")
		}
	})

	t.Run("checkout drops the cached header", func(t *testing.T) {
		svc, _, cache := newCachedTestService()
		userID := uuid.New()
		list, err := svc.Create(ctx, userID, "Weekly")
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if _, err := svc.Get(ctx, userID, list.ID); err != nil {
			t.Fatalf("warm read: %v", err)
		}

		if _, err := svc.Checkout(ctx, userID, list.ID); err != nil {
			t.Fatalf("checkout: %v", err)
		}
		if _, err := cache.Get(ctx, userID, list.ID); !errors.Is(err, redis.Nil) {
			t.Fatal("cached header must be invalidated on checkout")
		}

		got, err := svc.Get(ctx, userID, list.ID)
		if err != nil {
			t.Fatalf("read after checkout: %v", err)
		}
		if got.Status != models.StatusClosed {
			t.Fatalf("expected CLOSED after checkout, got %q", got.Status)
		}
	})
}
