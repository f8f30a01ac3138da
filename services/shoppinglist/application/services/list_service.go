package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	pkgcache "github.com/ghuser/listkeeper/pkg/cache"
	listdomain "github.com/ghuser/listkeeper/services/shoppinglist/domain"
	"github.com/ghuser/listkeeper/services/shoppinglist/domain/models"
	"github.com/ghuser/listkeeper/services/shoppinglist/domain/repositories"
)

// ListHeaderCache is the port to the Redis read model for list headers.
// Keys are owner-scoped, so a hit already proves ownership; membership is
// never cached and is read from Postgres on every request.
type ListHeaderCache interface {
	Get(ctx context.Context, ownerID, listID uuid.UUID) (*pkgcache.CachedList, error)
	Set(ctx context.Context, list *pkgcache.CachedList) error
	Delete(ctx context.Context, ownerID, listID uuid.UUID) error
}

// ListService enforces ownership, lifecycle, and membership rules around
// every shopping-list operation. It is stateless: each call is a function of
// the caller's identity and the currently persisted state.
//
// Every mutating path checks ownership before lifecycle and membership, so a
// non-owner can never infer whether a list is closed or what it contains from
// the error they receive. The initial lookup is unavoidable (ownership cannot
// be evaluated without loading the record), but no content leaks past it.
type ListService struct {
	repo     repositories.ListRepository
	products repositories.ProductFinder
	cache    ListHeaderCache
}

// NewListService returns a ListService wired with the given repository,
// catalog port, and header cache. The cache may be nil.
func NewListService(repo repositories.ListRepository, products repositories.ProductFinder, cache ListHeaderCache) *ListService {
	return &ListService{repo: repo, products: products, cache: cache}
}

// List returns all lists owned by userID, each with its product set loaded.
// There is no cross-user visibility.
func (s *ListService) List(ctx context.Context, userID uuid.UUID) ([]*models.ShoppingList, error) {
	lists, err := s.repo.FindByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list shopping lists: %w", err)
	}
	return lists, nil
}

// Create validates name and persists a new open, empty list owned by userID.
func (s *ListService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.ShoppingList, error) {
	listName, err := models.NewListName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", listdomain.ErrInvalidListName, err)
	}

	list, err := models.NewShoppingList(userID, listName)
	if err != nil {
		return nil, fmt.Errorf("create shopping list: %w", err)
	}

	if err := s.repo.Save(ctx, list); err != nil {
		return nil, fmt.Errorf("save shopping list: %w", err)
	}

	listsCreatedTotal.Inc()
	return list, nil
}

// Get returns the list with its product set when userID owns it.
// Returns ErrListNotFound or ErrNotOwner otherwise.
//
// The list header is served read-through: a cache hit (possible only under
// the owner's own key) skips the header query, a miss falls back to Postgres
// and re-warms the entry. The product set always comes from Postgres.
func (s *ListService) Get(ctx context.Context, userID, listID uuid.UUID) (*models.ShoppingList, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, userID, listID); err == nil {
			products, err := s.repo.FindProducts(ctx, listID)
			if err == nil {
				return cachedToModel(cached, products), nil
			}
		}
	}

	list, err := s.repo.GetByID(ctx, listID, true)
	if err != nil {
		return nil, err
	}
	if !list.OwnedBy(userID) {
		return nil, listdomain.ErrNotOwner
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, modelToCached(list))
	}
	return list, nil
}

// AddProduct adds productID to the list's membership set.
//
// Preconditions are evaluated in a fixed order — list lookup, product lookup,
// ownership, lifecycle, duplicate membership — and the first violated one
// determines the error the caller sees. Do not reorder.
func (s *ListService) AddProduct(ctx context.Context, userID, listID, productID uuid.UUID) error {
	list, err := s.repo.GetByID(ctx, listID, true)
	if err != nil {
		return err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}
	if !list.OwnedBy(userID) {
		rejectedMutationsTotal.WithLabelValues("add_product", "not_owner").Inc()
		return listdomain.ErrNotOwner
	}
	if list.Closed() {
		rejectedMutationsTotal.WithLabelValues("add_product", "closed").Inc()
		return listdomain.ErrListClosed
	}
	if list.Contains(productID) {
		rejectedMutationsTotal.WithLabelValues("add_product", "duplicate").Inc()
		return listdomain.ErrProductAlreadyOnList
	}

	if err := s.repo.AddProduct(ctx, listID, productID); err != nil {
		return fmt.Errorf("add product to list: %w", err)
	}
	return nil
}

// RemoveProduct removes productID from the list's membership set.
// Same precondition order as AddProduct with the membership check inverted.
func (s *ListService) RemoveProduct(ctx context.Context, userID, listID, productID uuid.UUID) error {
	list, err := s.repo.GetByID(ctx, listID, true)
	if err != nil {
		return err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return err
	}
	if !list.OwnedBy(userID) {
		rejectedMutationsTotal.WithLabelValues("remove_product", "not_owner").Inc()
		return listdomain.ErrNotOwner
	}
	if list.Closed() {
		rejectedMutationsTotal.WithLabelValues("remove_product", "closed").Inc()
		return listdomain.ErrListClosed
	}
	if !list.Contains(productID) {
		rejectedMutationsTotal.WithLabelValues("remove_product", "not_member").Inc()
		return listdomain.ErrProductNotOnList
	}

	if err := s.repo.RemoveProduct(ctx, listID, productID); err != nil {
		return fmt.Errorf("remove product from list: %w", err)
	}
	return nil
}

// Checkout transitions the list OPEN → CLOSED exactly once, stamping the
// closed-at timestamp. A repeat checkout is rejected with
// ErrListAlreadyClosed, never silently accepted.
//
// The read-check-write sequence is not serialized against concurrent
// checkouts; two racing calls can both pass the check and the later write
// degrades to a no-op status update.
func (s *ListService) Checkout(ctx context.Context, userID, listID uuid.UUID) (*models.ShoppingList, error) {
	list, err := s.repo.GetByID(ctx, listID, false)
	if err != nil {
		return nil, err
	}
	if !list.OwnedBy(userID) {
		rejectedMutationsTotal.WithLabelValues("checkout", "not_owner").Inc()
		return nil, listdomain.ErrNotOwner
	}
	if err := list.Close(time.Now()); err != nil {
		rejectedMutationsTotal.WithLabelValues("checkout", "closed").Inc()
		return nil, err
	}

	if err := s.repo.SetClosed(ctx, list.ID, *list.ClosedAt); err != nil {
		return nil, fmt.Errorf("close shopping list: %w", err)
	}

	// Drop the cached header so the CLOSED status is visible immediately;
	// the next read repopulates it.
	if s.cache != nil {
		_ = s.cache.Delete(ctx, list.OwnerID, list.ID)
	}

	checkoutsTotal.Inc()
	return list, nil
}

func cachedToModel(cached *pkgcache.CachedList, products []models.ListProduct) *models.ShoppingList {
	if products == nil {
		products = []models.ListProduct{}
	}
	return &models.ShoppingList{
		ID:        cached.ID,
		OwnerID:   cached.OwnerID,
		Name:      models.ListName(cached.Name),
		Status:    models.Status(cached.Status),
		ClosedAt:  cached.ClosedAt,
		CreatedAt: cached.CreatedAt,
		Products:  products,
	}
}

func modelToCached(list *models.ShoppingList) *pkgcache.CachedList {
	return &pkgcache.CachedList{
		ID:        list.ID,
		OwnerID:   list.OwnerID,
		Name:      list.Name.String(),
		Status:    string(list.Status),
		ClosedAt:  list.ClosedAt,
		CreatedAt: list.CreatedAt,
	}
}
