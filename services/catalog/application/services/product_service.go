package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/listkeeper/pkg/cache"
	catalogdomain "github.com/ghuser/listkeeper/services/catalog/domain"
	"github.com/ghuser/listkeeper/services/catalog/domain/models"
	"github.com/ghuser/listkeeper/services/catalog/domain/repositories"
)

// ProductService orchestrates catalog CRUD. Event publishing is handled by
// the repository layer (outbox pattern). Reads are served from Redis cache
// when available.
type ProductService struct {
	repo  repositories.ProductRepository
	cache *pkgcache.ProductCache
}

// NewProductService returns a ProductService wired with the given repository and cache.
func NewProductService(repo repositories.ProductRepository, productCache *pkgcache.ProductCache) *ProductService {
	return &ProductService{repo: repo, cache: productCache}
}

// Create validates and persists a Product. The repository publishes ProductCreatedEvent.
func (s *ProductService) Create(ctx context.Context, name string, price int64, quantity int, description string) (*models.Product, error) {
	productName, err := models.NewProductName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	product, err := models.NewProduct(productName, price, quantity, description)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	return product, nil
}

// GetByID retrieves a Product using a read-through cache pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query Postgres.
//  3. Asynchronously warm the cache with the Postgres result.
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Product{
				ID:          cached.ID,
				Name:        models.ProductName(cached.Name),
				Price:       cached.Price,
				Quantity:    cached.Quantity,
				Description: cached.Description,
				CreatedAt:   cached.CreatedAt,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — log in production; fall through to Postgres.
			_ = err
		}
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedProduct{
				ID:          product.ID,
				Name:        product.Name.String(),
				Price:       product.Price,
				Quantity:    product.Quantity,
				Description: product.Description,
				CreatedAt:   product.CreatedAt,
			})
		}()
	}

	return product, nil
}

// List returns a paginated slice of products plus total count.
func (s *ProductService) List(ctx context.Context, opts repositories.QueryOpts) ([]*models.Product, int, error) {
	products, total, err := s.repo.Find(ctx, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list products: %w", err)
	}
	return products, total, nil
}

// Update applies new attributes to an existing product and invalidates its
// cache entry so stale reads never outlive the catalog row.
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, name string, price int64, quantity int, description string) (*models.Product, error) {
	productName, err := models.NewProductName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	if err := product.Update(productName, price, quantity, description); err != nil {
		return nil, fmt.Errorf("%w: %w", catalogdomain.ErrInvalidProduct, err)
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return product, nil
}

// Delete removes a product by ID and invalidates its cache entry.
// Returns ErrProductNotFound if no matching product exists.
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return nil
}
