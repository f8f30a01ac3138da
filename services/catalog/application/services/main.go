package services

import (
	"github.com/ghuser/listkeeper/pkg/app"
	pkgcache "github.com/ghuser/listkeeper/pkg/cache"
	"github.com/ghuser/listkeeper/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product *ProductService
}

// New wires all catalog application services with infrastructure from the
// Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewProductRepository(a.Db, a.EventBus)

	var productCache *pkgcache.ProductCache
	if a.Redis != nil {
		productCache = pkgcache.NewProductCache(a.Redis)
	}

	return &Services{
		Product: NewProductService(repo, productCache),
	}
}
