package services

import (
	"github.com/ghuser/listkeeper/pkg/app"
	pkgcache "github.com/ghuser/listkeeper/pkg/cache"
	"github.com/ghuser/listkeeper/services/shoppinglist/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	List *ListService
}

// New wires all shopping-list application services with infrastructure from
// the Application container.
func New(a *app.Application) *Services {
	repo := postgres.NewListRepository(a.Db, a.EventBus)
	finder := postgres.NewProductFinder(a.Db)

	var listCache ListHeaderCache
	if a.Redis != nil {
		listCache = pkgcache.NewListCache(a.Redis)
	}

	return &Services{
		List: NewListService(repo, finder, listCache),
	}
}
