package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/listkeeper/pkg/app"
	"github.com/ghuser/listkeeper/services/shoppinglist/application/handlers"
	appsvcs "github.com/ghuser/listkeeper/services/shoppinglist/application/services"
)

// ShoppingListRoutes registers shopping-list endpoints on the provided chi router.
func ShoppingListRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/shopping_lists", func(r chi.Router) {
			r.Get("/", handlers.NewGetListsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostListHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetListHandler(svcs).Execute)
			r.Post("/{id}/checkout", handlers.NewPostCheckoutHandler(svcs).Execute)

			r.Route("/{id}/products", func(r chi.Router) {
				r.Post("/", handlers.NewPostListProductHandler(svcs).Execute)
				r.Delete("/", handlers.NewDeleteListProductHandler(svcs).Execute)
			})
		})
	})
}
