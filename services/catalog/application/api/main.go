package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/listkeeper/pkg/app"
	"github.com/ghuser/listkeeper/services/catalog/application/handlers"
	appsvcs "github.com/ghuser/listkeeper/services/catalog/application/services"
)

// CatalogRoutes registers product endpoints on the provided chi router.
func CatalogRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Group(func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handlers.NewGetProductsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostProductHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetProductHandler(svcs).Execute)
			r.Put("/{id}", handlers.NewPutProductHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteProductHandler(svcs).Execute)
		})
	})
}
