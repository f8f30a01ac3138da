package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/listkeeper/pkg/app"
	"github.com/ghuser/listkeeper/pkg/auth"
	"github.com/ghuser/listkeeper/services/user/application/handlers"
	appsvcs "github.com/ghuser/listkeeper/services/user/application/services"
)

// AuthRoutes registers account endpoints on the provided chi router.
// Register and login are public; logout requires a valid bearer token.
func AuthRoutes(r chi.Router, a *app.Application) {
	svcs := appsvcs.New(a)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handlers.NewPostRegisterHandler(svcs).Execute)
		r.Post("/login", handlers.NewPostLoginHandler(svcs).Execute)

		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth(a.Tokens, a.Logger))
			r.Post("/logout", handlers.NewPostLogoutHandler(svcs).Execute)
		})
	})
}
