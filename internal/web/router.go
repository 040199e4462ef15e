package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"coopweb/internal/infra"
	appmw "coopweb/internal/middleware"
)

// NewRouter wires the page and form routes behind the shared middleware chain.
func NewRouter(app *App, logger infra.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(appmw.RequestID, chimw.RealIP, chimw.Recoverer, appmw.Logger(logger))

	r.Get("/", app.Index)

	r.Route("/donations", func(r chi.Router) {
		r.Post("/", app.SubmitDonation)
		r.Post("/{id}/delete", app.DeleteDonation)
	})

	r.Route("/supporters", func(r chi.Router) {
		r.Post("/", app.SubmitSupporter)
		r.Post("/{id}/delete", app.DeleteSupporter)
	})

	r.Get("/login", app.Login)
	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", app.Signup)
		r.Post("/signin", app.Signin)
		r.Post("/signout", app.Signout)
	})

	return r
}
