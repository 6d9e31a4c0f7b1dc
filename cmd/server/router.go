package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/bucketlist-api/internal/api"
	apimw "github.com/phrazzld/bucketlist-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(apimw.Trace(app.logger))
	r.Use(apimw.Recoverer)
	if app.metrics != nil {
		r.Use(app.metrics.Middleware)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.Server.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	authHandler := api.NewAuthHandler(
		app.userService,
		app.authenticator,
		app.jwtService,
		app.logger,
	)
	authMiddleware := apimw.NewAuthMiddleware(
		app.jwtService,
		app.authenticator,
		app.config.Auth.AuthHeaderPrefix,
	)
	listHandler := api.NewBucketListHandler(app.bucketListService, app.logger)

	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/resource", api.Resource)

		r.Route("/bucketlists", func(r chi.Router) {
			r.Post("/", listHandler.Create)
			r.Get("/", listHandler.List)

			r.Route("/{id:[0-9]+}", func(r chi.Router) {
				r.Get("/", listHandler.Get)
				r.Put("/", listHandler.Update)
				r.Delete("/", listHandler.Delete)

				r.Post("/items", listHandler.CreateItem)
				r.Put("/items/{item_id:[0-9]+}", listHandler.UpdateItem)
				r.Delete("/items/{item_id:[0-9]+}", listHandler.DeleteItem)
			})
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	return r
}
