package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/amihq/ami-auth/internal/api"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Allow the configured frontend origin to call the API from the browser.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{app.config.CORS.FrontendOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(app.authService, app.logger)
	healthHandler := api.NewHealthHandler()

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.Check)

		// Authentication endpoints (public)
		r.Post("/auth/signup", authHandler.Signup)
		r.Post("/auth/login", authHandler.Login)
	})

	return r
}
