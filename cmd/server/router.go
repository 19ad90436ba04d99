package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/mnemoapp/mnemo-api/internal/api"
	apimiddleware "github.com/mnemoapp/mnemo-api/internal/api/middleware"
)

// setupRouter builds the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(apimiddleware.Trace)

	authHandler := api.NewAuthHandler(app.userStore, app.jwtService, app.passwordHasher)
	mnemonicHandler := api.NewMnemonicHandler(app.catalogService)
	reviewHandler := api.NewReviewHandler(app.reviewService)
	authMiddleware := apimiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Public authentication endpoints
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/auth/verify", authHandler.Verify)

			r.Post("/mnemonics", mnemonicHandler.Create)
			r.Get("/mnemonics", mnemonicHandler.List)
			r.Post("/mnemonics/{id}/answer", reviewHandler.SubmitAnswer)

			r.Post("/sessions", reviewHandler.StartSession)
			r.Get("/reviews/due", reviewHandler.DueCards)
			r.Get("/analytics", reviewHandler.Analytics)
		})
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
