package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/devconnect/api/internal/api"
	apiMiddleware "github.com/devconnect/api/internal/api/middleware"
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
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	// Create API handlers using the application's services
	authHandler := api.NewAuthHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	profileHandler := api.NewProfileHandler(app.profileStore, app.logger)
	postHandler := api.NewPostHandler(app.postStore, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			// Account endpoints (public)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Current-user endpoint (protected)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/users", authHandler.CurrentUser)
			})
		})

		r.Route("/profile", func(r chi.Router) {
			// Profile lookups (public)
			r.Get("/all", profileHandler.ListAll)
			r.Get("/handle/{handle}", profileHandler.GetByHandle)
			r.Get("/user/{user_id}", profileHandler.GetByUserID)

			// Profile management (protected)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Get("/", profileHandler.GetOwn)
				r.Post("/", profileHandler.Upsert)
				r.Delete("/", profileHandler.Delete)
				r.Post("/experience", profileHandler.AddExperience)
				r.Delete("/experience/{exp_id}", profileHandler.RemoveExperience)
				r.Post("/education", profileHandler.AddEducation)
				r.Delete("/education/{edu_id}", profileHandler.RemoveEducation)
			})
		})

		r.Route("/post", func(r chi.Router) {
			// Post reads (public)
			r.Get("/", postHandler.List)
			r.Get("/{id}", postHandler.GetByID)

			// Post mutations (protected)
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.Authenticate)
				r.Post("/", postHandler.Create)
				r.Delete("/{id}", postHandler.Delete)
				r.Post("/like/{id}", postHandler.ToggleLike)
				r.Post("/comment/{id}", postHandler.AddComment)
				r.Delete("/comment/{id}/{comment_id}", postHandler.DeleteComment)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
