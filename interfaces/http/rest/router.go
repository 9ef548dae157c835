// Package rest wires the REST surface over the field resolver stack.
// This surface is bound to the core table; guild chat is served by the
// AppSync data plane only.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"goalsguild-backend/application/resolver"
	"goalsguild-backend/infrastructure/config"
	"goalsguild-backend/interfaces/http/rest/handlers"
	"goalsguild-backend/interfaces/http/rest/middleware"
	"goalsguild-backend/pkg/auth"
	"goalsguild-backend/pkg/common"
)

// Router creates and configures the HTTP router
type Router struct {
	dispatcher *resolver.Dispatcher
	validator  *auth.JWTValidator
	cfg        *config.Config
	logger     *zap.Logger
}

// NewRouter creates a router
func NewRouter(dispatcher *resolver.Dispatcher, validator *auth.JWTValidator, cfg *config.Config, logger *zap.Logger) *Router {
	return &Router{
		dispatcher: dispatcher,
		validator:  validator,
		cfg:        cfg,
		logger:     logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000", "https://*.goalsguild.com"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	router.Get("/health", rt.healthCheck)

	h := handlers.NewHandler(rt.dispatcher, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		// Signup and email probe run before the caller has a profile
		// but still require an authenticated subject for createUser.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.validator, rt.logger))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.GetMyProfile)
				r.Put("/", h.UpdateProfile)
			})
			r.Post("/users", h.CreateUser)

			r.Route("/goals", func(r chi.Router) {
				r.Get("/", h.ListGoals)
				r.Post("/", h.CreateGoal)
			})

			r.Route("/rooms/{roomID}/messages", func(r chi.Router) {
				r.Get("/", h.ListMessages)
				r.Post("/", h.SendMessage)
			})
			r.Route("/messages/{messageID}/reactions", func(r chi.Router) {
				r.Get("/", h.ListReactions)
				r.Post("/", h.AddReaction)
				r.Delete("/{shortcode}", h.RemoveReaction)
			})

			r.Get("/xp", h.GetLevelProgress)
			r.Get("/badges", h.ListMyBadges)
			r.Get("/badges/definitions", h.ListBadgeDefinitions)
		})

		r.Get("/users/email-available", h.CheckEmailAvailability)
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"status":      "healthy",
		"environment": rt.cfg.Environment,
	})
}
