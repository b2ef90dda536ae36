package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/fkhayef/wedding-rsvp/docs"
	"github.com/fkhayef/wedding-rsvp/internal/auth"
	"github.com/fkhayef/wedding-rsvp/internal/config"
	"github.com/fkhayef/wedding-rsvp/internal/event"
	"github.com/fkhayef/wedding-rsvp/internal/guest"
	"github.com/fkhayef/wedding-rsvp/internal/logging"
	mw "github.com/fkhayef/wedding-rsvp/pkg/middleware"
)

// NewRouter wires every feature onto one chi router
func NewRouter(cfg *config.Config, store guest.Store, log *zap.Logger) http.Handler {
	sessions := auth.NewSessions(cfg.SessionSecret, cfg.AdminPassword, cfg.SessionTTL)

	// Guest feature
	guestService := guest.NewService(store, cfg.PublicBaseURL)
	guestHandler := guest.NewHandler(guestService, cfg.MaxUploadBytes, log)
	rsvpHandler := guest.NewRSVPHandler(guestService, mw.RateLimit(cfg.RSVPRateLimit), log)

	// Admin session feature
	authHandler := auth.NewHandler(sessions, cfg.IsProduction(), mw.RateLimit(cfg.RSVPRateLimit), log)

	// Event details
	eventHandler := event.NewHandler(cfg.Wedding)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	// RealIP rewrites RemoteAddr, which the rate limiter keys on
	if cfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(logging.RequestLogger(log))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/event", eventHandler.Get)
		r.Mount("/auth", authHandler.Routes())
		r.Mount("/rsvp", rsvpHandler.Routes())

		// Admin area
		r.Group(func(r chi.Router) {
			r.Use(mw.RequireAdmin(sessions))
			r.Mount("/guests", guestHandler.Routes())
			r.Get("/stats", guestHandler.Stats)
		})
	})

	return r
}
