package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ebogdum/authgate/auth"
	"github.com/ebogdum/authgate/config"
	"github.com/ebogdum/authgate/metrics"
	"github.com/ebogdum/authgate/server/handlers"
	authMiddleware "github.com/ebogdum/authgate/server/middleware"
	"github.com/ebogdum/authgate/token"
)

// NewRouter creates and configures the HTTP router. The auth endpoints sit
// under /v1/auth; login is rate limited, logout and validate verify their
// own bearer token inside the pipeline. The /v1 application routes sit
// behind the jwt filter, with the admin route additionally guarded by a
// claim check.
func NewRouter(
	service *auth.Service,
	serverConfig *config.ServerConfig,
	authConfig *config.AuthConfig,
	logger *zap.Logger,
) chi.Router {
	// Initialize metrics
	metrics.RegisterMetrics()

	r := chi.NewRouter()

	// Basic middleware
	r.Use(authMiddleware.V1RequestIDMiddleware())
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(serverConfig.RequestTimeout))
	r.Use(authMiddleware.V1SecurityHeaders())

	// Custom logging and metrics middleware
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			duration := time.Since(start)

			metrics.HTTPRequestsTotal.WithLabelValues(
				r.Method,
				r.URL.Path,
				http.StatusText(ww.Status()),
			).Inc()

			metrics.HTTPRequestDuration.WithLabelValues(
				r.Method,
				r.URL.Path,
			).Observe(duration.Seconds())

			logger.Info("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", duration),
				zap.String("remote_addr", r.RemoteAddr))
		})
	})

	// Health check endpoint (no auth required)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"ok"}`)); err != nil {
			logger.Error("Failed to write health check response", zap.Error(err))
		}
	})

	// Metrics endpoint (no auth required)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		// Auth endpoints. Logout and validate verify the bearer token
		// inside the pipeline itself, so the jwt filter is deliberately
		// not applied here.
		r.Route("/auth", func(r chi.Router) {
			loginLimiter := rate.NewLimiter(rate.Limit(authConfig.LoginRateLimit), authConfig.LoginRateBurst)
			r.With(authMiddleware.V1RateLimitMiddleware(loginLimiter, logger)).
				Post("/login", handlers.V1Login(service, logger))

			r.Get("/logout", handlers.V1Logout(service, logger))
			r.Post("/logout", handlers.V1Logout(service, logger))
			r.Get("/validate", handlers.V1Validate(service, logger))
		})

		// Application routes behind the jwt filter
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.V1JwtFilter(service, logger))

			r.Get("/whoami", handlers.V1WhoAmI(logger))

			adminClaim := authConfig.AdminClaim
			if adminClaim != "" {
				adminOnly := func(claims token.Claims) bool {
					isAdmin, _ := claims.Bool(adminClaim)
					return isAdmin
				}
				r.Get("/admin/ping", authMiddleware.Restrict(adminOnly, func(w http.ResponseWriter, _ *http.Request) {
					handlers.SendJSONResponse(w, map[string]string{"status": "pong"})
				}, logger))
			}
		})
	})

	logger.Info("HTTP router configured successfully")

	return r
}
