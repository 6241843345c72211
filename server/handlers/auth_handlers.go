// Package handlers contains the HTTP handlers for the AuthGate endpoints.
// The auth endpoints are thin: they drive the auth pipeline and translate
// its failures onto the response.
package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ebogdum/authgate/auth"
	"github.com/ebogdum/authgate/metrics"
	authMiddleware "github.com/ebogdum/authgate/server/middleware"
)

// V1Login handles POST /v1/auth/login.
func V1Login(service *auth.Service, logger *zap.Logger) http.HandlerFunc {
	return pipelineHandler("login", service.Login, logger)
}

// V1Logout handles GET and POST /v1/auth/logout.
func V1Logout(service *auth.Service, logger *zap.Logger) http.HandlerFunc {
	return pipelineHandler("logout", service.Logout, logger)
}

// V1Validate handles GET /v1/auth/validate.
func V1Validate(service *auth.Service, logger *zap.Logger) http.HandlerFunc {
	return pipelineHandler("validate", service.Validate, logger)
}

// pipelineHandler adapts a pipeline operation into an http.HandlerFunc.
// Taxonomy errors become 401/403 responses; anything else propagates to the
// router's recoverer rather than being swallowed here.
func pipelineHandler(operation string, op func(http.ResponseWriter, *http.Request) error, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := op(w, r); err != nil {
			metrics.AuthAttemptsTotal.WithLabelValues(operation, "failure").Inc()
			if !authMiddleware.WriteError(w, logger, err) {
				panic(err)
			}
			return
		}
		metrics.AuthAttemptsTotal.WithLabelValues(operation, "success").Inc()
	}
}
