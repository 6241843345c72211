package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ebogdum/authgate/auth"
	"github.com/ebogdum/authgate/metrics"
)

// V1JwtFilter creates the pre-handler authentication gate. It verifies the
// request's bearer token and, on success, attaches the verified identity to
// the request context for downstream consumption. On failure the request
// never reaches the handler; the rejection is rendered as 401 with the
// accumulated cause chain.
func V1JwtFilter(service *auth.Service, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := service.Verify(r)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("failure").Inc()
				logger.Debug("Request rejected by jwt filter",
					zap.String("path", r.URL.Path),
					zap.Error(err))
				WriteError(w, logger, auth.NewUnauthorized(err))
				return
			}

			metrics.TokenVerificationsTotal.WithLabelValues("success").Inc()
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}
