package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ebogdum/authgate/auth"
	"github.com/ebogdum/authgate/metrics"
	"github.com/ebogdum/authgate/token"
)

// Check is an authorization predicate over verified claims. Checks must be
// pure functions: they run synchronously on the request path and must not
// perform I/O.
type Check func(claims token.Claims) bool

// Restrict wraps a handler with a per-action authorization check. The jwt
// filter must have run upstream; a missing identity is itself an
// authorization failure by the time a guarded handler is reached, so both
// the missing-identity and the failed-check cases map to Forbidden.
func Restrict(check Check, next http.HandlerFunc, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFrom(r.Context())
		if !ok {
			metrics.GuardDecisionsTotal.WithLabelValues("missing_filter_data").Inc()
			WriteError(w, logger, auth.NewForbidden("Could not find jwt filter data."))
			return
		}
		if !check(identity.Claims) {
			metrics.GuardDecisionsTotal.WithLabelValues("denied").Inc()
			WriteError(w, logger, auth.NewForbidden("Authorization check failed."))
			return
		}

		metrics.GuardDecisionsTotal.WithLabelValues("allowed").Inc()
		next(w, r)
	}
}
