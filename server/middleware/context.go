// Package middleware provides the request-gating middleware for AuthGate:
// the jwt filter that proves a request carries valid claims, the restriction
// guard that additionally authorizes a specific action, and the translator
// that renders auth failures onto the response.
package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"

	"github.com/ebogdum/authgate/auth"
)

type contextKey string

const (
	identityKey contextKey = "jwt"
	// RequestIDKey is the context key for the per-request ID.
	RequestIDKey contextKey = "request_id"
)

// WithIdentity attaches a verified identity to the request context. Written
// exactly once, by the jwt filter; read any number of times downstream.
func WithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFrom reads the filter-attached identity from the request context.
func IdentityFrom(ctx context.Context) (*auth.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*auth.Identity)
	return identity, ok
}

// V1RequestIDMiddleware adds a unique request ID to each request context
// and echoes it in the X-Request-ID response header.
func V1RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := generateRequestID()
			w.Header().Set("X-Request-ID", requestID)

			ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func generateRequestID() string {
	bytes := make([]byte, 8)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
