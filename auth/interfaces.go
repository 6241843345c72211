// Package auth implements the bearer-token authentication pipeline for
// AuthGate: credential extraction, login/logout/validate orchestration,
// token verification and the error taxonomy that turns any failure in that
// chain into a caller-visible outcome.
package auth

import (
	"context"
	"net/http"

	"github.com/ebogdum/authgate/token"
)

// Credentials is the caller-supplied login material, passed through from the
// request body untouched. Its shape is owned by the Provider.
type Credentials []byte

// CredentialManager supplies the secret and algorithm options used to sign
// or verify a given claim set. Implementations must be pure functions of
// claim content: the same view must always resolve to the same secret, or
// the decode-then-verify protocol breaks.
type CredentialManager interface {
	// Secret returns the signing/verification key for the given claims.
	Secret(view token.ClaimView) ([]byte, error)

	// SignOptions returns signing options for the given claims, or nil for
	// defaults.
	SignOptions(view token.ClaimView) *token.SignOptions

	// VerifyOptions returns verification options for the given claims, or
	// nil for defaults.
	VerifyOptions(view token.ClaimView) *token.VerifyOptions
}

// Provider performs the actual credential check and logout side effects.
// Implementations are shared across concurrent requests and must be
// stateless or externally synchronized.
type Provider interface {
	// Login validates credentials and returns the claims to embed in the
	// issued token. Any error is treated as an authentication failure.
	Login(ctx context.Context, credentials Credentials) (token.Claims, error)

	// Logout is invoked with already-verified claims. A failure still maps
	// to Unauthorized; logout is not an authorization decision.
	Logout(ctx context.Context, claims token.Claims) error
}

// Accessor extracts credentials and bearer tokens from inbound requests.
type Accessor interface {
	Credentials(r *http.Request) (Credentials, error)
	BearerToken(r *http.Request) (string, error)
}

// Emitter renders the pipeline's success outcomes onto the response.
type Emitter interface {
	LoginSuccess(w http.ResponseWriter, signedToken string) error
	LogoutSuccess(w http.ResponseWriter) error
	ValidateSuccess(w http.ResponseWriter) error
}
