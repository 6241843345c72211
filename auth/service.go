package auth

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/ebogdum/authgate/token"
)

// Identity is the trusted result of a successful bearer token check.
type Identity struct {
	Token  string
	Claims token.Claims
}

// Service orchestrates the three authentication operations over pluggable
// collaborators. It holds no per-request state and is safe for concurrent
// use.
type Service struct {
	provider Provider
	creds    CredentialManager
	accessor Accessor
	emitter  Emitter
	logger   *zap.Logger
}

// NewService builds a Service with the default request accessor and
// response emitter.
func NewService(provider Provider, creds CredentialManager, logger *zap.Logger) *Service {
	return &Service{
		provider: provider,
		creds:    creds,
		accessor: RequestAccessor{},
		emitter:  ResponseEmitter{},
		logger:   logger,
	}
}

// WithAccessor replaces the request accessor. Returns the service for
// chaining during construction.
func (s *Service) WithAccessor(accessor Accessor) *Service {
	s.accessor = accessor
	return s
}

// WithEmitter replaces the response emitter. Returns the service for
// chaining during construction.
func (s *Service) WithEmitter(emitter Emitter) *Service {
	s.emitter = emitter
	return s
}

// Login extracts credentials from the request body, authenticates them via
// the Provider, signs the resulting claims and emits the token. Any step
// failing collapses to Unauthorized.
func (s *Service) Login(w http.ResponseWriter, r *http.Request) error {
	credentials, err := s.accessor.Credentials(r)
	if err != nil {
		return s.unauthorized("login", err)
	}

	claims, err := s.provider.Login(r.Context(), credentials)
	if err != nil {
		return s.unauthorized("login", err)
	}

	secret, err := s.creds.Secret(claims.View())
	if err != nil {
		return s.unauthorized("login", err)
	}

	signed, err := token.Sign(claims, secret, s.creds.SignOptions(claims.View()))
	if err != nil {
		return s.unauthorized("login", err)
	}

	return s.emitter.LoginSuccess(w, signed)
}

// Validate verifies the request's bearer token and emits an empty success
// response.
func (s *Service) Validate(w http.ResponseWriter, r *http.Request) error {
	if _, err := s.Verify(r); err != nil {
		return s.unauthorized("validate", err)
	}
	return s.emitter.ValidateSuccess(w)
}

// Logout verifies the request's bearer token, invokes the Provider's logout
// with the verified claims and emits an empty success response. Logout
// failure still maps to Unauthorized.
func (s *Service) Logout(w http.ResponseWriter, r *http.Request) error {
	identity, err := s.Verify(r)
	if err != nil {
		return s.unauthorized("logout", err)
	}

	if err := s.provider.Logout(r.Context(), identity.Claims); err != nil {
		return s.unauthorized("logout", err)
	}

	return s.emitter.LogoutSuccess(w)
}

// Verify runs the shared verification primitive: extract the bearer token,
// decode it without trust to select verification parameters, then verify the
// signature. Only the verified claims are returned. Errors come back
// unwrapped; callers normalize them at the pipeline boundary.
func (s *Service) Verify(r *http.Request) (*Identity, error) {
	raw, err := s.accessor.BearerToken(r)
	if err != nil {
		return nil, err
	}

	// First pass: decode without signature validation, only to pick the
	// secret and options. Nothing in this result is trusted.
	untrusted, err := token.Decode(raw)
	if err != nil {
		return nil, err
	}

	view := untrusted.View()
	secret, err := s.creds.Secret(view)
	if err != nil {
		return nil, err
	}

	claims, err := token.Verify(raw, secret, s.creds.VerifyOptions(view))
	if err != nil {
		return nil, err
	}

	return &Identity{Token: raw, Claims: claims}, nil
}

// unauthorized normalizes a pipeline failure exactly once, at the boundary.
func (s *Service) unauthorized(operation string, cause error) error {
	s.logger.Debug("auth pipeline failure",
		zap.String("operation", operation),
		zap.Error(cause))
	return NewUnauthorized(cause)
}
