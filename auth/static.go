package auth

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ebogdum/authgate/token"
)

// ErrInvalidCredentials is returned by StaticProvider when the username or
// password does not match a configured user.
var ErrInvalidCredentials = errors.New("invalid username or password")

// StaticUser is a user entry loaded from configuration.
type StaticUser struct {
	Username string
	Password string
	Claims   map[string]any
}

// StaticProvider authenticates against a fixed set of users loaded from
// configuration. It keeps no session state; logout is a no-op beyond audit
// logging.
type StaticProvider struct {
	users  map[string]StaticUser
	logger *zap.Logger
}

// NewStaticProvider creates a provider from configured users. Entries
// without a username are skipped.
func NewStaticProvider(users []StaticUser, logger *zap.Logger) *StaticProvider {
	byName := make(map[string]StaticUser, len(users))
	for _, u := range users {
		if u.Username != "" {
			byName[u.Username] = u
		}
	}
	return &StaticProvider{users: byName, logger: logger}
}

// Login checks the supplied credentials against the configured users and
// returns the user's claims augmented with the username.
func (p *StaticProvider) Login(_ context.Context, credentials Credentials) (token.Claims, error) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(credentials, &req); err != nil {
		return nil, fmt.Errorf("failed to decode credentials: %w", err)
	}

	user, ok := p.users[req.Username]
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(user.Password)) != 1 {
		return nil, ErrInvalidCredentials
	}

	claims := token.Claims{"username": user.Username}
	for k, v := range user.Claims {
		claims[k] = v
	}

	p.logger.Info("User logged in", zap.String("username", user.Username))
	return claims, nil
}

// Logout logs the event. Tokens are stateless, so there is nothing to tear
// down.
func (p *StaticProvider) Logout(_ context.Context, claims token.Claims) error {
	username, _ := claims.String("username")
	p.logger.Info("User logged out", zap.String("username", username))
	return nil
}

// StaticCredentialManager resolves every claim set to a single HMAC secret
// with fixed sign/verify options. Secret selection ignores claim content,
// which trivially satisfies the purity requirement.
type StaticCredentialManager struct {
	secret        []byte
	signOptions   token.SignOptions
	verifyOptions token.VerifyOptions
}

// NewStaticCredentialManager builds a manager for a shared HMAC secret.
// A zero ttl issues tokens without an expiry claim.
func NewStaticCredentialManager(secret string, ttl time.Duration, issuer string) *StaticCredentialManager {
	return &StaticCredentialManager{
		secret: []byte(secret),
		signOptions: token.SignOptions{
			ExpiresIn: ttl,
			Issuer:    issuer,
		},
		verifyOptions: token.VerifyOptions{
			Issuer: issuer,
		},
	}
}

// Secret returns the shared HMAC secret.
func (m *StaticCredentialManager) Secret(token.ClaimView) ([]byte, error) {
	return m.secret, nil
}

// SignOptions returns the configured signing options.
func (m *StaticCredentialManager) SignOptions(token.ClaimView) *token.SignOptions {
	opts := m.signOptions
	return &opts
}

// VerifyOptions returns the configured verification options.
func (m *StaticCredentialManager) VerifyOptions(token.ClaimView) *token.VerifyOptions {
	opts := m.verifyOptions
	return &opts
}
