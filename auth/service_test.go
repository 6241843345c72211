package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/ebogdum/authgate/token"
)

type fakeProvider struct {
	loginClaims token.Claims
	loginErr    error
	logoutErr   error
	logoutCalls []token.Claims
}

func (f *fakeProvider) Login(context.Context, Credentials) (token.Claims, error) {
	return f.loginClaims, f.loginErr
}

func (f *fakeProvider) Logout(_ context.Context, claims token.Claims) error {
	f.logoutCalls = append(f.logoutCalls, claims)
	return f.logoutErr
}

func newTestService(provider Provider, secret string) *Service {
	return NewService(provider, NewStaticCredentialManager(secret, 0, ""), zap.NewNop())
}

func loginRequest(body string) *http.Request {
	return httptest.NewRequest("POST", "/v1/auth/login", strings.NewReader(body))
}

func bearerRequest(t *testing.T, claims token.Claims, secret string) *http.Request {
	t.Helper()
	signed, err := token.Sign(claims, []byte(secret), nil)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	r := httptest.NewRequest("GET", "/v1/auth/validate", nil)
	r.Header.Set("Authorization", "Bearer "+signed)
	return r
}

func assertUnauthorized(t *testing.T, err error) *Error {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var authErr *Error
	if !errors.As(err, &authErr) {
		t.Fatalf("expected an auth error, got %T: %v", err, err)
	}
	if authErr.Kind != Unauthorized {
		t.Fatalf("expected Unauthorized, got %v", authErr.Kind)
	}
	return authErr
}

func TestServiceLogin(t *testing.T) {
	provider := &fakeProvider{loginClaims: token.Claims{"id": 1}}
	service := newTestService(provider, "S")

	rec := httptest.NewRecorder()
	if err := service.Login(rec, loginRequest(`{"username":"a","password":"b"}`)); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	var response struct {
		JWT string `json:"jwt"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	if response.JWT == "" {
		t.Fatal("expected a jwt in the login response")
	}

	verified, err := token.Verify(response.JWT, []byte("S"), nil)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if id, ok := verified.Int("id"); !ok || id != 1 {
		t.Errorf("expected id claim 1 in issued token, got %v", verified["id"])
	}
}

func TestServiceLoginFailures(t *testing.T) {
	tests := []struct {
		name     string
		provider *fakeProvider
		request  *http.Request
	}{
		{
			name:     "missing body",
			provider: &fakeProvider{loginClaims: token.Claims{"id": 1}},
			request:  httptest.NewRequest("POST", "/v1/auth/login", nil),
		},
		{
			name:     "provider rejects credentials",
			provider: &fakeProvider{loginErr: errors.New("bad credentials")},
			request:  loginRequest(`{"username":"a","password":"nope"}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(tt.provider, "S")
			err := service.Login(httptest.NewRecorder(), tt.request)
			assertUnauthorized(t, err)
		})
	}
}

func TestServiceLogout(t *testing.T) {
	provider := &fakeProvider{}
	service := newTestService(provider, "S")

	rec := httptest.NewRecorder()
	if err := service.Logout(rec, bearerRequest(t, token.Claims{"id": 2}, "S")); err != nil {
		t.Fatalf("logout failed: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if len(provider.logoutCalls) != 1 {
		t.Fatalf("expected exactly one logout call, got %d", len(provider.logoutCalls))
	}
	if id, ok := provider.logoutCalls[0].Int("id"); !ok || id != 2 {
		t.Errorf("expected logout payload with id 2, got %v", provider.logoutCalls[0])
	}
}

func TestServiceLogoutProviderFailure(t *testing.T) {
	provider := &fakeProvider{logoutErr: errors.New("session teardown failed")}
	service := newTestService(provider, "S")

	err := service.Logout(httptest.NewRecorder(), bearerRequest(t, token.Claims{"id": 2}, "S"))

	// Logout runs after verification, but its failure still maps to
	// Unauthorized rather than Forbidden.
	authErr := assertUnauthorized(t, err)
	if !strings.HasSuffix(authErr.Error(), "session teardown failed") {
		t.Errorf("expected provider cause in chain, got %q", authErr.Error())
	}
}

func TestServiceValidate(t *testing.T) {
	service := newTestService(&fakeProvider{}, "S")

	rec := httptest.NewRecorder()
	if err := service.Validate(rec, bearerRequest(t, token.Claims{"id": 1}, "S")); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", rec.Body.String())
	}
}

func TestServiceValidateChangedSecret(t *testing.T) {
	// Token was issued under S1, but the credential manager now resolves S2
	// for the same payload: the signature check must fail.
	service := newTestService(&fakeProvider{}, "S2")

	err := service.Validate(httptest.NewRecorder(), bearerRequest(t, token.Claims{"id": 1}, "S1"))

	authErr := assertUnauthorized(t, err)
	if !errors.Is(authErr, jwt.ErrTokenSignatureInvalid) {
		t.Errorf("expected signature mismatch in cause chain, got %v", authErr)
	}
}

func TestServiceVerify(t *testing.T) {
	service := newTestService(&fakeProvider{}, "S")

	r := bearerRequest(t, token.Claims{"id": 1, "name": "alice"}, "S")
	identity, err := service.Verify(r)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if identity.Token == "" {
		t.Error("expected identity to carry the raw token")
	}
	if name, ok := identity.Claims.String("name"); !ok || name != "alice" {
		t.Errorf("expected name claim %q, got %v", "alice", identity.Claims["name"])
	}
}

func TestServiceVerifyMissingHeader(t *testing.T) {
	service := newTestService(&fakeProvider{}, "S")

	_, err := service.Verify(httptest.NewRequest("GET", "/", nil))
	if err == nil {
		t.Fatal("expected verify without a header to fail")
	}
	if err.Error() != "Authorization header not present!" {
		t.Errorf("expected raw accessor error, got %q", err.Error())
	}

	// Verify itself returns the unwrapped cause; normalization happens at
	// the pipeline boundary only.
	var authErr *Error
	if errors.As(err, &authErr) {
		t.Error("Verify must not pre-wrap errors into the taxonomy")
	}
}
