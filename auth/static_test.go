package auth

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
)

func TestStaticProviderLogin(t *testing.T) {
	provider := NewStaticProvider([]StaticUser{
		{Username: "alice", Password: "wonder", Claims: map[string]any{"id": 1, "admin": true}},
		{Username: "bob", Password: "builder", Claims: map[string]any{"id": 2}},
	}, zap.NewNop())

	t.Run("valid credentials", func(t *testing.T) {
		claims, err := provider.Login(context.Background(), Credentials(`{"username":"alice","password":"wonder"}`))
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if username, _ := claims.String("username"); username != "alice" {
			t.Errorf("expected username claim alice, got %v", claims["username"])
		}
		if admin, _ := claims.Bool("admin"); !admin {
			t.Error("expected configured admin claim to carry over")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := provider.Login(context.Background(), Credentials(`{"username":"alice","password":"nope"}`))
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := provider.Login(context.Background(), Credentials(`{"username":"carol","password":"x"}`))
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("malformed credentials", func(t *testing.T) {
		if _, err := provider.Login(context.Background(), Credentials(`not json`)); err == nil {
			t.Error("expected malformed credentials to fail")
		}
	})
}

func TestStaticCredentialManagerIsPure(t *testing.T) {
	manager := NewStaticCredentialManager("shared", 0, "authgate")

	first, err := manager.Secret(nil)
	if err != nil {
		t.Fatalf("secret lookup failed: %v", err)
	}
	second, err := manager.Secret(map[string]any{"id": 1})
	if err != nil {
		t.Fatalf("secret lookup failed: %v", err)
	}
	if string(first) != string(second) {
		t.Error("secret must not depend on claim content")
	}

	if opts := manager.VerifyOptions(nil); opts.Issuer != "authgate" {
		t.Errorf("expected issuer to flow into verify options, got %q", opts.Issuer)
	}
}
