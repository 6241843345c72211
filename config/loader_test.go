package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

const validConfig = `
auth:
  secret: "unit-test-secret"
  token_ttl: 30m
  users:
    - username: alice
      password: wonder
      claims:
        id: 1
        admin: true
`

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, validConfig)

	cfg, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Auth.Secret != "unit-test-secret" {
		t.Errorf("expected configured secret, got %q", cfg.Auth.Secret)
	}
	if cfg.Auth.TokenTTL != 30*time.Minute {
		t.Errorf("expected 30m token ttl, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Server.ListenAddr != ":8080" {
		t.Errorf("expected default listen addr, got %q", cfg.Server.ListenAddr)
	}
	if len(cfg.Auth.Users) != 1 || cfg.Auth.Users[0].Username != "alice" {
		t.Fatalf("expected one configured user alice, got %+v", cfg.Auth.Users)
	}
	if admin, ok := cfg.Auth.Users[0].Claims["admin"].(bool); !ok || !admin {
		t.Errorf("expected admin claim true, got %v", cfg.Auth.Users[0].Claims["admin"])
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, validConfig)
	t.Setenv("AUTHGATE_AUTH_ISSUER", "custom-issuer")

	cfg, err := LoadConfigFromFile(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Auth.Issuer != "custom-issuer" {
		t.Errorf("expected env issuer to win, got %q", cfg.Auth.Issuer)
	}
}

func TestValidationFailures(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		expectedErr string
	}{
		{
			name: "default secret",
			config: `
auth:
  users:
    - username: alice
      password: wonder
`,
			expectedErr: "auth.secret",
		},
		{
			name: "no users",
			config: `
auth:
  secret: "unit-test-secret"
`,
			expectedErr: "auth.users",
		},
		{
			name: "user without password",
			config: `
auth:
  secret: "unit-test-secret"
  users:
    - username: alice
`,
			expectedErr: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfigFile(t, tt.config)
			_, err := LoadConfigFromFile(path)
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			if !strings.Contains(err.Error(), tt.expectedErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestMissingConfigFile(t *testing.T) {
	if _, err := LoadConfigFromFile("/does/not/exist.yaml"); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
