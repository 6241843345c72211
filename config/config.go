// Package config provides configuration management for AuthGate.
// It handles loading and validating configuration from YAML/JSON files and
// environment variables.
package config

import "time"

// AppConfig represents the complete application configuration
type AppConfig struct {
	Server  ServerConfig  `koanf:"server"`
	Auth    AuthConfig    `koanf:"auth"`
	Log     LogConfig     `koanf:"log"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	ListenAddr     string        `koanf:"listen_addr"`
	CertFile       string        `koanf:"cert_file"`
	KeyFile        string        `koanf:"key_file"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// AuthConfig holds token issuance and authentication configuration
type AuthConfig struct {
	Secret         string        `koanf:"secret"`           // HMAC signing secret
	TokenTTL       time.Duration `koanf:"token_ttl"`        // 0 issues tokens without expiry
	Issuer         string        `koanf:"issuer"`           // iss claim, empty to omit
	AdminClaim     string        `koanf:"admin_claim"`      // boolean claim gating the admin routes
	LoginRateLimit float64       `koanf:"login_rate_limit"` // login requests per second
	LoginRateBurst int           `koanf:"login_rate_burst"`
	Users          []UserConfig  `koanf:"users"`
}

// UserConfig describes one user of the static authentication provider
type UserConfig struct {
	Username string         `koanf:"username"`
	Password string         `koanf:"password"`
	Claims   map[string]any `koanf:"claims"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// MetricsConfig holds metrics server configuration
type MetricsConfig struct {
	ListenAddr string `koanf:"listen_addr"`
}
