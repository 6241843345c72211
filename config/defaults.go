package config

import "time"

// DefaultAppConfig returns an AppConfig struct with sensible default values
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			ListenAddr:     ":8080",
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			RequestTimeout: 60 * time.Second,
		},
		Auth: AuthConfig{
			Secret:         "change-me-secret",
			TokenTTL:       15 * time.Minute,
			Issuer:         "authgate",
			AdminClaim:     "admin",
			LoginRateLimit: 10,
			LoginRateBurst: 5,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			ListenAddr: ":9090",
		},
	}
}
