// Package config handles configuration for the server: defaults, JSON
// overlay, environment variables, and command-line flags, applied in that
// order.
package config

import "time"

// DefaultSecretKey is the development-only signing secret. Deployments must
// override it; the app logs a warning when it is still in use.
const DefaultSecretKey = "dev-secret-change-in-production"

// Config holds runtime settings for the task server.
//
// Fields:
//   - Addr: bind address for the HTTP endpoint.
//   - DataDir: directory holding the users.json and todos.json documents.
//   - StaticDir: directory of web UI assets to serve; empty disables it.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidity: session token lifetime.
type Config struct {
	Addr          string        `env:"TASKDECK_ADDR"`
	DataDir       string        `env:"TASKDECK_DATA_DIR"`
	StaticDir     string        `env:"TASKDECK_STATIC_DIR"`
	SecretKey     string        `env:"TASKDECK_SECRET"`
	TokenValidity time.Duration `env:"TASKDECK_TOKEN_VALIDITY"`
}

// LoadDefaults populates Config with development defaults. The secret is
// insecure by design and must be overridden in production.
func (c *Config) LoadDefaults() {
	c.Addr = ":3000"
	c.DataDir = "data"
	c.StaticDir = ""
	c.SecretKey = DefaultSecretKey
	c.TokenValidity = 24 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
