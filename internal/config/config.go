// Package config loads server configuration from the environment. A .env file
// in the working directory is honored when present.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	defaultListen        = ":3920"
	defaultMetricsListen = ":9221"
	defaultTimeout       = 30 * time.Second
)

// Config holds the full server configuration.
type Config struct {
	// Proxmox connection
	Host        string
	TokenID     string
	TokenSecret string
	VerifySSL   bool
	Timeout     time.Duration

	// Server
	Listen        string
	MetricsListen string

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Debug().Err(err).Msg("No .env file loaded")
	}

	cfg := &Config{
		Host:          os.Getenv("PROXMOX_HOST"),
		TokenID:       os.Getenv("PROXMOX_TOKEN_ID"),
		TokenSecret:   os.Getenv("PROXMOX_TOKEN_SECRET"),
		VerifySSL:     envBool("PROXMOX_VERIFY_SSL", false),
		Timeout:       envDuration("PROXMOX_TIMEOUT", defaultTimeout),
		Listen:        envDefault("MCP_LISTEN", defaultListen),
		MetricsListen: envDefault("METRICS_LISTEN", defaultMetricsListen),
		LogLevel:      envDefault("LOG_LEVEL", "info"),
		LogFormat:     envDefault("LOG_FORMAT", "auto"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var missing []string
	if c.Host == "" {
		missing = append(missing, "PROXMOX_HOST")
	}
	if c.TokenID == "" {
		missing = append(missing, "PROXMOX_TOKEN_ID")
	}
	if c.TokenSecret == "" {
		missing = append(missing, "PROXMOX_TOKEN_SECRET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

func envDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid boolean in environment, using default")
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid duration in environment, using default")
		return def
	}
	return d
}
