package server

import (
	"errors"
	"fmt"

	"github.com/ulule/limiter/v3"
)

const DefaultAddr = "127.0.0.1:8080"

type Config struct {
	HTTP  HTTPConfig
	Vault VaultConfig
}

type HTTPConfig struct {
	// Addr is the host:port the server binds.
	Addr string

	// CertFile and KeyFile enable TLS when both are set.
	CertFile string
	KeyFile  string

	// RateLimit uses ulule/limiter's formatted syntax ("120-M").
	// Empty disables rate limiting.
	RateLimit string
}

type VaultConfig struct {
	// Location is the vault root directory. Created when missing.
	Location string
}

// TLSEnabled reports whether the server should terminate TLS itself.
func (c *HTTPConfig) TLSEnabled() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

func (c *Config) Validate() error {
	if c.Vault.Location == "" {
		return errors.New("vault location is required")
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = DefaultAddr
	}
	if (c.HTTP.CertFile == "") != (c.HTTP.KeyFile == "") {
		return errors.New("cert and key files must be set together")
	}
	if c.HTTP.RateLimit != "" {
		if _, err := limiter.NewRateFromFormatted(c.HTTP.RateLimit); err != nil {
			return fmt.Errorf("invalid rate limit: %w", err)
		}
	}
	return nil
}
