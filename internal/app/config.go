package app

import (
	"fmt"
	"os"
	"strconv"
)

// Defaults for the two server environment variables.
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 8000
)

// Config holds the server bind settings read from the environment.
// Constructed once in the entry command and passed by reference — no
// package-level globals.
type Config struct {
	Host string // SERVER_HOST
	Port int    // SERVER_PORT
}

// ConfigFromEnv reads SERVER_HOST and SERVER_PORT, applying defaults when
// unset. A SERVER_PORT that does not parse as an unsigned integer in the
// valid port range is a fatal configuration error: the caller must exit
// before binding anything.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{
		Host: DefaultHost,
		Port: DefaultPort,
	}

	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Host = host
	}

	if raw := os.Getenv("SERVER_PORT"); raw != "" {
		port, err := strconv.ParseUint(raw, 10, 16)
		if err != nil {
			return nil, fmt.Errorf("SERVER_PORT %q: %w", raw, err)
		}
		cfg.Port = int(port)
	}

	return cfg, nil
}

// Addr returns the host:port string to bind.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
