package config

import (
	"os"
	"strconv"
)

// Config holds the runtime settings of the booking tool.
type Config struct {
	// BufferMinutes is the minimum gap required between two appointments on
	// the same date. 0 means only exact date+time collisions are rejected.
	BufferMinutes int

	// PageSize is the default list page size.
	PageSize int

	// Addr is the listen address for serve mode.
	Addr string
}

// DefaultConfig returns the built-in defaults: no buffer, five rows per
// page, local port 8080.
func DefaultConfig() Config {
	return Config{
		BufferMinutes: 0,
		PageSize:      5,
		Addr:          ":8080",
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or unparseable value.
func Load() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PITSTOP_BUFFER_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.BufferMinutes = n
		}
	}
	if v := os.Getenv("PITSTOP_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
	if v := os.Getenv("PITSTOP_ADDR"); v != "" {
		cfg.Addr = v
	}

	return cfg
}
