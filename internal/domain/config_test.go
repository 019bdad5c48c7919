package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base URL", func(c *Config) { c.BaseURL = "  " }},
		{"zero request timeout", func(c *Config) { c.RequestTimeout = 0 }},
		{"zero calendar timeout", func(c *Config) { c.CalendarTimeout = 0 }},
		{"zero cache ttl", func(c *Config) { c.MethodsCacheTTL = 0 }},
		{"zero attempts", func(c *Config) { c.MaxAttempts = 0 }},
		{"backoff max below base", func(c *Config) { c.BackoffMax = c.BackoffBase / 2 }},
		{"unknown transport", func(c *Config) { c.Transport = "websocket" }},
		{"http transport without addr", func(c *Config) {
			c.Transport = TransportStreamableHTTP
			c.HTTPAddr = ""
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}
