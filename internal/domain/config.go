package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds all runtime settings. The zero-flag defaults reproduce the
// public AlAdhan endpoint with stdio transport and no observability listener.
type Config struct {
	BaseURL string `mapstructure:"baseURL"`

	RequestTimeout  time.Duration `mapstructure:"requestTimeout"`
	CalendarTimeout time.Duration `mapstructure:"calendarTimeout"`

	MethodsCacheTTL time.Duration `mapstructure:"methodsCacheTTL"`

	MaxAttempts int           `mapstructure:"maxAttempts"`
	BackoffBase time.Duration `mapstructure:"backoffBase"`
	BackoffMax  time.Duration `mapstructure:"backoffMax"`

	Transport Transport `mapstructure:"transport"`
	HTTPAddr  string    `mapstructure:"httpAddr"`
	HTTPPath  string    `mapstructure:"httpPath"`

	// ObservabilityAddr enables the /metrics and /healthz listener when
	// non-empty. Empty keeps the process free of listening sockets.
	ObservabilityAddr string `mapstructure:"observabilityAddr"`
}

func DefaultConfig() Config {
	return Config{
		BaseURL:         DefaultBaseURL,
		RequestTimeout:  DefaultRequestTimeout,
		CalendarTimeout: DefaultCalendarTimeout,
		MethodsCacheTTL: DefaultMethodsCacheTTL,
		MaxAttempts:     DefaultMaxAttempts,
		BackoffBase:     DefaultBackoffBase,
		BackoffMax:      DefaultBackoffMax,
		Transport:       TransportStdio,
		HTTPAddr:        DefaultHTTPAddr,
		HTTPPath:        DefaultHTTPPath,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return errors.New("base URL is required")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be > 0")
	}
	if c.CalendarTimeout <= 0 {
		return errors.New("calendar timeout must be > 0")
	}
	if c.MethodsCacheTTL <= 0 {
		return errors.New("methods cache TTL must be > 0")
	}
	if c.MaxAttempts < 1 {
		return errors.New("max attempts must be >= 1")
	}
	if c.BackoffBase <= 0 || c.BackoffMax < c.BackoffBase {
		return errors.New("backoff base must be > 0 and <= backoff max")
	}
	if !c.Transport.IsValid() {
		return fmt.Errorf("unsupported transport: %s", c.Transport)
	}
	if c.Transport == TransportStreamableHTTP && strings.TrimSpace(c.HTTPAddr) == "" {
		return errors.New("http address is required for streamable-http transport")
	}
	return nil
}
