package domain

import "time"

const (
	DefaultBaseURL = "https://api.aladhan.com/v1"

	DefaultRequestTimeout  = 15 * time.Second
	DefaultCalendarTimeout = 20 * time.Second

	DefaultMethodsCacheTTL = 24 * time.Hour

	DefaultMaxAttempts = 3
	DefaultBackoffBase = 300 * time.Millisecond
	DefaultBackoffMax  = 600 * time.Millisecond

	DefaultHTTPAddr = "127.0.0.1:8090"
	DefaultHTTPPath = "/mcp"
)

type Transport string

const (
	TransportStdio          Transport = "stdio"
	TransportStreamableHTTP Transport = "streamable-http"
)

func (t Transport) IsValid() bool {
	switch t {
	case TransportStdio, TransportStreamableHTTP:
		return true
	}
	return false
}
