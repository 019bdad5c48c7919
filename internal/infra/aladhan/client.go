// Package aladhan is the HTTP client for the AlAdhan REST API. It issues
// plain GETs with a per-attempt timeout and retries transport failures and
// non-2xx statuses with exponential backoff before giving up.
package aladhan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"adhanmcp/internal/domain"
	"adhanmcp/internal/infra/telemetry"
)

type Client struct {
	baseURL     string
	httpClient  *http.Client
	maxAttempts int
	backoffBase time.Duration
	backoffMax  time.Duration
	logger      *zap.Logger
	metrics     *telemetry.Metrics
}

type ClientOptions struct {
	Config  domain.Config
	Logger  *zap.Logger
	Metrics *telemetry.Metrics

	// HTTPClient overrides the default transport, used by tests.
	HTTPClient *http.Client
}

func NewClient(opts ClientOptions) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	cfg := opts.Config
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = domain.DefaultMaxAttempts
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:  httpClient,
		maxAttempts: maxAttempts,
		backoffBase: cfg.BackoffBase,
		backoffMax:  cfg.BackoffMax,
		logger:      logger.Named("aladhan"),
		metrics:     opts.Metrics,
	}
}

// GetJSON fetches baseURL+path with the given query, retrying failed
// attempts. The timeout bounds each attempt, not the whole sequence. The
// returned bytes are the raw response body; callers unwrap the envelope.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, timeout time.Duration) ([]byte, error) {
	endpoint := c.baseURL + path
	delay := newBackoff(c.backoffBase, c.backoffMax)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			c.metrics.ObserveUpstreamRetry(path)
			delay.Sleep(ctx)
		}
		if err := ctx.Err(); err != nil {
			return nil, domain.Wrap(domain.CodeUnavailable, "aladhan.GetJSON", err)
		}

		body, err := c.getOnce(ctx, endpoint, query, timeout)
		c.metrics.ObserveUpstreamAttempt(path, err)
		if err == nil {
			return body, nil
		}
		lastErr = err
		c.logger.Warn("upstream request failed",
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	return nil, domain.Wrap(domain.CodeUnavailable, "aladhan.GetJSON", lastErr)
}

func (c *Client) getOnce(ctx context.Context, endpoint string, query url.Values, timeout time.Duration) ([]byte, error) {
	attemptCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	target := endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}
	return body, nil
}
