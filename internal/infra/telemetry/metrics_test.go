package telemetry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsIsNoOp(t *testing.T) {
	var m *Metrics
	// Must not panic.
	m.ObserveTool("get_qibla", time.Second, nil)
	m.ObserveUpstreamAttempt("/methods", errors.New("boom"))
	m.ObserveUpstreamRetry("/methods")
	m.ObserveCacheLookup(true)
}

func TestMetricsObservations(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewMetrics(registry)

	m.ObserveTool("get_qibla", 50*time.Millisecond, nil)
	m.ObserveTool("get_qibla", 10*time.Millisecond, errors.New("boom"))
	m.ObserveUpstreamAttempt("/qibla", nil)
	m.ObserveUpstreamRetry("/qibla")
	m.ObserveCacheLookup(true)
	m.ObserveCacheLookup(false)

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, family := range families {
		names[family.GetName()] = true
	}
	require.True(t, names["adhanmcp_tool_duration_seconds"])
	require.True(t, names["adhanmcp_upstream_attempts_total"])
	require.True(t, names["adhanmcp_upstream_retries_total"])
	require.True(t, names["adhanmcp_cache_lookups_total"])
}

func TestStartHTTPServerDisabledByEmptyAddr(t *testing.T) {
	require.NoError(t, StartHTTPServer(context.Background(), HTTPServerOptions{}, nil))
}

func TestStartHTTPServerServesMetricsAndHealthz(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	registry := prometheus.NewRegistry()
	NewMetrics(registry).ObserveCacheLookup(true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- StartHTTPServer(ctx, HTTPServerOptions{Addr: addr, Registry: registry}, nil)
	}()

	var resp *http.Response
	require.Eventually(t, func() bool {
		var getErr error
		resp, getErr = http.Get(fmt.Sprintf("http://%s/healthz", addr))
		return getErr == nil
	}, 2*time.Second, 20*time.Millisecond)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	_ = resp.Body.Close()

	resp, err = http.Get(fmt.Sprintf("http://%s/metrics", addr))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Contains(t, string(body), "adhanmcp_cache_lookups_total")

	cancel()
	require.NoError(t, <-done)
}
