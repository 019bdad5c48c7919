// Package server assembles the MCP server: it registers every tool group
// and runs the stdio or streamable HTTP transport.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"adhanmcp/internal/domain"
	"adhanmcp/internal/infra/aladhan"
	"adhanmcp/internal/infra/cache"
	"adhanmcp/internal/infra/telemetry"
	"adhanmcp/internal/infra/tools"
)

const serverName = "adhanmcp"

type Server struct {
	cfg    domain.Config
	logger *zap.Logger
	mcp    *mcp.Server
}

type Options struct {
	Config  domain.Config
	Client  *aladhan.Client
	Cache   *cache.Cache
	Logger  *zap.Logger
	Metrics *telemetry.Metrics
	Version string
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	version := opts.Version
	if version == "" {
		version = "0.1.0"
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, &mcp.ServerOptions{
		HasTools: true,
	})

	deps := tools.NewDeps(opts.Client, opts.Cache, opts.Config, logger, opts.Metrics)
	tools.RegisterAll(mcpServer, deps)

	return &Server{
		cfg:    opts.Config,
		logger: logger.Named("server"),
		mcp:    mcpServer,
	}
}

// MCP exposes the underlying SDK server, used by tests to connect
// in-memory transports.
func (s *Server) MCP() *mcp.Server {
	return s.mcp
}

// Run serves on stdio and blocks until the context is cancelled or the
// client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("server starting (stdio transport)")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// RunStreamableHTTP serves the streamable HTTP transport on the configured
// address and blocks until the context is cancelled.
func (s *Server) RunStreamableHTTP(ctx context.Context) error {
	addr := strings.TrimSpace(s.cfg.HTTPAddr)
	if addr == "" {
		return errors.New("http address is required")
	}
	path := s.cfg.HTTPPath
	if path == "" {
		path = domain.DefaultHTTPPath
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil)

	mux := http.NewServeMux()
	mux.Handle(path, handler)

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("server starting (streamable http transport)",
			zap.String("addr", addr),
			zap.String("path", path),
		)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("http server shutdown error", zap.Error(err))
			return err
		}
		s.logger.Info("server stopped")
		return nil
	}
}
