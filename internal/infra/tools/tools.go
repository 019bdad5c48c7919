// Package tools defines the MCP tool surface over the AlAdhan API. Each
// tool validates its arguments locally, maps them onto upstream query
// parameters, fetches through the retrying client, and returns the
// unwrapped payload as text content.
package tools

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"adhanmcp/internal/domain"
	"adhanmcp/internal/infra/aladhan"
	"adhanmcp/internal/infra/cache"
	"adhanmcp/internal/infra/telemetry"
)

// Deps carries the shared collaborators injected into every tool handler.
// Handlers share no other state.
type Deps struct {
	Client  *aladhan.Client
	Cache   *cache.Cache
	Config  domain.Config
	Logger  *zap.Logger
	Metrics *telemetry.Metrics

	// now is swappable for date-default tests.
	now func() time.Time
}

func NewDeps(client *aladhan.Client, c *cache.Cache, cfg domain.Config, logger *zap.Logger, metrics *telemetry.Metrics) Deps {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Deps{
		Client:  client,
		Cache:   c,
		Config:  cfg,
		Logger:  logger.Named("tools"),
		Metrics: metrics,
		now:     time.Now,
	}
}

// RegisterAll attaches every tool group to the server, mirroring the topic
// grouping of the upstream API: date conversion, prayer times, qibla, and
// calendars.
func RegisterAll(server *mcp.Server, deps Deps) {
	registerDateConversionTools(server, deps)
	registerPrayerTimesTools(server, deps)
	registerQiblaTools(server, deps)
	registerCalendarTools(server, deps)
}

// register wires a typed handler into the server with uniform logging and
// metrics. fn returns the raw JSON payload to emit as text content.
func register[In any](server *mcp.Server, deps Deps, tool *mcp.Tool, fn func(ctx context.Context, args In) ([]byte, error)) {
	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, args In) (*mcp.CallToolResult, any, error) {
		start := time.Now()
		callID := uuid.NewString()
		payload, err := fn(ctx, args)
		deps.Metrics.ObserveTool(tool.Name, time.Since(start), err)
		if err != nil {
			deps.Logger.Warn("tool call failed",
				zap.String("tool", tool.Name),
				zap.String("call_id", callID),
				zap.Error(err),
			)
			return nil, nil, err
		}
		deps.Logger.Debug("tool call completed",
			zap.String("tool", tool.Name),
			zap.String("call_id", callID),
			zap.Duration("elapsed", time.Since(start)),
		)
		return textResult(payload), nil, nil
	})
}
