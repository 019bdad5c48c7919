package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"adhanmcp/internal/domain"
	"adhanmcp/internal/infra/aladhan"
	"adhanmcp/internal/infra/cache"
	"adhanmcp/internal/infra/config"
	"adhanmcp/internal/infra/server"
	"adhanmcp/internal/infra/telemetry"
)

const version = "0.1.0"

type serverOptions struct {
	configPath        string
	transport         string
	httpAddr          string
	httpPath          string
	baseURL           string
	observabilityAddr string
	logger            *zap.Logger
}

func main() {
	opts := serverOptions{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "adhanmcp",
		Short: "MCP server exposing the AlAdhan prayer-times and Hijri-calendar API as tools",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg := zap.NewProductionConfig()
			// stdout carries the MCP protocol; logs must stay on stderr.
			cfg.OutputPaths = []string{"stderr"}
			log, err := cfg.Build()
			if err != nil {
				return err
			}
			opts.logger = log
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewLoader(opts.logger).Load(opts.configPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd.Flags(), &opts, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			metrics := telemetry.NewMetrics(prometheus.DefaultRegisterer)
			client := aladhan.NewClient(aladhan.ClientOptions{
				Config:  cfg,
				Logger:  opts.logger,
				Metrics: metrics,
			})
			srv := server.New(server.Options{
				Config:  cfg,
				Client:  client,
				Cache:   cache.New(),
				Logger:  opts.logger,
				Metrics: metrics,
				Version: version,
			})

			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error {
				return telemetry.StartHTTPServer(groupCtx, telemetry.HTTPServerOptions{
					Addr: cfg.ObservabilityAddr,
				}, opts.logger)
			})
			group.Go(func() error {
				// Stop the observability listener once the transport exits,
				// even on a clean client disconnect.
				defer cancel()
				switch cfg.Transport {
				case domain.TransportStreamableHTTP:
					return srv.RunStreamableHTTP(groupCtx)
				default:
					return srv.Run(groupCtx)
				}
			})

			err = group.Wait()
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		},
	}

	root.Flags().StringVar(&opts.configPath, "config", "", "path to YAML config file (optional)")
	root.Flags().StringVar(&opts.transport, "transport", string(domain.TransportStdio), "server transport (stdio or streamable-http)")
	root.Flags().StringVar(&opts.httpAddr, "http-addr", domain.DefaultHTTPAddr, "streamable HTTP listen address")
	root.Flags().StringVar(&opts.httpPath, "http-path", domain.DefaultHTTPPath, "streamable HTTP endpoint path")
	root.Flags().StringVar(&opts.baseURL, "base-url", domain.DefaultBaseURL, "AlAdhan API base URL")
	root.Flags().StringVar(&opts.observabilityAddr, "observability-addr", "", "listen address for /metrics and /healthz (empty disables)")

	if err := root.Execute(); err != nil {
		opts.logger.Fatal("command failed", zap.Error(err))
	}
}

// applyFlagOverrides copies explicitly set flags over the loaded config so
// flags win over file and environment values.
func applyFlagOverrides(flags *pflag.FlagSet, opts *serverOptions, cfg *domain.Config) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "transport":
			cfg.Transport = domain.Transport(opts.transport)
		case "http-addr":
			cfg.HTTPAddr = opts.httpAddr
		case "http-path":
			cfg.HTTPPath = opts.httpPath
		case "base-url":
			cfg.BaseURL = opts.baseURL
		case "observability-addr":
			cfg.ObservabilityAddr = opts.observabilityAddr
		}
	})
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
