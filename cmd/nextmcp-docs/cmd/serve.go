package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KeshavVarad/nextmcp-docs-server/internal/config"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/docs"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/logging"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/mcp"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/query"
	"github.com/KeshavVarad/nextmcp-docs-server/internal/transport"
	"github.com/KeshavVarad/nextmcp-docs-server/pkg/version"
)

// serveOptions holds CLI flags for serve. Flags override config file
// and environment values.
type serveOptions struct {
	transport string
	host      string
	port      int
	logLevel  string
}

func newServeCmd() *cobra.Command {
	var opts serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the documentation server",
		Long: `Start the MCP documentation server.

With the http transport (default) the server listens for JSON-RPC
requests on POST /mcp and exposes GET /health and GET /metrics.

With the stdio transport the server speaks MCP over stdin/stdout,
for clients that spawn the binary directly:

  nextmcp-docs serve --transport stdio

Configuration is read from .nextmcp-docs.yaml in the working directory,
then overridden by environment variables (PORT, HOST, LOG_LEVEL) and
finally by command-line flags.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.transport, "transport", "t", "", "Transport: http or stdio")
	cmd.Flags().StringVar(&opts.host, "host", "", "Bind address for the http transport")
	cmd.Flags().IntVarP(&opts.port, "port", "p", 0, "Port for the http transport")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	return cmd
}

func runServe(cmd *cobra.Command, opts serveOptions) error {
	cfg, err := config.Load(".")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyServeFlags(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger := logging.Setup(logging.Config{Level: cfg.Server.LogLevel})
	slog.SetDefault(logger)

	title, content, tag := cfg.Weights()
	engine := query.NewEngine(docs.DefaultStore(), docs.DefaultExampleStore(), query.Options{
		Weights:      query.Weights{Title: title, Content: content, Tag: tag},
		DefaultLimit: cfg.Search.DefaultLimit,
		MaxLimit:     cfg.Search.MaxLimit,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch cfg.Server.Transport {
	case config.TransportStdio:
		return serveStdio(ctx, engine, logger)
	case config.TransportHTTP:
		return serveHTTP(ctx, cfg, engine, logger)
	default:
		return fmt.Errorf("unknown transport: %s (supported: http, stdio)", cfg.Server.Transport)
	}
}

func serveHTTP(ctx context.Context, cfg *config.Config, engine *query.Engine, logger *slog.Logger) error {
	dispatcher := mcp.NewDispatcher(engine, version.Version, logger)
	srv := transport.NewHTTPServer(cfg.Addr(), dispatcher, logger)
	return srv.Run(ctx)
}

func serveStdio(ctx context.Context, engine *query.Engine, logger *slog.Logger) error {
	srv, err := mcp.NewServer(engine, version.Version, logger)
	if err != nil {
		return err
	}
	return srv.Serve(ctx)
}

func applyServeFlags(cfg *config.Config, opts serveOptions) {
	if opts.transport != "" {
		cfg.Server.Transport = opts.transport
	}
	if opts.host != "" {
		cfg.Server.Host = opts.host
	}
	if opts.port != 0 {
		cfg.Server.Port = opts.port
	}
	if opts.logLevel != "" {
		cfg.Server.LogLevel = opts.logLevel
	}
}
