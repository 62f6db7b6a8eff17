package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/rpggio/projman/internal/config"
	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/mcp"
	"github.com/rpggio/projman/internal/sqlstore"
	"github.com/rpggio/projman/internal/transport"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(root *rootOptions) *cobra.Command {
	var transportMode string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST API and MCP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(root, func(cfg *config.Config) {
				if transportMode != "" {
					cfg.Transport.Mode = transportMode
				}
			})
			if err != nil {
				return err
			}

			logger, closeLog, err := newLogger(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&transportMode, "transport", "", "transport mode: http or stdio (overrides config)")
	return cmd
}

// stack is the set of services every surface is built on.
type stack struct {
	db         *sqlstore.DB
	clients    *client.Service
	projects   *project.Service
	activities *activity.Service
}

func newStack(db *sqlstore.DB, logger *slog.Logger) stack {
	clientRepo := sqlstore.NewClientRepository(db)
	projectRepo := sqlstore.NewProjectRepository(db)
	activityRepo := sqlstore.NewActivityRepository(db)
	return stack{
		db:         db,
		clients:    client.NewService(clientRepo, db, logger),
		projects:   project.NewService(projectRepo, clientRepo, db, logger),
		activities: activity.NewService(activityRepo, projectRepo, db, logger),
	}
}

func serve(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	db, err := openStore(ctx, cfg)
	if err != nil {
		logger.Error("failed to open database", "driver", cfg.DB.Driver, "error", err)
		return err
	}
	defer db.Close()

	svc := newStack(db, logger)
	if cfg.Transport.Mode == config.TransportStdio {
		return runStdioMode(ctx, logger, newMCPServer(cfg, svc, logger))
	}
	return runHTTPMode(ctx, logger, cfg, newHTTPHandler(cfg, svc, logger))
}

func newMCPServer(cfg config.Config, svc stack, logger *slog.Logger) *sdkmcp.Server {
	return mcp.NewServer(mcp.Config{
		Services: mcp.Services{
			Clients:    svc.clients,
			Projects:   svc.projects,
			Activities: svc.activities,
		},
		AuthEnabled:   cfg.Auth.Enabled,
		AuthToken:     cfg.Auth.Token,
		TransportMode: cfg.Transport.Mode,
		Version:       version,
		Logger:        logger,
	})
}

// newHTTPHandler builds the REST router with metrics and, when enabled, the
// streamable MCP endpoint mounted at /mcp.
func newHTTPHandler(cfg config.Config, svc stack, logger *slog.Logger) http.Handler {
	opts := transport.Options{
		Services: transport.Services{
			Clients:    svc.clients,
			Projects:   svc.projects,
			Activities: svc.activities,
		},
		Logger:  logger,
		Metrics: transport.NewMetrics(),
	}
	opts.Metrics.Registry().MustRegister(collectors.NewDBStatsCollector(svc.db.DB, "projman"))
	if cfg.Auth.Enabled {
		opts.AuthToken = cfg.Auth.Token
	}
	if cfg.MCP.Enabled {
		mcpServer := newMCPServer(cfg, svc, logger)
		opts.MCP = sdkmcp.NewStreamableHTTPHandler(
			func(*http.Request) *sdkmcp.Server { return mcpServer },
			&sdkmcp.StreamableHTTPOptions{
				SessionTimeout: 30 * time.Minute,
				Logger:         logger,
			},
		)
	}
	return transport.NewServer(opts)
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport", "auth", "disabled")

	// Run blocks until stdin closes or the context is canceled.
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", "error", err)
		return err
	}
	logger.Info("shutting down")
	return nil
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, cfg config.Config, handler http.Handler) error {
	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", addr, "mcp", cfg.MCP.Enabled, "auth", cfg.Auth.Enabled)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			logger.Error("server error", "error", err)
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		return err
	}
	return nil
}
