package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpggio/projman/internal/config"
	"github.com/rpggio/projman/internal/sqlstore"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "projman",
		Short:        "Track clients, their projects and project activities",
		Version:      version,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file (default $PROJMAN_CONFIG_PATH)")

	cmd.AddCommand(newServeCmd(opts), newMigrateCmd(opts))
	return cmd
}

// loadConfig reads the config file and env, then lets override adjust the
// result before it is validated again.
func loadConfig(opts *rootOptions, override func(*config.Config)) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if override != nil {
		override(&cfg)
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func newLogger(cfg config.Config, stdout, stderr io.Writer) (*slog.Logger, func(), error) {
	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := stdout
	if cfg.Transport.Mode == config.TransportStdio {
		logWriter = stderr
	}
	cleanup := func() {}
	if logPath := os.Getenv("PROJMAN_LOG_PATH"); logPath != "" {
		fileWriter, err := newLogFileWriter(logPath)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		logWriter = fileWriter
		cleanup = func() { _ = fileWriter.Close() }
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))
	return logger, cleanup, nil
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// openStore opens the configured database and brings its schema up to date.
func openStore(ctx context.Context, cfg config.Config) (*sqlstore.DB, error) {
	if cfg.DB.Driver == sqlstore.DriverSQLite {
		if err := ensureDBDir(cfg.DB.DSN); err != nil {
			return nil, fmt.Errorf("failed to prepare database path: %w", err)
		}
	}
	db, err := sqlstore.New(ctx, sqlstore.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureDBDir(path string) error {
	// URI DSNs carry their own options; leave them to the driver.
	if path == ":memory:" || path == "" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
