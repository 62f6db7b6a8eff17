package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PROJMAN_CONFIG_PATH", "PROJMAN_SERVER_HOST", "PROJMAN_SERVER_PORT",
		"PROJMAN_DB_DRIVER", "PROJMAN_DB_DSN", "PROJMAN_LOG_LEVEL",
		"PROJMAN_TRANSPORT_MODE", "PROJMAN_AUTH_ENABLED", "PROJMAN_AUTH_TOKEN",
		"PROJMAN_MCP_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
	require.Equal(t, 8080, cfg.Server.Port)
	require.Equal(t, "sqlite", cfg.DB.Driver)
	require.Equal(t, TransportHTTP, cfg.Transport.Mode)
	require.True(t, cfg.MCP.Enabled)
	require.False(t, cfg.Auth.Enabled)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "projman.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 9090
db:
  driver: postgres
  dsn: postgres://localhost/projman
log:
  level: debug
`), 0o644))

	t.Setenv("PROJMAN_CONFIG_PATH", path)
	t.Setenv("PROJMAN_SERVER_PORT", "9191")
	t.Setenv("PROJMAN_AUTH_ENABLED", "true")
	t.Setenv("PROJMAN_AUTH_TOKEN", "secret")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, 9191, cfg.Server.Port)
	require.Equal(t, "postgres", cfg.DB.Driver)
	require.Equal(t, "postgres://localhost/projman", cfg.DB.DSN)
	require.Equal(t, "debug", cfg.Log.Level)
	require.True(t, cfg.Auth.Enabled)
	require.Equal(t, "secret", cfg.Auth.Token)
	require.Equal(t, "0.0.0.0", cfg.Server.Host)
}

func TestLoad_ExplicitPathWins(t *testing.T) {
	clearEnv(t)

	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")
	flagPath := filepath.Join(dir, "flag.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte("server:\n  port: 1111\n"), 0o644))
	require.NoError(t, os.WriteFile(flagPath, []byte("server:\n  port: 2222\n"), 0o644))
	t.Setenv("PROJMAN_CONFIG_PATH", envPath)

	cfg, err := Load(flagPath)
	require.NoError(t, err)
	require.Equal(t, 2222, cfg.Server.Port)
}

func TestLoad_BadValues(t *testing.T) {
	cases := map[string]map[string]string{
		"port not a number":  {"PROJMAN_SERVER_PORT": "eighty"},
		"port out of range":  {"PROJMAN_SERVER_PORT": "70000"},
		"unknown driver":     {"PROJMAN_DB_DRIVER": "oracle"},
		"unknown mode":       {"PROJMAN_TRANSPORT_MODE": "grpc"},
		"auth without token": {"PROJMAN_AUTH_ENABLED": "true"},
		"bad bool":           {"PROJMAN_MCP_ENABLED": "maybe"},
		"stdio without mcp":  {"PROJMAN_TRANSPORT_MODE": "stdio", "PROJMAN_MCP_ENABLED": "false"},
		"unknown log level":  {"PROJMAN_LOG_LEVEL": "trace"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorContains(t, err, "read config file")
}
