package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/projman/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	require.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	require.Equal(t, slog.LevelError, parseLogLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	require.Equal(t, slog.LevelInfo, parseLogLevel(""))
}

func TestEnsureDBDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "data", "projman.db")
	require.NoError(t, ensureDBDir(path))
	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.NoError(t, ensureDBDir(":memory:"))
	require.NoError(t, ensureDBDir("file:test?mode=memory"))
}

func TestNewLogger_StdioWritesToStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := config.Default()
	cfg.Transport.Mode = config.TransportStdio

	logger, closeLog, err := newLogger(cfg, &stdout, &stderr)
	require.NoError(t, err)
	defer closeLog()

	logger.Info("hello")
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "msg=hello")
}

func TestLogFileWriter_KeepsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "projman.log")
	w, err := openLogFile(path, 16, 8)
	require.NoError(t, err)

	_, err = io.WriteString(w, "0123456789")
	require.NoError(t, err)
	_, err = io.WriteString(w, "abcdefghij")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "cdefghij", string(data))
}

func TestMigrateCommand(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "db", "projman.db")
	t.Setenv("PROJMAN_DB_DSN", dsn)
	t.Setenv("PROJMAN_CONFIG_PATH", "")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"migrate"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "migrations applied")

	_, err := os.Stat(dsn)
	require.NoError(t, err)
}

func TestServeCommand_RejectsBadTransport(t *testing.T) {
	t.Setenv("PROJMAN_CONFIG_PATH", "")
	cmd := newRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"serve", "--transport", "carrier-pigeon"})
	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported transport mode")
}

type bearerTransport struct {
	token string
}

func (b bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+b.token)
	return http.DefaultTransport.RoundTrip(req)
}

func TestHTTPHandler_ServesRESTAndMCP(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.DB.DSN = ":memory:"
	cfg.Auth.Enabled = true
	cfg.Auth.Token = "s3cret"

	db, err := openStore(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.DiscardHandler)
	server := httptest.NewServer(newHTTPHandler(cfg, newStack(db, logger), logger))
	t.Cleanup(server.Close)

	resp, err := http.Get(server.URL + "/client/all")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	metrics, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(metrics), `go_sql_max_open_connections{db_name="projman"} 1`)

	mcpClient := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "cli-test", Version: "v0.0.1"}, nil)
	session, err := mcpClient.Connect(ctx, &sdkmcp.StreamableClientTransport{
		Endpoint:   server.URL + "/mcp",
		HTTPClient: &http.Client{Transport: bearerTransport{token: "s3cret"}},
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "create_client",
		Arguments: map[string]any{"name": "Acme"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	// The client created over MCP is visible over REST.
	req, err := http.NewRequest(http.MethodGet, server.URL+"/client/all", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer s3cret")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `"name":"Acme"`)
}
