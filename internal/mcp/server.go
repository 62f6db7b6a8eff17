package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/domain/status"
)

// ClientService defines client operations needed by MCP.
type ClientService interface {
	FindByID(ctx context.Context, id string) (*client.Client, bool, error)
	FindAll(ctx context.Context, req page.Request) (page.Page[client.Client], error)
	Save(ctx context.Context, c *client.Client) (*client.Client, error)
	Delete(ctx context.Context, c *client.Client) error
}

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	FindByID(ctx context.Context, id string) (*project.Project, bool, error)
	FindAll(ctx context.Context, req page.Request) (page.Page[project.Project], error)
	FindAllByStatus(ctx context.Context, req page.Request, st status.Status) (page.Page[project.Project], error)
	FindByClientIDAndStatus(ctx context.Context, req page.Request, clientID string, st status.Status) (page.Page[project.Project], error)
	Add(ctx context.Context, clientID string, proj *project.Project) (*project.Project, error)
	Update(ctx context.Context, proj *project.Project) (*project.Project, error)
	UpdateStatus(ctx context.Context, id string, st status.Status) (string, error)
	Delete(ctx context.Context, proj *project.Project) error
}

// ActivityService defines activity operations needed by MCP.
type ActivityService interface {
	FindByID(ctx context.Context, id string) (*activity.Activity, bool, error)
	FindByProjectID(ctx context.Context, req page.Request, projectID string) (page.Page[activity.Activity], error)
	FindByProjectIDAndStatus(ctx context.Context, req page.Request, projectID string, st status.Status) (page.Page[activity.Activity], error)
	Add(ctx context.Context, projectID string, act *activity.Activity) (*activity.Activity, error)
	Update(ctx context.Context, act *activity.Activity) (*activity.Activity, error)
	UpdateStatus(ctx context.Context, id string, st status.Status) (string, error)
	Delete(ctx context.Context, act *activity.Activity) error
}

// Services contains all domain services needed by MCP.
type Services struct {
	Clients    ClientService
	Projects   ProjectService
	Activities ActivityService
}

// Transport modes accepted in Config.TransportMode.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config contains server configuration.
type Config struct {
	Services      Services
	AuthEnabled   bool
	AuthToken     string
	TransportMode string
	Version       string
	Logger        *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	version := cfg.Version
	if version == "" {
		version = "dev"
	}

	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "projman",
		Version: version,
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       logger,
	})

	registerDocResources(server)

	// Stdio is a local pipe; only HTTP checks the bearer token.
	if cfg.TransportMode != TransportStdio && cfg.AuthEnabled {
		server.AddReceivingMiddleware(authMiddleware(cfg.AuthToken))
	}
	server.AddReceivingMiddleware(trafficLoggingMiddleware(logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(logger, "outbound"))

	handler := NewHandler(cfg.Services.Clients, cfg.Services.Projects, cfg.Services.Activities)
	registerTools(server, handler, logger)

	return server
}
