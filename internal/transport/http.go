package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/domain/status"
)

// ClientService defines client operations needed by the REST API.
type ClientService interface {
	FindByID(ctx context.Context, id string) (*client.Client, bool, error)
	FindAll(ctx context.Context, req page.Request) (page.Page[client.Client], error)
	Save(ctx context.Context, c *client.Client) (*client.Client, error)
	Delete(ctx context.Context, c *client.Client) error
}

// ProjectService defines project operations needed by the REST API.
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

// ActivityService defines activity operations needed by the REST API.
type ActivityService interface {
	FindByID(ctx context.Context, id string) (*activity.Activity, bool, error)
	FindByProjectID(ctx context.Context, req page.Request, projectID string) (page.Page[activity.Activity], error)
	FindByProjectIDAndStatus(ctx context.Context, req page.Request, projectID string, st status.Status) (page.Page[activity.Activity], error)
	Add(ctx context.Context, projectID string, act *activity.Activity) (*activity.Activity, error)
	Update(ctx context.Context, act *activity.Activity) (*activity.Activity, error)
	UpdateStatus(ctx context.Context, id string, st status.Status) (string, error)
	Delete(ctx context.Context, act *activity.Activity) error
}

// Services contains the domain services behind the REST API.
type Services struct {
	Clients    ClientService
	Projects   ProjectService
	Activities ActivityService
}

// Options configures NewServer.
type Options struct {
	Services Services
	Logger   *slog.Logger
	// AuthToken, when set, is required as a bearer token on every API route.
	AuthToken string
	// Metrics, when set, records request metrics and serves /metrics.
	Metrics *Metrics
	// MCP, when set, is mounted at /mcp.
	MCP http.Handler
}

// Server wires HTTP handlers.
type Server struct {
	clients    ClientService
	projects   ProjectService
	activities ActivityService
	logger     *slog.Logger
	metrics    *Metrics
}

// NewServer creates an HTTP server router with middleware.
func NewServer(opts Options) *chi.Mux {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	srv := &Server{
		clients:    opts.Services.Clients,
		projects:   opts.Services.Projects,
		activities: opts.Services.Activities,
		logger:     logger,
		metrics:    opts.Metrics,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/health", srv.handleHealth)
	if opts.MCP != nil {
		r.Handle("/mcp", opts.MCP)
		r.Handle("/mcp/*", opts.MCP)
	}

	r.Group(func(r chi.Router) {
		if opts.AuthToken != "" {
			r.Use(AuthMiddleware(opts.AuthToken))
		}

		r.Route("/client", func(r chi.Router) {
			r.Get("/id/{id}", srv.getClient)
			r.Get("/all", srv.listClients)
			r.Post("/add", srv.addClient)
			r.Put("/{id}", srv.updateClient)
			r.Delete("/{id}", srv.deleteClient)
		})

		r.Route("/project", func(r chi.Router) {
			r.Get("/id/{id}", srv.getProject)
			r.Get("/all", srv.listProjects)
			r.Get("/all/status/{status}", srv.listProjectsByStatus)
			r.Get("/all/{clientid}/{status}", srv.listClientProjects)
			r.Post("/add/client/{clientid}", srv.addProject)
			r.Put("/{id}", srv.updateProject)
			r.Patch("/{id}/status/{status}", srv.updateProjectStatus)
			r.Delete("/{id}", srv.deleteProject)
		})

		r.Route("/activity", func(r chi.Router) {
			r.Get("/id/{id}", srv.getActivity)
			r.Get("/all/{projectid}", srv.listProjectActivities)
			r.Get("/all/{projectid}/{status}", srv.listProjectActivitiesByStatus)
			r.Post("/add/project/{projectid}", srv.addActivity)
			r.Put("/{id}", srv.updateActivity)
			r.Patch("/{id}/status/{status}", srv.updateActivityStatus)
			r.Delete("/{id}", srv.deleteActivity)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
