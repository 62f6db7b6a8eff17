package project

import (
	"context"

	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/status"
)

// Repository provides persistence for projects.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Project, error)
	FindAll(ctx context.Context, req page.Request) (page.Page[Project], error)
	FindAllByStatus(ctx context.Context, req page.Request, st status.Status) (page.Page[Project], error)
	FindAllByClientIDAndStatus(ctx context.Context, req page.Request, clientID string, st status.Status) (page.Page[Project], error)
	ExistsByClientIDAndDescription(ctx context.Context, clientID, description string) (bool, error)
	Save(ctx context.Context, proj *Project) error
	UpdateStatus(ctx context.Context, id string, st status.Status) error
	Delete(ctx context.Context, id string) error
}

// ClientRepository resolves the owning client.
type ClientRepository interface {
	FindByID(ctx context.Context, id string) (*client.Client, error)
}
