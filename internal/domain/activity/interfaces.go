package activity

import (
	"context"

	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/domain/status"
)

// Repository provides persistence operations for activities.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Activity, error)
	FindAllByProjectID(ctx context.Context, req page.Request, projectID string) (page.Page[Activity], error)
	FindAllByProjectIDAndStatus(ctx context.Context, req page.Request, projectID string, st status.Status) (page.Page[Activity], error)
	ExistsByProjectIDAndDescription(ctx context.Context, projectID, description string) (bool, error)
	Save(ctx context.Context, act *Activity) error
	UpdateStatus(ctx context.Context, id string, st status.Status) error
	Delete(ctx context.Context, id string) error
}

// ProjectRepository resolves the owning project.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*project.Project, error)
}
