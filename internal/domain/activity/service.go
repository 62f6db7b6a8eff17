package activity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/status"
	"github.com/rpggio/projman/internal/repository"
)

// Service handles activity operations.
//
// Update, UpdateStatus and Delete trust the caller to have resolved the
// activity with FindByID; they never check existence themselves.
type Service struct {
	repo     Repository
	projects ProjectRepository
	tx       repository.Transactor
	logger   *slog.Logger
}

// NewService creates a new activity service.
func NewService(repo Repository, projects ProjectRepository, tx repository.Transactor, logger *slog.Logger) *Service {
	if tx == nil {
		tx = repository.NoTx
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, projects: projects, tx: tx, logger: logger}
}

// FindByID returns the activity, or ok=false when there is none.
func (s *Service) FindByID(ctx context.Context, id string) (*Activity, bool, error) {
	act, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("finding activity: %w", err)
	}
	return act, true, nil
}

// FindByProjectIDAndStatus pages through a project's activities in one
// status, oldest first.
func (s *Service) FindByProjectIDAndStatus(ctx context.Context, req page.Request, projectID string, st status.Status) (page.Page[Activity], error) {
	p, err := s.repo.FindAllByProjectIDAndStatus(ctx, req.Normalize(), projectID, st)
	if err != nil {
		return page.Page[Activity]{}, fmt.Errorf("listing project activities by status: %w", err)
	}
	return p, nil
}

// FindByProjectID pages through all of a project's activities, oldest first.
func (s *Service) FindByProjectID(ctx context.Context, req page.Request, projectID string) (page.Page[Activity], error) {
	p, err := s.repo.FindAllByProjectID(ctx, req.Normalize(), projectID)
	if err != nil {
		return page.Page[Activity]{}, fmt.Errorf("listing project activities: %w", err)
	}
	return p, nil
}

// Add creates an activity under the project. The project must exist and must
// not already hold an activity with the same description. The new activity
// is always OPEN.
func (s *Service) Add(ctx context.Context, projectID string, act *Activity) (*Activity, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.projects.FindByID(ctx, projectID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("loading project: %w", err)
		}

		exists, err := s.repo.ExistsByProjectIDAndDescription(ctx, projectID, act.Description)
		if err != nil {
			return fmt.Errorf("checking description: %w", err)
		}
		if exists {
			return ErrActivityExists
		}

		row := *act
		row.ID = ""
		row.ProjectID = projectID
		row.Status = status.Open
		if err := s.repo.Save(ctx, &row); err != nil {
			if errors.Is(err, repository.ErrUniqueViolation) {
				return ErrActivityExists
			}
			if errors.Is(err, repository.ErrForeignKeyViolation) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("inserting activity: %w", err)
		}
		*act = row
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding activity: %w", err)
	}

	s.logger.Debug("activity added", "id", act.ID, "project_id", projectID)
	return act, nil
}

// Update persists the description and status of an already resolved activity.
func (s *Service) Update(ctx context.Context, act *Activity) (*Activity, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Save(ctx, act)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, fmt.Errorf("updating activity: %w", ErrActivityExists)
		}
		return nil, fmt.Errorf("updating activity: %w", err)
	}
	s.logger.Debug("activity updated", "id", act.ID, "status", act.Status)
	return act, nil
}

// UpdateStatus writes only the status of the activity with the given ID. It
// is a no-op when no such activity exists.
func (s *Service) UpdateStatus(ctx context.Context, id string, st status.Status) (string, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.UpdateStatus(ctx, id, st)
	})
	if err != nil {
		return "", fmt.Errorf("updating activity status: %w", err)
	}
	s.logger.Debug("activity status updated", "id", id, "status", st)
	return StatusUpdatedMessage, nil
}

// Delete removes the activity.
func (s *Service) Delete(ctx context.Context, act *Activity) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, act.ID)
	})
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	s.logger.Debug("activity deleted", "id", act.ID)
	return nil
}
