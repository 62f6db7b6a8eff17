package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/status"
	"github.com/rpggio/projman/internal/repository"
)

// Service handles project operations.
//
// Update, UpdateStatus and Delete trust the caller to have resolved the project
// with FindByID; they never check existence themselves.
type Service struct {
	repo    Repository
	clients ClientRepository
	tx      repository.Transactor
	logger  *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, clients ClientRepository, tx repository.Transactor, logger *slog.Logger) *Service {
	if tx == nil {
		tx = repository.NoTx
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, clients: clients, tx: tx, logger: logger}
}

// FindByID returns the project, or ok=false when there is none.
func (s *Service) FindByID(ctx context.Context, id string) (*Project, bool, error) {
	proj, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("finding project: %w", err)
	}
	return proj, true, nil
}

// FindByClientIDAndStatus pages through a client's projects in one status,
// oldest first.
func (s *Service) FindByClientIDAndStatus(ctx context.Context, req page.Request, clientID string, st status.Status) (page.Page[Project], error) {
	p, err := s.repo.FindAllByClientIDAndStatus(ctx, req.Normalize(), clientID, st)
	if err != nil {
		return page.Page[Project]{}, fmt.Errorf("listing client projects: %w", err)
	}
	return p, nil
}

// FindAll pages through every project.
func (s *Service) FindAll(ctx context.Context, req page.Request) (page.Page[Project], error) {
	p, err := s.repo.FindAll(ctx, req.Normalize())
	if err != nil {
		return page.Page[Project]{}, fmt.Errorf("listing projects: %w", err)
	}
	return p, nil
}

// FindAllByStatus pages through every project in one status, oldest first.
func (s *Service) FindAllByStatus(ctx context.Context, req page.Request, st status.Status) (page.Page[Project], error) {
	p, err := s.repo.FindAllByStatus(ctx, req.Normalize(), st)
	if err != nil {
		return page.Page[Project]{}, fmt.Errorf("listing projects by status: %w", err)
	}
	return p, nil
}

// Add creates a project under the client. The client must exist and must not
// already own a project with the same description. The new project is always
// OPEN.
func (s *Service) Add(ctx context.Context, clientID string, proj *Project) (*Project, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.clients.FindByID(ctx, clientID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrClientNotFound
			}
			return fmt.Errorf("loading client: %w", err)
		}

		exists, err := s.repo.ExistsByClientIDAndDescription(ctx, clientID, proj.Description)
		if err != nil {
			return fmt.Errorf("checking description: %w", err)
		}
		if exists {
			return ErrProjectExists
		}

		row := *proj
		row.ID = ""
		row.ClientID = clientID
		row.Status = status.Open
		if err := s.repo.Save(ctx, &row); err != nil {
			if errors.Is(err, repository.ErrUniqueViolation) {
				return ErrProjectExists
			}
			if errors.Is(err, repository.ErrForeignKeyViolation) {
				return ErrClientNotFound
			}
			return fmt.Errorf("inserting project: %w", err)
		}
		*proj = row
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("adding project: %w", err)
	}

	s.logger.Debug("project added", "id", proj.ID, "client_id", clientID)
	return proj, nil
}

// Update persists the description and status of an already resolved project.
func (s *Service) Update(ctx context.Context, proj *Project) (*Project, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Save(ctx, proj)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUniqueViolation) {
			return nil, fmt.Errorf("updating project: %w", ErrProjectExists)
		}
		return nil, fmt.Errorf("updating project: %w", err)
	}
	s.logger.Debug("project updated", "id", proj.ID, "status", proj.Status)
	return proj, nil
}

// UpdateStatus writes only the status of the project with the given ID. It is
// a no-op when no such project exists.
func (s *Service) UpdateStatus(ctx context.Context, id string, st status.Status) (string, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.UpdateStatus(ctx, id, st)
	})
	if err != nil {
		return "", fmt.Errorf("updating project status: %w", err)
	}
	s.logger.Debug("project status updated", "id", id, "status", st)
	return StatusUpdatedMessage, nil
}

// Delete removes the project and its activities.
func (s *Service) Delete(ctx context.Context, proj *Project) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, proj.ID)
	})
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	s.logger.Debug("project deleted", "id", proj.ID)
	return nil
}
