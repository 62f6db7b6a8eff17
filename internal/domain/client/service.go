package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/repository"
)

// Service handles client operations.
//
// Save and Delete do not check that the client exists; callers resolve the
// client with FindByID first.
type Service struct {
	repo   Repository
	tx     repository.Transactor
	logger *slog.Logger
}

// NewService creates a new client service.
func NewService(repo Repository, tx repository.Transactor, logger *slog.Logger) *Service {
	if tx == nil {
		tx = repository.NoTx
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, tx: tx, logger: logger}
}

// FindByID returns the client, or ok=false when there is none.
func (s *Service) FindByID(ctx context.Context, id string) (*Client, bool, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("finding client: %w", err)
	}
	return c, true, nil
}

// FindAll returns one page of all clients.
func (s *Service) FindAll(ctx context.Context, req page.Request) (page.Page[Client], error) {
	p, err := s.repo.FindAll(ctx, req.Normalize())
	if err != nil {
		return page.Page[Client]{}, fmt.Errorf("listing clients: %w", err)
	}
	return p, nil
}

// Save inserts the client when it has no ID, otherwise overwrites its name.
func (s *Service) Save(ctx context.Context, c *Client) (*Client, error) {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Save(ctx, c)
	})
	if err != nil {
		return nil, fmt.Errorf("saving client: %w", err)
	}
	s.logger.Debug("client saved", "id", c.ID)
	return c, nil
}

// Delete removes the client together with its projects and their activities.
func (s *Service) Delete(ctx context.Context, c *Client) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, c.ID)
	})
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	s.logger.Debug("client deleted", "id", c.ID)
	return nil
}
