package client

import (
	"context"

	"github.com/rpggio/projman/internal/domain/page"
)

// Repository provides persistence for clients.
type Repository interface {
	FindByID(ctx context.Context, id string) (*Client, error)
	FindAll(ctx context.Context, req page.Request) (page.Page[Client], error)
	Save(ctx context.Context, c *Client) error
	Delete(ctx context.Context, id string) error
}
