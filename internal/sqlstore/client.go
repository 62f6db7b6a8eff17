package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/repository"
)

// ClientRepository implements client.Repository.
type ClientRepository struct {
	db *DB
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, name, created_at, updated_at`

// FindByID retrieves a client by ID
func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	row := r.db.queryRow(ctx, `SELECT `+clientColumns+` FROM tb_client WHERE id = ?`, id)
	c, err := scanClient(row)
	if err != nil {
		return nil, translate("get client", err)
	}
	return c, nil
}

// FindAll returns one page of clients, oldest first.
func (r *ClientRepository) FindAll(ctx context.Context, req page.Request) (page.Page[client.Client], error) {
	req = req.Normalize()

	var total int64
	if err := r.db.queryRow(ctx, `SELECT COUNT(*) FROM tb_client`).Scan(&total); err != nil {
		return page.Page[client.Client]{}, translate("count clients", err)
	}

	rows, err := r.db.query(ctx, `
		SELECT `+clientColumns+`
		FROM tb_client
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, req.Size, req.Offset())
	if err != nil {
		return page.Page[client.Client]{}, translate("list clients", err)
	}
	defer rows.Close()

	var items []client.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return page.Page[client.Client]{}, translate("scan client", err)
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return page.Page[client.Client]{}, translate("list clients", err)
	}

	return page.New(req, total, items), nil
}

// Save inserts c when it has no ID and otherwise updates its name. The
// generated ID and timestamps are written back into c.
func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	now := timestamp()
	if c.ID == "" {
		id := uuid.NewString()
		_, err := r.db.exec(ctx, `
			INSERT INTO tb_client (id, name, created_at, updated_at)
			VALUES (?, ?, ?, ?)
		`, id, c.Name, now, now)
		if err != nil {
			return translate("create client", err)
		}
		c.ID = id
		c.CreatedAt = now
		c.UpdatedAt = now
		return nil
	}

	res, err := r.db.exec(ctx, `UPDATE tb_client SET name = ?, updated_at = ? WHERE id = ?`, c.Name, now, c.ID)
	if err != nil {
		return translate("update client", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	stored, err := r.FindByID(ctx, c.ID)
	if err != nil {
		return err
	}
	*c = *stored
	return nil
}

// Delete removes the client; its projects and their activities go with it.
func (r *ClientRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.exec(ctx, `DELETE FROM tb_client WHERE id = ?`, id); err != nil {
		return translate("delete client", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanClient(s scanner) (*client.Client, error) {
	var c client.Client
	if err := s.Scan(&c.ID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

// timestamp is the current time at the precision both dialects keep.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return translate("count affected rows", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
