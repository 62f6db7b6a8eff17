package sqlstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/domain/status"
)

// ProjectRepository implements project.Repository.
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `id, client_id, description, status, created_at, updated_at`

// FindByID retrieves a project by ID
func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*project.Project, error) {
	row := r.db.queryRow(ctx, `SELECT `+projectColumns+` FROM tb_project WHERE id = ?`, id)
	proj, err := scanProject(row)
	if err != nil {
		return nil, translate("get project", err)
	}
	return proj, nil
}

// FindAll returns one page of all projects.
func (r *ProjectRepository) FindAll(ctx context.Context, req page.Request) (page.Page[project.Project], error) {
	return r.list(ctx, req, "", nil)
}

// FindAllByStatus returns one page of projects in st, oldest first.
func (r *ProjectRepository) FindAllByStatus(ctx context.Context, req page.Request, st status.Status) (page.Page[project.Project], error) {
	return r.list(ctx, req, "status = ?", []any{st})
}

// FindAllByClientIDAndStatus returns one page of the client's projects in st,
// oldest first.
func (r *ProjectRepository) FindAllByClientIDAndStatus(ctx context.Context, req page.Request, clientID string, st status.Status) (page.Page[project.Project], error) {
	return r.list(ctx, req, "client_id = ? AND status = ?", []any{clientID, st})
}

func (r *ProjectRepository) list(ctx context.Context, req page.Request, where string, args []any) (page.Page[project.Project], error) {
	req = req.Normalize()
	if where != "" {
		where = " WHERE " + where
	}

	var total int64
	if err := r.db.queryRow(ctx, `SELECT COUNT(*) FROM tb_project`+where, args...).Scan(&total); err != nil {
		return page.Page[project.Project]{}, translate("count projects", err)
	}

	rows, err := r.db.query(ctx,
		`SELECT `+projectColumns+` FROM tb_project`+where+` ORDER BY created_at, id LIMIT ? OFFSET ?`,
		append(args, req.Size, req.Offset())...,
	)
	if err != nil {
		return page.Page[project.Project]{}, translate("list projects", err)
	}
	defer rows.Close()

	var items []project.Project
	for rows.Next() {
		proj, err := scanProject(rows)
		if err != nil {
			return page.Page[project.Project]{}, translate("scan project", err)
		}
		items = append(items, *proj)
	}
	if err := rows.Err(); err != nil {
		return page.Page[project.Project]{}, translate("list projects", err)
	}

	return page.New(req, total, items), nil
}

// ExistsByClientIDAndDescription reports whether the client already owns a
// project with exactly this description.
func (r *ProjectRepository) ExistsByClientIDAndDescription(ctx context.Context, clientID, description string) (bool, error) {
	var n int
	err := r.db.queryRow(ctx,
		`SELECT COUNT(*) FROM tb_project WHERE client_id = ? AND description = ?`,
		clientID, description,
	).Scan(&n)
	if err != nil {
		return false, translate("check project description", err)
	}
	return n > 0, nil
}

// Save inserts proj when it has no ID and otherwise updates its description
// and status. The owning client never changes.
func (r *ProjectRepository) Save(ctx context.Context, proj *project.Project) error {
	now := timestamp()
	if proj.ID == "" {
		id := uuid.NewString()
		_, err := r.db.exec(ctx, `
			INSERT INTO tb_project (id, client_id, description, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, proj.ClientID, proj.Description, proj.Status, now, now)
		if err != nil {
			return translate("create project", err)
		}
		proj.ID = id
		proj.CreatedAt = now
		proj.UpdatedAt = now
		return nil
	}

	res, err := r.db.exec(ctx,
		`UPDATE tb_project SET description = ?, status = ?, updated_at = ? WHERE id = ?`,
		proj.Description, proj.Status, now, proj.ID,
	)
	if err != nil {
		return translate("update project", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	stored, err := r.FindByID(ctx, proj.ID)
	if err != nil {
		return err
	}
	*proj = *stored
	return nil
}

// UpdateStatus writes only the status column. Unknown IDs are ignored.
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id string, st status.Status) error {
	_, err := r.db.exec(ctx,
		`UPDATE tb_project SET status = ?, updated_at = ? WHERE id = ?`,
		st, timestamp(), id,
	)
	if err != nil {
		return translate("update project status", err)
	}
	return nil
}

// Delete removes the project and its activities.
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.exec(ctx, `DELETE FROM tb_project WHERE id = ?`, id); err != nil {
		return translate("delete project", err)
	}
	return nil
}

func scanProject(s scanner) (*project.Project, error) {
	var proj project.Project
	err := s.Scan(&proj.ID, &proj.ClientID, &proj.Description, &proj.Status, &proj.CreatedAt, &proj.UpdatedAt)
	if err != nil {
		return nil, err
	}
	proj.CreatedAt = proj.CreatedAt.UTC()
	proj.UpdatedAt = proj.UpdatedAt.UTC()
	return &proj, nil
}
