package sqlstore

import (
	"context"

	"github.com/google/uuid"

	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/status"
)

// ActivityRepository implements activity.Repository.
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activityColumns = `id, project_id, description, status, created_at, updated_at`

// FindByID retrieves an activity by ID
func (r *ActivityRepository) FindByID(ctx context.Context, id string) (*activity.Activity, error) {
	row := r.db.queryRow(ctx, `SELECT `+activityColumns+` FROM tb_activity WHERE id = ?`, id)
	act, err := scanActivity(row)
	if err != nil {
		return nil, translate("get activity", err)
	}
	return act, nil
}

// FindAllByProjectID returns one page of the project's activities.
func (r *ActivityRepository) FindAllByProjectID(ctx context.Context, req page.Request, projectID string) (page.Page[activity.Activity], error) {
	return r.list(ctx, req, "project_id = ?", []any{projectID})
}

// FindAllByProjectIDAndStatus returns one page of the project's activities in st.
func (r *ActivityRepository) FindAllByProjectIDAndStatus(ctx context.Context, req page.Request, projectID string, st status.Status) (page.Page[activity.Activity], error) {
	return r.list(ctx, req, "project_id = ? AND status = ?", []any{projectID, st})
}

func (r *ActivityRepository) list(ctx context.Context, req page.Request, where string, args []any) (page.Page[activity.Activity], error) {
	req = req.Normalize()

	var total int64
	if err := r.db.queryRow(ctx, `SELECT COUNT(*) FROM tb_activity WHERE `+where, args...).Scan(&total); err != nil {
		return page.Page[activity.Activity]{}, translate("count activities", err)
	}

	rows, err := r.db.query(ctx,
		`SELECT `+activityColumns+` FROM tb_activity WHERE `+where+` ORDER BY created_at, id LIMIT ? OFFSET ?`,
		append(args, req.Size, req.Offset())...,
	)
	if err != nil {
		return page.Page[activity.Activity]{}, translate("list activities", err)
	}
	defer rows.Close()

	var items []activity.Activity
	for rows.Next() {
		act, err := scanActivity(rows)
		if err != nil {
			return page.Page[activity.Activity]{}, translate("scan activity", err)
		}
		items = append(items, *act)
	}
	if err := rows.Err(); err != nil {
		return page.Page[activity.Activity]{}, translate("list activities", err)
	}

	return page.New(req, total, items), nil
}

// ExistsByProjectIDAndDescription reports whether the project already has an
// activity with exactly this description.
func (r *ActivityRepository) ExistsByProjectIDAndDescription(ctx context.Context, projectID, description string) (bool, error) {
	var n int
	err := r.db.queryRow(ctx,
		`SELECT COUNT(*) FROM tb_activity WHERE project_id = ? AND description = ?`,
		projectID, description,
	).Scan(&n)
	if err != nil {
		return false, translate("check activity description", err)
	}
	return n > 0, nil
}

// Save inserts act when it has no ID and otherwise updates its description
// and status.
func (r *ActivityRepository) Save(ctx context.Context, act *activity.Activity) error {
	now := timestamp()
	if act.ID == "" {
		id := uuid.NewString()
		_, err := r.db.exec(ctx, `
			INSERT INTO tb_activity (id, project_id, description, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)
		`, id, act.ProjectID, act.Description, act.Status, now, now)
		if err != nil {
			return translate("create activity", err)
		}
		act.ID = id
		act.CreatedAt = now
		act.UpdatedAt = now
		return nil
	}

	res, err := r.db.exec(ctx,
		`UPDATE tb_activity SET description = ?, status = ?, updated_at = ? WHERE id = ?`,
		act.Description, act.Status, now, act.ID,
	)
	if err != nil {
		return translate("update activity", err)
	}
	if err := requireAffected(res); err != nil {
		return err
	}

	stored, err := r.FindByID(ctx, act.ID)
	if err != nil {
		return err
	}
	*act = *stored
	return nil
}

// UpdateStatus writes only the status column. Unknown IDs are ignored.
func (r *ActivityRepository) UpdateStatus(ctx context.Context, id string, st status.Status) error {
	_, err := r.db.exec(ctx,
		`UPDATE tb_activity SET status = ?, updated_at = ? WHERE id = ?`,
		st, timestamp(), id,
	)
	if err != nil {
		return translate("update activity status", err)
	}
	return nil
}

// Delete removes the activity.
func (r *ActivityRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.exec(ctx, `DELETE FROM tb_activity WHERE id = ?`, id); err != nil {
		return translate("delete activity", err)
	}
	return nil
}

func scanActivity(s scanner) (*activity.Activity, error) {
	var act activity.Activity
	err := s.Scan(&act.ID, &act.ProjectID, &act.Description, &act.Status, &act.CreatedAt, &act.UpdatedAt)
	if err != nil {
		return nil, err
	}
	act.CreatedAt = act.CreatedAt.UTC()
	act.UpdatedAt = act.UpdatedAt.UTC()
	return &act, nil
}
