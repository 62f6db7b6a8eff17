package sqlstore

import (
	"context"
	"testing"

	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/apperr"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/status"
	"github.com/rpggio/projman/internal/repository"
	"github.com/stretchr/testify/require"
)

func createActivity(t *testing.T, db *DB, projectID, description string, st status.Status) *activity.Activity {
	t.Helper()
	act := &activity.Activity{ProjectID: projectID, Description: description, Status: st}
	require.NoError(t, NewActivityRepository(db).Save(context.Background(), act))
	return act
}

func TestActivityRepository_SaveFindAndList(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	c := createClient(t, db, "Acme")
	proj := createProject(t, db, c.ID, "Website", status.Open)
	design := createActivity(t, db, proj.ID, "Design", status.Open)
	createActivity(t, db, proj.ID, "Build", status.Finished)

	found, err := repo.FindByID(ctx, design.ID)
	require.NoError(t, err)
	require.Equal(t, proj.ID, found.ProjectID)
	require.Equal(t, status.Open, found.Status)

	all, err := repo.FindAllByProjectID(ctx, page.DefaultRequest(), proj.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), all.TotalRecords)

	finished, err := repo.FindAllByProjectIDAndStatus(ctx, page.DefaultRequest(), proj.ID, status.Finished)
	require.NoError(t, err)
	require.Len(t, finished.ItemList, 1)
	require.Equal(t, "Build", finished.ItemList[0].Description)
}

func TestActivityRepository_Constraints(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	c := createClient(t, db, "Acme")
	proj := createProject(t, db, c.ID, "Website", status.Open)
	createActivity(t, db, proj.ID, "Design", status.Open)

	err := repo.Save(ctx, &activity.Activity{ProjectID: proj.ID, Description: "Design", Status: status.Open})
	require.ErrorIs(t, err, repository.ErrUniqueViolation)

	err = repo.Save(ctx, &activity.Activity{ProjectID: "missing", Description: "Design", Status: status.Open})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)

	exists, err := repo.ExistsByProjectIDAndDescription(ctx, proj.ID, "Design")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestActivityRepository_UpdateAndDelete(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	c := createClient(t, db, "Acme")
	proj := createProject(t, db, c.ID, "Website", status.Open)
	act := createActivity(t, db, proj.ID, "Design", status.Open)

	require.NoError(t, repo.UpdateStatus(ctx, act.ID, status.Finished))
	found, err := repo.FindByID(ctx, act.ID)
	require.NoError(t, err)
	require.Equal(t, status.Finished, found.Status)
	require.Equal(t, "Design", found.Description)

	found.Description = "UX design"
	require.NoError(t, repo.Save(ctx, found))
	require.Equal(t, "UX design", found.Description)

	require.NoError(t, repo.Delete(ctx, act.ID))
	_, err = repo.FindByID(ctx, act.ID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestActivityRepository_InvalidStoredCode(t *testing.T) {
	db := NewTestDB(t)
	repo := NewActivityRepository(db)
	ctx := context.Background()

	c := createClient(t, db, "Acme")
	proj := createProject(t, db, c.ID, "Website", status.Open)
	act := createActivity(t, db, proj.ID, "Design", status.Open)

	_, err := db.Exec("UPDATE tb_activity SET status = 'X' WHERE id = ?", act.ID)
	require.NoError(t, err)

	_, err = repo.FindByID(ctx, act.ID)
	require.ErrorIs(t, err, status.ErrInvalidStatusCode)
	require.Equal(t, apperr.KindInvalidStatusCode, apperr.KindOf(err))

	_, err = repo.FindAllByProjectID(ctx, page.DefaultRequest(), proj.ID)
	require.ErrorIs(t, err, status.ErrInvalidStatusCode)
}
