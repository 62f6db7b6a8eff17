package activity_test

import (
	"context"
	"testing"

	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/apperr"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/domain/status"
	"github.com/rpggio/projman/internal/repository"
	"github.com/rpggio/projman/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestActivityService_AddForcesOpen(t *testing.T) {
	ctx := context.Background()

	projects := &mocks.ProjectRepository{}
	repo := &mocks.ActivityRepository{}
	projects.On("FindByID", ctx, "p1").Return(&project.Project{ID: "p1", Status: status.Open}, nil)
	repo.On("ExistsByProjectIDAndDescription", ctx, "p1", "Design").Return(false, nil)
	repo.On("Save", ctx, mock.AnythingOfType("*activity.Activity")).Return(nil)

	svc := activity.NewService(repo, projects, nil, nil)
	act, err := svc.Add(ctx, "p1", &activity.Activity{Description: "Design", Status: status.Finished})
	require.NoError(t, err)
	require.Equal(t, "p1", act.ProjectID)
	require.Equal(t, status.Open, act.Status)
}

func TestActivityService_AddProjectNotFound(t *testing.T) {
	ctx := context.Background()

	projects := &mocks.ProjectRepository{}
	repo := &mocks.ActivityRepository{}
	projects.On("FindByID", ctx, "missing").Return(nil, repository.ErrNotFound)

	svc := activity.NewService(repo, projects, nil, nil)
	_, err := svc.Add(ctx, "missing", &activity.Activity{Description: "Design"})
	require.ErrorIs(t, err, activity.ErrProjectNotFound)
	require.Equal(t, apperr.KindParentNotFound, apperr.KindOf(err))
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestActivityService_AddDuplicateDescription(t *testing.T) {
	ctx := context.Background()

	projects := &mocks.ProjectRepository{}
	repo := &mocks.ActivityRepository{}
	projects.On("FindByID", ctx, "p1").Return(&project.Project{ID: "p1"}, nil)
	repo.On("ExistsByProjectIDAndDescription", ctx, "p1", "Design").Return(true, nil)

	svc := activity.NewService(repo, projects, nil, nil)
	_, err := svc.Add(ctx, "p1", &activity.Activity{Description: "Design"})
	require.ErrorIs(t, err, activity.ErrActivityExists)
	require.ErrorIs(t, err, apperr.ErrDuplicateDescription)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestActivityService_AddFailedInsertLeavesInput(t *testing.T) {
	ctx := context.Background()

	projects := &mocks.ProjectRepository{}
	repo := &mocks.ActivityRepository{}
	projects.On("FindByID", ctx, "p1").Return(&project.Project{ID: "p1"}, nil)
	repo.On("ExistsByProjectIDAndDescription", ctx, "p1", "Design").Return(false, nil)
	repo.On("Save", ctx, mock.Anything).Return(repository.ErrUniqueViolation)

	input := &activity.Activity{ID: "stale", ProjectID: "p9", Description: "Design", Status: status.Finished}
	svc := activity.NewService(repo, projects, nil, nil)
	_, err := svc.Add(ctx, "p1", input)
	require.ErrorIs(t, err, activity.ErrActivityExists)
	require.Equal(t, &activity.Activity{ID: "stale", ProjectID: "p9", Description: "Design", Status: status.Finished}, input)
}

func TestActivityService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ActivityRepository{}
	repo.On("UpdateStatus", ctx, "a1", status.Finished).Return(nil)

	svc := activity.NewService(repo, &mocks.ProjectRepository{}, nil, nil)
	msg, err := svc.UpdateStatus(ctx, "a1", status.Finished)
	require.NoError(t, err)
	require.Equal(t, "The activity status was updated", msg)
}

func TestActivityService_FindByProject(t *testing.T) {
	ctx := context.Background()
	want := page.New(page.DefaultRequest(), 1, []activity.Activity{{ID: "a1", ProjectID: "p1", Description: "Design", Status: status.Open}})

	repo := &mocks.ActivityRepository{}
	repo.On("FindAllByProjectID", ctx, page.DefaultRequest(), "p1").Return(want, nil)
	repo.On("FindAllByProjectIDAndStatus", ctx, page.DefaultRequest(), "p1", status.Finished).Return(page.New[activity.Activity](page.DefaultRequest(), 0, nil), nil)

	svc := activity.NewService(repo, &mocks.ProjectRepository{}, nil, nil)

	got, err := svc.FindByProjectID(ctx, page.Request{}, "p1")
	require.NoError(t, err)
	require.Len(t, got.ItemList, 1)
	require.Equal(t, "Design", got.ItemList[0].Description)

	finished, err := svc.FindByProjectIDAndStatus(ctx, page.DefaultRequest(), "p1", status.Finished)
	require.NoError(t, err)
	require.Empty(t, finished.ItemList)
	require.Equal(t, int64(0), finished.TotalRecords)
}

func TestActivityService_DeleteAndUpdate(t *testing.T) {
	ctx := context.Background()
	act := &activity.Activity{ID: "a1", ProjectID: "p1", Description: "Build", Status: status.Open}

	repo := &mocks.ActivityRepository{}
	repo.On("Save", ctx, act).Return(nil)
	repo.On("Delete", ctx, "a1").Return(nil)

	svc := activity.NewService(repo, &mocks.ProjectRepository{}, nil, nil)
	_, err := svc.Update(ctx, act)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, act))
	repo.AssertExpectations(t)
}
