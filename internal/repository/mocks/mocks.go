package mocks

import (
	"context"

	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/domain/status"
	"github.com/stretchr/testify/mock"
)

// ClientRepository is a mock for client.Repository.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*client.Client); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) FindAll(ctx context.Context, req page.Request) (page.Page[client.Client], error) {
	args := m.Called(ctx, req)
	if p, ok := args.Get(0).(page.Page[client.Client]); ok {
		return p, args.Error(1)
	}
	return page.Page[client.Client]{}, args.Error(1)
}

func (m *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *ClientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ProjectRepository is a mock for project.Repository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) FindByID(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if proj, ok := args.Get(0).(*project.Project); ok {
		return proj, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) FindAll(ctx context.Context, req page.Request) (page.Page[project.Project], error) {
	args := m.Called(ctx, req)
	if p, ok := args.Get(0).(page.Page[project.Project]); ok {
		return p, args.Error(1)
	}
	return page.Page[project.Project]{}, args.Error(1)
}

func (m *ProjectRepository) FindAllByStatus(ctx context.Context, req page.Request, st status.Status) (page.Page[project.Project], error) {
	args := m.Called(ctx, req, st)
	if p, ok := args.Get(0).(page.Page[project.Project]); ok {
		return p, args.Error(1)
	}
	return page.Page[project.Project]{}, args.Error(1)
}

func (m *ProjectRepository) FindAllByClientIDAndStatus(ctx context.Context, req page.Request, clientID string, st status.Status) (page.Page[project.Project], error) {
	args := m.Called(ctx, req, clientID, st)
	if p, ok := args.Get(0).(page.Page[project.Project]); ok {
		return p, args.Error(1)
	}
	return page.Page[project.Project]{}, args.Error(1)
}

func (m *ProjectRepository) ExistsByClientIDAndDescription(ctx context.Context, clientID, description string) (bool, error) {
	args := m.Called(ctx, clientID, description)
	return args.Bool(0), args.Error(1)
}

func (m *ProjectRepository) Save(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectRepository) UpdateStatus(ctx context.Context, id string, st status.Status) error {
	args := m.Called(ctx, id, st)
	return args.Error(0)
}

func (m *ProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ActivityRepository is a mock for activity.Repository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) FindByID(ctx context.Context, id string) (*activity.Activity, error) {
	args := m.Called(ctx, id)
	if act, ok := args.Get(0).(*activity.Activity); ok {
		return act, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ActivityRepository) FindAllByProjectID(ctx context.Context, req page.Request, projectID string) (page.Page[activity.Activity], error) {
	args := m.Called(ctx, req, projectID)
	if p, ok := args.Get(0).(page.Page[activity.Activity]); ok {
		return p, args.Error(1)
	}
	return page.Page[activity.Activity]{}, args.Error(1)
}

func (m *ActivityRepository) FindAllByProjectIDAndStatus(ctx context.Context, req page.Request, projectID string, st status.Status) (page.Page[activity.Activity], error) {
	args := m.Called(ctx, req, projectID, st)
	if p, ok := args.Get(0).(page.Page[activity.Activity]); ok {
		return p, args.Error(1)
	}
	return page.Page[activity.Activity]{}, args.Error(1)
}

func (m *ActivityRepository) ExistsByProjectIDAndDescription(ctx context.Context, projectID, description string) (bool, error) {
	args := m.Called(ctx, projectID, description)
	return args.Bool(0), args.Error(1)
}

func (m *ActivityRepository) Save(ctx context.Context, act *activity.Activity) error {
	args := m.Called(ctx, act)
	return args.Error(0)
}

func (m *ActivityRepository) UpdateStatus(ctx context.Context, id string, st status.Status) error {
	args := m.Called(ctx, id, st)
	return args.Error(0)
}

func (m *ActivityRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Transactor is a mock for repository.Transactor. Unless the expectation
// returns an error, fn runs with the incoming context.
type Transactor struct {
	mock.Mock
}

func (m *Transactor) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
