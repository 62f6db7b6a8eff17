// Package testserver wires the full service stack over an in-memory SQLite
// store for tests of the outer surfaces.
package testserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/projman/internal/domain/activity"
	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/project"
	"github.com/rpggio/projman/internal/sqlstore"
)

// Stack holds a migrated store and the services built on it.
type Stack struct {
	DB         *sqlstore.DB
	Clients    *client.Service
	Projects   *project.Service
	Activities *activity.Service
}

// New opens a private in-memory database, migrates it, and closes it when
// the test ends.
func New(t *testing.T) *Stack {
	t.Helper()
	ctx := context.Background()

	db, err := sqlstore.New(ctx, sqlstore.Config{Driver: sqlstore.DriverSQLite, DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations(ctx))
	t.Cleanup(func() { _ = db.Close() })

	clientRepo := sqlstore.NewClientRepository(db)
	projectRepo := sqlstore.NewProjectRepository(db)
	activityRepo := sqlstore.NewActivityRepository(db)

	return &Stack{
		DB:         db,
		Clients:    client.NewService(clientRepo, db, nil),
		Projects:   project.NewService(projectRepo, clientRepo, db, nil),
		Activities: activity.NewService(activityRepo, projectRepo, db, nil),
	}
}
