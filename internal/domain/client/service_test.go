package client_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/repository"
	"github.com/rpggio/projman/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestClientService_SaveAndFind(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	tx := &mocks.Transactor{}
	tx.On("RunInTx", ctx).Return(nil)
	repo.On("Save", ctx, mock.AnythingOfType("*client.Client")).Run(func(args mock.Arguments) {
		args.Get(1).(*client.Client).ID = "c1"
	}).Return(nil)
	repo.On("FindByID", ctx, "c1").Return(&client.Client{ID: "c1", Name: "Acme"}, nil)

	svc := client.NewService(repo, tx, nil)
	saved, err := svc.Save(ctx, &client.Client{Name: "Acme"})
	require.NoError(t, err)
	require.Equal(t, "c1", saved.ID)

	found, ok, err := svc.FindByID(ctx, "c1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Acme", found.Name)
}

func TestClientService_FindByIDAbsentIsNotAnError(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ClientRepository{}
	repo.On("FindByID", ctx, "nope").Return(nil, repository.ErrNotFound)

	svc := client.NewService(repo, nil, nil)
	c, ok, err := svc.FindByID(ctx, "nope")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, c)
}

func TestClientService_FindAll(t *testing.T) {
	ctx := context.Background()
	items := []client.Client{{ID: "c1"}, {ID: "c2"}}

	repo := &mocks.ClientRepository{}
	repo.On("FindAll", ctx, page.DefaultRequest()).Return(page.New(page.DefaultRequest(), 2, items), nil)

	svc := client.NewService(repo, nil, nil)
	p, err := svc.FindAll(ctx, page.Request{Size: 0})
	require.NoError(t, err)
	require.Equal(t, 0, p.ActualPage)
	require.Equal(t, 1, p.TotalPages)
	require.Equal(t, int64(2), p.TotalRecords)
	require.Len(t, p.ItemList, 2)
}

func TestClientService_DeleteWrapsStoreError(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("locked")

	repo := &mocks.ClientRepository{}
	repo.On("Delete", ctx, "c1").Return(boom)

	svc := client.NewService(repo, nil, nil)
	err := svc.Delete(ctx, &client.Client{ID: "c1"})
	require.ErrorIs(t, err, boom)
}

func TestValidateName(t *testing.T) {
	require.NoError(t, client.ValidateName("Acme"))
	require.ErrorIs(t, client.ValidateName(""), client.ErrInvalidName)
	require.ErrorIs(t, client.ValidateName(strings.Repeat("a", client.MaxNameLength+1)), client.ErrInvalidName)
}
