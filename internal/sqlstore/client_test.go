package sqlstore

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/rpggio/projman/internal/domain/client"
	"github.com/rpggio/projman/internal/domain/page"
	"github.com/rpggio/projman/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestClientRepository_SaveAndFind(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := &client.Client{Name: "Acme"}
	require.NoError(t, repo.Save(ctx, c))
	require.NotEmpty(t, c.ID)
	require.False(t, c.CreatedAt.IsZero())
	require.Equal(t, c.CreatedAt, c.UpdatedAt)

	found, err := repo.FindByID(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, "Acme", found.Name)
	require.True(t, c.CreatedAt.Equal(found.CreatedAt))

	_, err = repo.FindByID(ctx, "nonexistent")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientRepository_Update(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	c := &client.Client{Name: "Acme"}
	require.NoError(t, repo.Save(ctx, c))
	created := c.CreatedAt

	c.Name = "Acme Corp"
	require.NoError(t, repo.Save(ctx, c))
	require.Equal(t, "Acme Corp", c.Name)
	require.True(t, created.Equal(c.CreatedAt))
	require.False(t, c.UpdatedAt.Before(created))

	err := repo.Save(ctx, &client.Client{ID: "missing", Name: "x"})
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestClientRepository_FindAllPages(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, repo.Save(ctx, &client.Client{Name: fmt.Sprintf("client-%02d", i)}))
	}

	first, err := repo.FindAll(ctx, page.DefaultRequest())
	require.NoError(t, err)
	require.Equal(t, int64(12), first.TotalRecords)
	require.Equal(t, 2, first.TotalPages)
	require.Len(t, first.ItemList, 10)

	second, err := repo.FindAll(ctx, page.Request{Page: 1, Size: 10})
	require.NoError(t, err)
	require.Equal(t, 1, second.ActualPage)
	require.Len(t, second.ItemList, 2)

	seen := map[string]bool{}
	for _, c := range append(first.ItemList, second.ItemList...) {
		seen[c.ID] = true
	}
	require.Len(t, seen, 12)
}

func TestClientRepository_FindAllEmpty(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)

	p, err := repo.FindAll(context.Background(), page.DefaultRequest())
	require.NoError(t, err)
	require.Equal(t, int64(0), p.TotalRecords)
	require.Equal(t, 0, p.TotalPages)
	require.Empty(t, p.ItemList)
}

func TestClientRepository_FindAllPastLastPage(t *testing.T) {
	db := NewTestDB(t)
	repo := NewClientRepository(db)
	ctx := context.Background()

	for _, name := range []string{"Acme", "Globex", "Initech"} {
		createClient(t, db, name)
	}

	result, err := repo.FindAll(ctx, page.Request{Page: math.MaxInt / 5, Size: 10})
	require.NoError(t, err)
	require.Equal(t, int64(3), result.TotalRecords)
	require.Equal(t, page.MaxPage, result.ActualPage)
	require.Empty(t, result.ItemList)
}
