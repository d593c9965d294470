package projects

import (
	"context"
	"testing"

	"github.com/seoatlas/seoatlas/internal/models"
	"github.com/stretchr/testify/require"
)

func TestCreateDoesNotCheckClientExists(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()

	// client_id is an opaque reference; "c1" points at nothing and the
	// create still succeeds.
	created, err := r.Create(ctx, &Project{
		Name:        "P1",
		ClientID:    "c1",
		ProjectType: "blog",
		Focus:       "seo",
		About:       "x",
		Length:      500,
		Keywords:    []string{"a", "b"},
	})
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := r.GetByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, got.Keywords)
	require.Equal(t, 500, got.Length)
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	created, err := r.Create(ctx, &Project{Name: "P1", ClientID: "c1", ProjectType: "blog", Keywords: []string{"a"}})
	require.NoError(t, err)

	length := 1000
	updated, err := r.Update(ctx, created.ID.Hex(), Update{Length: &length})
	require.NoError(t, err)
	require.Equal(t, 1000, updated.Length)
	require.Equal(t, "P1", updated.Name)
	require.Equal(t, []string{"a"}, updated.Keywords)
}

func TestDeleteCascadesToNothing(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	p1, err := r.Create(ctx, &Project{Name: "P1", ClientID: "c1", ProjectType: "blog"})
	require.NoError(t, err)
	_, err = r.Create(ctx, &Project{Name: "P2", ClientID: "c1", ProjectType: "blog"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, p1.ID.Hex()))

	remaining, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
}

func TestDeleteByReference(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	site := "site-1"
	_, err := r.Create(ctx, &Project{Name: "P1", ClientID: "c1", ProjectType: "blog", WebsiteID: &site})
	require.NoError(t, err)
	_, err = r.Create(ctx, &Project{Name: "P2", ClientID: "c2", ProjectType: "blog"})
	require.NoError(t, err)

	n, err := r.DeleteByClientID(ctx, "c1")
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	n, err = r.DeleteByWebsiteID(ctx, "site-1")
	require.NoError(t, err)
	require.EqualValues(t, 0, n)

	remaining, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "P2", remaining[0].Name)
}

func TestInvalidIDBeforeLookup(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository()
	_, err := r.Update(ctx, "not-a-valid-id", Update{})
	require.ErrorIs(t, err, models.ErrInvalidID)
	require.NotErrorIs(t, err, models.ErrNotFound)
}
