package clients

import (
	"context"
	"sync"
	"testing"

	"github.com/seoatlas/seoatlas/internal/models"
	"github.com/seoatlas/seoatlas/internal/projects"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, name string) *Client {
	t.Helper()
	link, err := models.ParseURL("https://" + name + ".example.com")
	require.NoError(t, err)
	return &Client{
		Name:                     name,
		Link:                     link,
		AboutDescriptions:        "about",
		Services:                 "seo",
		GoogleMyBusinessIDs:      "gmb-1",
		ClientRelatedInformation: "info",
		ToneForBlogs:             "casual",
		ToneForArticles:          "formal",
	}
}

func TestMemoryRepoCRUD(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(nil)

	created, err := r.Create(ctx, testClient(t, "acme"))
	require.NoError(t, err)
	require.False(t, created.ID.IsZero())

	got, err := r.GetByID(ctx, created.ID.Hex())
	require.NoError(t, err)
	require.Equal(t, created, got)

	list, err := r.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, r.Delete(ctx, created.ID.Hex()))
	_, err = r.GetByID(ctx, created.ID.Hex())
	require.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(nil)
	created, err := r.Create(ctx, testClient(t, "acme"))
	require.NoError(t, err)

	status := "active"
	updated, err := r.Update(ctx, created.ID.Hex(), Update{Status: &status})
	require.NoError(t, err)

	require.Equal(t, "active", *updated.Status)
	want := *created
	want.Status = &status
	require.Equal(t, &want, updated)
}

func TestEmptyUpdateIsANoOp(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(nil)
	created, err := r.Create(ctx, testClient(t, "acme"))
	require.NoError(t, err)

	updated, err := r.Update(ctx, created.ID.Hex(), Update{})
	require.NoError(t, err)
	require.Equal(t, created, updated)
}

func TestInvalidIDNeverReachesStore(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(nil)

	_, err := r.GetByID(ctx, "not-a-valid-id")
	require.ErrorIs(t, err, models.ErrInvalidID)

	_, err = r.Update(ctx, "not-a-valid-id", Update{})
	require.ErrorIs(t, err, models.ErrInvalidID)
	require.NotErrorIs(t, err, models.ErrNotFound)

	require.ErrorIs(t, r.Delete(ctx, "not-a-valid-id"), models.ErrInvalidID)
}

func TestDeleteTwiceYieldsNotFound(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(nil)
	created, err := r.Create(ctx, testClient(t, "acme"))
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, created.ID.Hex()))
	require.ErrorIs(t, r.Delete(ctx, created.ID.Hex()), models.ErrNotFound)
}

func TestDeleteCascadesToProjects(t *testing.T) {
	ctx := context.Background()
	projectRepo := projects.NewMemoryRepository()
	r := NewMemoryRepository(projectRepo)

	created, err := r.Create(ctx, testClient(t, "acme"))
	require.NoError(t, err)
	clientID := created.ID.Hex()

	for _, name := range []string{"p1", "p2"} {
		_, err := projectRepo.Create(ctx, &projects.Project{Name: name, ClientID: clientID, ProjectType: "blog"})
		require.NoError(t, err)
	}
	_, err = projectRepo.Create(ctx, &projects.Project{Name: "other", ClientID: "someone-else", ProjectType: "blog"})
	require.NoError(t, err)

	require.NoError(t, r.Delete(ctx, clientID))

	remaining, err := projectRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, "other", remaining[0].Name)
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryRepository(nil)

	const n = 20
	idsCh := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			created, err := r.Create(ctx, testClient(t, "acme"))
			require.NoError(t, err)
			idsCh <- created.ID.Hex()
		}()
	}
	wg.Wait()
	close(idsCh)

	seen := map[string]bool{}
	for id := range idsCh {
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
		_, err := r.GetByID(ctx, id)
		require.NoError(t, err)
	}
	require.Len(t, seen, n)
}
