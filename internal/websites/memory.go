package websites

import (
	"context"
	"fmt"
	"sync"

	"github.com/seoatlas/seoatlas/internal/ids"
	"github.com/seoatlas/seoatlas/internal/models"
	"github.com/seoatlas/seoatlas/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type projectPurger interface {
	DeleteByWebsiteID(ctx context.Context, websiteID string) (int64, error)
}

// MemoryRepository is the in-memory Repository used by tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	store    map[string]Website
	projects projectPurger
}

func NewMemoryRepository(projects projectPurger) *MemoryRepository {
	return &MemoryRepository{store: make(map[string]Website), projects: projects}
}

func (r *MemoryRepository) Create(ctx context.Context, w *Website) (*Website, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *w
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	r.store[stored.ID.Hex()] = stored
	return &stored, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]Website, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Website, 0, len(r.store))
	for _, w := range r.store {
		out = append(out, w)
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Website, error) {
	if _, err := ids.Parse(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: website %s", models.ErrNotFound, id)
	}
	return &w, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, upd Update) (*Website, error) {
	if _, err := ids.Parse(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	w, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: website %s", models.ErrNotFound, id)
	}
	upd.apply(&w)
	r.store[id] = w
	return &w, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := ids.Parse(id); err != nil {
		return err
	}
	r.mu.Lock()
	if _, ok := r.store[id]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: website %s", models.ErrNotFound, id)
	}
	delete(r.store, id)
	r.mu.Unlock()

	if r.projects != nil {
		n, err := r.projects.DeleteByWebsiteID(ctx, id)
		if err != nil {
			return models.WrapStore("cascade delete projects", err)
		}
		metrics.CascadeDeleted.WithLabelValues("website", "project").Add(float64(n))
	}
	return nil
}
