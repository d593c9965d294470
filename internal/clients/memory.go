package clients

import (
	"context"
	"fmt"
	"sync"

	"github.com/seoatlas/seoatlas/internal/ids"
	"github.com/seoatlas/seoatlas/internal/models"
	"github.com/seoatlas/seoatlas/pkg/metrics"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// projectPurger is what the memory repository needs from the projects side
// to mirror the Mongo cascade.
type projectPurger interface {
	DeleteByClientID(ctx context.Context, clientID string) (int64, error)
}

// MemoryRepository is the in-memory Repository used by unit and handler
// tests. It enforces the same identifier validation and cascade semantics as
// the Mongo implementation.
type MemoryRepository struct {
	mu       sync.RWMutex
	store    map[string]Client
	projects projectPurger
}

// NewMemoryRepository creates an empty repository. projects may be nil when
// the cascade is not under test.
func NewMemoryRepository(projects projectPurger) *MemoryRepository {
	return &MemoryRepository{store: make(map[string]Client), projects: projects}
}

func (r *MemoryRepository) Create(ctx context.Context, c *Client) (*Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *c
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	r.store[stored.ID.Hex()] = stored
	return &stored, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]Client, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Client, 0, len(r.store))
	for _, c := range r.store {
		out = append(out, c)
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Client, error) {
	if _, err := ids.Parse(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	return &c, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, upd Update) (*Client, error) {
	if _, err := ids.Parse(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	upd.apply(&c)
	r.store[id] = c
	return &c, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := ids.Parse(id); err != nil {
		return err
	}
	r.mu.Lock()
	if _, ok := r.store[id]; !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: client %s", models.ErrNotFound, id)
	}
	delete(r.store, id)
	r.mu.Unlock()

	if r.projects != nil {
		n, err := r.projects.DeleteByClientID(ctx, id)
		if err != nil {
			return models.WrapStore("cascade delete projects", err)
		}
		metrics.CascadeDeleted.WithLabelValues("client", "project").Add(float64(n))
	}
	return nil
}
