package gmb

import (
	"context"
	"fmt"
	"sync"

	"github.com/seoatlas/seoatlas/internal/ids"
	"github.com/seoatlas/seoatlas/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is the in-memory Repository used by tests.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]Entry
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]Entry)}
}

func (r *MemoryRepository) Create(ctx context.Context, e *Entry) (*Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *e
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	r.store[stored.ID.Hex()] = stored
	return &stored, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Entry, 0, len(r.store))
	for _, e := range r.store {
		out = append(out, e)
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Entry, error) {
	if _, err := ids.Parse(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: gmb entry %s", models.ErrNotFound, id)
	}
	return &e, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, upd Update) (*Entry, error) {
	if _, err := ids.Parse(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: gmb entry %s", models.ErrNotFound, id)
	}
	upd.apply(&e)
	r.store[id] = e
	return &e, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := ids.Parse(id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[id]; !ok {
		return fmt.Errorf("%w: gmb entry %s", models.ErrNotFound, id)
	}
	delete(r.store, id)
	return nil
}
