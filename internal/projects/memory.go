package projects

import (
	"context"
	"fmt"
	"sync"

	"github.com/seoatlas/seoatlas/internal/ids"
	"github.com/seoatlas/seoatlas/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepository is the in-memory Repository used by tests. It also backs
// the client/website cascade tests via DeleteByClientID / DeleteByWebsiteID.
type MemoryRepository struct {
	mu    sync.RWMutex
	store map[string]Project
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{store: make(map[string]Project)}
}

func (r *MemoryRepository) Create(ctx context.Context, p *Project) (*Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *p
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	r.store[stored.ID.Hex()] = stored
	return &stored, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Project, 0, len(r.store))
	for _, p := range r.store {
		out = append(out, p)
	}
	return out, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*Project, error) {
	if _, err := ids.Parse(id); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: project %s", models.ErrNotFound, id)
	}
	return &p, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, upd Update) (*Project, error) {
	if _, err := ids.Parse(id); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.store[id]
	if !ok {
		return nil, fmt.Errorf("%w: project %s", models.ErrNotFound, id)
	}
	upd.apply(&p)
	r.store[id] = p
	return &p, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if _, err := ids.Parse(id); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.store[id]; !ok {
		return fmt.Errorf("%w: project %s", models.ErrNotFound, id)
	}
	delete(r.store, id)
	return nil
}

// DeleteByClientID removes every project whose client_id matches; used by
// the client delete cascade.
func (r *MemoryRepository) DeleteByClientID(ctx context.Context, clientID string) (int64, error) {
	return r.deleteWhere(func(p Project) bool { return p.ClientID == clientID })
}

// DeleteByWebsiteID removes every project whose website_id matches; used by
// the website delete cascade.
func (r *MemoryRepository) DeleteByWebsiteID(ctx context.Context, websiteID string) (int64, error) {
	return r.deleteWhere(func(p Project) bool { return p.WebsiteID != nil && *p.WebsiteID == websiteID })
}

func (r *MemoryRepository) deleteWhere(match func(Project) bool) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for id, p := range r.store {
		if match(p) {
			delete(r.store, id)
			n++
		}
	}
	return n, nil
}
