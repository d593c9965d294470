package projects

import "context"

// Repository defines persistence operations for projects. Project deletion
// cascades to nothing.
type Repository interface {
	Create(ctx context.Context, p *Project) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	GetByID(ctx context.Context, id string) (*Project, error)
	Update(ctx context.Context, id string, upd Update) (*Project, error)
	Delete(ctx context.Context, id string) error
}
