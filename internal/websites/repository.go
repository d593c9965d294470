package websites

import "context"

// Repository defines persistence operations for websites. Deleting a website
// also removes every project referencing it via website_id.
type Repository interface {
	Create(ctx context.Context, w *Website) (*Website, error)
	List(ctx context.Context) ([]Website, error)
	GetByID(ctx context.Context, id string) (*Website, error)
	Update(ctx context.Context, id string, upd Update) (*Website, error)
	Delete(ctx context.Context, id string) error
}
