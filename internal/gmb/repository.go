package gmb

import "context"

// Repository defines persistence operations for gmb entries. Entry deletion
// cascades to nothing.
type Repository interface {
	Create(ctx context.Context, e *Entry) (*Entry, error)
	List(ctx context.Context) ([]Entry, error)
	GetByID(ctx context.Context, id string) (*Entry, error)
	Update(ctx context.Context, id string, upd Update) (*Entry, error)
	Delete(ctx context.Context, id string) error
}
