package clients

import "context"

// Repository defines persistence operations for clients. Deleting a client
// also removes every project referencing it via client_id; gmb entries are
// left in place.
type Repository interface {
	Create(ctx context.Context, c *Client) (*Client, error)
	List(ctx context.Context) ([]Client, error)
	GetByID(ctx context.Context, id string) (*Client, error)
	Update(ctx context.Context, id string, upd Update) (*Client, error)
	Delete(ctx context.Context, id string) error
}
