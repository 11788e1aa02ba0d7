package firebase

import (
	"context"
	"fmt"
)

const poolsRoot = "emailPools"

// PoolRepository implements pool.Repository on the emailPools subtree.
// Values come back untyped; normalization is the resolver's job.
type PoolRepository struct {
	client *Client
}

func NewPoolRepository(client *Client) *PoolRepository {
	return &PoolRepository{client: client}
}

func (r *PoolRepository) Get(ctx context.Context, name string) (any, error) {
	var value any
	if err := r.client.get(ctx, poolsRoot+"/"+name, &value); err != nil {
		return nil, fmt.Errorf("read pool %q: %w", name, err)
	}
	return value, nil
}
