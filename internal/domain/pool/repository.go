package pool

import "context"

// Repository reads named recipient pools from the shared pools store.
// Pool values are admin-edited and loosely typed: either a list of email
// addresses or a single comma-separated string.
type Repository interface {
	Get(ctx context.Context, name string) (any, error)
}
