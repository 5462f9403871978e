package league

import "context"

// Repository lists the configured leagues in declaration order.
type Repository interface {
	List(ctx context.Context) ([]League, error)
}
