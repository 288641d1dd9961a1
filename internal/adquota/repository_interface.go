package adquota

import "context"

type Repository interface {
	GetCount(ctx context.Context, userID, workID int) (int, error)
	Increment(ctx context.Context, userID, workID int) (int, error)
	Sweep(ctx context.Context) (int64, error)
}
