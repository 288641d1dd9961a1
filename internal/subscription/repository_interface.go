package subscription

import "context"

type Repository interface {
	IsSubscribed(ctx context.Context, userID int) (bool, error)
	GetStatus(ctx context.Context, userID int) (*Status, error)
}
