package history

import "context"

type Repository interface {
	Upsert(ctx context.Context, userID, workID, unitID, categoryID int) error
	List(ctx context.Context, userID, limit int) ([]Entry, error)
	RecentCategories(ctx context.Context, userID, max int) ([]int, error)
}
