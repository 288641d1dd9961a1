package library

import "context"

type Repository interface {
	FlagsFor(ctx context.Context, userID, unitID int) (Flags, error)
	FlagsForUnits(ctx context.Context, userID int, unitIDs []int) (map[int]Flags, error)
	ToggleBookmark(ctx context.Context, userID, unitID int) (bool, error)
	ToggleRating(ctx context.Context, userID, unitID int) (bool, error)
}
