package purchase

import (
	"context"

	"storyreel/internal/wallet"
)

type Repository interface {
	HasPurchased(ctx context.Context, userID, unitID int) (bool, error)
	RecordPurchase(ctx context.Context, userID, unitID int) error
	UnlockWithCoins(ctx context.Context, userID, unitID int, price int64) (*wallet.Wallet, error)
	ListUnitIDs(ctx context.Context, userID int) ([]int, error)
}
