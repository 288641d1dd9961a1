package wallet

import "context"

type Repository interface {
	GetOrCreate(ctx context.Context, userID int) (*Wallet, error)
	Credit(ctx context.Context, userID int, refillDelta, bonusDelta int64, reason string) (*Wallet, error)
	Debit(ctx context.Context, userID int, amount int64, reason string) (*Wallet, error)
	ListTransactions(ctx context.Context, userID int, limit, offset int) ([]Transaction, error)
}
