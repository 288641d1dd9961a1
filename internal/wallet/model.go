package wallet

import "time"

// Wallet is a user's two-bucket coin balance. Refill coins come from paid
// top-ups, bonus coins from rewards. total_coins must always equal the sum of
// the two buckets.
type Wallet struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	RefillCoins int64     `db:"refill_coins" json:"refill_coins"`
	BonusCoins  int64     `db:"bonus_coins" json:"bonus_coins"`
	TotalCoins  int64     `db:"total_coins" json:"total_coins"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Transaction struct {
	ID          int       `db:"id" json:"id"`
	WalletID    int       `db:"wallet_id" json:"wallet_id"`
	RefillDelta int64     `db:"refill_delta" json:"refill_delta"`
	BonusDelta  int64     `db:"bonus_delta" json:"bonus_delta"`
	Reason      string    `db:"reason" json:"reason"` // topup, reward, unit_unlock
	TotalAfter  int64     `db:"total_after" json:"total_after"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
