package wallet

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var (
	ErrInsufficientFunds = errors.New("insufficient coins")
)

// SpendBuckets applies a debit to the two buckets: refill coins are spent
// first, then bonus coins. The caller recomputes the total as the sum of the
// returned buckets, never by subtracting from the old total.
func SpendBuckets(refill, bonus, amount int64) (int64, int64, error) {
	if amount > refill+bonus {
		return refill, bonus, ErrInsufficientFunds
	}

	remaining := amount
	if refill >= remaining {
		refill -= remaining
		remaining = 0
	} else {
		remaining -= refill
		refill = 0
	}

	if remaining > 0 {
		bonus -= remaining
	}

	return refill, bonus, nil
}

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const walletColumns = `id, user_id, refill_coins, bonus_coins, total_coins, created_at, updated_at`

func (r *repository) GetOrCreate(ctx context.Context, userID int) (*Wallet, error) {
	w := &Wallet{}
	err := r.db.GetContext(ctx, w, `SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = r.db.QueryRowxContext(ctx,
		`INSERT INTO wallets (user_id)
		 VALUES ($1)
		 RETURNING `+walletColumns,
		userID,
	).StructScan(w)

	if err != nil {
		return nil, err
	}

	return w, nil
}

func (r *repository) Credit(ctx context.Context, userID int, refillDelta, bonusDelta int64, reason string) (*Wallet, error) {
	if refillDelta < 0 || bonusDelta < 0 {
		return nil, errors.New("credit deltas must be non-negative")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	w, err := lockOrCreateWallet(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	newRefill := w.RefillCoins + refillDelta
	newBonus := w.BonusCoins + bonusDelta

	if err := applyBuckets(ctx, tx, w, newRefill, newBonus, refillDelta, bonusDelta, reason); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return w, nil
}

func (r *repository) Debit(ctx context.Context, userID int, amount int64, reason string) (*Wallet, error) {
	if amount <= 0 {
		return nil, errors.New("debit amount must be positive")
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	w, err := lockOrCreateWallet(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	newRefill, newBonus, err := SpendBuckets(w.RefillCoins, w.BonusCoins, amount)
	if err != nil {
		// No mutation on failure; surface the untouched wallet for the caller.
		return w, err
	}

	if err := applyBuckets(ctx, tx, w, newRefill, newBonus, newRefill-w.RefillCoins, newBonus-w.BonusCoins, reason); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return w, nil
}

// lockOrCreateWallet loads the user's wallet under FOR UPDATE, creating it
// lazily when absent.
func lockOrCreateWallet(ctx context.Context, tx *sqlx.Tx, userID int) (*Wallet, error) {
	w := &Wallet{}
	err := tx.QueryRowxContext(ctx,
		`SELECT `+walletColumns+`
		 FROM wallets
		 WHERE user_id = $1
		 FOR UPDATE`,
		userID,
	).StructScan(w)
	if err == nil {
		return w, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = tx.QueryRowxContext(ctx,
		`INSERT INTO wallets (user_id)
		 VALUES ($1)
		 RETURNING `+walletColumns,
		userID,
	).StructScan(w)
	if err != nil {
		return nil, err
	}

	return w, nil
}

// applyBuckets persists new bucket values, recomputes the total as their sum
// and appends the audit row. Mutates w to the post-write state.
func applyBuckets(ctx context.Context, tx *sqlx.Tx, w *Wallet, newRefill, newBonus, refillDelta, bonusDelta int64, reason string) error {
	newTotal := newRefill + newBonus

	_, err := tx.ExecContext(ctx,
		`UPDATE wallets
		 SET refill_coins = $1, bonus_coins = $2, total_coins = $3, updated_at = NOW()
		 WHERE id = $4`,
		newRefill, newBonus, newTotal, w.ID,
	)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO coin_transactions (wallet_id, refill_delta, bonus_delta, reason, total_after)
		 VALUES ($1, $2, $3, $4, $5)`,
		w.ID, refillDelta, bonusDelta, reason, newTotal,
	)
	if err != nil {
		return err
	}

	w.RefillCoins = newRefill
	w.BonusCoins = newBonus
	w.TotalCoins = newTotal
	return nil
}

func (r *repository) ListTransactions(ctx context.Context, userID int, limit, offset int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}

	var walletID int
	err := r.db.GetContext(ctx, &walletID, `SELECT id FROM wallets WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []Transaction{}, nil
		}
		return nil, err
	}

	var txs []Transaction
	err = r.db.SelectContext(ctx, &txs, `
		SELECT id, wallet_id, refill_delta, bonus_delta, reason, total_after, created_at
		FROM coin_transactions
		WHERE wallet_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, walletID, limit, offset)
	if err != nil {
		return nil, err
	}

	return txs, nil
}
