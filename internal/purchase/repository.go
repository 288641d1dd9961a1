package purchase

import (
	"context"
	"database/sql"
	"errors"

	"storyreel/internal/wallet"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) HasPurchased(ctx context.Context, userID, unitID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM purchases
			WHERE user_id = $1 AND unit_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, userID, unitID)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// RecordPurchase appends a unit to the user's ledger. Only called after a
// successful debit or an issued ad grant, never speculatively.
func (r *repository) RecordPurchase(ctx context.Context, userID, unitID int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO purchases (user_id, unit_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, unit_id) DO NOTHING
	`, userID, unitID)
	return err
}

// UnlockWithCoins performs the debit and the ownership write as one
// transaction keyed by (user, unit). The purchase insert goes first: a
// conflict means the unit is already owned, so the wallet is returned
// untouched and no coins move. Two concurrent unlocks for the same pair
// serialize on the purchases primary key; only one can debit.
func (r *repository) UnlockWithCoins(ctx context.Context, userID, unitID int, price int64) (*wallet.Wallet, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO purchases (user_id, unit_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, unit_id) DO NOTHING
	`, userID, unitID)
	if err != nil {
		return nil, err
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	w := &wallet.Wallet{}
	const walletColumns = `id, user_id, refill_coins, bonus_coins, total_coins, created_at, updated_at`

	if inserted == 0 {
		// Already owned: idempotent success, no debit.
		err = tx.QueryRowxContext(ctx,
			`SELECT `+walletColumns+` FROM wallets WHERE user_id = $1`, userID,
		).StructScan(w)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		if err := tx.Commit(); err != nil {
			return nil, err
		}
		return w, nil
	}

	err = tx.QueryRowxContext(ctx,
		`SELECT `+walletColumns+`
		 FROM wallets
		 WHERE user_id = $1
		 FOR UPDATE`,
		userID,
	).StructScan(w)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// No wallet means no coins; rollback drops the purchase row.
			return &wallet.Wallet{UserID: userID}, wallet.ErrInsufficientFunds
		}
		return nil, err
	}

	newRefill, newBonus, err := wallet.SpendBuckets(w.RefillCoins, w.BonusCoins, price)
	if err != nil {
		return w, err
	}
	newTotal := newRefill + newBonus

	_, err = tx.ExecContext(ctx,
		`UPDATE wallets
		 SET refill_coins = $1, bonus_coins = $2, total_coins = $3, updated_at = NOW()
		 WHERE id = $4`,
		newRefill, newBonus, newTotal, w.ID,
	)
	if err != nil {
		return nil, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO coin_transactions (wallet_id, refill_delta, bonus_delta, reason, total_after)
		 VALUES ($1, $2, $3, $4, $5)`,
		w.ID, newRefill-w.RefillCoins, newBonus-w.BonusCoins, "unit_unlock", newTotal,
	)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	w.RefillCoins = newRefill
	w.BonusCoins = newBonus
	w.TotalCoins = newTotal
	return w, nil
}

func (r *repository) ListUnitIDs(ctx context.Context, userID int) ([]int, error) {
	var ids []int
	err := r.db.SelectContext(ctx, &ids, `
		SELECT unit_id
		FROM purchases
		WHERE user_id = $1
		ORDER BY created_at ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	return ids, nil
}
