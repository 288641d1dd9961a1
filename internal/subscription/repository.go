package subscription

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) IsSubscribed(ctx context.Context, userID int) (bool, error) {
	var subscribed bool
	err := r.db.GetContext(ctx, &subscribed, `
		SELECT is_subscribed
		FROM subscriptions
		WHERE user_id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	return subscribed, nil
}

func (r *repository) GetStatus(ctx context.Context, userID int) (*Status, error) {
	s := &Status{UserID: userID}
	err := r.db.GetContext(ctx, s, `
		SELECT user_id, is_subscribed, updated_at
		FROM subscriptions
		WHERE user_id = $1
	`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Absent row reads as not subscribed.
			return &Status{UserID: userID, IsSubscribed: false}, nil
		}
		return nil, err
	}

	return s, nil
}
