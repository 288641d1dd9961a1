package adquota

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrQuotaExceeded = errors.New("ad view quota exceeded for this work")

type repository struct {
	db  *sqlx.DB
	cap int
}

func NewRepository(db *sqlx.DB, cap int) Repository {
	return &repository{db: db, cap: cap}
}

func (r *repository) GetCount(ctx context.Context, userID, workID int) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT view_count
		FROM ad_quota
		WHERE user_id = $1 AND work_id = $2
	`, userID, workID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}

	return count, nil
}

// Increment bumps the counter for (user, work), creating the record on first
// grant. The cap check lives in the same statement so concurrent increments
// cannot overshoot it.
func (r *repository) Increment(ctx context.Context, userID, workID int) (int, error) {
	query := `
		INSERT INTO ad_quota (user_id, work_id, view_count)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, work_id)
		DO UPDATE SET view_count = ad_quota.view_count + 1
		WHERE ad_quota.view_count < $3
		RETURNING view_count
	`

	var count int
	err := r.db.GetContext(ctx, &count, query, userID, workID, r.cap)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrQuotaExceeded
		}
		return 0, err
	}

	return count, nil
}

// Sweep purges every quota record created before the start of the current
// calendar day. The filter is part of the DELETE itself, so records created
// today by concurrent increments are never touched.
func (r *repository) Sweep(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM ad_quota
		WHERE created_at < date_trunc('day', now())
	`)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
