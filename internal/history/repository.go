package history

import (
	"context"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, userID, workID, unitID, categoryID int) error {
	query := `
		INSERT INTO view_history (user_id, work_id, unit_id, category_id, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, work_id)
		DO UPDATE SET unit_id = $3, category_id = $4, updated_at = now()
	`

	_, err := r.db.ExecContext(ctx, query, userID, workID, unitID, categoryID)
	return err
}

func (r *repository) List(ctx context.Context, userID, limit int) ([]Entry, error) {
	query := `
		SELECT h.id, h.user_id, h.work_id, h.unit_id, h.category_id, h.updated_at,
		       w.title AS work_title
		FROM view_history h
		JOIN works w ON w.id = h.work_id
		WHERE h.user_id = $1
		ORDER BY h.updated_at DESC
		LIMIT $2
	`

	entries := []Entry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID, limit); err != nil {
		return nil, err
	}

	return entries, nil
}

// RecentCategories returns the distinct categories of the user's most recently
// viewed works, newest first, at most max of them.
func (r *repository) RecentCategories(ctx context.Context, userID, max int) ([]int, error) {
	query := `
		SELECT category_id FROM (
			SELECT category_id, max(updated_at) AS last_seen
			FROM view_history
			WHERE user_id = $1
			GROUP BY category_id
		) recent
		ORDER BY last_seen DESC
		LIMIT $2
	`

	ids := []int{}
	if err := r.db.SelectContext(ctx, &ids, query, userID, max); err != nil {
		return nil, err
	}

	return ids, nil
}
