package library

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FlagsFor(ctx context.Context, userID, unitID int) (Flags, error) {
	query := `
		SELECT
			EXISTS(SELECT 1 FROM bookmarks WHERE user_id = $1 AND unit_id = $2) AS bookmarked,
			EXISTS(SELECT 1 FROM ratings WHERE user_id = $1 AND unit_id = $2) AS rated
	`

	var row struct {
		Bookmarked bool `db:"bookmarked"`
		Rated      bool `db:"rated"`
	}
	if err := r.db.GetContext(ctx, &row, query, userID, unitID); err != nil {
		return Flags{}, err
	}

	return Flags{Bookmarked: row.Bookmarked, Rated: row.Rated}, nil
}

func (r *repository) FlagsForUnits(ctx context.Context, userID int, unitIDs []int) (map[int]Flags, error) {
	flags := make(map[int]Flags, len(unitIDs))
	if len(unitIDs) == 0 {
		return flags, nil
	}

	var bookmarked []int
	err := r.db.SelectContext(ctx, &bookmarked, `
		SELECT unit_id FROM bookmarks WHERE user_id = $1 AND unit_id = ANY($2)
	`, userID, pq.Array(unitIDs))
	if err != nil {
		return nil, err
	}

	var rated []int
	err = r.db.SelectContext(ctx, &rated, `
		SELECT unit_id FROM ratings WHERE user_id = $1 AND unit_id = ANY($2)
	`, userID, pq.Array(unitIDs))
	if err != nil {
		return nil, err
	}

	for _, id := range bookmarked {
		f := flags[id]
		f.Bookmarked = true
		flags[id] = f
	}
	for _, id := range rated {
		f := flags[id]
		f.Rated = true
		flags[id] = f
	}

	return flags, nil
}

// ToggleBookmark adds the unit to the user's list, or removes it when already
// present. Returns the resulting state.
func (r *repository) ToggleBookmark(ctx context.Context, userID, unitID int) (bool, error) {
	return r.toggle(ctx, "bookmarks", userID, unitID)
}

func (r *repository) ToggleRating(ctx context.Context, userID, unitID int) (bool, error) {
	return r.toggle(ctx, "ratings", userID, unitID)
}

func (r *repository) toggle(ctx context.Context, table string, userID, unitID int) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM `+table+` WHERE user_id = $1 AND unit_id = $2`,
		userID, unitID,
	)
	if err != nil {
		return false, err
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if deleted > 0 {
		return false, nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO `+table+` (user_id, unit_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, unitID,
	)
	if err != nil {
		return false, err
	}

	return true, nil
}
