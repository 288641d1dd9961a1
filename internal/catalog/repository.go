package catalog

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrUnitNotFound  = errors.New("content unit not found")
	ErrWorkNotFound  = errors.New("work not found")
	ErrEndOfSequence = errors.New("no more units in this work")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

const unitColumns = `id, work_id, title, description, access, price_coins, media_url, format, total_views, rating, created_at`

func (r *repository) GetUnitByID(ctx context.Context, id int) (*Unit, error) {
	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE id = $1
	`

	var unit Unit
	err := r.db.GetContext(ctx, &unit, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnitNotFound
		}
		return nil, err
	}

	return &unit, nil
}

func (r *repository) GetWorkByID(ctx context.Context, id int) (*Work, error) {
	query := `
		SELECT w.id, w.title, w.kind, w.category_id, c.title AS category_title,
		       w.status, w.visibility, w.description, w.thumbnail_url, w.total_views, w.created_at
		FROM works w
		JOIN categories c ON w.category_id = c.id
		WHERE w.id = $1
	`

	var work Work
	err := r.db.GetContext(ctx, &work, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrWorkNotFound
		}
		return nil, err
	}

	return &work, nil
}

// NextUnit resolves the earliest unit of the same work created after the given
// one. Equal timestamps are not tie-broken.
func (r *repository) NextUnit(ctx context.Context, unit *Unit) (*Unit, error) {
	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE work_id = $1 AND created_at > $2
		ORDER BY created_at ASC
		LIMIT 1
	`

	var next Unit
	err := r.db.GetContext(ctx, &next, query, unit.WorkID, unit.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEndOfSequence
		}
		return nil, err
	}

	return &next, nil
}

func (r *repository) PrevUnit(ctx context.Context, unit *Unit) (*Unit, error) {
	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE work_id = $1 AND created_at < $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	var prev Unit
	err := r.db.GetContext(ctx, &prev, query, unit.WorkID, unit.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEndOfSequence
		}
		return nil, err
	}

	return &prev, nil
}

func (r *repository) ListUnitsByWork(ctx context.Context, workID int) ([]Unit, error) {
	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE work_id = $1
		ORDER BY created_at ASC
	`

	var units []Unit
	err := r.db.SelectContext(ctx, &units, query, workID)
	if err != nil {
		return nil, err
	}

	return units, nil
}

func (r *repository) ListPublishedWorkIDs(ctx context.Context, categoryID int) ([]int, error) {
	query := `
		SELECT id
		FROM works
		WHERE category_id = $1 AND status = 'published' AND visibility = 'public'
		ORDER BY id ASC
	`

	var ids []int
	err := r.db.SelectContext(ctx, &ids, query, categoryID)
	if err != nil {
		return nil, err
	}

	return ids, nil
}

func (r *repository) ListFreeUnitsByWorks(ctx context.Context, workIDs []int) ([]Unit, error) {
	if len(workIDs) == 0 {
		return []Unit{}, nil
	}

	query := `
		SELECT ` + unitColumns + `
		FROM units
		WHERE work_id = ANY($1) AND access = 'free' AND price_coins = 0
		ORDER BY created_at ASC
	`

	var units []Unit
	err := r.db.SelectContext(ctx, &units, query, pq.Array(workIDs))
	if err != nil {
		return nil, err
	}

	return units, nil
}

func (r *repository) IncrementUnitViews(ctx context.Context, unitID int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE units SET total_views = total_views + 1 WHERE id = $1`, unitID)
	return err
}

func (r *repository) IncrementWorkViews(ctx context.Context, workID int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE works SET total_views = total_views + 1 WHERE id = $1`, workID)
	return err
}

func (r *repository) IncrementCategoryViews(ctx context.Context, categoryID int) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE categories SET total_views = total_views + 1 WHERE id = $1`, categoryID)
	return err
}
