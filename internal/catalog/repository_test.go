package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(sqlx.NewDb(db, "postgres")), mock
}

func unitRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "work_id", "title", "description", "access", "price_coins",
		"media_url", "format", "total_views", "rating", "created_at",
	})
}

func TestRepository_GetUnitByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM units`).
		WithArgs(50).
		WillReturnRows(unitRows().AddRow(50, 5, "Episode 1", "", "paid", 10, "", "video", 0, 0, time.Now()))

	unit, err := repo.GetUnitByID(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, 50, unit.ID)
	assert.Equal(t, AccessPaid, unit.Access)
	assert.Equal(t, int64(10), unit.PriceCoins)
}

func TestRepository_GetUnitByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM units`).
		WithArgs(99).
		WillReturnRows(unitRows())

	unit, err := repo.GetUnitByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUnitNotFound)
	assert.Nil(t, unit)
}

// The navigator orders by created_at only; with three units at t1 < t2 < t3,
// next of t2 is t3 and previous of t2 is t1.
func TestRepository_NextUnit(t *testing.T) {
	repo, mock := newMockRepo(t)

	t2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	t3 := t2.Add(24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE work_id = $1 AND created_at > $2`)).
		WithArgs(5, t2).
		WillReturnRows(unitRows().AddRow(52, 5, "Episode 3", "", "paid", 10, "", "video", 0, 0, t3))

	next, err := repo.NextUnit(context.Background(), &Unit{ID: 51, WorkID: 5, CreatedAt: t2})
	require.NoError(t, err)
	assert.Equal(t, 52, next.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_NextUnit_EndOfSequence(t *testing.T) {
	repo, mock := newMockRepo(t)

	t3 := time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE work_id = $1 AND created_at > $2`)).
		WithArgs(5, t3).
		WillReturnRows(unitRows())

	next, err := repo.NextUnit(context.Background(), &Unit{ID: 52, WorkID: 5, CreatedAt: t3})
	assert.ErrorIs(t, err, ErrEndOfSequence)
	assert.Nil(t, next)
}

func TestRepository_PrevUnit(t *testing.T) {
	repo, mock := newMockRepo(t)

	t2 := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)
	t1 := t2.Add(-24 * time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE work_id = $1 AND created_at < $2`)).
		WithArgs(5, t2).
		WillReturnRows(unitRows().AddRow(50, 5, "Episode 1", "", "free", 0, "", "video", 0, 0, t1))

	prev, err := repo.PrevUnit(context.Background(), &Unit{ID: 51, WorkID: 5, CreatedAt: t2})
	require.NoError(t, err)
	assert.Equal(t, 50, prev.ID)
}

func TestRepository_PrevUnit_StartOfSequence(t *testing.T) {
	repo, mock := newMockRepo(t)

	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE work_id = $1 AND created_at < $2`)).
		WithArgs(5, t1).
		WillReturnRows(unitRows())

	prev, err := repo.PrevUnit(context.Background(), &Unit{ID: 50, WorkID: 5, CreatedAt: t1})
	assert.ErrorIs(t, err, ErrEndOfSequence)
	assert.Nil(t, prev)
}

func TestRepository_ListFreeUnitsByWorks_Empty(t *testing.T) {
	repo, _ := newMockRepo(t)

	units, err := repo.ListFreeUnitsByWorks(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, units)
}

func TestRepository_IncrementUnitViews(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE units SET total_views = total_views + 1 WHERE id = $1`)).
		WithArgs(50).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.IncrementUnitViews(context.Background(), 50)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
