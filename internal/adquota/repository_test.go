package adquota

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupMock(t *testing.T, cap int) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB, cap)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func TestGetCount_NoRecordMeansZero(t *testing.T) {
	repo, mock, close := setupMock(t, 2)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT view_count FROM ad_quota WHERE user_id = $1 AND work_id = $2")).
		WithArgs(1, 9).
		WillReturnRows(sqlmock.NewRows([]string{"view_count"}))

	count, err := repo.GetCount(context.Background(), 1, 9)
	require.NoError(t, err)
	require.Equal(t, 0, count)
}

func TestIncrement_UnderCap(t *testing.T) {
	repo, mock, close := setupMock(t, 2)
	defer close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ad_quota (user_id, work_id, view_count) VALUES ($1, $2, 1) ON CONFLICT (user_id, work_id) DO UPDATE SET view_count = ad_quota.view_count + 1 WHERE ad_quota.view_count < $3 RETURNING view_count")).
		WithArgs(1, 9, 2).
		WillReturnRows(sqlmock.NewRows([]string{"view_count"}).AddRow(2))

	count, err := repo.Increment(context.Background(), 1, 9)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestIncrement_AtCap(t *testing.T) {
	repo, mock, close := setupMock(t, 2)
	defer close()

	// The conditional upsert returns no row once the cap is reached.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ad_quota (user_id, work_id, view_count) VALUES ($1, $2, 1) ON CONFLICT (user_id, work_id) DO UPDATE SET view_count = ad_quota.view_count + 1 WHERE ad_quota.view_count < $3 RETURNING view_count")).
		WithArgs(1, 9, 2).
		WillReturnRows(sqlmock.NewRows([]string{"view_count"}))

	_, err := repo.Increment(context.Background(), 1, 9)
	require.ErrorIs(t, err, ErrQuotaExceeded)
}

func TestSweep_DeletesBeforeToday(t *testing.T) {
	repo, mock, close := setupMock(t, 2)
	defer close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ad_quota WHERE created_at < date_trunc('day', now())")).
		WillReturnResult(sqlmock.NewResult(0, 7))

	deleted, err := repo.Sweep(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(7), deleted)
}

func TestSweeperNextRun(t *testing.T) {
	s := NewSweeper(nil, 3)

	now := time.Date(2024, 5, 10, 1, 30, 0, 0, time.UTC)
	next := s.nextRun(now)
	require.Equal(t, time.Date(2024, 5, 10, 3, 0, 0, 0, time.UTC), next)

	// Past today's hour: schedule for tomorrow.
	now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	next = s.nextRun(now)
	require.Equal(t, time.Date(2024, 5, 11, 3, 0, 0, 0, time.UTC), next)
}
