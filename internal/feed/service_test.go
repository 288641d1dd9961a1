package feed

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storyreel/internal/catalog"
	"storyreel/internal/history"
	"storyreel/internal/library"
	"storyreel/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

type mockCatalogRepo struct {
	mock.Mock
}

func (m *mockCatalogRepo) GetUnitByID(ctx context.Context, id int) (*catalog.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Unit), args.Error(1)
}

func (m *mockCatalogRepo) GetWorkByID(ctx context.Context, id int) (*catalog.Work, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Work), args.Error(1)
}

func (m *mockCatalogRepo) NextUnit(ctx context.Context, unit *catalog.Unit) (*catalog.Unit, error) {
	args := m.Called(ctx, unit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Unit), args.Error(1)
}

func (m *mockCatalogRepo) PrevUnit(ctx context.Context, unit *catalog.Unit) (*catalog.Unit, error) {
	args := m.Called(ctx, unit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Unit), args.Error(1)
}

func (m *mockCatalogRepo) ListUnitsByWork(ctx context.Context, workID int) ([]catalog.Unit, error) {
	args := m.Called(ctx, workID)
	return args.Get(0).([]catalog.Unit), args.Error(1)
}

func (m *mockCatalogRepo) ListPublishedWorkIDs(ctx context.Context, categoryID int) ([]int, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).([]int), args.Error(1)
}

func (m *mockCatalogRepo) ListFreeUnitsByWorks(ctx context.Context, workIDs []int) ([]catalog.Unit, error) {
	args := m.Called(ctx, workIDs)
	return args.Get(0).([]catalog.Unit), args.Error(1)
}

func (m *mockCatalogRepo) IncrementUnitViews(ctx context.Context, unitID int) error {
	args := m.Called(ctx, unitID)
	return args.Error(0)
}

func (m *mockCatalogRepo) IncrementWorkViews(ctx context.Context, workID int) error {
	args := m.Called(ctx, workID)
	return args.Error(0)
}

func (m *mockCatalogRepo) IncrementCategoryViews(ctx context.Context, categoryID int) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

type mockHistoryRepo struct {
	mock.Mock
}

func (m *mockHistoryRepo) Upsert(ctx context.Context, userID, workID, unitID, categoryID int) error {
	args := m.Called(ctx, userID, workID, unitID, categoryID)
	return args.Error(0)
}

func (m *mockHistoryRepo) List(ctx context.Context, userID, limit int) ([]history.Entry, error) {
	args := m.Called(ctx, userID, limit)
	return args.Get(0).([]history.Entry), args.Error(1)
}

func (m *mockHistoryRepo) RecentCategories(ctx context.Context, userID, max int) ([]int, error) {
	args := m.Called(ctx, userID, max)
	return args.Get(0).([]int), args.Error(1)
}

type mockLibraryRepo struct {
	mock.Mock
}

func (m *mockLibraryRepo) FlagsFor(ctx context.Context, userID, unitID int) (library.Flags, error) {
	args := m.Called(ctx, userID, unitID)
	return args.Get(0).(library.Flags), args.Error(1)
}

func (m *mockLibraryRepo) FlagsForUnits(ctx context.Context, userID int, unitIDs []int) (map[int]library.Flags, error) {
	args := m.Called(ctx, userID, unitIDs)
	return args.Get(0).(map[int]library.Flags), args.Error(1)
}

func (m *mockLibraryRepo) ToggleBookmark(ctx context.Context, userID, unitID int) (bool, error) {
	args := m.Called(ctx, userID, unitID)
	return args.Bool(0), args.Error(1)
}

func (m *mockLibraryRepo) ToggleRating(ctx context.Context, userID, unitID int) (bool, error) {
	args := m.Called(ctx, userID, unitID)
	return args.Bool(0), args.Error(1)
}

func unitsFor(workID int, ids ...int) []catalog.Unit {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	units := make([]catalog.Unit, len(ids))
	for i, id := range ids {
		units[i] = catalog.Unit{
			ID:        id,
			WorkID:    workID,
			Access:    catalog.AccessFree,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return units
}

func ids(entries []Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

// Two works in the freshest category: the tier emits position 0 of each work,
// then position 1, then position 2.
func TestForYou_InterleavesBreadthFirst(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	catalogRepo := new(mockCatalogRepo)
	historyRepo := new(mockHistoryRepo)
	libraryRepo := new(mockLibraryRepo)

	work1 := unitsFor(1, 11, 12, 13)
	work2 := unitsFor(2, 21, 22, 23)

	redisMock.ExpectGet("feed:foryou:1").RedisNil()
	redisMock.Regexp().ExpectSet("feed:foryou:1", `.*`, cacheTTL).SetVal("OK")

	historyRepo.On("RecentCategories", ctx, 1, 3).Return([]int{7}, nil)
	catalogRepo.On("ListPublishedWorkIDs", ctx, 7).Return([]int{1, 2}, nil)
	catalogRepo.On("ListFreeUnitsByWorks", ctx, []int{1, 2}).Return(append(work1, work2...), nil)
	libraryRepo.On("FlagsForUnits", ctx, 1, []int{11, 21, 12, 22, 13, 23}).
		Return(map[int]library.Flags{21: {Bookmarked: true}}, nil)

	svc := &Service{redis: db, catalog: catalogRepo, history: historyRepo, library: libraryRepo}

	page, err := svc.ForYou(ctx, 1, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 21, 12, 22, 13, 23}, ids(page.Entries))
	assert.False(t, page.HasMore)
	assert.True(t, page.Entries[1].Bookmarked)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

// Tier caps shrink with recency rank: the second category contributes at most
// two units per work, appended after the first tier's block.
func TestForYou_TiersConcatenateInRecencyOrder(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	catalogRepo := new(mockCatalogRepo)
	historyRepo := new(mockHistoryRepo)
	libraryRepo := new(mockLibraryRepo)

	redisMock.ExpectGet("feed:foryou:1").RedisNil()
	redisMock.Regexp().ExpectSet("feed:foryou:1", `.*`, cacheTTL).SetVal("OK")

	historyRepo.On("RecentCategories", ctx, 1, 3).Return([]int{7, 8}, nil)
	catalogRepo.On("ListPublishedWorkIDs", ctx, 7).Return([]int{1}, nil)
	catalogRepo.On("ListFreeUnitsByWorks", ctx, []int{1}).Return(unitsFor(1, 11, 12, 13, 14), nil)
	catalogRepo.On("ListPublishedWorkIDs", ctx, 8).Return([]int{3}, nil)
	catalogRepo.On("ListFreeUnitsByWorks", ctx, []int{3}).Return(unitsFor(3, 31, 32, 33), nil)
	libraryRepo.On("FlagsForUnits", ctx, 1, []int{11, 12, 13, 31, 32}).
		Return(map[int]library.Flags{}, nil)

	svc := &Service{redis: db, catalog: catalogRepo, history: historyRepo, library: libraryRepo}

	page, err := svc.ForYou(ctx, 1, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12, 13, 31, 32}, ids(page.Entries))
}

func TestForYou_EmptyHistory(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	catalogRepo := new(mockCatalogRepo)
	historyRepo := new(mockHistoryRepo)
	libraryRepo := new(mockLibraryRepo)

	redisMock.ExpectGet("feed:foryou:1").RedisNil()
	redisMock.Regexp().ExpectSet("feed:foryou:1", `.*`, cacheTTL).SetVal("OK")

	historyRepo.On("RecentCategories", ctx, 1, 3).Return([]int{}, nil)

	svc := &Service{redis: db, catalog: catalogRepo, history: historyRepo, library: libraryRepo}

	page, err := svc.ForYou(ctx, 1, 0, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.False(t, page.HasMore)
	catalogRepo.AssertNotCalled(t, "ListPublishedWorkIDs")
}

func TestForYou_Pagination(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	catalogRepo := new(mockCatalogRepo)
	historyRepo := new(mockHistoryRepo)
	libraryRepo := new(mockLibraryRepo)

	redisMock.ExpectGet("feed:foryou:1").RedisNil()
	redisMock.Regexp().ExpectSet("feed:foryou:1", `.*`, cacheTTL).SetVal("OK")

	historyRepo.On("RecentCategories", ctx, 1, 3).Return([]int{7}, nil)
	catalogRepo.On("ListPublishedWorkIDs", ctx, 7).Return([]int{1}, nil)
	catalogRepo.On("ListFreeUnitsByWorks", ctx, []int{1}).Return(unitsFor(1, 11, 12, 13), nil)
	libraryRepo.On("FlagsForUnits", ctx, 1, []int{12}).Return(map[int]library.Flags{}, nil)

	svc := &Service{redis: db, catalog: catalogRepo, history: historyRepo, library: libraryRepo}

	page, err := svc.ForYou(ctx, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{12}, ids(page.Entries))
	assert.True(t, page.HasMore)
}

func TestForYou_OffsetPastEnd(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	catalogRepo := new(mockCatalogRepo)
	historyRepo := new(mockHistoryRepo)
	libraryRepo := new(mockLibraryRepo)

	redisMock.ExpectGet("feed:foryou:1").RedisNil()
	redisMock.Regexp().ExpectSet("feed:foryou:1", `.*`, cacheTTL).SetVal("OK")

	historyRepo.On("RecentCategories", ctx, 1, 3).Return([]int{7}, nil)
	catalogRepo.On("ListPublishedWorkIDs", ctx, 7).Return([]int{1}, nil)
	catalogRepo.On("ListFreeUnitsByWorks", ctx, []int{1}).Return(unitsFor(1, 11), nil)

	svc := &Service{redis: db, catalog: catalogRepo, history: historyRepo, library: libraryRepo}

	page, err := svc.ForYou(ctx, 1, 10, 20)
	require.NoError(t, err)
	assert.Empty(t, page.Entries)
	assert.False(t, page.HasMore)
	libraryRepo.AssertNotCalled(t, "FlagsForUnits")
}

// A cached sequence skips history and catalog entirely; flags are still
// resolved fresh.
func TestForYou_CacheHit(t *testing.T) {
	db, redisMock := redismock.NewClientMock()
	ctx := context.Background()

	catalogRepo := new(mockCatalogRepo)
	historyRepo := new(mockHistoryRepo)
	libraryRepo := new(mockLibraryRepo)

	cached, err := json.Marshal(unitsFor(1, 11, 12))
	require.NoError(t, err)

	redisMock.ExpectGet("feed:foryou:1").SetVal(string(cached))

	libraryRepo.On("FlagsForUnits", ctx, 1, []int{11, 12}).
		Return(map[int]library.Flags{12: {Rated: true}}, nil)

	svc := &Service{redis: db, catalog: catalogRepo, history: historyRepo, library: libraryRepo}

	page, err := svc.ForYou(ctx, 1, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, []int{11, 12}, ids(page.Entries))
	assert.True(t, page.Entries[1].Rated)
	historyRepo.AssertNotCalled(t, "RecentCategories")
	catalogRepo.AssertNotCalled(t, "ListPublishedWorkIDs")
}

func TestInterleave(t *testing.T) {
	a := unitsFor(1, 11, 12)
	b := unitsFor(2, 21)

	out := interleave([][]catalog.Unit{a, b}, 3)
	assert.Equal(t, []int{11, 21, 12}, func() []int {
		got := make([]int, len(out))
		for i, u := range out {
			got[i] = u.ID
		}
		return got
	}())
}
