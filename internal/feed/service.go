package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storyreel/internal/catalog"
	"storyreel/internal/history"
	"storyreel/internal/library"
	"storyreel/internal/logger"
	"storyreel/internal/metrics"
)

const (
	maxCategories = 3
	cacheTTL      = 60 * time.Second
)

// tierCaps maps a category's recency rank to the number of free units drawn
// from each of its works.
var tierCaps = [maxCategories]int{3, 2, 1}

// Entry is one feed item: a free unit plus the requesting user's bookmark and
// rating flags. Flags are resolved at emission time, never cached.
type Entry struct {
	catalog.Unit
	library.Flags
}

type Page struct {
	Entries []Entry `json:"entries"`
	HasMore bool    `json:"has_more"`
}

type Service struct {
	redis   *redis.Client
	catalog catalog.Repository
	history history.Repository
	library library.Repository
}

func NewService(redisAddr string, catalogRepo catalog.Repository, historyRepo history.Repository, libraryRepo library.Repository) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		catalog: catalogRepo,
		history: historyRepo,
		library: libraryRepo,
	}
}

// ForYou returns a page of the user's interleaved feed. The materialized
// sequence is memoized briefly; the recorder drops the key when fresh history
// lands, so a new view reshapes the feed within a request or two.
func (s *Service) ForYou(ctx context.Context, userID, offset, limit int) (*Page, error) {
	sequence, err := s.loadSequence(ctx, userID)
	if err != nil {
		return nil, err
	}

	page := &Page{Entries: []Entry{}}
	if offset >= len(sequence) {
		return page, nil
	}

	end := offset + limit
	if end > len(sequence) {
		end = len(sequence)
	}
	window := sequence[offset:end]
	page.HasMore = end < len(sequence)

	unitIDs := make([]int, len(window))
	for i, unit := range window {
		unitIDs[i] = unit.ID
	}

	flags, err := s.library.FlagsForUnits(ctx, userID, unitIDs)
	if err != nil {
		return nil, err
	}

	for _, unit := range window {
		page.Entries = append(page.Entries, Entry{Unit: unit, Flags: flags[unit.ID]})
	}

	return page, nil
}

func (s *Service) loadSequence(ctx context.Context, userID int) ([]catalog.Unit, error) {
	key := cacheKey(userID)

	cached, err := s.redis.Get(ctx, key).Result()
	if err == nil {
		var sequence []catalog.Unit
		if err := json.Unmarshal([]byte(cached), &sequence); err == nil {
			metrics.RecordFeedRequest("hit")
			return sequence, nil
		}
	}
	metrics.RecordFeedRequest("miss")

	sequence, err := s.buildSequence(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(sequence); err == nil {
		if err := s.redis.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			logger.Errorf("Failed to cache feed for user %d: %v", userID, err)
		}
	}

	return sequence, nil
}

// buildSequence materializes the full interleaved feed: one tier per recent
// category, each tier's works interleaved breadth-first, tiers concatenated
// in recency order.
func (s *Service) buildSequence(ctx context.Context, userID int) ([]catalog.Unit, error) {
	categoryIDs, err := s.history.RecentCategories(ctx, userID, maxCategories)
	if err != nil {
		return nil, err
	}

	sequence := []catalog.Unit{}
	for rank, categoryID := range categoryIDs {
		tier, err := s.buildTier(ctx, categoryID, tierCaps[rank])
		if err != nil {
			return nil, err
		}
		sequence = append(sequence, tier...)
	}

	return sequence, nil
}

func (s *Service) buildTier(ctx context.Context, categoryID, cap int) ([]catalog.Unit, error) {
	workIDs, err := s.catalog.ListPublishedWorkIDs(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if len(workIDs) == 0 {
		return nil, nil
	}

	units, err := s.catalog.ListFreeUnitsByWorks(ctx, workIDs)
	if err != nil {
		return nil, err
	}

	byWork := make(map[int][]catalog.Unit, len(workIDs))
	for _, unit := range units {
		if len(byWork[unit.WorkID]) < cap {
			byWork[unit.WorkID] = append(byWork[unit.WorkID], unit)
		}
	}

	columns := make([][]catalog.Unit, 0, len(workIDs))
	for _, workID := range workIDs {
		if list := byWork[workID]; len(list) > 0 {
			columns = append(columns, list)
		}
	}

	return interleave(columns, cap), nil
}

// interleave emits position 0 of every column, then position 1, and so on up
// to cap positions. Column order is preserved within each position.
func interleave(columns [][]catalog.Unit, cap int) []catalog.Unit {
	out := []catalog.Unit{}
	for pos := 0; pos < cap; pos++ {
		for _, column := range columns {
			if pos < len(column) {
				out = append(out, column[pos])
			}
		}
	}
	return out
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func cacheKey(userID int) string {
	return fmt.Sprintf("feed:foryou:%d", userID)
}
