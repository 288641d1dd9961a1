package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"storyreel/internal/catalog"
	"storyreel/internal/history"
	"storyreel/internal/logger"
	"storyreel/internal/metrics"
)

const (
	queueKey       = "views"
	failedQueueKey = "views:failed"
	maxTries       = 3
)

// Event is one consumption fact: a user was granted a unit. Recording it is
// best effort and never blocks or fails the grant itself.
type Event struct {
	UserID     int       `json:"user_id"`
	UnitID     int       `json:"unit_id"`
	WorkID     int       `json:"work_id"`
	CategoryID int       `json:"category_id"`
	Tries      int       `json:"tries"`
	Created    time.Time `json:"created"`
}

type Service struct {
	redis   *redis.Client
	catalog catalog.Repository
	history history.Repository
}

func New(redisAddr string, catalogRepo catalog.Repository, historyRepo history.Repository) *Service {
	return &Service{
		redis: redis.NewClient(&redis.Options{
			Addr: redisAddr,
		}),
		catalog: catalogRepo,
		history: historyRepo,
	}
}

// Enqueue pushes a consumption event onto the queue. Errors are logged and
// swallowed by callers; a lost event must never surface to the viewer.
func (s *Service) Enqueue(ctx context.Context, userID, unitID, workID, categoryID int) error {
	event := Event{
		UserID:     userID,
		UnitID:     unitID,
		WorkID:     workID,
		CategoryID: categoryID,
		Tries:      0,
		Created:    time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Errorf("Failed to marshal view event: %v", err)
		return err
	}

	if err := s.redis.LPush(ctx, queueKey, data).Err(); err != nil {
		logger.Errorf("Failed to queue view event for user %d unit %d: %v", userID, unitID, err)
		return err
	}

	return nil
}

func (s *Service) Start(ctx context.Context) {
	logger.Info("Consumption recorder started")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Consumption recorder stopped")
			return
		default:
			s.processNext(ctx)
		}
	}
}

func (s *Service) processNext(ctx context.Context) {
	result, err := s.redis.BRPop(ctx, 2*time.Second, queueKey).Result()
	if err != nil {
		return
	}

	var event Event
	if err := json.Unmarshal([]byte(result[1]), &event); err != nil {
		logger.Errorf("Bad view event data: %v", err)
		metrics.RecordRecorderEvent("malformed")
		return
	}

	event.Tries++
	if err := s.apply(ctx, event); err != nil {
		logger.Errorf("Failed to record view for user %d unit %d: %v", event.UserID, event.UnitID, err)

		if event.Tries < maxTries {
			time.Sleep(time.Second)
			data, _ := json.Marshal(event)
			s.redis.LPush(context.Background(), queueKey, data)
			logger.Infof("Retrying view event for user %d unit %d (attempt %d)", event.UserID, event.UnitID, event.Tries+1)
		} else {
			logger.Errorf("View event for user %d unit %d dropped after %d attempts", event.UserID, event.UnitID, maxTries)
			s.saveFailed(event, err)
			metrics.RecordRecorderEvent("failed")
		}
		return
	}

	metrics.RecordRecorderEvent("applied")
}

// apply records the event's side effects. The view counters and the history
// row are independent; a partial write just means a retried event re-bumps a
// counter, which the product tolerates.
func (s *Service) apply(ctx context.Context, event Event) error {
	if err := s.history.Upsert(ctx, event.UserID, event.WorkID, event.UnitID, event.CategoryID); err != nil {
		return fmt.Errorf("history upsert: %w", err)
	}

	if err := s.catalog.IncrementUnitViews(ctx, event.UnitID); err != nil {
		return fmt.Errorf("unit views: %w", err)
	}
	if err := s.catalog.IncrementWorkViews(ctx, event.WorkID); err != nil {
		return fmt.Errorf("work views: %w", err)
	}
	if err := s.catalog.IncrementCategoryViews(ctx, event.CategoryID); err != nil {
		return fmt.Errorf("category views: %w", err)
	}

	// A fresh view can change which categories the feed draws from.
	if err := s.redis.Del(ctx, feedCacheKey(event.UserID)).Err(); err != nil {
		logger.Errorf("Failed to invalidate feed cache for user %d: %v", event.UserID, err)
	}

	return nil
}

func (s *Service) saveFailed(event Event, cause error) {
	failed := map[string]interface{}{
		"event": event,
		"error": cause.Error(),
		"time":  time.Now(),
	}
	data, _ := json.Marshal(failed)
	s.redis.LPush(context.Background(), failedQueueKey, data)
}

func (s *Service) QueueLength(ctx context.Context) int64 {
	length, _ := s.redis.LLen(ctx, queueKey).Result()
	metrics.RecorderQueueLength.Set(float64(length))
	return length
}

func (s *Service) Close() error {
	return s.redis.Close()
}

func feedCacheKey(userID int) string {
	return fmt.Sprintf("feed:foryou:%d", userID)
}
