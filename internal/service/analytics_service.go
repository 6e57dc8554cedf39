// FILE: internal/service/analytics_service.go
package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"dam-butler-be/internal/dto"
	"dam-butler-be/internal/pkg/logger"
	"dam-butler-be/pkg/vault/intent"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/patrickmn/go-cache"
)

const snapshotCacheKey = "analytics_snapshot"

type IAnalyticsService interface {
	Consume(ctx context.Context) error
	Snapshot() dto.AnalyticsSnapshot
	Record(event dto.SearchEvent)
}

type analyticsService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	sysLogger logger.ILogger

	mu            sync.Mutex
	totalSearches int64
	byMethod      map[string]int64
	byProduct     map[string]int64
	byUseCase     map[string]int64
	byRegion      map[string]int64
	confidenceSum float64
	zeroResults   int64

	snapshotCache *cache.Cache
}

func NewAnalyticsService(pubSub *gochannel.GoChannel, topicName string, sysLogger logger.ILogger) IAnalyticsService {
	return &analyticsService{
		pubSub:        pubSub,
		topicName:     topicName,
		sysLogger:     sysLogger,
		byMethod:      make(map[string]int64),
		byProduct:     make(map[string]int64),
		byUseCase:     make(map[string]int64),
		byRegion:      make(map[string]int64),
		snapshotCache: cache.New(10*time.Second, time.Minute),
	}
}

// Consume subscribes to the search topic and aggregates events until the
// context is cancelled.
func (s *analyticsService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(msg)
		}
	}()

	return nil
}

func (s *analyticsService) processMessage(msg *message.Message) {
	var event dto.SearchEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		s.sysLogger.Error("analytics_service", "failed to unmarshal search event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	s.Record(event)
	msg.Ack()
}

// Record folds one search event into the counters. Exposed for tests and
// for callers that bypass the bus.
func (s *analyticsService) Record(event dto.SearchEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalSearches++
	method := event.ParsingMethod
	if method == "" {
		method = intent.MethodPatternMatching
	}
	s.byMethod[method]++
	if event.Product != "" {
		s.byProduct[event.Product]++
	}
	if event.UseCase != "" {
		s.byUseCase[event.UseCase]++
	}
	if event.Region != "" {
		s.byRegion[event.Region]++
	}
	s.confidenceSum += event.Confidence
	if event.ResultCount == 0 {
		s.zeroResults++
	}

	s.snapshotCache.Delete(snapshotCacheKey)
}

// Snapshot returns the aggregated counters. Snapshots are cached briefly so
// a dashboard polling the endpoint does not contend with the consumer.
func (s *analyticsService) Snapshot() dto.AnalyticsSnapshot {
	if cached, found := s.snapshotCache.Get(snapshotCacheKey); found {
		return cached.(dto.AnalyticsSnapshot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := dto.AnalyticsSnapshot{
		TotalSearches:   s.totalSearches,
		ByParsingMethod: copyCounts(s.byMethod),
		ByProduct:       copyCounts(s.byProduct),
		ByUseCase:       copyCounts(s.byUseCase),
		ByRegion:        copyCounts(s.byRegion),
		ZeroResultCount: s.zeroResults,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	if s.totalSearches > 0 {
		snapshot.AvgConfidence = s.confidenceSum / float64(s.totalSearches)
	}

	s.snapshotCache.Set(snapshotCacheKey, snapshot, cache.DefaultExpiration)
	return snapshot
}

func copyCounts(src map[string]int64) map[string]int64 {
	dst := make(map[string]int64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
