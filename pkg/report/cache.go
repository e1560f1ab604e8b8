package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/envirohealth-ai/platform/pkg/common/logger"
	"github.com/envirohealth-ai/platform/pkg/common/models"
	"github.com/envirohealth-ai/platform/pkg/observability/metrics"
	"github.com/redis/go-redis/v9"
)

// Cache keeps rendered report responses keyed by the rounded coordinate and
// lifestyle identity, so repeat lookups skip the provider fan-out. Cache
// failures degrade to a miss; they never fail a request.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Key rounds coordinates to ~100m so nearby requests share an entry.
func (c *Cache) Key(lat, lon float64, lifestyleID string) string {
	if lifestyleID == "" {
		lifestyleID = "anon"
	}
	return fmt.Sprintf("report:%.3f:%.3f:%s", lat, lon, lifestyleID)
}

func (c *Cache) Get(ctx context.Context, key string) (*models.ReportResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WithError(err).Warn("Report cache read failed")
		}
		metrics.IncReportCacheMisses()
		return nil, false
	}

	var resp models.ReportResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		logger.WithError(err).Warn("Report cache entry corrupt")
		metrics.IncReportCacheMisses()
		return nil, false
	}

	metrics.IncReportCacheHits()
	return &resp, true
}

func (c *Cache) Set(ctx context.Context, key string, resp *models.ReportResponse) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		logger.WithError(err).Warn("Report cache encode failed")
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logger.WithError(err).Warn("Report cache write failed")
	}
}
