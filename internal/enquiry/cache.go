// internal/enquiry/cache.go
package enquiry

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/logger"
)

const cacheKeyPrefix = "enquiry:loc:"

// CachedSource decorates a LocationSource with a Redis read-through cache.
// Cache failures are never fatal: a broken cache degrades to the wrapped
// source.
type CachedSource struct {
	next   LocationSource
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewCachedSource(next LocationSource, redisClient *redis.Client, ttl time.Duration, log logger.Logger) *CachedSource {
	return &CachedSource{
		next:   next,
		redis:  redisClient,
		ttl:    ttl,
		logger: log,
	}
}

func (s *CachedSource) GetEnquiryLocation(ctx context.Context, enquiryID string) (string, error) {
	cacheKey := cacheKeyPrefix + enquiryID

	if val, err := s.redis.Get(ctx, cacheKey).Result(); err == nil && val != "" {
		return val, nil
	}

	location, err := s.next.GetEnquiryLocation(ctx, enquiryID)
	if err != nil {
		return "", err
	}

	if err := s.redis.Set(ctx, cacheKey, location, s.ttl).Err(); err != nil {
		s.logger.Debug("failed to cache enquiry location", map[string]interface{}{
			"enquiryId": enquiryID,
			"error":     err.Error(),
		})
	}

	return location, nil
}
