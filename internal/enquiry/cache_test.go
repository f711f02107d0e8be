// internal/enquiry/cache_test.go
package enquiry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jameeshbx/trekking-b2b-sub001/internal/common/logger"
)

type countingSource struct {
	location string
	err      error
	calls    int
}

func (s *countingSource) GetEnquiryLocation(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.location, s.err
}

func createTestCache(t *testing.T, next LocationSource) (*CachedSource, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCachedSource(next, client, time.Minute, logger.NewTestLogger(t)), mr
}

func TestCachedSource_ReadThrough(t *testing.T) {
	next := &countingSource{location: "kashmir"}
	cache, mr := createTestCache(t, next)

	// First call misses the cache and hits the wrapped source.
	location, err := cache.GetEnquiryLocation(context.Background(), "ENQ-1001")
	require.NoError(t, err)
	assert.Equal(t, "kashmir", location)
	assert.Equal(t, 1, next.calls)

	cached, err := mr.Get("enquiry:loc:ENQ-1001")
	require.NoError(t, err)
	assert.Equal(t, "kashmir", cached)

	// Second call is served from the cache.
	location, err = cache.GetEnquiryLocation(context.Background(), "ENQ-1001")
	require.NoError(t, err)
	assert.Equal(t, "kashmir", location)
	assert.Equal(t, 1, next.calls)
}

func TestCachedSource_SourceErrorsAreNotCached(t *testing.T) {
	next := &countingSource{err: ErrNotFound}
	cache, mr := createTestCache(t, next)

	_, err := cache.GetEnquiryLocation(context.Background(), "ENQ-1001")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists("enquiry:loc:ENQ-1001"))

	_, err = cache.GetEnquiryLocation(context.Background(), "ENQ-1001")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, next.calls)
}

func TestCachedSource_CacheFailureDegradesToSource(t *testing.T) {
	next := &countingSource{location: "goa"}

	client, mock := redismock.NewClientMock()
	mock.ExpectGet("enquiry:loc:ENQ-77").SetErr(errors.New("redis down"))
	mock.ExpectSet("enquiry:loc:ENQ-77", "goa", time.Minute).SetErr(errors.New("redis down"))

	cache := NewCachedSource(next, client, time.Minute, logger.NewTestLogger(t))

	location, err := cache.GetEnquiryLocation(context.Background(), "ENQ-77")
	require.NoError(t, err)
	assert.Equal(t, "goa", location)
	assert.Equal(t, 1, next.calls)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedSource_ExpiredEntryFallsThrough(t *testing.T) {
	next := &countingSource{location: "kerala"}
	cache, mr := createTestCache(t, next)

	_, err := cache.GetEnquiryLocation(context.Background(), "ENQ-5")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	_, err = cache.GetEnquiryLocation(context.Background(), "ENQ-5")
	require.NoError(t, err)
	assert.Equal(t, 2, next.calls)
}
