package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"study-helper/internal/cache"
	"study-helper/internal/domain"
	"study-helper/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// CachedLookup is a read-through cache in front of another TopicLookup.
// Only successful lookups are stored. Cache failures never fail a lookup.
type CachedLookup struct {
	next    domain.TopicLookup
	store   domain.Cache
	ttl     time.Duration
	sfGroup singleflight.Group
}

// NewCachedLookup wraps next with store. A zero ttl stores entries without expiry.
func NewCachedLookup(next domain.TopicLookup, store domain.Cache, ttl time.Duration) *CachedLookup {
	return &CachedLookup{next: next, store: store, ttl: ttl}
}

// WithCache returns next wrapped in a CachedLookup when store answers a ping,
// and next unchanged otherwise.
func WithCache(ctx context.Context, next domain.TopicLookup, store domain.Cache, ttl time.Duration) domain.TopicLookup {
	if err := store.Ping(ctx); err != nil {
		logger.Get().Warn("Topic cache unavailable, lookups will not be cached", zap.Error(err))
		return next
	}
	return NewCachedLookup(next, store, ttl)
}

func (c *CachedLookup) Fetch(ctx context.Context, topic string) (domain.TopicInfo, error) {
	l := logger.Get()
	key := cache.TopicKey(topic)

	cached, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var info domain.TopicInfo
		errDecode := json.Unmarshal([]byte(cached), &info)
		if errDecode == nil {
			l.Debug("Topic cache hit", zap.String("key", key))
			return info, nil
		}
		l.Warn("Discarding undecodable cached topic", zap.String("key", key), zap.Error(errDecode))
		if errDel := c.store.Delete(ctx, key); errDel != nil {
			l.Warn("Topic cache delete failed", zap.String("key", key), zap.Error(errDel))
		}
	case errors.Is(err, domain.ErrCacheMiss):
		l.Debug("Topic cache miss", zap.String("key", key))
	default:
		l.Warn("Topic cache read failed", zap.String("key", key), zap.Error(err))
	}

	res, err, shared := c.sfGroup.Do(key, func() (interface{}, error) {
		info, fetchErr := c.next.Fetch(ctx, topic)
		if fetchErr != nil {
			return nil, fetchErr
		}
		payload, errEncode := json.Marshal(info)
		if errEncode != nil {
			l.Warn("Failed to encode topic for caching", zap.String("key", key), zap.Error(errEncode))
			return info, nil
		}
		if errSet := c.store.Set(ctx, key, string(payload), c.ttl); errSet != nil {
			l.Warn("Topic cache write failed", zap.String("key", key), zap.Error(errSet))
		}
		return info, nil
	})
	if err != nil {
		return domain.TopicInfo{}, err
	}
	if shared {
		l.Debug("Topic lookup shared with a concurrent request", zap.String("key", key))
	}

	info, ok := res.(domain.TopicInfo)
	if !ok {
		return domain.TopicInfo{}, fmt.Errorf("unexpected type from singleflight.Do for topic lookup: %T", res)
	}
	return info, nil
}

var _ domain.TopicLookup = (*CachedLookup)(nil)
