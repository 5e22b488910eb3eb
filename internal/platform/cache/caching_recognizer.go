// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"celebrity_backend/internal/feature/recognition/domain/entity"
	"celebrity_backend/internal/feature/recognition/usecase"
)

// CachingRecognizer decorates a CelebrityRecognizer with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying recognizer. Cache keys are derived from the image
// content, so identical images never hit the remote API twice within the TTL.
type CachingRecognizer struct {
	inner     usecase.CelebrityRecognizer
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingRecognizerがCelebrityRecognizerを実装していることをコンパイル時に検証します。
var _ usecase.CelebrityRecognizer = (*CachingRecognizer)(nil)

// NewCachingRecognizer decorates a CelebrityRecognizer with Redis caching.
// If ttl is 0, it defaults to 24 hours. If namespace is empty, it uses "recognition".
func NewCachingRecognizer(rdb *redis.Client, ttl time.Duration, inner usecase.CelebrityRecognizer, namespace string) *CachingRecognizer {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = "recognition"
	}
	return &CachingRecognizer{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Recognize returns the cached result for the image when available, otherwise
// calls the underlying recognizer and stores its result.
func (c *CachingRecognizer) Recognize(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.Recognize(ctx, imageData)
	}

	key := c.cacheKey(imageData)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.RecognitionResult
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the remote API
	out, err := c.inner.Recognize(ctx, imageData)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a content-addressed cache key for the image.
func (c *CachingRecognizer) cacheKey(imageData []byte) string {
	sum := sha256.Sum256(imageData)
	return c.namespace + ":" + hex.EncodeToString(sum[:])
}
