package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-library/internal/logger"
)

// reportKeyPrefix namespaces every report key so Invalidate can find them.
const reportKeyPrefix = "library:report:"

// reportGenerationKey counts invalidations. It lies outside reportKeyPrefix.
const reportGenerationKey = "library:report-generation"

// ReportCacheRepository stores aggregate report results in Redis as JSON.
type ReportCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration for cached reports
}

// NewReportCacheRepository creates a cache with the given TTL.
func NewReportCacheRepository(client *redis.Client, expiration time.Duration) *ReportCacheRepository {
	return &ReportCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get decodes the cached report into dst. It returns false when the key is absent.
func (r *ReportCacheRepository) Get(ctx context.Context, name string, dst any) (bool, error) {
	key := reportKeyPrefix + name

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Infow("report cache get",
		"key", key,
		"size", len(val),
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(val, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Generation returns the current invalidation counter, zero before the first invalidation.
func (r *ReportCacheRepository) Generation(ctx context.Context) (int64, error) {
	gen, err := r.client.Get(ctx, reportGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set caches a report under name if the generation is still generation.
// A report computed before a later Invalidate is silently dropped.
func (r *ReportCacheRepository) Set(ctx context.Context, name string, generation int64, report any) error {
	key := reportKeyPrefix + name

	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	stored := false
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		gen, err := tx.Get(ctx, reportGenerationKey).Int64()
		if errors.Is(err, redis.Nil) {
			gen, err = 0, nil
		}
		if err != nil {
			return err
		}
		if gen != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, r.exp)
			return nil
		})
		stored = err == nil
		return err
	}, reportGenerationKey)
	if errors.Is(err, redis.TxFailedErr) {
		err = nil
	}

	logger.Log.Infow("report cache set",
		"key", key,
		"size", len(data),
		"ttl", r.exp,
		"generation", generation,
		"stored", stored,
		"error", err,
	)
	return err
}

// Invalidate bumps the generation and drops every cached report.
func (r *ReportCacheRepository) Invalidate(ctx context.Context) error {
	if err := r.client.Incr(ctx, reportGenerationKey).Err(); err != nil {
		return err
	}

	var keys []string
	iter := r.client.Scan(ctx, 0, reportKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}

	err := r.client.Del(ctx, keys...).Err()
	logger.Log.Infow("report cache invalidate",
		"keys", keys,
		"error", err,
	)
	return err
}
