package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"foodies-api/internal/pkg/errs"
	"foodies-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const ratingStatsKeyPrefix = "rating_stats:"

// RatingStatsCache keeps restaurant rating aggregates in Redis so the
// list and detail endpoints avoid re-running the stats aggregation.
// Entries are invalidated whenever a review write recomputes the rating.
type RatingStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRatingStatsCache(client *redis.Client, ttl time.Duration) *RatingStatsCache {
	return &RatingStatsCache{client: client, ttl: ttl}
}

func (c *RatingStatsCache) Get(ctx context.Context, restaurantID uuid.UUID) (*queries.RestaurantRatingStats, error) {
	raw, err := c.client.Get(ctx, ratingStatsKeyPrefix+restaurantID.String()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to get rating stats from cache")
	}

	var stats queries.RestaurantRatingStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, errs.Wrap(err, "failed to decode cached rating stats")
	}
	return &stats, nil
}

func (c *RatingStatsCache) Set(ctx context.Context, stats *queries.RestaurantRatingStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return errs.Wrap(err, "failed to encode rating stats")
	}

	if err := c.client.Set(ctx, ratingStatsKeyPrefix+stats.RestaurantID.String(), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to set rating stats in cache")
	}
	return nil
}

func (c *RatingStatsCache) Invalidate(ctx context.Context, restaurantID uuid.UUID) error {
	if err := c.client.Del(ctx, ratingStatsKeyPrefix+restaurantID.String()).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate rating stats cache")
	}
	return nil
}
