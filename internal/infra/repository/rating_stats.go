package repository

import (
	"context"

	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"

	"github.com/google/uuid"
)

// Recomputes the derived rating from scratch rather than adjusting it
// incrementally, so a lost update can never leave the value skewed.
// A restaurant with no reviews lands on 0.
const recalcRestaurantRatingSQL = `
UPDATE restaurants
SET global_rating = COALESCE(
        (SELECT AVG((quality + service + ambiance) / 3.0)
         FROM reviews
         WHERE restaurant_id = $1),
        0),
    rating_updated_at = now()
WHERE id = $1`

type RatingStatsRepository struct{}

func NewRatingStatsRepository() *RatingStatsRepository {
	return &RatingStatsRepository{}
}

// RecalcRestaurantRating is a no-op when the restaurant row no longer
// exists, so review deletion racing a restaurant delete stays safe.
func (r *RatingStatsRepository) RecalcRestaurantRating(ctx context.Context, tx db.DBTX, restaurantID uuid.UUID) error {
	if _, err := tx.Exec(ctx, recalcRestaurantRatingSQL, restaurantID); err != nil {
		return infra.WrapRepoErr("failed to recalc restaurant rating", err)
	}
	return nil
}
