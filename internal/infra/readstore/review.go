package readstore

import (
	"context"
	"time"

	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"
	"foodies-api/internal/pkg/pgconv"
	"foodies-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const reviewViewByIDSQL = `
SELECT r.id, r.user_id, u.name AS user_name, r.restaurant_id, rest.name AS restaurant_name,
       r.reservation_id, r.quality, r.service, r.ambiance, r.body, r.upvotes, r.downvotes,
       r.created_at, r.updated_at
FROM reviews r
JOIN users u ON u.id = r.user_id
JOIN restaurants rest ON rest.id = r.restaurant_id
WHERE r.id = $1`

const reviewListColumns = `
SELECT r.id, u.name AS user_name, r.quality, r.service, r.ambiance, r.body,
       r.upvotes, r.downvotes, r.created_at
FROM reviews r
JOIN users u ON u.id = r.user_id`

const reviewsByRestaurantFirstPageSQL = reviewListColumns + `
WHERE r.restaurant_id = $1
  AND ($3::float8 IS NULL OR (r.quality + r.service + r.ambiance) / 3.0 >= $3)
  AND ($4::float8 IS NULL OR (r.quality + r.service + r.ambiance) / 3.0 <= $4)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

const reviewsByRestaurantKeysetSQL = reviewListColumns + `
WHERE r.restaurant_id = $1
  AND (r.created_at, r.id) < ($2, $3)
  AND ($5::float8 IS NULL OR (r.quality + r.service + r.ambiance) / 3.0 >= $5)
  AND ($6::float8 IS NULL OR (r.quality + r.service + r.ambiance) / 3.0 <= $6)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

const reviewsByUserFirstPageSQL = reviewListColumns + `
WHERE r.user_id = $1
ORDER BY r.created_at DESC, r.id DESC
LIMIT $2`

const reviewsByUserKeysetSQL = reviewListColumns + `
WHERE r.user_id = $1
  AND (r.created_at, r.id) < ($2, $3)
ORDER BY r.created_at DESC, r.id DESC
LIMIT $4`

const restaurantRatingStatsSQL = `
SELECT rest.id,
       COUNT(r.id)::int4 AS total_reviews,
       COALESCE(AVG((r.quality + r.service + r.ambiance) / 3.0), 0)::float8 AS average_rating,
       COALESCE(rest.rating_updated_at, rest.updated_at)
FROM restaurants rest
LEFT JOIN reviews r ON r.restaurant_id = rest.id
WHERE rest.id = $1
GROUP BY rest.id, rest.rating_updated_at, rest.updated_at`

type reviewListRow struct {
	ID        uuid.UUID
	UserName  string
	Quality   int32
	Service   int32
	Ambiance  int32
	Body      string
	Upvotes   int32
	Downvotes int32
	CreatedAt time.Time
}

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(db db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: db}
}

func (r *ReviewReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReviewView, error) {
	var v queries.ReviewView
	err := r.db.QueryRow(ctx, reviewViewByIDSQL, id).Scan(
		&v.ID, &v.UserID, &v.UserName, &v.RestaurantID, &v.RestaurantName,
		&v.ReservationID, &v.Quality, &v.Service, &v.Ambiance, &v.Body,
		&v.Upvotes, &v.Downvotes, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("review not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get review view by id", err)
	}
	v.Overall = overall(v.Quality, v.Service, v.Ambiance)
	return &v, nil
}

func (r *ReviewReadStore) FindByRestaurantFirstPage(ctx context.Context, restaurantID uuid.UUID, limit int32, filters queries.ReviewFilters) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewsByRestaurantFirstPageSQL, restaurantID, limit, filters.MinOverall, filters.MaxOverall)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by restaurant", err)
	}
	defer rows.Close()
	return scanReviewListRows(rows)
}

func (r *ReviewReadStore) FindByRestaurantKeyset(ctx context.Context, restaurantID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, filters queries.ReviewFilters) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewsByRestaurantKeysetSQL, restaurantID, lastCreatedAt, lastID, limit, filters.MinOverall, filters.MaxOverall)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset page by restaurant", err)
	}
	defer rows.Close()
	return scanReviewListRows(rows)
}

func (r *ReviewReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewsByUserFirstPageSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews first page by user", err)
	}
	defer rows.Close()
	return scanReviewListRows(rows)
}

func (r *ReviewReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReviewListItem, error) {
	rows, err := r.db.Query(ctx, reviewsByUserKeysetSQL, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reviews keyset page by user", err)
	}
	defer rows.Close()
	return scanReviewListRows(rows)
}

func (r *ReviewReadStore) GetRestaurantRatingStats(ctx context.Context, restaurantID uuid.UUID) (*queries.RestaurantRatingStats, error) {
	var stats queries.RestaurantRatingStats
	err := r.db.QueryRow(ctx, restaurantRatingStatsSQL, restaurantID).Scan(
		&stats.RestaurantID, &stats.TotalReviews, &stats.AverageRating, &stats.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get restaurant rating stats", err)
	}
	return &stats, nil
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanReviewListRows(rows pgxRows) ([]*queries.ReviewListItem, error) {
	var items []*queries.ReviewListItem
	for rows.Next() {
		var row reviewListRow
		if err := rows.Scan(
			&row.ID, &row.UserName, &row.Quality, &row.Service, &row.Ambiance,
			&row.Body, &row.Upvotes, &row.Downvotes, &row.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}

		var item queries.ReviewListItem
		if err := copier.Copy(&item, &row); err != nil {
			return nil, infra.WrapRepoErr("failed to map review row", err)
		}
		item.Overall = overall(row.Quality, row.Service, row.Ambiance)
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read review rows", err)
	}
	return items, nil
}

func overall(quality, service, ambiance int32) float64 {
	return float64(quality+service+ambiance) / 3.0
}
