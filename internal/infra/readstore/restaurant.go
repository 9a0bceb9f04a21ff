package readstore

import (
	"context"
	"encoding/json"
	"time"

	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"
	"foodies-api/internal/pkg/pgconv"
	"foodies-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const restaurantViewByIDSQL = `
SELECT rest.id, rest.owner_id, u.name AS owner_name, rest.name, rest.address,
       rest.cuisine_type, rest.schedule, rest.global_rating,
       (SELECT COUNT(*) FROM reviews r WHERE r.restaurant_id = rest.id)::int4 AS review_count,
       rest.created_at, rest.updated_at
FROM restaurants rest
JOIN users u ON u.id = rest.owner_id
WHERE rest.id = $1`

const restaurantListColumns = `
SELECT rest.id, rest.name, rest.address, rest.cuisine_type, rest.global_rating, rest.created_at
FROM restaurants rest`

const restaurantsFirstPageSQL = restaurantListColumns + `
WHERE ($2::text IS NULL OR rest.cuisine_type = $2)
  AND ($3::float8 IS NULL OR rest.global_rating >= $3)
ORDER BY rest.created_at DESC, rest.id DESC
LIMIT $1`

const restaurantsKeysetSQL = restaurantListColumns + `
WHERE (rest.created_at, rest.id) < ($1, $2)
  AND ($4::text IS NULL OR rest.cuisine_type = $4)
  AND ($5::float8 IS NULL OR rest.global_rating >= $5)
ORDER BY rest.created_at DESC, rest.id DESC
LIMIT $3`

const restaurantsByOwnerSQL = restaurantListColumns + `
WHERE rest.owner_id = $1
ORDER BY rest.created_at DESC, rest.id DESC`

type restaurantListRow struct {
	ID           uuid.UUID
	Name         string
	Address      string
	CuisineType  string
	GlobalRating float64
	CreatedAt    time.Time
}

type RestaurantReadStore struct {
	db db.DBTX
}

func NewRestaurantReadStore(db db.DBTX) *RestaurantReadStore {
	return &RestaurantReadStore{db: db}
}

func (r *RestaurantReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	var v queries.RestaurantView
	var scheduleRaw []byte
	err := r.db.QueryRow(ctx, restaurantViewByIDSQL, id).Scan(
		&v.ID, &v.OwnerID, &v.OwnerName, &v.Name, &v.Address,
		&v.CuisineType, &scheduleRaw, &v.GlobalRating, &v.ReviewCount,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get restaurant view by id", err)
	}

	if len(scheduleRaw) > 0 {
		if err := json.Unmarshal(scheduleRaw, &v.Schedule); err != nil {
			return nil, infra.WrapRepoErr("failed to decode restaurant schedule", err)
		}
	}
	return &v, nil
}

func (r *RestaurantReadStore) FindFirstPage(ctx context.Context, limit int32, filters queries.RestaurantFilters) ([]*queries.RestaurantListItem, error) {
	rows, err := r.db.Query(ctx, restaurantsFirstPageSQL, limit, filters.CuisineType, filters.MinRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get restaurants first page", err)
	}
	defer rows.Close()
	return scanRestaurantListRows(rows)
}

func (r *RestaurantReadStore) FindKeyset(ctx context.Context, lastCreatedAt time.Time, lastID uuid.UUID, limit int32, filters queries.RestaurantFilters) ([]*queries.RestaurantListItem, error) {
	rows, err := r.db.Query(ctx, restaurantsKeysetSQL, lastCreatedAt, lastID, limit, filters.CuisineType, filters.MinRating)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get restaurants keyset page", err)
	}
	defer rows.Close()
	return scanRestaurantListRows(rows)
}

func (r *RestaurantReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*queries.RestaurantListItem, error) {
	rows, err := r.db.Query(ctx, restaurantsByOwnerSQL, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get restaurants by owner", err)
	}
	defer rows.Close()
	return scanRestaurantListRows(rows)
}

func scanRestaurantListRows(rows pgxRows) ([]*queries.RestaurantListItem, error) {
	var items []*queries.RestaurantListItem
	for rows.Next() {
		var row restaurantListRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Address, &row.CuisineType, &row.GlobalRating, &row.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan restaurant row", err)
		}

		var item queries.RestaurantListItem
		if err := copier.Copy(&item, &row); err != nil {
			return nil, infra.WrapRepoErr("failed to map restaurant row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read restaurant rows", err)
	}
	return items, nil
}
