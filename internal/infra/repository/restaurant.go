package repository

import (
	"context"
	"encoding/json"

	"foodies-api/internal/domain/restaurant"
	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"

	"github.com/google/uuid"
)

const createRestaurantSQL = `
INSERT INTO restaurants (id, owner_id, name, address, cuisine_type, schedule, global_rating, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, 0, now(), now())
RETURNING id`

const updateRestaurantSQL = `
UPDATE restaurants
SET name = $2, address = $3, cuisine_type = $4, schedule = $5, updated_at = now()
WHERE id = $1`

const deleteRestaurantSQL = `DELETE FROM restaurants WHERE id = $1`

type RestaurantRepository struct{}

func NewRestaurantRepository() *RestaurantRepository {
	return &RestaurantRepository{}
}

func (r *RestaurantRepository) Create(ctx context.Context, tx db.DBTX, rest *restaurant.Restaurant) (uuid.UUID, error) {
	schedule, err := json.Marshal(rest.Schedule())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode restaurant schedule", err)
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, createRestaurantSQL,
		rest.ID(),
		rest.OwnerID(),
		rest.Name(),
		rest.Address(),
		rest.CuisineType(),
		schedule,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create restaurant", err)
	}
	return id, nil
}

func (r *RestaurantRepository) Update(ctx context.Context, tx db.DBTX, rest *restaurant.Restaurant) error {
	schedule, err := json.Marshal(rest.Schedule())
	if err != nil {
		return infra.WrapRepoErr("failed to encode restaurant schedule", err)
	}

	tag, err := tx.Exec(ctx, updateRestaurantSQL,
		rest.ID(),
		rest.Name(),
		rest.Address(),
		rest.CuisineType(),
		schedule,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update restaurant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RestaurantRepository) Delete(ctx context.Context, tx db.DBTX, restaurantID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteRestaurantSQL, restaurantID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete restaurant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("restaurant not found", nil, infra.KindNotFound)
	}
	return nil
}
