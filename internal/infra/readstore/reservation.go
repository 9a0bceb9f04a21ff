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

const reservationViewByIDSQL = `
SELECT res.id, res.restaurant_id, rest.name AS restaurant_name, res.user_id,
       u.name AS user_name, u.email AS user_email, res.table_id, res.party_size,
       res.reserved_at, res.status, res.created_at, res.updated_at
FROM reservations res
JOIN restaurants rest ON rest.id = res.restaurant_id
JOIN users u ON u.id = res.user_id
WHERE res.id = $1`

const reservationListColumns = `
SELECT res.id, res.restaurant_id, rest.name AS restaurant_name, res.table_id,
       res.party_size, res.reserved_at, res.status, res.created_at
FROM reservations res
JOIN restaurants rest ON rest.id = res.restaurant_id`

const reservationsByUserFirstPageSQL = reservationListColumns + `
WHERE res.user_id = $1
ORDER BY res.created_at DESC, res.id DESC
LIMIT $2`

const reservationsByUserKeysetSQL = reservationListColumns + `
WHERE res.user_id = $1
  AND (res.created_at, res.id) < ($2, $3)
ORDER BY res.created_at DESC, res.id DESC
LIMIT $4`

const reservationsByRestaurantFirstPageSQL = reservationListColumns + `
WHERE res.restaurant_id = $1
ORDER BY res.created_at DESC, res.id DESC
LIMIT $2`

const reservationsByRestaurantKeysetSQL = reservationListColumns + `
WHERE res.restaurant_id = $1
  AND (res.created_at, res.id) < ($2, $3)
ORDER BY res.created_at DESC, res.id DESC
LIMIT $4`

type reservationListRow struct {
	ID             uuid.UUID
	RestaurantID   uuid.UUID
	RestaurantName string
	TableID        string
	PartySize      int32
	ReservedAt     time.Time
	Status         string
	CreatedAt      time.Time
}

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := r.db.QueryRow(ctx, reservationViewByIDSQL, id).Scan(
		&v.ID, &v.RestaurantID, &v.RestaurantName, &v.UserID,
		&v.UserName, &v.UserEmail, &v.TableID, &v.PartySize,
		&v.ReservedAt, &v.Status, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get reservation view by id", err)
	}
	return &v, nil
}

func (r *ReservationReadStore) FindByUserFirstPage(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationsByUserFirstPageSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservations first page by user", err)
	}
	defer rows.Close()
	return scanReservationListRows(rows)
}

func (r *ReservationReadStore) FindByUserKeyset(ctx context.Context, userID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationsByUserKeysetSQL, userID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservations keyset page by user", err)
	}
	defer rows.Close()
	return scanReservationListRows(rows)
}

func (r *ReservationReadStore) FindByRestaurantFirstPage(ctx context.Context, restaurantID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationsByRestaurantFirstPageSQL, restaurantID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservations first page by restaurant", err)
	}
	defer rows.Close()
	return scanReservationListRows(rows)
}

func (r *ReservationReadStore) FindByRestaurantKeyset(ctx context.Context, restaurantID uuid.UUID, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationsByRestaurantKeysetSQL, restaurantID, lastCreatedAt, lastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservations keyset page by restaurant", err)
	}
	defer rows.Close()
	return scanReservationListRows(rows)
}

func scanReservationListRows(rows pgxRows) ([]*queries.ReservationListItem, error) {
	var items []*queries.ReservationListItem
	for rows.Next() {
		var row reservationListRow
		if err := rows.Scan(
			&row.ID, &row.RestaurantID, &row.RestaurantName, &row.TableID,
			&row.PartySize, &row.ReservedAt, &row.Status, &row.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}

		var item queries.ReservationListItem
		if err := copier.Copy(&item, &row); err != nil {
			return nil, infra.WrapRepoErr("failed to map reservation row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}
	return items, nil
}
