package repository

import (
	"context"

	"foodies-api/internal/domain/reservation"
	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"

	"github.com/google/uuid"
)

const createReservationSQL = `
INSERT INTO reservations (id, restaurant_id, user_id, table_id, party_size, reserved_at, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
RETURNING id`

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1`

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.RestaurantID(),
		res.UserID(),
		res.TableID().Value(),
		res.PartySize().Value(),
		res.ReservedAt().Value(),
		res.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, tx db.DBTX, reservationID uuid.UUID, status reservation.Status) error {
	tag, err := tx.Exec(ctx, updateReservationStatusSQL, reservationID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
