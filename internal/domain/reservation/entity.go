package reservation

import (
	"errors"
	"time"

	"foodies-api/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrEmptyTableID        = errors.New("table id cannot be empty")
	ErrInvalidPartySize    = errors.New("party size must be between 1 and 20")
	ErrMissingReservedAt   = errors.New("reservation date is required")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrReservationFinished = errors.New("reservation is already cancelled")
)

type Services struct {
	Clock clock.Clock
}

type Reservation struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	userID       uuid.UUID
	tableID      TableID
	partySize    PartySize
	reservedAt   ReservedAt
	status       Status
	createdAt    time.Time
	updatedAt    time.Time
}

func NewReservation(
	services *Services,
	restaurantID uuid.UUID,
	userID uuid.UUID,
	tableIDValue string,
	partySizeValue int,
	reservedAtValue time.Time,
) (*Reservation, error) {
	tableID, err := NewTableID(tableIDValue)
	if err != nil {
		return nil, err
	}

	partySize, err := NewPartySize(partySizeValue)
	if err != nil {
		return nil, err
	}

	reservedAt, err := NewReservedAt(reservedAtValue)
	if err != nil {
		return nil, err
	}

	now := services.Clock.Now()
	return &Reservation{
		id:           uuid.New(),
		restaurantID: restaurantID,
		userID:       userID,
		tableID:      tableID,
		partySize:    partySize,
		reservedAt:   reservedAt,
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructReservation(
	id, restaurantID, userID uuid.UUID,
	tableID TableID,
	partySize PartySize,
	reservedAt ReservedAt,
	status Status,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:           id,
		restaurantID: restaurantID,
		userID:       userID,
		tableID:      tableID,
		partySize:    partySize,
		reservedAt:   reservedAt,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) RestaurantID() uuid.UUID { return r.restaurantID }
func (r *Reservation) UserID() uuid.UUID       { return r.userID }
func (r *Reservation) TableID() TableID        { return r.tableID }
func (r *Reservation) PartySize() PartySize    { return r.partySize }
func (r *Reservation) ReservedAt() ReservedAt  { return r.reservedAt }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Reservation) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if r.status == StatusCancelled {
		return ErrReservationFinished
	}
	if !r.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}
