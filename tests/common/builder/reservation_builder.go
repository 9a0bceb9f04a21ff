//go:build unit || e2e

package builder

import (
	"time"

	domreservation "foodies-api/internal/domain/reservation"
	reqdto "foodies-api/internal/handler/dto/request"
	"foodies-api/internal/pkg/clock"
	"foodies-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	RestaurantID uuid.UUID
	UserID       uuid.UUID
	TableID      string
	PartySize    int
	ReservedAt   time.Time
	Now          time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	return &ReservationBuilder{
		RestaurantID: uuid.New(),
		UserID:       uuid.New(),
		TableID:      "T1",
		PartySize:    2,
		ReservedAt:   now.Add(48 * time.Hour),
		Now:          now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) WithTableID(tableID string) *ReservationBuilder {
	r.TableID = tableID
	return r
}

func (r *ReservationBuilder) WithPartySize(partySize int) *ReservationBuilder {
	r.PartySize = partySize
	return r
}

func (r *ReservationBuilder) WithReservedAt(reservedAt time.Time) *ReservationBuilder {
	r.ReservedAt = reservedAt
	return r
}

func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	services := &domreservation.Services{Clock: clock.NewMockClock(r.Now)}
	return domreservation.NewReservation(services, r.RestaurantID, r.UserID, r.TableID, r.PartySize, r.ReservedAt)
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
		PartySize:    r.PartySize,
		ReservedAt:   r.ReservedAt,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             uuid.New(),
		RestaurantID:   r.RestaurantID,
		RestaurantName: "Test Restaurant",
		UserID:         r.UserID,
		UserName:       "Test Diner",
		UserEmail:      "diner@example.com",
		TableID:        r.TableID,
		PartySize:      int32(r.PartySize),
		ReservedAt:     r.ReservedAt,
		Status:         "pending",
		CreatedAt:      r.Now,
		UpdatedAt:      r.Now,
	}
}
