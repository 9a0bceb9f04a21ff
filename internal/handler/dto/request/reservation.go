package request

import (
	"time"

	"foodies-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	RestaurantID uuid.UUID `json:"restaurant_id" binding:"required"`
	TableID      string    `json:"table_id" binding:"required"`
	PartySize    int       `json:"party_size" binding:"required,min=1,max=20"`
	ReservedAt   time.Time `json:"reserved_at" binding:"required"`
}

func (r *CreateReservationRequest) ToCommand() commands.CreateReservationCommand {
	return commands.CreateReservationCommand{
		RestaurantID: r.RestaurantID,
		TableID:      r.TableID,
		PartySize:    r.PartySize,
		ReservedAt:   r.ReservedAt,
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled"`
}
