package request

import (
	"foodies-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	RestaurantID  uuid.UUID `json:"restaurant_id" binding:"required"`
	ReservationID uuid.UUID `json:"reservation_id" binding:"required"`
	Quality       int       `json:"quality" binding:"required,min=1,max=5"`
	Service       int       `json:"service" binding:"required,min=1,max=5"`
	Ambiance      int       `json:"ambiance" binding:"required,min=1,max=5"`
	Body          string    `json:"body" binding:"required,min=10,max=1000"`
}

func (r *CreateReviewRequest) ToCommand() commands.CreateReviewCommand {
	return commands.CreateReviewCommand{
		RestaurantID:  r.RestaurantID,
		ReservationID: r.ReservationID,
		Quality:       r.Quality,
		Service:       r.Service,
		Ambiance:      r.Ambiance,
		Body:          r.Body,
	}
}

// Full replacement; sub-scores are always resubmitted together so the
// stored overall never drifts from its parts.
type UpdateReviewRequest struct {
	Quality  int    `json:"quality" binding:"required,min=1,max=5"`
	Service  int    `json:"service" binding:"required,min=1,max=5"`
	Ambiance int    `json:"ambiance" binding:"required,min=1,max=5"`
	Body     string `json:"body" binding:"required,min=10,max=1000"`
}

func (r *UpdateReviewRequest) ToCommand() commands.UpdateReviewCommand {
	return commands.UpdateReviewCommand{
		Quality:  r.Quality,
		Service:  r.Service,
		Ambiance: r.Ambiance,
		Body:     r.Body,
	}
}

type VoteReviewRequest struct {
	Action string `json:"action" binding:"required,oneof=up down undo_up undo_down"`
}
