package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id            uuid.UUID
	userID        uuid.UUID
	restaurantID  uuid.UUID
	reservationID uuid.UUID
	scores        Scores
	body          Body
	upvotes       int
	downvotes     int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(id, userID, restaurantID, reservationID uuid.UUID, quality, service, ambiance int, bodyText string, now time.Time) (*Review, error) {
	scores, err := NewScores(quality, service, ambiance)
	if err != nil {
		return nil, err
	}

	body, err := NewBody(bodyText)
	if err != nil {
		return nil, err
	}

	if id == uuid.Nil {
		id = uuid.New()
	}

	return &Review{
		id:            id,
		userID:        userID,
		restaurantID:  restaurantID,
		reservationID: reservationID,
		scores:        scores,
		body:          body,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) UserID() uuid.UUID        { return r.userID }
func (r *Review) RestaurantID() uuid.UUID  { return r.restaurantID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) Scores() Scores           { return r.scores }
func (r *Review) Body() Body               { return r.body }
func (r *Review) Upvotes() int             { return r.upvotes }
func (r *Review) Downvotes() int           { return r.downvotes }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }

// ApplyVote adjusts the counters for a single vote action.
// Undo actions never take a counter below zero.
func (r *Review) ApplyVote(action VoteAction) error {
	switch action {
	case VoteUp:
		r.upvotes++
	case VoteDown:
		r.downvotes++
	case VoteUndoUp:
		if r.upvotes > 0 {
			r.upvotes--
		}
	case VoteUndoDown:
		if r.downvotes > 0 {
			r.downvotes--
		}
	default:
		return ErrInvalidVoteAction
	}
	return nil
}
