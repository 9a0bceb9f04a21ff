package review

import "errors"

var (
	ErrInvalidScore = errors.New("score must be between 1 and 5")
	ErrBodyTooShort = errors.New("review body must be at least 10 characters")
	ErrBodyTooLong  = errors.New("review body exceeds maximum length")

	ErrReservationNotEligible = errors.New("reservation is not eligible for review")
)

type VoteAction string

const (
	VoteUp       VoteAction = "up"
	VoteDown     VoteAction = "down"
	VoteUndoUp   VoteAction = "undo_up"
	VoteUndoDown VoteAction = "undo_down"
)

func (a VoteAction) IsValid() bool {
	switch a {
	case VoteUp, VoteDown, VoteUndoUp, VoteUndoDown:
		return true
	default:
		return false
	}
}

func NewVoteAction(s string) (VoteAction, error) {
	action := VoteAction(s)
	if !action.IsValid() {
		return "", ErrInvalidVoteAction
	}
	return action, nil
}

var ErrInvalidVoteAction = errors.New("invalid vote action")
