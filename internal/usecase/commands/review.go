package commands

import (
	"context"
	"log/slog"
	"time"

	domreview "foodies-api/internal/domain/review"
	"foodies-api/internal/domain/user"
	"foodies-api/internal/infra"
	"foodies-api/internal/pkg/clock"
	"foodies-api/internal/pkg/errs"
	"foodies-api/internal/usecase/queries"
	"foodies-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReviewNotOwned      = errs.New("review not owned by user")
	ErrDuplicateReview     = errs.New("duplicate review for reservation")
	ErrReviewNotFoundWrite = errs.New("review not found")
)

type CreateReviewResult struct {
	ReviewID uuid.UUID
}

type CreateReviewCommand struct {
	RestaurantID  uuid.UUID
	ReservationID uuid.UUID
	Quality       int
	Service       int
	Ambiance      int
	Body          string
}

// All fields are required; partial updates are rejected at the DTO layer.
type UpdateReviewCommand struct {
	Quality  int
	Service  int
	Ambiance int
	Body     string
}

type ReviewCommands interface {
	CreateReview(ctx context.Context, cmd CreateReviewCommand, userID uuid.UUID) (*CreateReviewResult, error)
	UpdateReview(ctx context.Context, reviewID uuid.UUID, cmd UpdateReviewCommand, actorID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error
	VoteReview(ctx context.Context, reviewID uuid.UUID, action domreview.VoteAction) error
}

type reviewUseCaseImpl struct {
	uow   shared.UnitOfWork
	cache queries.RatingStatsCache
	clock clock.Clock
}

func NewReviewUseCase(uow shared.UnitOfWork, cache queries.RatingStatsCache, clk clock.Clock) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, cache: cache, clock: clk}
}

func (uc *reviewUseCaseImpl) CreateReview(ctx context.Context, cmd CreateReviewCommand, userID uuid.UUID) (*CreateReviewResult, error) {
	var createdID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := uc.checkEligibility(ctx, tx.Reads(), cmd.ReservationID, userID, cmd.RestaurantID, uc.clock.Now()); derr != nil {
			return derr
		}

		rev, derr := domreview.NewReview(uuid.Nil, userID, cmd.RestaurantID, cmd.ReservationID,
			cmd.Quality, cmd.Service, cmd.Ambiance, cmd.Body, uc.clock.Now())
		if derr != nil {
			return derr
		}

		id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicateReview)
			}
			return derr
		}
		createdID = id
		return tx.RatingStats().RecalcRestaurantRating(ctx, tx.DB(), cmd.RestaurantID)
	})
	if err != nil {
		return nil, err
	}

	uc.invalidateStats(ctx, cmd.RestaurantID)
	return &CreateReviewResult{ReviewID: createdID}, nil
}

func (uc *reviewUseCaseImpl) UpdateReview(ctx context.Context, reviewID uuid.UUID, cmd UpdateReviewCommand, actorID uuid.UUID) error {
	var restaurantID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrReviewNotFoundWrite)
			}
			return derr
		}
		if snap.UserID != actorID {
			return ErrReviewNotOwned
		}
		restaurantID = snap.RestaurantID

		rev, derr := domreview.NewReview(snap.ID, snap.UserID, snap.RestaurantID, snap.ReservationID,
			cmd.Quality, cmd.Service, cmd.Ambiance, cmd.Body, uc.clock.Now())
		if derr != nil {
			return derr
		}

		if derr = tx.Reviews().Update(ctx, tx.DB(), rev); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcRestaurantRating(ctx, tx.DB(), snap.RestaurantID)
	})
	if err != nil {
		return err
	}

	uc.invalidateStats(ctx, restaurantID)
	return nil
}

func (uc *reviewUseCaseImpl) DeleteReview(ctx context.Context, reviewID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	var restaurantID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrReviewNotFoundWrite)
			}
			return derr
		}
		if user.Role(actorRole) != user.RoleAdmin && snap.UserID != actorID {
			return ErrReviewNotOwned
		}
		restaurantID = snap.RestaurantID

		if derr = tx.Reviews().Delete(ctx, tx.DB(), reviewID); derr != nil {
			return derr
		}
		return tx.RatingStats().RecalcRestaurantRating(ctx, tx.DB(), snap.RestaurantID)
	})
	if err != nil {
		return err
	}

	uc.invalidateStats(ctx, restaurantID)
	return nil
}

// VoteReview is open to any authenticated user; the client enforces one
// vote per user per review, mirroring the undo actions it exposes.
func (uc *reviewUseCaseImpl) VoteReview(ctx context.Context, reviewID uuid.UUID, action domreview.VoteAction) error {
	if !action.IsValid() {
		return domreview.ErrInvalidVoteAction
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		err := tx.Reviews().ApplyVote(ctx, tx.DB(), reviewID, action)
		if err != nil && infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrReviewNotFoundWrite)
		}
		return err
	})
}

// Eligibility: the reservation must exist, belong to the reviewer, target
// the reviewed restaurant, and the visit time must already have passed.
func (uc *reviewUseCaseImpl) checkEligibility(ctx context.Context, reads shared.CommandReads, reservationID, userID, restaurantID uuid.UUID, now time.Time) error {
	snap, err := reads.ReservationByID(ctx, reservationID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, domreview.ErrReservationNotEligible)
		}
		return err
	}
	if snap.UserID != userID || snap.RestaurantID != restaurantID {
		return domreview.ErrReservationNotEligible
	}
	if snap.Status == "cancelled" {
		return domreview.ErrReservationNotEligible
	}
	if snap.ReservedAt.After(now) {
		return domreview.ErrReservationNotEligible
	}
	return nil
}

func (uc *reviewUseCaseImpl) invalidateStats(ctx context.Context, restaurantID uuid.UUID) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.Invalidate(ctx, restaurantID); err != nil {
		slog.Warn("failed to invalidate rating stats cache",
			"restaurant_id", restaurantID, "error", err.Error())
	}
}
