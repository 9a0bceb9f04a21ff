package commands

import (
	"context"
	"encoding/json"
	"time"

	domreservation "foodies-api/internal/domain/reservation"
	"foodies-api/internal/domain/user"
	"foodies-api/internal/infra"
	"foodies-api/internal/notifier"
	"foodies-api/internal/pkg/clock"
	"foodies-api/internal/pkg/errs"
	"foodies-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRestaurantNotFoundWrite  = errs.New("restaurant not found")
	ErrReservationNotFoundWrite = errs.New("reservation not found")
	ErrReservationNotAllowed    = errs.New("reservation access denied")
)

type CreateReservationCommand struct {
	RestaurantID uuid.UUID
	TableID      string
	PartySize    int
	ReservedAt   time.Time
}

type CreateReservationResult struct {
	ReservationID uuid.UUID
}

type ReservationCommands interface {
	CreateReservation(ctx context.Context, cmd CreateReservationCommand, userID uuid.UUID) (*CreateReservationResult, error)
	UpdateStatus(ctx context.Context, reservationID uuid.UUID, next domreservation.Status, actorID uuid.UUID, actorRole string) error
}

type reservationUseCaseImpl struct {
	uow                 shared.UnitOfWork
	clock               clock.Clock
	reviewRequestOffset time.Duration
}

func NewReservationUseCase(uow shared.UnitOfWork, clk clock.Clock, reviewRequestOffset time.Duration) ReservationCommands {
	return &reservationUseCaseImpl{
		uow:                 uow,
		clock:               clk,
		reviewRequestOffset: reviewRequestOffset,
	}
}

// CreateReservation persists the reservation as pending and enqueues both
// notification jobs in the same transaction: the confirmation mail due
// immediately, and the review request due at the visit time plus the
// configured offset. A visit time already inside the offset window gets
// the review request due immediately too.
func (r *reservationUseCaseImpl) CreateReservation(ctx context.Context, cmd CreateReservationCommand, userID uuid.UUID) (*CreateReservationResult, error) {
	services := &domreservation.Services{Clock: r.clock}

	var createdID uuid.UUID
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		restSnap, derr := tx.Reads().RestaurantByID(ctx, cmd.RestaurantID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrRestaurantNotFoundWrite)
			}
			return derr
		}

		userSnap, derr := tx.Reads().UserByID(ctx, userID)
		if derr != nil {
			return derr
		}

		res, derr := domreservation.NewReservation(services, cmd.RestaurantID, userID, cmd.TableID, cmd.PartySize, cmd.ReservedAt)
		if derr != nil {
			return derr
		}

		id, derr := tx.Reservations().Create(ctx, tx.DB(), res)
		if derr != nil {
			return derr
		}
		createdID = id

		payload, derr := json.Marshal(notifier.ReservationPayload{
			ReservationID:  id,
			UserName:       userSnap.Name,
			UserEmail:      userSnap.Email,
			RestaurantID:   restSnap.ID,
			RestaurantName: restSnap.Name,
			TableID:        res.TableID().Value(),
			PartySize:      res.PartySize().Value(),
			ReservedAt:     res.ReservedAt().Value(),
		})
		if derr != nil {
			return errs.Wrap(derr, "failed to encode notification payload")
		}

		now := r.clock.Now()
		if derr = tx.Notifications().CreateJob(ctx, tx.DB(), notifier.KindReservationConfirmation, id, payload, now); derr != nil {
			return derr
		}

		reviewAt := res.ReservedAt().Value().Add(r.reviewRequestOffset)
		if reviewAt.Before(now) {
			reviewAt = now
		}
		return tx.Notifications().CreateJob(ctx, tx.DB(), notifier.KindReviewRequest, id, payload, reviewAt)
	})
	if err != nil {
		return nil, err
	}

	return &CreateReservationResult{ReservationID: createdID}, nil
}

// UpdateStatus applies the domain transition rules. Admins may change any
// reservation, owners those of their restaurants, and diners may only
// cancel their own.
func (r *reservationUseCaseImpl) UpdateStatus(ctx context.Context, reservationID uuid.UUID, next domreservation.Status, actorID uuid.UUID, actorRole string) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ReservationByID(ctx, reservationID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrReservationNotFoundWrite)
			}
			return derr
		}

		if derr = r.authorizeStatusChange(ctx, tx.Reads(), snap, next, actorID, actorRole); derr != nil {
			return derr
		}

		current, derr := domreservation.NewStatus(snap.Status)
		if derr != nil {
			return derr
		}

		res := domreservation.ReconstructReservation(
			snap.ID, snap.RestaurantID, snap.UserID,
			domreservation.TableID{}, domreservation.PartySize{},
			domreservation.ReconstructReservedAt(snap.ReservedAt),
			current,
			time.Time{}, time.Time{},
		)
		if derr = res.TransitionTo(next); derr != nil {
			return derr
		}

		return tx.Reservations().UpdateStatus(ctx, tx.DB(), reservationID, res.Status())
	})
}

func (r *reservationUseCaseImpl) authorizeStatusChange(ctx context.Context, reads shared.CommandReads, snap *shared.ReservationSnapshot, next domreservation.Status, actorID uuid.UUID, actorRole string) error {
	switch user.Role(actorRole) {
	case user.RoleAdmin:
		return nil
	case user.RoleOwner:
		restSnap, err := reads.RestaurantByID(ctx, snap.RestaurantID)
		if err != nil {
			return err
		}
		if restSnap.OwnerID != actorID {
			return ErrReservationNotAllowed
		}
		return nil
	case user.RoleDiner:
		if snap.UserID != actorID || next != domreservation.StatusCancelled {
			return ErrReservationNotAllowed
		}
		return nil
	default:
		return ErrReservationNotAllowed
	}
}
