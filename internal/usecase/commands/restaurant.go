package commands

import (
	"context"

	domrestaurant "foodies-api/internal/domain/restaurant"
	"foodies-api/internal/domain/user"
	"foodies-api/internal/infra"
	"foodies-api/internal/pkg/errs"
	"foodies-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrRestaurantNotOwned = errs.New("restaurant not owned by user")

type CreateRestaurantCommand struct {
	Name        string
	Address     string
	CuisineType string
	Schedule    map[string]string
}

// All fields are required; partial updates are rejected at the DTO layer.
type UpdateRestaurantCommand struct {
	Name        string
	Address     string
	CuisineType string
	Schedule    map[string]string
}

type CreateRestaurantResult struct {
	RestaurantID uuid.UUID
}

type RestaurantCommands interface {
	CreateRestaurant(ctx context.Context, cmd CreateRestaurantCommand, ownerID uuid.UUID) (*CreateRestaurantResult, error)
	UpdateRestaurant(ctx context.Context, restaurantID uuid.UUID, cmd UpdateRestaurantCommand, actorID uuid.UUID, actorRole string) error
	DeleteRestaurant(ctx context.Context, restaurantID uuid.UUID, actorID uuid.UUID, actorRole string) error
}

type restaurantUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRestaurantUseCase(uow shared.UnitOfWork) RestaurantCommands {
	return &restaurantUseCaseImpl{uow: uow}
}

func (uc *restaurantUseCaseImpl) CreateRestaurant(ctx context.Context, cmd CreateRestaurantCommand, ownerID uuid.UUID) (*CreateRestaurantResult, error) {
	schedule, err := domrestaurant.NewSchedule(cmd.Schedule)
	if err != nil {
		return nil, err
	}

	rest, err := domrestaurant.NewRestaurant(uuid.Nil, ownerID, cmd.Name, cmd.Address, cmd.CuisineType, schedule)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Restaurants().Create(ctx, tx.DB(), rest)
		if derr != nil {
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateRestaurantResult{RestaurantID: createdID}, nil
}

func (uc *restaurantUseCaseImpl) UpdateRestaurant(ctx context.Context, restaurantID uuid.UUID, cmd UpdateRestaurantCommand, actorID uuid.UUID, actorRole string) error {
	schedule, err := domrestaurant.NewSchedule(cmd.Schedule)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RestaurantByID(ctx, restaurantID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrRestaurantNotFoundWrite)
			}
			return derr
		}
		if user.Role(actorRole) != user.RoleAdmin && snap.OwnerID != actorID {
			return ErrRestaurantNotOwned
		}

		rest, derr := domrestaurant.NewRestaurant(snap.ID, snap.OwnerID, cmd.Name, cmd.Address, cmd.CuisineType, schedule)
		if derr != nil {
			return derr
		}
		return tx.Restaurants().Update(ctx, tx.DB(), rest)
	})
}

// Deleting a restaurant cascades to its reservations and reviews at the
// schema level.
func (uc *restaurantUseCaseImpl) DeleteRestaurant(ctx context.Context, restaurantID uuid.UUID, actorID uuid.UUID, actorRole string) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().RestaurantByID(ctx, restaurantID)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.Mark(derr, ErrRestaurantNotFoundWrite)
			}
			return derr
		}
		if user.Role(actorRole) != user.RoleAdmin && snap.OwnerID != actorID {
			return ErrRestaurantNotOwned
		}
		return tx.Restaurants().Delete(ctx, tx.DB(), restaurantID)
	})
}
