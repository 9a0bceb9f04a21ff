package commands

import (
	"context"

	domplan "foodies-api/internal/domain/plan"
	"foodies-api/internal/infra"
	"foodies-api/internal/pkg/errs"
	"foodies-api/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFoundWrite = errs.New("plan not found")
	ErrDuplicatePlanTier = errs.New("plan tier already exists")
)

type PlanCommand struct {
	Tier        string
	PriceCents  int64
	Description string
}

type CreatePlanResult struct {
	PlanID uuid.UUID
}

// Plan management is admin-only; role enforcement sits in the router.
type PlanCommands interface {
	CreatePlan(ctx context.Context, cmd PlanCommand) (*CreatePlanResult, error)
	UpdatePlan(ctx context.Context, planID uuid.UUID, cmd PlanCommand) error
	DeletePlan(ctx context.Context, planID uuid.UUID) error
}

type planUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewPlanUseCase(uow shared.UnitOfWork) PlanCommands {
	return &planUseCaseImpl{uow: uow}
}

func (uc *planUseCaseImpl) CreatePlan(ctx context.Context, cmd PlanCommand) (*CreatePlanResult, error) {
	p, err := domplan.NewPlan(uuid.Nil, cmd.Tier, cmd.PriceCents, cmd.Description)
	if err != nil {
		return nil, err
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Plans().Create(ctx, tx.DB(), p)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.Mark(derr, ErrDuplicatePlanTier)
			}
			return derr
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreatePlanResult{PlanID: createdID}, nil
}

func (uc *planUseCaseImpl) UpdatePlan(ctx context.Context, planID uuid.UUID, cmd PlanCommand) error {
	p, err := domplan.NewPlan(planID, cmd.Tier, cmd.PriceCents, cmd.Description)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Plans().Update(ctx, tx.DB(), p)
		if derr != nil && infra.IsKind(derr, infra.KindNotFound) {
			return errs.Mark(derr, ErrPlanNotFoundWrite)
		}
		return derr
	})
}

func (uc *planUseCaseImpl) DeletePlan(ctx context.Context, planID uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		derr := tx.Plans().Delete(ctx, tx.DB(), planID)
		if derr != nil && infra.IsKind(derr, infra.KindNotFound) {
			return errs.Mark(derr, ErrPlanNotFoundWrite)
		}
		return derr
	})
}
