package repository

import (
	"context"

	"foodies-api/internal/domain/plan"
	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"

	"github.com/google/uuid"
)

const createPlanSQL = `
INSERT INTO plans (id, tier, price_cents, description, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
RETURNING id`

const updatePlanSQL = `
UPDATE plans
SET tier = $2, price_cents = $3, description = $4, updated_at = now()
WHERE id = $1`

const deletePlanSQL = `DELETE FROM plans WHERE id = $1`

type PlanRepository struct{}

func NewPlanRepository() *PlanRepository {
	return &PlanRepository{}
}

func (r *PlanRepository) Create(ctx context.Context, tx db.DBTX, p *plan.Plan) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createPlanSQL,
		p.ID(),
		p.Tier().String(),
		p.PriceCents(),
		p.Description(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create plan", err)
	}
	return id, nil
}

func (r *PlanRepository) Update(ctx context.Context, tx db.DBTX, p *plan.Plan) error {
	tag, err := tx.Exec(ctx, updatePlanSQL,
		p.ID(),
		p.Tier().String(),
		p.PriceCents(),
		p.Description(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("plan not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, tx db.DBTX, planID uuid.UUID) error {
	tag, err := tx.Exec(ctx, deletePlanSQL, planID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete plan", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("plan not found", nil, infra.KindNotFound)
	}
	return nil
}
