package readstore

import (
	"context"

	"foodies-api/internal/infra"
	"foodies-api/internal/infra/db"
	"foodies-api/internal/pkg/pgconv"
	"foodies-api/internal/usecase/queries"

	"github.com/google/uuid"
)

const planByIDSQL = `
SELECT id, tier, price_cents, description, created_at, updated_at
FROM plans
WHERE id = $1`

const allPlansSQL = `
SELECT id, tier, price_cents, description, created_at, updated_at
FROM plans
ORDER BY price_cents ASC`

type PlanReadStore struct {
	db db.DBTX
}

func NewPlanReadStore(db db.DBTX) *PlanReadStore {
	return &PlanReadStore{db: db}
}

func (r *PlanReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PlanView, error) {
	var v queries.PlanView
	err := r.db.QueryRow(ctx, planByIDSQL, id).Scan(
		&v.ID, &v.Tier, &v.PriceCents, &v.Description, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get plan by id", err)
	}
	return &v, nil
}

func (r *PlanReadStore) FindAll(ctx context.Context) ([]*queries.PlanView, error) {
	rows, err := r.db.Query(ctx, allPlansSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plans", err)
	}
	defer rows.Close()

	var items []*queries.PlanView
	for rows.Next() {
		var v queries.PlanView
		if err := rows.Scan(&v.ID, &v.Tier, &v.PriceCents, &v.Description, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan plan row", err)
		}
		items = append(items, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read plan rows", err)
	}
	return items, nil
}
