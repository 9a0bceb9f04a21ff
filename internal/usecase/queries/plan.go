package queries

import (
	"context"
	"time"

	"foodies-api/internal/infra"
	"foodies-api/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPlanNotFound = errs.New("plan not found")

type PlanView struct {
	ID          uuid.UUID `json:"id"`
	Tier        string    `json:"tier"`
	PriceCents  int64     `json:"price_cents"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PlanReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PlanView, error)
	FindAll(ctx context.Context) ([]*PlanView, error)
}

type PlanQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PlanView, error)
	List(ctx context.Context) ([]*PlanView, error)
}

type planQueriesImpl struct {
	repo PlanReadStore
}

func NewPlanQueries(repo PlanReadStore) PlanQueries {
	return &planQueriesImpl{repo: repo}
}

func (q *planQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PlanView, error) {
	pv, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return pv, nil
}

func (q *planQueriesImpl) List(ctx context.Context) ([]*PlanView, error) {
	return q.repo.FindAll(ctx)
}
