package response

import (
	"foodies-api/internal/usecase/queries"
)

type PlanResponse struct {
	ID          string `json:"id"`
	Tier        string `json:"tier"`
	PriceCents  int64  `json:"price_cents"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

func FromPlanView(v *queries.PlanView) *PlanResponse {
	return &PlanResponse{
		ID:          v.ID.String(),
		Tier:        v.Tier,
		PriceCents:  v.PriceCents,
		Description: v.Description,
		CreatedAt:   v.CreatedAt.Unix(),
		UpdatedAt:   v.UpdatedAt.Unix(),
	}
}

func FromPlanList(items []*queries.PlanView) []*PlanResponse {
	res := make([]*PlanResponse, len(items))
	for i, it := range items {
		res[i] = FromPlanView(it)
	}
	return res
}
