package request

import (
	"foodies-api/internal/usecase/commands"
)

type PlanRequest struct {
	Tier        string `json:"tier" binding:"required,oneof=free premium"`
	PriceCents  int64  `json:"price_cents" binding:"min=0"`
	Description string `json:"description" binding:"max=500"`
}

func (r *PlanRequest) ToCommand() commands.PlanCommand {
	return commands.PlanCommand{
		Tier:        r.Tier,
		PriceCents:  r.PriceCents,
		Description: r.Description,
	}
}
