package request

import (
	"foodies-api/internal/usecase/commands"
)

type CreateRestaurantRequest struct {
	Name        string            `json:"name" binding:"required,min=3,max=255"`
	Address     string            `json:"address" binding:"required,min=3"`
	CuisineType string            `json:"cuisine_type" binding:"required"`
	Schedule    map[string]string `json:"schedule" binding:"required"`
}

func (r *CreateRestaurantRequest) ToCommand() commands.CreateRestaurantCommand {
	return commands.CreateRestaurantCommand{
		Name:        r.Name,
		Address:     r.Address,
		CuisineType: r.CuisineType,
		Schedule:    r.Schedule,
	}
}

// Full replacement; every field must be supplied.
type UpdateRestaurantRequest struct {
	Name        string            `json:"name" binding:"required,min=3,max=255"`
	Address     string            `json:"address" binding:"required,min=3"`
	CuisineType string            `json:"cuisine_type" binding:"required"`
	Schedule    map[string]string `json:"schedule" binding:"required"`
}

func (r *UpdateRestaurantRequest) ToCommand() commands.UpdateRestaurantCommand {
	return commands.UpdateRestaurantCommand{
		Name:        r.Name,
		Address:     r.Address,
		CuisineType: r.CuisineType,
		Schedule:    r.Schedule,
	}
}
