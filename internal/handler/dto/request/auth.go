package request

import (
	"time"

	"foodies-api/internal/usecase/commands"
)

type RegisterRequest struct {
	Name      string     `json:"name" binding:"required,min=2,max=100"`
	Email     string     `json:"email" binding:"required,email"`
	Password  string     `json:"password" binding:"required,min=8"`
	Role      string     `json:"role" binding:"omitempty,oneof=diner owner"`
	BirthDate *time.Time `json:"birth_date" binding:"omitempty"`
}

func (r *RegisterRequest) ToCommand() commands.RegisterCommand {
	return commands.RegisterCommand{
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
		BirthDate: r.BirthDate,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}
