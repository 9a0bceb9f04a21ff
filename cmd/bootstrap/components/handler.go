package components

import (
	"foodies-api/internal/handler"
	"foodies-api/internal/handler/api"
	"foodies-api/internal/handler/middleware"
	"foodies-api/internal/pkg/config"
	"foodies-api/internal/pkg/jwt"
	"foodies-api/internal/usecase/commands"
	"foodies-api/internal/usecase/queries"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewAuthHandler,
		api.NewRestaurantHandler,
		api.NewReservationHandler,
		api.NewReviewHandler,
		api.NewPlanHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthHandler(cmds commands.AuthCommands, userQ queries.UserQueries, jwtService jwt.Service, cfg config.Config) *api.AuthHandler {
	return api.NewAuthHandler(cmds, userQ, jwtService, cfg.Cookie)
}

func NewHandlers(auth *api.AuthHandler, restaurant *api.RestaurantHandler, reservation *api.ReservationHandler, review *api.ReviewHandler, plan *api.PlanHandler) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Restaurant:  restaurant,
		Reservation: reservation,
		Review:      review,
		Plan:        plan,
	}
}
