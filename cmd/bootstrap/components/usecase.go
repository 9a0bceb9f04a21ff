package components

import (
	"foodies-api/internal/pkg/clock"
	"foodies-api/internal/pkg/config"
	"foodies-api/internal/usecase"
	"foodies-api/internal/usecase/commands"
	"foodies-api/internal/usecase/queries"
	"foodies-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewRestaurantUseCase,
		commands.NewReviewUseCase,
		commands.NewPlanUseCase,
		NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewRestaurantQueries,
		queries.NewReservationQueries,
		queries.NewReviewQueries,
		queries.NewPlanQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewReservationCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config) commands.ReservationCommands {
	return commands.NewReservationUseCase(uow, clk, cfg.Notify.ReviewRequestOffset)
}
