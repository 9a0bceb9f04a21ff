package components

import (
	"foodies-api/internal/infra/cache"
	"foodies-api/internal/infra/db"
	"foodies-api/internal/infra/readstore"
	"foodies-api/internal/infra/uow"
	"foodies-api/internal/pkg/config"
	"foodies-api/internal/usecase/queries"
	"foodies-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Write repositories are constructed inside the unit of work; only the
// read side and the uow itself are wired here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewRestaurantReadStore,
			fx.As(new(queries.RestaurantReadStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewReviewReadStore,
			fx.As(new(queries.ReviewReadStore)),
		),
		fx.Annotate(
			readstore.NewPlanReadStore,
			fx.As(new(queries.PlanReadStore)),
		),
		fx.Annotate(
			NewRatingStatsCache,
			fx.As(new(queries.RatingStatsCache)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewRatingStatsCache(client *redis.Client, cfg config.Config) *cache.RatingStatsCache {
	return cache.NewRatingStatsCache(client, cfg.Redis.TTL)
}
