package components

import (
	"court-booking/internal/infra/readstore"
	"court-booking/internal/infra/repository"
	"court-booking/internal/infra/rulecache"
	"court-booking/internal/pkg/config"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		// Write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewLockManager,
			fx.As(new(commands.LockManager)),
		),
		fx.Annotate(
			repository.NewCatalogRepository,
			fx.As(new(commands.CatalogRepository)),
		),
		fx.Annotate(
			repository.NewPricingRuleRepository,
			fx.As(new(commands.PricingRuleRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(shared.CatalogReadStore)),
			fx.As(new(queries.CatalogViewStore)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(shared.ReservationReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			NewRuleCache,
			fx.As(new(readstore.RuleCache)),
			fx.As(new(commands.RuleCacheInvalidator)),
		),
		fx.Annotate(
			readstore.NewPricingRuleReadStore,
			fx.As(new(queries.PricingRuleReadStore)),
			fx.As(new(shared.RuleSource)),
		),
	),
)

func NewRuleCache(client redis.UniversalClient, cfg config.Config) *rulecache.Cache {
	return rulecache.New(client, cfg.Redis.RuleCacheTTL)
}
