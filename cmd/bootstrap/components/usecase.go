package components

import (
	"promo-pricing-service/internal/pkg/clock"
	"promo-pricing-service/internal/pkg/config"
	"promo-pricing-service/internal/usecase/commands"
	"promo-pricing-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	NewBusinessClock,
)

// All campaign windows are evaluated on the business timezone, never the
// request origin's.
func NewBusinessClock(cfg config.Config) (clock.Clock, error) {
	loc, err := cfg.Pricing.Location()
	if err != nil {
		return nil, err
	}
	return clock.NewBusinessClock(loc), nil
}

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewPricingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCouponQueries,
		queries.NewOrderQueries,
	),
)
