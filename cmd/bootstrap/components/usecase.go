package components

import (
	"tripfair/internal/domain/discount"
	"tripfair/internal/domain/negotiation"
	"tripfair/internal/pkg/clock"
	"tripfair/internal/pkg/config"
	"tripfair/internal/usecase/commands"
	"tripfair/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (discount.Rate, error) {
		return discount.NewRate(cfg.Pricing.DefaultDiscountRate)
	},
	func(clk clock.Clock, cfg config.Config) *negotiation.Factory {
		return negotiation.NewFactory(clk, cfg.Pricing.OfferValidityWindow)
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewNegotiationUseCase,
		commands.NewCartUseCase,
		commands.NewAdminUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProviderQueries,
		queries.NewAvailabilityQueries,
	),
)
