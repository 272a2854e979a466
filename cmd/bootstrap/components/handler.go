package components

import (
	"tripfair/internal/handler"
	"tripfair/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewNegotiationHandler,
		api.NewProviderHandler,
		api.NewAvailabilityHandler,
		api.NewCartHandler,
		api.NewAdminHandler,
	),
	fx.Invoke(handler.NewRouter),
)
