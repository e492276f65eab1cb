package components

import (
	"giggo-server/internal/handler"
	"giggo-server/internal/handler/api"
	"giggo-server/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewBookingHandler,
		api.NewProfileHandler,
		middleware.NewAuthMiddleware,
		middleware.NewLogger,
	),
	fx.Invoke(handler.NewRouter),
)
