package components

import (
	"giggo-server/internal/domain/booking"
	"giggo-server/internal/infra/catalog"
	"giggo-server/internal/usecase/commands"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		catalog.NewStore,
		func(s *catalog.Store) commands.Catalog { return s },
		fx.Annotate(
			booking.NewFixedSlotTable,
			fx.As(new(booking.AvailabilitySource)),
		),
		fx.Annotate(
			booking.NewPlatformFeeCalculator,
			fx.As(new(booking.PriceCalculator)),
		),
		booking.NewFactory,
	),
)
