package bootstrap

import (
	"giggo-server/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.CatalogModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
)
