package components

import (
	"context"
	"log/slog"
	"time"

	"giggo-server/internal/infra/readstore"
	"giggo-server/internal/infra/repository"
	"giggo-server/internal/usecase/commands"
	"giggo-server/internal/usecase/queries"

	"go.uber.org/fx"
)

const idempotencyPurgeInterval = time.Hour

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		repository.NewIdempotencyRepository,
		func(r *repository.IdempotencyRepository) commands.IdempotencyRepository { return r },
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
	),
	fx.Invoke(startIdempotencyPurge),
)

// startIdempotencyPurge deletes expired idempotency keys on a fixed interval
// for the lifetime of the application.
func startIdempotencyPurge(lc fx.Lifecycle, repo *repository.IdempotencyRepository) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(idempotencyPurgeInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						count, err := repo.DeleteExpired(ctx)
						if err != nil {
							slog.Warn("failed to purge expired idempotency keys", "error", err.Error())
							continue
						}
						if count > 0 {
							slog.Info("purged expired idempotency keys", "count", count)
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()
			<-done
			return nil
		},
	})
}
