// Command reconciler runs the idempotent repair pass once and exits.
package main

import (
	"context"
	"log/slog"

	"peeko/config"
	logs "peeko/internal/infra/log"
	"peeko/internal/infra/persistence/mongodb"
	"peeko/internal/infra/persistence/postgres"
	"peeko/internal/usecase"
	"peeko/internal/usecase/impl"

	"go.uber.org/fx"
)

type runParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Maintenance usecase.MaintenanceUsecase
	Logger      *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			mongodb.New,
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
			mongodb.NewMessageRepository,
			impl.NewMaintenanceService,
		),
		fx.Invoke(run),
	).Run()
}

func run(params runParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0

				report, err := params.Maintenance.Reconcile(context.Background())
				if err != nil {
					params.Logger.Error("Reconcile failed", slog.Any("error", err))
					exitCode = 1
				} else {
					params.Logger.Info("Reconcile finished", slog.Int64("repaired", report.Total()))
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					params.Logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				}
			}()

			return nil
		},
	})
}
