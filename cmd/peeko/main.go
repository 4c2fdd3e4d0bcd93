package main

import (
	"context"
	"log/slog"
	"os"

	"peeko/config"
	"peeko/internal/delivery"
	"peeko/internal/delivery/api"
	"peeko/internal/delivery/api/middleware"
	"peeko/internal/delivery/api/router/handler"
	"peeko/internal/domain/service"
	"peeko/internal/infra/auth"
	logs "peeko/internal/infra/log"
	"peeko/internal/infra/persistence/mongodb"
	"peeko/internal/infra/persistence/postgres"
	"peeko/internal/infra/qrcode"
	"peeko/internal/infra/ratelimit"
	"peeko/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewFriendshipRepository,
			postgres.NewDeviceRepository,
			postgres.NewFirmwareRepository,
			postgres.NewTransactionManager,
			mongodb.NewMessageRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewSessionVerifier,
			newQRCodeService,
			ratelimit.New,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewSocialService,
			impl.NewMessageService,
			impl.NewDeviceService,
			impl.NewFirmwareService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAccessMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewSocialHandler,
			handler.NewMessageHandler,
			handler.NewDeviceHandler,
			handler.NewFirmwareHandler,
			handler.NewWebhookHandler,
			handler.NewMaintenanceHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
