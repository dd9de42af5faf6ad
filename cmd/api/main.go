package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/middleware"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/http/router/handler"
	"github.com/sebvsnk/Base-E-commerce/internal/delivery/worker"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/auth"
	logs "github.com/sebvsnk/Base-E-commerce/internal/infra/log"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/mail"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/otp"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/payment/webpay"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/persistence/postgres"
	"github.com/sebvsnk/Base-E-commerce/internal/infra/storage"
	"github.com/sebvsnk/Base-E-commerce/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewUserRepository,
			postgres.NewProductRepository,
			postgres.NewCategoryRepository,
			postgres.NewOrderRepository,
			postgres.NewOrderOtpRepository,
			postgres.NewAddressRepository,
			postgres.NewRegionRepository,
			postgres.NewMediaAssetRepository,
			postgres.NewAuditLogRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			otp.NewOtpService,
			mail.NewSMTPMailer,
			webpay.NewClient,
			storage.NewBlobStorage,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProductService,
			impl.NewCategoryService,
			impl.NewOrderService,
			impl.NewGuestService,
			impl.NewPaymentService,
			impl.NewAdminService,
			impl.NewMediaService,
			impl.NewAddressService,
			impl.NewLocationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProductHandler,
			handler.NewCategoryHandler,
			handler.NewOrderHandler,
			handler.NewGuestHandler,
			handler.NewPaymentHandler,
			handler.NewMediaHandler,
			handler.NewAdminHandler,
			handler.NewAddressHandler,
			handler.NewLocationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewSweeper,
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
				os.Exit(1)
			}
		}()
	}
}
