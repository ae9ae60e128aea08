package main

import (
	"context"
	"log/slog"
	"os"

	"cinematch/config"
	"cinematch/internal/delivery"
	"cinematch/internal/delivery/api"
	"cinematch/internal/delivery/api/cookie"
	"cinematch/internal/delivery/api/middleware"
	"cinematch/internal/delivery/api/router/handler"
	"cinematch/internal/domain/quiz"
	"cinematch/internal/infra/auth"
	"cinematch/internal/infra/listing"
	"cinematch/internal/infra/llm"
	logs "cinematch/internal/infra/log"
	"cinematch/internal/infra/persistence/csvstore"
	"cinematch/internal/infra/recommend"
	"cinematch/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		options(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

// options is the whole application graph without the server start.
func options() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			csvstore.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPasswordHasher,
			auth.NewSessionCodec,
			quiz.Default,
			llm.NewClient,
			llm.NewGenerator,
			listing.New,
			listing.NewListingSource,
			recommend.NewRecommender,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewQuizService,
			impl.NewRecommendationService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			cookie.NewJar,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewQuizHandler,
			handler.NewRecommendationHandler,
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
				os.Exit(1)
			}
		}()
	}
}
