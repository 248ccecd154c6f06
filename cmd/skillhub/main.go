package main

import (
	"context"
	"log/slog"
	"os"

	"skillhub/config"
	"skillhub/internal/delivery"
	"skillhub/internal/delivery/http"
	"skillhub/internal/delivery/http/middleware"
	"skillhub/internal/delivery/http/router/handler"
	"skillhub/internal/infra/auth"
	"skillhub/internal/infra/auth/github"
	"skillhub/internal/infra/auth/google"
	logs "skillhub/internal/infra/log"
	mongodb "skillhub/internal/infra/persistence/mongo"
	"skillhub/internal/usecase/impl"

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
		mongodb.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongodb.NewUserRepository,
			mongodb.NewQuestionRepository,
			mongodb.NewAnswerRepository,
			mongodb.NewTutorialRepository,
			mongodb.NewChallengeRepository,
			mongodb.NewCommentRepository,
			mongodb.NewCourseRepository,
			mongodb.NewLessonRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			fx.Annotate(
				google.NewVerifier,
				fx.ResultTags(`group:"oauth_verifiers"`),
			),
			fx.Annotate(
				github.NewVerifier,
				fx.ResultTags(`group:"oauth_verifiers"`),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewQuestionService,
			impl.NewTutorialService,
			impl.NewChallengeService,
			impl.NewCourseService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewRequestIDMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewQuestionHandler,
			handler.NewTutorialHandler,
			handler.NewChallengeHandler,
			handler.NewCourseHandler,
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
