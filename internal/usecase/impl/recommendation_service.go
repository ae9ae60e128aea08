package impl

import (
	"context"
	"log/slog"

	deliverycontext "cinematch/internal/delivery/context"
	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/domain/service"
	"cinematch/internal/usecase"

	"go.uber.org/fx"
)

const (
	filmsFailureMessage = "Could not generate film recommendations at this time. Please try again later."
	localFailureMessage = "Could not fetch local cinema recommendations at this time. Please try again later."
)

// recommendationService implements the RecommendationUsecase interface.
// It only reads the user record; a failed generation leaves it untouched.
type recommendationService struct {
	recommender service.Recommender
	logger      *slog.Logger
}

// RecommendationServiceParams holds dependencies for RecommendationService, injected by Fx.
type RecommendationServiceParams struct {
	fx.In

	Recommender service.Recommender
	Logger      *slog.Logger
}

// NewRecommendationService is the constructor for recommendationService.
func NewRecommendationService(params RecommendationServiceParams) usecase.RecommendationUsecase {
	return &recommendationService{
		recommender: params.Recommender,
		logger:      params.Logger,
	}
}

func (srv *recommendationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecommendFilms passes the stored quiz payload to the recommender unchanged.
func (srv *recommendationService) RecommendFilms(ctx context.Context, user *entity.User, input usecase.RecommendFilmsInput) (*usecase.FilmRecommendationsOutput, error) {
	if !user.HasQuizResults() {
		return nil, domainerrors.ErrQuizNotCompleted.WrapMessage("recommend films")
	}

	films, err := srv.recommender.RecommendFilms(ctx, service.RecommendFilmsInput{
		QuizResults:     user.QuizResults,
		Location:        input.Location,
		PreviouslyShown: input.PreviouslyShown,
	})
	if err != nil {
		srv.log(ctx).Error("Film recommendation failed", slog.String("user_id", user.ID), slog.Any("error", err))

		return &usecase.FilmRecommendationsOutput{
			Recommendations: []entity.FilmRecommendation{},
			Error:           filmsFailureMessage,
		}, nil
	}

	srv.log(ctx).Info("Film recommendations generated", slog.String("user_id", user.ID), slog.Int("count", len(films)))

	return &usecase.FilmRecommendationsOutput{Recommendations: films}, nil
}

// RecommendLocalFilms passes the stored quiz payload and location to the recommender unchanged.
func (srv *recommendationService) RecommendLocalFilms(ctx context.Context, user *entity.User, input usecase.RecommendLocalFilmsInput) (*usecase.LocalFilmRecommendationsOutput, error) {
	if !user.HasQuizResults() {
		return nil, domainerrors.ErrQuizNotCompleted.WrapMessage("recommend local films")
	}

	films, err := srv.recommender.RecommendLocalFilms(ctx, service.RecommendLocalFilmsInput{
		QuizResults: user.QuizResults,
		Location:    input.Location,
	})
	if err != nil {
		srv.log(ctx).Error("Local film recommendation failed", slog.String("user_id", user.ID), slog.String("location", input.Location), slog.Any("error", err))

		return &usecase.LocalFilmRecommendationsOutput{
			Recommendations: []entity.LocalFilmRecommendation{},
			Error:           localFailureMessage,
		}, nil
	}
	if films == nil {
		films = []entity.LocalFilmRecommendation{}
	}

	return &usecase.LocalFilmRecommendationsOutput{Recommendations: films}, nil
}
