package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "cinematch/internal/delivery/context"
	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/domain/quiz"
	"cinematch/internal/domain/repository"
	"cinematch/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// quizService implements the QuizUsecase interface.
type quizService struct {
	userRepo   repository.UserRepository
	definition *quiz.Definition
	logger     *slog.Logger
}

// QuizServiceParams holds dependencies for QuizService, injected by Fx.
type QuizServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	Definition *quiz.Definition
	Logger     *slog.Logger
}

// NewQuizService is the constructor for quizService.
func NewQuizService(params QuizServiceParams) usecase.QuizUsecase {
	return &quizService{
		userRepo:   params.UserRepo,
		definition: params.Definition,
		logger:     params.Logger,
	}
}

func (srv *quizService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetQuiz returns the quiz and, when readable, the answers the user already saved.
func (srv *quizService) GetQuiz(ctx context.Context, user *entity.User) *usecase.QuizOutput {
	out := &usecase.QuizOutput{Definition: srv.definition}

	results, err := entity.ParseQuizResults(user.QuizResults)
	if err != nil {
		srv.log(ctx).Warn("Ignoring unreadable stored quiz results", slog.String("user_id", user.ID), slog.Any("error", err))

		return out
	}
	out.Results = results

	return out
}

// SubmitQuiz validates a submission and stores it as the user's quiz results.
// Every trait must be answered; film ratings are optional.
func (srv *quizService) SubmitQuiz(ctx context.Context, userID string, input usecase.SubmitQuizInput) (*entity.QuizResults, error) {
	srv.log(ctx).Info("Submitting quiz", slog.String("user_id", userID))

	if err := srv.validateScores(input.PersonalityScores); err != nil {
		return nil, err
	}

	ratings, err := srv.normalizeRatings(input.MovieRatings)
	if err != nil {
		return nil, err
	}

	results := &entity.QuizResults{
		PersonalityScores: input.PersonalityScores,
		MovieRatings:      ratings,
	}
	payload, err := results.Encode()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode quiz results")
	}

	_, found, err := srv.userRepo.Replace(ctx, &entity.Patch{ID: userID, QuizResults: &payload})
	if err != nil {
		srv.log(ctx).Error("Failed to save quiz results", slog.String("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save quiz results")
	}
	if !found {
		srv.log(ctx).Warn("Quiz submitted for unknown user", slog.String("user_id", userID))

		return nil, domainerrors.ErrUserNotFound.WrapMessage("submit quiz")
	}

	srv.log(ctx).Info("Quiz saved", slog.String("user_id", userID), slog.Int("ratings", len(ratings)))

	return results, nil
}

func (srv *quizService) validateScores(scores entity.PersonalityScores) error {
	if len(scores.Answered()) != len(entity.Traits) {
		return domainerrors.ErrQuizIncomplete.WrapMessage("submit quiz")
	}

	var invalid []string
	for _, trait := range entity.Traits {
		if !srv.definition.IsValidOption(trait, scores.Get(trait)) {
			invalid = append(invalid, string(trait))
		}
	}
	if len(invalid) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails("unknown option for: " + strings.Join(invalid, ", "))
	}

	return nil
}

// normalizeRatings drops entries without an id or title and rejects out-of-range ratings.
func (srv *quizService) normalizeRatings(in []entity.MovieRating) ([]entity.MovieRating, error) {
	out := make([]entity.MovieRating, 0, len(in))
	for _, r := range in {
		if r.MovieID == "" || r.Title == "" {
			continue
		}
		if r.Rating != nil && (*r.Rating < quiz.MinRating || *r.Rating > quiz.MaxRating) {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("rating for %s must be between %d and %d", r.MovieID, quiz.MinRating, quiz.MaxRating))
		}
		out = append(out, r)
	}
	if len(out) == 0 {
		return nil, nil
	}

	return out, nil
}
