package usecase

import (
	"context"

	"cinematch/internal/domain/entity"
)

// RecommendFilmsInput asks for hidden gems for a user.
type RecommendFilmsInput struct {
	Location        string
	PreviouslyShown []string
}

// RecommendLocalFilmsInput asks for films playing near a user.
type RecommendLocalFilmsInput struct {
	Location string
}

// FilmRecommendationsOutput holds the suggestions, or an empty list and the reason generation failed.
type FilmRecommendationsOutput struct {
	Recommendations []entity.FilmRecommendation
	Error           string
}

// LocalFilmRecommendationsOutput holds the local picks, or an empty list and the reason generation failed.
type LocalFilmRecommendationsOutput struct {
	Recommendations []entity.LocalFilmRecommendation
	Error           string
}

// RecommendationUsecase defines the interface for recommendation operations.
// Generation failures never fail the call; they are reported in the output.
type RecommendationUsecase interface {
	RecommendFilms(ctx context.Context, user *entity.User, input RecommendFilmsInput) (*FilmRecommendationsOutput, error)
	RecommendLocalFilms(ctx context.Context, user *entity.User, input RecommendLocalFilmsInput) (*LocalFilmRecommendationsOutput, error)
}
