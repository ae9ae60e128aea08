package service

import (
	"context"

	"cinematch/internal/domain/entity"
)

// RecommendFilmsInput is what the film requester needs from a user.
type RecommendFilmsInput struct {
	QuizResults     string // Stored payload, passed through verbatim.
	Location        string
	PreviouslyShown []string
}

// RecommendLocalFilmsInput is what the local-cinema requester needs from a user.
type RecommendLocalFilmsInput struct {
	QuizResults string
	Location    string
}

// Recommender produces film suggestions from a quiz payload.
type Recommender interface {
	RecommendFilms(ctx context.Context, input RecommendFilmsInput) ([]entity.FilmRecommendation, error)
	RecommendLocalFilms(ctx context.Context, input RecommendLocalFilmsInput) ([]entity.LocalFilmRecommendation, error)
}

// Generator sends a prompt to a hosted language model and returns its JSON answer.
type Generator interface {
	GenerateJSON(ctx context.Context, prompt string) ([]byte, error)
}

// ListingSource returns the films playing near a location.
type ListingSource interface {
	Films(ctx context.Context, location string) ([]entity.LocalFilm, error)
}
