package usecase

import (
	"context"

	"cinematch/internal/domain/entity"
	"cinematch/internal/domain/quiz"
)

// SubmitQuizInput is one complete quiz submission.
type SubmitQuizInput struct {
	PersonalityScores entity.PersonalityScores
	MovieRatings      []entity.MovieRating
}

// QuizOutput is the quiz along with the user's previous answers, if any.
type QuizOutput struct {
	Definition *quiz.Definition
	Results    *entity.QuizResults
}

// QuizUsecase defines the interface for quiz operations.
type QuizUsecase interface {
	GetQuiz(ctx context.Context, user *entity.User) *QuizOutput
	SubmitQuiz(ctx context.Context, userID string, input SubmitQuizInput) (*entity.QuizResults, error)
}
