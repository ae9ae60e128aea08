package handler

import (
	"log/slog"

	"cinematch/internal/delivery/api/response"
	deliverycontext "cinematch/internal/delivery/context"
	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/domain/quiz"
	"cinematch/internal/errors"
	"cinematch/internal/usecase"

	"github.com/labstack/echo/v4"
)

type submitQuizRequest struct {
	PersonalityScores entity.PersonalityScores `json:"personalityScores"`
	MovieRatings      []entity.MovieRating     `json:"movieRatings" validate:"max=50"`
}

type quizResponse struct {
	Quiz    *quiz.Definition    `json:"quiz"`
	Results *entity.QuizResults `json:"results"`
}

// QuizHandler serves and stores the personality quiz.
type QuizHandler struct {
	uc     usecase.QuizUsecase
	logger *slog.Logger
}

// NewQuizHandler is the constructor for QuizHandler, injected by Fx.
func NewQuizHandler(uc usecase.QuizUsecase, logger *slog.Logger) *QuizHandler {
	return &QuizHandler{uc: uc, logger: logger}
}

// GetQuiz returns the quiz and the answers already on file.
func (h *QuizHandler) GetQuiz(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no user on request")
	}

	out := h.uc.GetQuiz(c.Request().Context(), user)

	return response.OK(c, quizResponse{Quiz: out.Definition, Results: out.Results})
}

// SubmitQuiz replaces the user's quiz answers.
func (h *QuizHandler) SubmitQuiz(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no user on request")
	}

	var req submitQuizRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quiz submission")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	results, err := h.uc.SubmitQuiz(c.Request().Context(), user.ID, usecase.SubmitQuizInput{
		PersonalityScores: req.PersonalityScores,
		MovieRatings:      req.MovieRatings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, map[string]any{"quizResults": results})
}
