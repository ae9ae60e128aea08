package handler

import (
	"log/slog"

	"cinematch/internal/delivery/api/response"
	deliverycontext "cinematch/internal/delivery/context"
	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/errors"
	"cinematch/internal/usecase"

	"github.com/labstack/echo/v4"
)

type recommendFilmsRequest struct {
	Location        string   `json:"location" validate:"max=200"`
	PreviouslyShown []string `json:"previouslyShown" validate:"max=100,dive,max=300"`
}

type recommendLocalFilmsRequest struct {
	Location string `json:"location" validate:"required,max=200"`
}

type filmsResponse struct {
	Recommendations []entity.FilmRecommendation `json:"recommendations"`
	Error           string                      `json:"error,omitempty"`
}

type localFilmsResponse struct {
	Recommendations []entity.LocalFilmRecommendation `json:"recommendations"`
	Error           string                           `json:"error,omitempty"`
}

// RecommendationHandler asks the model for film suggestions.
type RecommendationHandler struct {
	uc     usecase.RecommendationUsecase
	logger *slog.Logger
}

// NewRecommendationHandler is the constructor for RecommendationHandler, injected by Fx.
func NewRecommendationHandler(uc usecase.RecommendationUsecase, logger *slog.Logger) *RecommendationHandler {
	return &RecommendationHandler{uc: uc, logger: logger}
}

// RecommendFilms returns hidden gems matched to the user's quiz results.
// Generation failures still answer 200 with an error message.
func (h *RecommendationHandler) RecommendFilms(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no user on request")
	}

	var req recommendFilmsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid recommendation request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.RecommendFilms(c.Request().Context(), user, usecase.RecommendFilmsInput{
		Location:        req.Location,
		PreviouslyShown: req.PreviouslyShown,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, filmsResponse{Recommendations: out.Recommendations, Error: out.Error})
}

// RecommendLocalFilms returns films playing near the given location.
func (h *RecommendationHandler) RecommendLocalFilms(c echo.Context) error {
	user := deliverycontext.GetUser(c)
	if user == nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("no user on request")
	}

	var req recommendLocalFilmsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid recommendation request")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	out, err := h.uc.RecommendLocalFilms(c.Request().Context(), user, usecase.RecommendLocalFilmsInput{Location: req.Location})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, localFilmsResponse{Recommendations: out.Recommendations, Error: out.Error})
}
