// Package recommend turns quiz results into film suggestions using a generative model.
package recommend

import (
	"context"
	"encoding/json"
	"log/slog"

	"cinematch/config"
	deliverycontext "cinematch/internal/delivery/context"
	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/domain/service"
	"cinematch/internal/infra/listing"
	"cinematch/internal/infra/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	kindFilms = "films"
	kindLocal = "local"
)

// ErrNoValidRecommendations is returned when the model answer held no usable film.
var ErrNoValidRecommendations = domainerrors.ErrRecommendationFailed.WithDetails("model returned no valid recommendations")

// Params defines the dependencies of the recommender.
type Params struct {
	fx.In

	Config    *config.Config
	Generator service.Generator
	Listings  service.ListingSource
	Logger    *slog.Logger
}

type recommender struct {
	generator service.Generator
	listings  service.ListingSource
	validate  *validator.Validate
	count     int
	localMax  int
	logger    *slog.Logger
}

// NewRecommender creates a service.Recommender.
func NewRecommender(params Params) service.Recommender {
	return &recommender{
		generator: params.Generator,
		listings:  params.Listings,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		count:     params.Config.Recommendation.Count,
		localMax:  params.Config.Recommendation.LocalMax,
		logger:    params.Logger.With(slog.String("component", "recommender")),
	}
}

func (r *recommender) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// RecommendFilms asks the model for hidden gems that fit the quiz results.
func (r *recommender) RecommendFilms(ctx context.Context, input service.RecommendFilmsInput) ([]entity.FilmRecommendation, error) {
	films, err := r.recommendFilms(ctx, input)
	record(kindFilms, err)

	return films, err
}

func (r *recommender) recommendFilms(ctx context.Context, input service.RecommendFilmsInput) ([]entity.FilmRecommendation, error) {
	// Titles playing nearby only enrich the prompt.
	var nowPlaying []string
	if input.Location != "" {
		local, err := r.listings.Films(ctx, input.Location)
		if err != nil {
			r.log(ctx).Warn("Could not load local listings", slog.String("location", input.Location), slog.Any("error", err))
		}
		for _, f := range local {
			nowPlaying = append(nowPlaying, f.Title)
		}
	}

	prompt, err := render(filmsTemplate, filmsPromptData{
		Count:           r.count,
		QuizResults:     input.QuizResults,
		PreviouslyShown: input.PreviouslyShown,
		Location:        input.Location,
		NowPlaying:      nowPlaying,
	})
	if err != nil {
		return nil, err
	}

	raw, err := r.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, errors.Wrap(err, "generate film recommendations")
	}

	candidates, err := decodeFilms(raw)
	if err != nil {
		return nil, err
	}

	films := make([]entity.FilmRecommendation, 0, len(candidates))
	for i, film := range candidates {
		if err := r.validate.Struct(film); err != nil {
			r.log(ctx).Warn("Dropping incomplete recommendation", slog.Int("index", i), slog.Any("error", err))

			continue
		}
		films = append(films, film)
	}
	if len(films) == 0 {
		return nil, ErrNoValidRecommendations
	}
	if len(films) > r.count {
		films = films[:r.count]
	}

	return films, nil
}

// decodeFilms accepts a bare array or an object wrapping it under "recommendations".
func decodeFilms(raw []byte) ([]entity.FilmRecommendation, error) {
	var films []entity.FilmRecommendation
	if err := json.Unmarshal(raw, &films); err == nil {
		return films, nil
	}

	var wrapped struct {
		Recommendations []entity.FilmRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrRecommendationFailed, "decode film recommendations: %v", err)
	}

	return wrapped.Recommendations, nil
}

// RecommendLocalFilms asks the model to pick from the films playing near the user.
func (r *recommender) RecommendLocalFilms(ctx context.Context, input service.RecommendLocalFilmsInput) ([]entity.LocalFilmRecommendation, error) {
	films, err := r.recommendLocalFilms(ctx, input)
	record(kindLocal, err)

	return films, err
}

func (r *recommender) recommendLocalFilms(ctx context.Context, input service.RecommendLocalFilmsInput) ([]entity.LocalFilmRecommendation, error) {
	films, err := r.listings.Films(ctx, input.Location)
	if err != nil {
		return nil, errors.Wrap(err, "load local listings")
	}
	if len(films) == 0 {
		r.log(ctx).Info("No local films to choose from", slog.String("location", input.Location))

		return []entity.LocalFilmRecommendation{}, nil
	}

	table, err := listing.CSV(films)
	if err != nil {
		return nil, err
	}

	prompt, err := render(localFilmsTemplate, localFilmsPromptData{
		Location:    input.Location,
		Listings:    table,
		QuizResults: input.QuizResults,
		Max:         r.localMax,
	})
	if err != nil {
		return nil, err
	}

	raw, err := r.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, errors.Wrap(err, "generate local recommendations")
	}

	var out struct {
		Recommendations *[]entity.LocalFilmRecommendation `json:"recommendations"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrRecommendationFailed, "decode local recommendations: %v", err)
	}
	if out.Recommendations == nil {
		r.log(ctx).Warn("Model answer has no recommendations key")

		return []entity.LocalFilmRecommendation{}, nil
	}

	picks := make([]entity.LocalFilmRecommendation, 0, len(*out.Recommendations))
	for i, pick := range *out.Recommendations {
		if err := r.validate.Struct(pick); err != nil {
			r.log(ctx).Warn("Dropping incomplete local recommendation", slog.Int("index", i), slog.Any("error", err))

			continue
		}
		picks = append(picks, pick)
	}
	if len(picks) > r.localMax {
		picks = picks[:r.localMax]
	}

	return picks, nil
}

func record(kind string, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultFailure
	}
	metrics.Recommendations.WithLabelValues(kind, result).Inc()
}
