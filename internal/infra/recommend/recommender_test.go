package recommend

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"cinematch/config"
	"cinematch/internal/domain/entity"
	domainerrors "cinematch/internal/domain/errors"
	"cinematch/internal/domain/service"
	mockSvc "cinematch/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const quizPayload = `{"personalityScores":{"openness":"o1"}}`

type recommenderFixtures struct {
	recommender service.Recommender
	generator   *mockSvc.MockGenerator
	listings    *mockSvc.MockListingSource
}

func createTestRecommender(t *testing.T) recommenderFixtures {
	generator := mockSvc.NewMockGenerator(t)
	listings := mockSvc.NewMockListingSource(t)

	cfg := &config.Config{}
	cfg.Recommendation.Count = 3
	cfg.Recommendation.LocalMax = 2

	return recommenderFixtures{
		recommender: NewRecommender(Params{
			Config:    cfg,
			Generator: generator,
			Listings:  listings,
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		generator: generator,
		listings:  listings,
	}
}

var verdi = []entity.LocalFilm{
	{Title: "Perfect Days", Characteristics: "Drama", CinemaName: "Cinemes Verdi", CinemaLocation: "Carrer de Verdi, 32"},
	{Title: "Past Lives", Characteristics: "Romance, Drama", CinemaName: "Cinemes Verdi", CinemaLocation: "Carrer de Verdi, 32"},
	{Title: "The Zone of Interest", Characteristics: "History", CinemaName: "Zumzeig", CinemaLocation: "Carrer de Béjar, 53"},
}

func TestRecommendFilms_PromptCarriesContext(t *testing.T) {
	fx := createTestRecommender(t)
	ctx := context.Background()

	fx.listings.EXPECT().Films(ctx, "Barcelona").Return(verdi, nil)
	fx.generator.EXPECT().
		GenerateJSON(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, prompt string) ([]byte, error) {
			assert.Contains(t, prompt, quizPayload)
			assert.Contains(t, prompt, "- Paterson")
			assert.Contains(t, prompt, "- Perfect Days")
			assert.Contains(t, prompt, "exactly 3 film recommendations")

			return []byte(`[{"title":"Columbus","genre":"Drama","description":"Architecture.","why":"Calm."}]`), nil
		})

	films, err := fx.recommender.RecommendFilms(ctx, service.RecommendFilmsInput{
		QuizResults:     quizPayload,
		Location:        "Barcelona",
		PreviouslyShown: []string{"Paterson"},
	})

	require.NoError(t, err)
	assert.Equal(t, []entity.FilmRecommendation{{Title: "Columbus", Genre: "Drama", Description: "Architecture.", Why: "Calm."}}, films)
}

func TestRecommendFilms_WithoutLocationSkipsListings(t *testing.T) {
	fx := createTestRecommender(t)

	fx.generator.EXPECT().
		GenerateJSON(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, prompt string) ([]byte, error) {
			assert.NotContains(t, prompt, "AVOID recommending the following")
			assert.NotContains(t, prompt, "currently playing in cinemas near the user")

			return []byte(`{"recommendations":[{"title":"A","genre":"g","description":"d","why":"w"}]}`), nil
		})

	films, err := fx.recommender.RecommendFilms(context.Background(), service.RecommendFilmsInput{QuizResults: quizPayload})

	require.NoError(t, err)
	assert.Len(t, films, 1)
}

func TestRecommendFilms_ListingsFailureIsNotFatal(t *testing.T) {
	fx := createTestRecommender(t)

	fx.listings.EXPECT().Films(mock.Anything, "Madrid").Return(nil, errors.New("bucket offline"))
	fx.generator.EXPECT().
		GenerateJSON(mock.Anything, mock.Anything).
		Return([]byte(`[{"title":"A","genre":"g","description":"d","why":"w"}]`), nil)

	films, err := fx.recommender.RecommendFilms(context.Background(), service.RecommendFilmsInput{QuizResults: quizPayload, Location: "Madrid"})

	require.NoError(t, err)
	assert.Len(t, films, 1)
}

func TestRecommendFilms_FiltersAndTruncates(t *testing.T) {
	fx := createTestRecommender(t)

	fx.generator.EXPECT().GenerateJSON(mock.Anything, mock.Anything).Return([]byte(`[
		{"title":"A","genre":"g","description":"d","why":"w"},
		{"title":"","genre":"g","description":"d","why":"w"},
		{"title":"B","genre":"g","description":"d"},
		{"title":"C","genre":"g","description":"d","why":"w"},
		{"title":"D","genre":"g","description":"d","why":"w"},
		{"title":"E","genre":"g","description":"d","why":"w"}
	]`), nil)

	films, err := fx.recommender.RecommendFilms(context.Background(), service.RecommendFilmsInput{QuizResults: quizPayload})

	require.NoError(t, err)
	require.Len(t, films, 3)
	assert.Equal(t, []string{"A", "C", "D"}, []string{films[0].Title, films[1].Title, films[2].Title})
}

func TestRecommendFilms_Failures(t *testing.T) {
	tests := []struct {
		name    string
		answer  []byte
		err     error
		wantErr error
	}{
		{name: "generator error", err: errors.New("quota exceeded")},
		{name: "not json", answer: []byte(`Sorry, I cannot help.`), wantErr: domainerrors.ErrRecommendationFailed},
		{name: "nothing valid", answer: []byte(`[{"title":"A"}]`), wantErr: ErrNoValidRecommendations},
		{name: "empty array", answer: []byte(`[]`), wantErr: ErrNoValidRecommendations},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestRecommender(t)
			fx.generator.EXPECT().GenerateJSON(mock.Anything, mock.Anything).Return(tt.answer, tt.err)

			films, err := fx.recommender.RecommendFilms(context.Background(), service.RecommendFilmsInput{QuizResults: quizPayload})

			require.Error(t, err)
			assert.Nil(t, films)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.True(t, errors.Is(err, domainerrors.ErrRecommendationFailed))
			}
		})
	}
}

func TestRecommendLocalFilms(t *testing.T) {
	fx := createTestRecommender(t)
	ctx := context.Background()

	fx.listings.EXPECT().Films(ctx, "Barcelona").Return(verdi, nil)
	fx.generator.EXPECT().
		GenerateJSON(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, prompt string) ([]byte, error) {
			assert.Contains(t, prompt, "Film,Film Characteristics,Cinema Name,Cinema Location")
			assert.Contains(t, prompt, `Past Lives,"Romance, Drama",Cinemes Verdi,"Carrer de Verdi, 32"`)
			assert.Contains(t, prompt, "select exactly 2")
			assert.Contains(t, prompt, quizPayload)

			return []byte(`{"recommendations":[
				{"title":"Perfect Days","cinemaName":"Cinemes Verdi","cinemaLocation":"Carrer de Verdi, 32"},
				{"title":"Past Lives","cinemaName":"Cinemes Verdi","cinemaLocation":"Carrer de Verdi, 32"},
				{"title":"The Zone of Interest","cinemaName":"Zumzeig","cinemaLocation":"Carrer de Béjar, 53"}
			]}`), nil
		})

	picks, err := fx.recommender.RecommendLocalFilms(ctx, service.RecommendLocalFilmsInput{QuizResults: quizPayload, Location: "Barcelona"})

	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, "Perfect Days", picks[0].Title)
}

func TestRecommendLocalFilms_NoListingsSkipsModel(t *testing.T) {
	fx := createTestRecommender(t)
	fx.listings.EXPECT().Films(mock.Anything, "Barcelona").Return([]entity.LocalFilm{}, nil)

	picks, err := fx.recommender.RecommendLocalFilms(context.Background(), service.RecommendLocalFilmsInput{QuizResults: quizPayload, Location: "Barcelona"})

	require.NoError(t, err)
	assert.NotNil(t, picks)
	assert.Empty(t, picks)
}

func TestRecommendLocalFilms_MissingKeyYieldsEmpty(t *testing.T) {
	fx := createTestRecommender(t)
	fx.listings.EXPECT().Films(mock.Anything, mock.Anything).Return(verdi, nil)
	fx.generator.EXPECT().GenerateJSON(mock.Anything, mock.Anything).Return([]byte(`{"films":[]}`), nil)

	picks, err := fx.recommender.RecommendLocalFilms(context.Background(), service.RecommendLocalFilmsInput{QuizResults: quizPayload, Location: "Barcelona"})

	require.NoError(t, err)
	assert.Empty(t, picks)
}

func TestRecommendLocalFilms_DropsIncompletePicks(t *testing.T) {
	fx := createTestRecommender(t)
	fx.listings.EXPECT().Films(mock.Anything, mock.Anything).Return(verdi, nil)
	fx.generator.EXPECT().GenerateJSON(mock.Anything, mock.Anything).Return([]byte(`{"recommendations":[
		{"title":""},
		{"cinemaName":"Zumzeig"},
		{"title":"Past Lives","cinemaName":"Cinemes Verdi","cinemaLocation":""},
		{"title":"Perfect Days","cinemaName":"Cinemes Verdi","cinemaLocation":"Carrer de Verdi, 32"}
	]}`), nil)

	picks, err := fx.recommender.RecommendLocalFilms(context.Background(), service.RecommendLocalFilmsInput{QuizResults: quizPayload, Location: "Barcelona"})

	require.NoError(t, err)
	assert.Equal(t, []entity.LocalFilmRecommendation{
		{Title: "Perfect Days", CinemaName: "Cinemes Verdi", CinemaLocation: "Carrer de Verdi, 32"},
	}, picks)
}

func TestRecommendLocalFilms_OnlyIncompletePicksYieldsEmpty(t *testing.T) {
	fx := createTestRecommender(t)
	fx.listings.EXPECT().Films(mock.Anything, mock.Anything).Return(verdi, nil)
	fx.generator.EXPECT().GenerateJSON(mock.Anything, mock.Anything).Return([]byte(`{"recommendations":[{"title":""},{"cinemaName":"X"}]}`), nil)

	picks, err := fx.recommender.RecommendLocalFilms(context.Background(), service.RecommendLocalFilmsInput{QuizResults: quizPayload, Location: "Barcelona"})

	require.NoError(t, err)
	assert.NotNil(t, picks)
	assert.Empty(t, picks)
}

func TestRecommendLocalFilms_Failures(t *testing.T) {
	t.Run("listings", func(t *testing.T) {
		fx := createTestRecommender(t)
		fx.listings.EXPECT().Films(mock.Anything, mock.Anything).Return(nil, errors.New("bucket offline"))

		_, err := fx.recommender.RecommendLocalFilms(context.Background(), service.RecommendLocalFilmsInput{Location: "Barcelona"})

		assert.Error(t, err)
	})

	t.Run("malformed answer", func(t *testing.T) {
		fx := createTestRecommender(t)
		fx.listings.EXPECT().Films(mock.Anything, mock.Anything).Return(verdi, nil)
		fx.generator.EXPECT().GenerateJSON(mock.Anything, mock.Anything).Return([]byte(`[1,2`), nil)

		_, err := fx.recommender.RecommendLocalFilms(context.Background(), service.RecommendLocalFilmsInput{Location: "Barcelona"})

		assert.True(t, errors.Is(err, domainerrors.ErrRecommendationFailed))
	})
}
