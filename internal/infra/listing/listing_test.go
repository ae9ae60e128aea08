package listing

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cinematch/config"
	"cinematch/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func createTestSource(t *testing.T, bucketURL, key string) *Source {
	t.Helper()

	cfg := &config.Config{}
	cfg.Listings.BucketURL = bucketURL
	cfg.Listings.Key = key
	cfg.Listings.DefaultCity = "Barcelona"

	lc := fxtest.NewLifecycle(t)
	src, err := New(lc, Params{Config: cfg, Logger: slog.New(slog.DiscardHandler)})
	require.NoError(t, err)
	lc.RequireStart()
	t.Cleanup(func() { lc.RequireStop() })

	return src
}

func TestSource_EmbeddedProgramme(t *testing.T) {
	src := createTestSource(t, "", "barcelona_films.csv")

	films, err := src.Films(t.Context(), "Eixample, BARCELONA")

	require.NoError(t, err)
	require.Len(t, films, 29)
	assert.Equal(t, entity.LocalFilm{
		Title:           "Mission: Impossible The Final Reckoning",
		Characteristics: "Action, Adventure, Thriller",
		CinemaName:      "Cinesa Diagonal Mar",
		CinemaLocation:  "Avinguda Diagonal, 3, 08019 Barcelona",
	}, films[0])
	assert.Equal(t, "20,000 Species of Bees", films[20].Title)
}

func TestSource_PlaceholderForOtherCities(t *testing.T) {
	src := createTestSource(t, "", "barcelona_films.csv")

	films, err := src.Films(t.Context(), "Madrid")

	require.NoError(t, err)
	require.Len(t, films, 3)
	assert.Equal(t, "Generic Movie Title 1", films[0].Title)
	assert.Equal(t, "Indie Mock House", films[2].CinemaName)

	films[0].Title = "changed"
	again, err := src.Films(t.Context(), "")
	require.NoError(t, err)
	assert.Equal(t, "Generic Movie Title 1", again[0].Title, "placeholder list is not shared")
}

func TestSource_BucketProgramme(t *testing.T) {
	dir := t.TempDir()
	content := "Film,Film Characteristics,Cinema Name,Cinema Location\n" +
		"Perfect Days,\"Drama\",Cinemes Verdi,\"Carrer de Verdi, 32, 08012 Barcelona\"\n" +
		"Broken line,Drama\n" +
		"\n" +
		"\"Say \"\"Hi\"\"\",Comedy , Cine Nou , Carrer Nou 1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "programme.csv"), []byte(content), 0o600))

	src := createTestSource(t, "file://"+dir, "programme.csv")

	films, err := src.Films(t.Context(), "barcelona")

	require.NoError(t, err)
	assert.Equal(t, []entity.LocalFilm{
		{Title: "Perfect Days", Characteristics: "Drama", CinemaName: "Cinemes Verdi", CinemaLocation: "Carrer de Verdi, 32, 08012 Barcelona"},
		{Title: `Say "Hi"`, Characteristics: "Comedy", CinemaName: "Cine Nou", CinemaLocation: "Carrer Nou 1"},
	}, films)
}

func TestSource_BucketMissingKey(t *testing.T) {
	src := createTestSource(t, "file://"+t.TempDir(), "missing.csv")

	films, err := src.Films(t.Context(), "Barcelona")

	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestSource_HeaderOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "programme.csv"), []byte("Film,Film Characteristics,Cinema Name,Cinema Location\n"), 0o600))
	src := createTestSource(t, "file://"+dir, "programme.csv")

	films, err := src.Films(t.Context(), "Barcelona")

	require.NoError(t, err)
	assert.Empty(t, films)
}

func TestSource_SkipsUnreadableLines(t *testing.T) {
	dir := t.TempDir()
	content := "Fi\"lm,Film Characteristics,Cinema Name,Cinema Location\n" +
		"Perfect Days,Drama,Cinemes Verdi,Carrer de Verdi 32\n" +
		"Past \"Lives,Romance,Cinemes Verdi,Carrer de Verdi 32\n" +
		"Robot Dreams,Animation,Zumzeig,Carrer de Bejar 53\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "programme.csv"), []byte(content), 0o600))
	src := createTestSource(t, "file://"+dir, "programme.csv")

	films, err := src.Films(t.Context(), "Barcelona")

	require.NoError(t, err)
	require.Len(t, films, 2)
	assert.Equal(t, "Perfect Days", films[0].Title)
	assert.Equal(t, "Robot Dreams", films[1].Title)
}

func TestCSV(t *testing.T) {
	out, err := CSV([]entity.LocalFilm{
		{Title: "Robot Dreams", Characteristics: "Animation, Adventure, Drama", CinemaName: "Cinemes Verdi", CinemaLocation: "Carrer de Verdi, 32, 08012 Barcelona"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Film,Film Characteristics,Cinema Name,Cinema Location\n"+
		"Robot Dreams,\"Animation, Adventure, Drama\",Cinemes Verdi,\"Carrer de Verdi, 32, 08012 Barcelona\"\n", out)
}
