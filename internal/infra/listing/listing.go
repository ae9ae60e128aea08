// Package listing provides the programme of films playing in local cinemas.
package listing

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"io"
	"log/slog"
	"strings"

	"cinematch/config"
	"cinematch/internal/domain/entity"
	"cinematch/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const minFields = 4

//go:embed data/barcelona_films.csv
var embeddedListings []byte

// placeholderFilms is served for cities without a programme.
var placeholderFilms = []entity.LocalFilm{
	{Title: "Generic Movie Title 1", Characteristics: "Comedy, Family", CinemaName: "Mock Cinema Plex A", CinemaLocation: "123 Fake St, Mocktown"},
	{Title: "Another Film Adventure", Characteristics: "Action, Sci-Fi", CinemaName: "Mock Cinema Plex B", CinemaLocation: "456 Other Ave, Mockcity"},
	{Title: "The Third Movie Option", Characteristics: "Drama, Romance", CinemaName: "Indie Mock House", CinemaLocation: "789 Any Rd, Mockville"},
}

// Params defines the dependencies of the listing source.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Source is a service.ListingSource reading a CSV programme
// (Film,Film Characteristics,Cinema Name,Cinema Location) for one city.
type Source struct {
	bucket *blob.Bucket
	key    string
	city   string
	logger *slog.Logger
}

// New opens the configured bucket, or falls back to the embedded programme when none is set.
// The bucket is closed when the application stops.
func New(lc fx.Lifecycle, params Params) (*Source, error) {
	cfg := params.Config.Listings
	src := &Source{
		key:    cfg.Key,
		city:   strings.ToLower(cfg.DefaultCity),
		logger: params.Logger.With(slog.String("component", "listing")),
	}

	if cfg.BucketURL == "" {
		return src, nil
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open listings bucket %s", cfg.BucketURL)
	}
	src.bucket = bucket

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return src, nil
}

// NewListingSource exposes the source as a service.ListingSource.
func NewListingSource(src *Source) service.ListingSource {
	return src
}

// Films returns the programme when location names the configured city,
// and a fixed placeholder list for any other location.
func (s *Source) Films(ctx context.Context, location string) ([]entity.LocalFilm, error) {
	if s.city == "" || !strings.Contains(strings.ToLower(location), s.city) {
		s.logger.Info("No programme for location, using placeholder list", slog.String("location", location))

		return append([]entity.LocalFilm(nil), placeholderFilms...), nil
	}

	raw, err := s.load(ctx)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			s.logger.Warn("Listings file not found", slog.String("key", s.key))

			return []entity.LocalFilm{}, nil
		}

		return nil, errors.Wrap(err, "load listings")
	}

	films := s.parse(raw)
	s.logger.Debug("Parsed listings", slog.Int("films", len(films)))

	return films, nil
}

func (s *Source) load(ctx context.Context) ([]byte, error) {
	if s.bucket == nil {
		return embeddedListings, nil
	}

	return s.bucket.ReadAll(ctx, s.key)
}

// parse reads quoted CSV, dropping the header and any line with too few fields.
func (s *Source) parse(raw []byte) []entity.LocalFilm {
	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	films := []entity.LocalFilm{}
	header := true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				s.logger.Error("Failed to read listings", slog.Any("error", err))

				break
			}
			s.logger.Warn("Skipping unreadable listings line", slog.Int("line", parseErr.Line), slog.Any("error", err))
			header = false

			continue
		}
		if header {
			header = false

			continue
		}

		if len(record) < minFields {
			line, _ := reader.FieldPos(0)
			s.logger.Warn("Skipping listings line with missing fields",
				slog.Int("line", line),
				slog.Int("fields", len(record)))

			continue
		}

		films = append(films, entity.LocalFilm{
			Title:           strings.TrimSpace(record[0]),
			Characteristics: strings.TrimSpace(record[1]),
			CinemaName:      strings.TrimSpace(record[2]),
			CinemaLocation:  strings.TrimSpace(record[3]),
		})
	}

	return films
}

// CSV renders films back into the listings format, for embedding in prompts.
func CSV(films []entity.LocalFilm) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Film", "Film Characteristics", "Cinema Name", "Cinema Location"}); err != nil {
		return "", errors.Wrap(err, "write listings header")
	}
	for _, f := range films {
		if err := w.Write([]string{f.Title, f.Characteristics, f.CinemaName, f.CinemaLocation}); err != nil {
			return "", errors.Wrap(err, "write listings row")
		}
	}
	w.Flush()

	return buf.String(), errors.Wrap(w.Error(), "flush listings")
}
