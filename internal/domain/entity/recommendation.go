package entity

// FilmRecommendation is one "hidden gem" suggestion produced by the model.
type FilmRecommendation struct {
	Title       string `json:"title" validate:"required"`
	Genre       string `json:"genre" validate:"required"`
	Description string `json:"description" validate:"required"`
	Why         string `json:"why" validate:"required"`
}

// LocalFilmRecommendation is a film currently playing at a named cinema.
type LocalFilmRecommendation struct {
	Title          string `json:"title" validate:"required"`
	CinemaName     string `json:"cinemaName" validate:"required"`
	CinemaLocation string `json:"cinemaLocation" validate:"required"`
}

// LocalFilm is one row of a cinema programme.
type LocalFilm struct {
	Title           string
	Characteristics string
	CinemaName      string
	CinemaLocation  string
}
