package entity

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// Trait names one of the five Big-Five personality dimensions.
type Trait string

const (
	TraitOpenness          Trait = "openness"
	TraitConscientiousness Trait = "conscientiousness"
	TraitExtraversion      Trait = "extraversion"
	TraitAgreeableness     Trait = "agreeableness"
	TraitNeuroticism       Trait = "neuroticism"
)

// Traits lists the personality traits in quiz order.
var Traits = []Trait{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// PersonalityScores maps each trait to the selected option code.
// An empty code means the trait has not been answered yet.
type PersonalityScores struct {
	Openness          string `json:"openness,omitempty"`
	Conscientiousness string `json:"conscientiousness,omitempty"`
	Extraversion      string `json:"extraversion,omitempty"`
	Agreeableness     string `json:"agreeableness,omitempty"`
	Neuroticism       string `json:"neuroticism,omitempty"`
}

// Get returns the option code selected for a trait.
func (p PersonalityScores) Get(trait Trait) string {
	switch trait {
	case TraitOpenness:
		return p.Openness
	case TraitConscientiousness:
		return p.Conscientiousness
	case TraitExtraversion:
		return p.Extraversion
	case TraitAgreeableness:
		return p.Agreeableness
	case TraitNeuroticism:
		return p.Neuroticism
	default:
		return ""
	}
}

// Answered returns the traits that carry an option code.
func (p PersonalityScores) Answered() []Trait {
	answered := make([]Trait, 0, len(Traits))
	for _, trait := range Traits {
		if p.Get(trait) != "" {
			answered = append(answered, trait)
		}
	}

	return answered
}

// MovieRating is one sample film rating. A nil Rating means the film was skipped.
type MovieRating struct {
	MovieID string `json:"movieId"`
	Title   string `json:"title"`
	Rating  *int   `json:"rating,omitempty"`
}

// QuizResults is the structured payload stored inside User.QuizResults.
type QuizResults struct {
	PersonalityScores PersonalityScores `json:"personalityScores"`
	MovieRatings      []MovieRating     `json:"movieRatings,omitempty"`
}

// Encode serializes the payload into the form kept in the record store.
func (q *QuizResults) Encode() (string, error) {
	raw, err := json.Marshal(q)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode quiz results")
	}

	return string(raw), nil
}

// ParseQuizResults decodes a stored payload. Blank input yields (nil, nil).
func ParseQuizResults(raw string) (*QuizResults, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var results QuizResults
	if err := json.Unmarshal([]byte(raw), &results); err != nil {
		return nil, errors.Wrap(err, "failed to parse quiz results")
	}

	return &results, nil
}
