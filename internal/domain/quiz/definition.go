// Package quiz holds the personality quiz shown to users: five Big-Five
// sections with one selectable statement each, followed by sample films to rate.
package quiz

import (
	"slices"

	"cinematch/internal/domain/entity"
)

const (
	MinRating = 1
	MaxRating = 5
)

// Option is one selectable statement of a personality section.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// PersonalitySection asks the user to pick the statement that fits best.
type PersonalitySection struct {
	ID          entity.Trait `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Options     []Option     `json:"options"`
}

// MovieToRate is a sample film of the rating step.
type MovieToRate struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// MovieRatingSection lists the films the user may rate or skip.
type MovieRatingSection struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Movies      []MovieToRate `json:"movies"`
}

// Definition is the whole quiz.
type Definition struct {
	Personality  []PersonalitySection `json:"personality"`
	MovieRatings MovieRatingSection   `json:"movieRatings"`
}

// Section returns the personality section for a trait.
func (d *Definition) Section(trait entity.Trait) (PersonalitySection, bool) {
	for _, section := range d.Personality {
		if section.ID == trait {
			return section, true
		}
	}

	return PersonalitySection{}, false
}

// IsValidOption reports whether code is one of the trait's options.
func (d *Definition) IsValidOption(trait entity.Trait, code string) bool {
	section, ok := d.Section(trait)
	if !ok {
		return false
	}

	return slices.ContainsFunc(section.Options, func(o Option) bool { return o.Value == code })
}

// Default returns the quiz served to every user.
func Default() *Definition {
	def := &Definition{
		Personality: []PersonalitySection{
			{
				ID:          entity.TraitOpenness,
				Title:       "Openness to Experience",
				Description: "Linked to a love for creative, unconventional, or thought-provoking films. Select one option that best describes you.",
				Options: []Option{
					{Value: "o1", Label: "I love movies that make me think or see the world differently."},
					{Value: "o2", Label: "I enjoy discovering lesser-known film genres or styles."},
					{Value: "o3", Label: "I prefer unusual stories over the typical ones."},
					{Value: "o4", Label: "I'm drawn to visually creative or artistic movies."},
					{Value: "o5", Label: "I like exploring philosophical or existential themes in films."},
					{Value: "o6", Label: "I find complex or non-linear plots fascinating."},
				},
			},
			{
				ID:          entity.TraitConscientiousness,
				Title:       "Conscientiousness",
				Description: "This trait reflects responsibility, organization, and goal-oriented behavior. Select one option that best describes you.",
				Options: []Option{
					{Value: "c1", Label: "I appreciate well-structured plots and clear storytelling."},
					{Value: "c2", Label: "I prefer movies with a strong moral message or that uphold values."},
					{Value: "c3", Label: "I'm detail-oriented and notice continuity or plot holes."},
					{Value: "c4", Label: "I like films that inspire me to be productive or achieve something."},
					{Value: "c5", Label: "I finish movies I start, even if I'm not fully enjoying them."},
					{Value: "c6", Label: "I enjoy films that require focus and attention to subtle details."},
				},
			},
			{
				ID:          entity.TraitExtraversion,
				Title:       "Extraversion",
				Description: "This trait is about sociability, assertiveness, and seeking excitement. Select one option that best describes you.",
				Options: []Option{
					{Value: "e1", Label: "I enjoy high-energy, action-packed, or very social movies."},
					{Value: "e2", Label: "I love watching movies with a group of friends."},
					{Value: "e3", Label: "I prefer films that are stimulating and exciting from start to finish."},
					{Value: "e4", Label: "I often talk about movies I've seen and enjoy discussing them."},
					{Value: "e5", Label: "I like movies with charismatic, outgoing protagonists."},
					{Value: "e6", Label: "I seek out blockbusters and popular, talked-about films."},
				},
			},
			{
				ID:          entity.TraitAgreeableness,
				Title:       "Agreeableness",
				Description: "This trait relates to compassion, cooperation, and empathy. Select one option that best describes you.",
				Options: []Option{
					{Value: "a1", Label: "I prefer heartwarming stories and movies with positive resolutions."},
					{Value: "a2", Label: "I connect deeply with characters and their emotional journeys."},
					{Value: "a3", Label: "I dislike films with excessive conflict or cruelty."},
					{Value: "a4", Label: "I enjoy movies that promote cooperation and understanding."},
					{Value: "a5", Label: "I often feel what the characters are feeling (empathy)."},
					{Value: "a6", Label: "I prefer movies where characters are kind and supportive of each other."},
				},
			},
			{
				ID:          entity.TraitNeuroticism,
				Title:       "Neuroticism (Emotional Stability)",
				Description: "This trait involves sensitivity to stress and negative emotions. Select one option that best describes you in relation to films.",
				Options: []Option{
					{Value: "n1", Label: "I am strongly affected by intense or emotionally distressing scenes."},
					{Value: "n2", Label: "I prefer movies that are lighthearted and avoid heavy topics."},
					{Value: "n3", Label: "I sometimes find thrillers or horror movies too stressful."},
					{Value: "n4", Label: "I enjoy films that explore complex emotions, even if challenging."},
					{Value: "n5", Label: "I often reflect on a movie's emotional impact long after watching it."},
					{Value: "n6", Label: "I seek out films that offer comfort or emotional release."},
				},
			},
		},
	}

	def.MovieRatings = MovieRatingSection{
		Title:       "Movie Ratings",
		Description: "Rate the following movies from 1 (Dislike) to 5 (Love). You can skip movies you haven't seen.",
		Movies: []MovieToRate{
			{ID: "movie_1", Title: "Inception (2010)"},
			{ID: "movie_2", Title: "Parasite (2019)"},
			{ID: "movie_3", Title: "The Shawshank Redemption (1994)"},
			{ID: "movie_4", Title: "Spirited Away (2001)"},
			{ID: "movie_5", Title: "Mad Max: Fury Road (2015)"},
			{ID: "movie_6", Title: "La La Land (2016)"},
		},
	}

	return def
}
