package handler

import (
	"cinematch/internal/usecase"
)

// userView is the current user as returned by the API.
// QuizResults is the typed payload, the raw stored string when it does not parse, or null.
type userView struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	QuizResults any    `json:"quizResults"`
}

func newUserView(profile *usecase.ProfileOutput) *userView {
	view := &userView{
		ID:    profile.ID,
		Email: profile.Email,
		Name:  profile.Name,
	}
	switch {
	case profile.QuizResults != nil:
		view.QuizResults = profile.QuizResults
	case profile.RawQuizResults != "":
		view.QuizResults = profile.RawQuizResults
	}

	return view
}
