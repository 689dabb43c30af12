package quiz

import (
	validator "github.com/go-playground/validator/v10"
)

// Question is one multiple-choice quiz entry. Quizzes are ephemeral and
// never persisted server-side.
type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// NumOptions is the fixed number of choices per question.
const NumOptions = 4

const defaultNumQuestions = 5

type NewQuiz struct {
	Level        string `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	NumQuestions int    `json:"numQuestions" validate:"min=1,max=10"`
}

func (nq *NewQuiz) Validate(validate *validator.Validate) error {
	if nq.NumQuestions == 0 {
		nq.NumQuestions = defaultNumQuestions
	}
	return validate.Struct(nq)
}
