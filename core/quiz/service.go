package quiz

import (
	"context"
	"fmt"

	"github.com/ErickRdzRm7/EduAI/core"
)

type (
	// Generator produces quiz questions for a topic at a given level.
	Generator interface {
		Quiz(ctx context.Context, topic, level string, numQuestions int) ([]Question, error)
	}

	Service interface {
		Generate(ctx context.Context, topic, level string, numQuestions int) []Question
	}

	service struct {
		conf   *core.Config
		logger core.Logger
		gen    Generator
	}
)

var _ Service = (*service)(nil)

func NewService(conf *core.Config, logger core.Logger, gen Generator) *service {
	return &service{
		conf:   conf,
		logger: logger,
		gen:    gen,
	}
}

// Generate asks the Generator for questions within the configured deadline,
// substituting FallbackQuestions on any failure so a quiz always renders.
func (svc *service) Generate(ctx context.Context, topic, level string, numQuestions int) []Question {
	ctx, cancel := context.WithTimeout(ctx, svc.conf.AI.Timeout)
	defer cancel()

	questions, err := svc.gen.Quiz(ctx, topic, level, numQuestions)
	if err != nil {
		svc.logger.Warn("quiz generation failed; falling back", "topic", topic, "err", err)
		return FallbackQuestions(topic, level, numQuestions)
	}
	if len(questions) > numQuestions {
		questions = questions[:numQuestions]
	}
	return questions
}

// FallbackQuestions builds deterministic placeholder questions of the
// regular quiz shape.
func FallbackQuestions(topic, level string, numQuestions int) []Question {
	questions := make([]Question, 0, numQuestions)
	for i := 1; i <= numQuestions; i++ {
		questions = append(questions, Question{
			Question:      fmt.Sprintf("Question %d about %s (%s) is being prepared. Which option is marked correct?", i, topic, level),
			Options:       []string{"Option A", "Option B", "Option C", "Option D"},
			CorrectAnswer: "Option A",
		})
	}
	return questions
}
