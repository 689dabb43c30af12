package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/ErickRdzRm7/EduAI/core"
)

type stubGenerator struct {
	questions []Question
	err       error
	delay     time.Duration
}

func (g *stubGenerator) Quiz(ctx context.Context, topic, level string, numQuestions int) ([]Question, error) {
	if g.delay > 0 {
		select {
		case <-time.After(g.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.questions, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func newTestService(gen Generator) *service {
	conf := &core.Config{}
	conf.AI.Timeout = 50 * time.Millisecond
	return NewService(conf, nopLogger{}, gen)
}

func TestServiceGenerate(t *testing.T) {
	ctx := context.Background()
	generated := []Question{
		{Question: "What is a goroutine?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "a"},
		{Question: "What is a channel?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "b"},
		{Question: "What does select do?", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "c"},
	}

	tests := []struct {
		name         string
		gen          Generator
		numQuestions int
		wantLen      int
		wantFallback bool
	}{
		{name: "generator ok", gen: &stubGenerator{questions: generated}, numQuestions: 3, wantLen: 3},
		{name: "over-produced list truncated", gen: &stubGenerator{questions: generated}, numQuestions: 2, wantLen: 2},
		{name: "generator error", gen: &stubGenerator{err: errors.New("boom")}, numQuestions: 4, wantLen: 4, wantFallback: true},
		{name: "generator hangs past deadline", gen: &stubGenerator{delay: time.Second}, numQuestions: 2, wantLen: 2, wantFallback: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(tt.gen)
			questions := svc.Generate(ctx, "Concurrency", "Advanced", tt.numQuestions)
			if len(questions) != tt.wantLen {
				t.Fatalf("Generate() returned %d questions, want %d", len(questions), tt.wantLen)
			}
			for i, q := range questions {
				if q.Question == "" || q.CorrectAnswer == "" {
					t.Errorf("question %d incomplete: %+v", i, q)
				}
				if len(q.Options) != NumOptions {
					t.Errorf("question %d has %d options, want %d", i, len(q.Options), NumOptions)
				}
			}
			if tt.wantFallback && questions[0].Question == generated[0].Question {
				t.Error("expected fallback questions, got generated ones")
			}
		})
	}
}
