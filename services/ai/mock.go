package ai

import (
	"context"

	"github.com/ErickRdzRm7/EduAI/core/quiz"
	"github.com/ErickRdzRm7/EduAI/core/topic"
)

// Mock is a canned generator for tests. Zero value fails every call,
// driving callers onto their fallback paths.
type Mock struct {
	Content   topic.Content
	Questions []quiz.Question
	Err       error
}

var (
	_ topic.Generator = (*Mock)(nil)
	_ quiz.Generator  = (*Mock)(nil)
)

func (m *Mock) TopicContent(ctx context.Context, title, description, level string) (topic.Content, error) {
	if m.Err != nil || m.Content == nil {
		return nil, m.failure()
	}
	return m.Content, nil
}

func (m *Mock) Quiz(ctx context.Context, topicTitle, level string, numQuestions int) ([]quiz.Question, error) {
	if m.Err != nil || m.Questions == nil {
		return nil, m.failure()
	}
	return m.Questions, nil
}

func (m *Mock) failure() error {
	if m.Err != nil {
		return m.Err
	}
	return context.DeadlineExceeded
}
