// Package ai implements the content and quiz generators over the
// generative-AI service's internal HTTP API.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"

	"github.com/ErickRdzRm7/EduAI/core"
	"github.com/ErickRdzRm7/EduAI/core/quiz"
	"github.com/ErickRdzRm7/EduAI/core/topic"
)

const (
	contentPath = "/api/internal/generate-ai-content"
	quizPath    = "/api/internal/generate-quiz"
)

type (
	contentRequest struct {
		TopicName   string `json:"topicName"`
		Description string `json:"description"`
		BaseLevel   string `json:"baseLevel"`
	}

	contentResponse struct {
		Beginner     []string `json:"beginner"`
		Intermediate []string `json:"intermediate"`
		Advanced     []string `json:"advanced"`
	}

	quizRequest struct {
		Topic        string `json:"topic"`
		Level        string `json:"level"`
		NumQuestions int    `json:"numQuestions"`
	}

	quizResponse struct {
		Questions []quiz.Question `json:"questions"`
	}

	// Generator is the HTTP-backed content and quiz generator.
	Generator struct {
		logger     core.Logger
		baseURL    string
		httpClient *http.Client
	}
)

var (
	_ topic.Generator = (*Generator)(nil)
	_ quiz.Generator  = (*Generator)(nil)
)

func NewGenerator(conf *core.Config, logger core.Logger) *Generator {
	return &Generator{
		logger:  logger,
		baseURL: strings.TrimRight(conf.AI.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: conf.AI.Timeout,
		},
	}
}

func (g *Generator) TopicContent(ctx context.Context, title, description, level string) (topic.Content, error) {
	var res contentResponse
	req := contentRequest{TopicName: title, Description: description, BaseLevel: level}
	if err := g.post(ctx, contentPath, req, &res); err != nil {
		return nil, err
	}
	if res.Beginner == nil || res.Intermediate == nil || res.Advanced == nil {
		return nil, errors.New("generated content is missing level keys")
	}
	return topic.Content{
		topic.LevelBeginner:     res.Beginner,
		topic.LevelIntermediate: res.Intermediate,
		topic.LevelAdvanced:     res.Advanced,
	}, nil
}

func (g *Generator) Quiz(ctx context.Context, topicTitle, level string, numQuestions int) ([]quiz.Question, error) {
	var res quizResponse
	req := quizRequest{Topic: topicTitle, Level: level, NumQuestions: numQuestions}
	if err := g.post(ctx, quizPath, req, &res); err != nil {
		return nil, err
	}
	if len(res.Questions) == 0 {
		return nil, errors.New("generated quiz has no questions")
	}
	for i, q := range res.Questions {
		if q.Question == "" || len(q.Options) != quiz.NumOptions || q.CorrectAnswer == "" {
			return nil, errors.Errorf("generated question %d is malformed", i)
		}
	}
	return res.Questions, nil
}

func (g *Generator) post(ctx context.Context, path string, body, out interface{}) error {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return errors.Wrap(err, "encoding request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, &buf)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "calling %s", path)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "reading response")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Warn("generation request failed", "path", path, "status", resp.StatusCode, "body", string(raw))
		return errors.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	if err = json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decoding %s response", path)
	}
	return nil
}
