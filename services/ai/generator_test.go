package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/ErickRdzRm7/EduAI/core"
	"github.com/ErickRdzRm7/EduAI/core/quiz"
	"github.com/ErickRdzRm7/EduAI/core/topic"
)

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func newTestGenerator(url string) *Generator {
	conf := &core.Config{}
	conf.AI.BaseURL = url
	conf.AI.Timeout = time.Second
	return NewGenerator(conf, nopLogger{})
}

func TestGeneratorTopicContent(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    topic.Content
		wantErr bool
	}{
		{
			name: "well-formed response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != contentPath {
					t.Errorf("path = %q, want %q", r.URL.Path, contentPath)
				}
				var req contentRequest
				_ = json.NewDecoder(r.Body).Decode(&req)
				if req.TopicName != "Java Basics" || req.BaseLevel != "Beginner" {
					t.Errorf("unexpected request: %+v", req)
				}
				_ = json.NewEncoder(w).Encode(contentResponse{
					Beginner:     []string{"variables"},
					Intermediate: []string{"generics"},
					Advanced:     []string{"jvm internals"},
				})
			},
			want: topic.Content{
				topic.LevelBeginner:     {"variables"},
				topic.LevelIntermediate: {"generics"},
				topic.LevelAdvanced:     {"jvm internals"},
			},
		},
		{
			name: "missing level key",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"beginner":["variables"]}`))
			},
			wantErr: true,
		},
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"error":"generation failed"}`, http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("lol"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			gen := newTestGenerator(srv.URL)
			got, err := gen.TopicContent(context.Background(), "Java Basics", "intro", "Beginner")
			if (err != nil) != tt.wantErr {
				t.Fatalf("TopicContent() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TopicContent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGeneratorQuiz(t *testing.T) {
	goodQuestion := quiz.Question{
		Question:      "What is the JVM?",
		Options:       []string{"a", "b", "c", "d"},
		CorrectAnswer: "a",
	}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantLen int
		wantErr bool
	}{
		{
			name: "well-formed response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != quizPath {
					t.Errorf("path = %q, want %q", r.URL.Path, quizPath)
				}
				_ = json.NewEncoder(w).Encode(quizResponse{Questions: []quiz.Question{goodQuestion, goodQuestion}})
			},
			wantLen: 2,
		},
		{
			name: "empty question list",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"questions":[]}`))
			},
			wantErr: true,
		},
		{
			name: "wrong option count",
			handler: func(w http.ResponseWriter, r *http.Request) {
				bad := goodQuestion
				bad.Options = []string{"a", "b"}
				_ = json.NewEncoder(w).Encode(quizResponse{Questions: []quiz.Question{bad}})
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			gen := newTestGenerator(srv.URL)
			got, err := gen.Quiz(context.Background(), "Java Basics", "Beginner", 2)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Quiz() error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != tt.wantLen {
				t.Errorf("Quiz() returned %d questions, want %d", len(got), tt.wantLen)
			}
		})
	}
}
