package topic

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/ErickRdzRm7/EduAI/core"
)

type stubRepo struct {
	topics []Topic
}

func (r *stubRepo) CreateTopic(ctx context.Context, t Topic) (Topic, error) {
	t.ID = uuid.NewString()
	r.topics = append(r.topics, t)
	return t, nil
}

func (r *stubRepo) SearchTopics(ctx context.Context, filter SearchFilter, ordering ...core.DBOrdering) ([]Topic, error) {
	return r.topics, nil
}

func (r *stubRepo) GetTopicBySlug(ctx context.Context, slug string) (Topic, error) {
	for _, t := range r.topics {
		if t.Slug == slug {
			return t, nil
		}
	}
	return Topic{}, ErrNotFound
}

func (r *stubRepo) UpdateTopic(ctx context.Context, t Topic) (Topic, error) {
	for i, old := range r.topics {
		if old.ID == t.ID {
			r.topics[i] = t
			return t, nil
		}
	}
	return Topic{}, ErrNotFound
}

func (r *stubRepo) DeleteTopic(ctx context.Context, id string) error {
	for i, t := range r.topics {
		if t.ID == id {
			r.topics = append(r.topics[:i], r.topics[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *stubRepo) FilterSlugs(ctx context.Context, prefix string) ([]string, error) {
	var slugs []string
	for _, t := range r.topics {
		if strings.HasPrefix(t.Slug, prefix) {
			slugs = append(slugs, t.Slug)
		}
	}
	return slugs, nil
}

type stubGenerator struct {
	content Content
	err     error
	delay   time.Duration
}

func (g *stubGenerator) TopicContent(ctx context.Context, title, description, level string) (Content, error) {
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
	return g.content, nil
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Warn(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Fatal(msg string, args ...interface{}) {}

func newTestService(repo *stubRepo, gen Generator) *service {
	conf := &core.Config{}
	conf.AI.Timeout = 50 * time.Millisecond
	return NewService(conf, nopLogger{}, repo, gen)
}

func TestServiceCreateSlugCollisions(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&stubRepo{}, &stubGenerator{content: NewContent()})

	nt := NewTopic{Title: "Java Basics", Level: LevelBeginner}

	first, err := svc.Create(ctx, "u1", nt)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if first.Slug != "java-basics" {
		t.Errorf("first slug = %q, want %q", first.Slug, "java-basics")
	}

	second, err := svc.Create(ctx, "u1", nt)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if second.Slug != "java-basics-1" {
		t.Errorf("second slug = %q, want %q", second.Slug, "java-basics-1")
	}
}

func TestServiceCreateContentFallback(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		gen  Generator
		want Content
	}{
		{
			name: "generator error",
			gen:  &stubGenerator{err: errors.New("boom")},
			want: FallbackContent("Java Basics", "intro to java"),
		},
		{
			name: "generator hangs past deadline",
			gen:  &stubGenerator{delay: time.Second, content: NewContent()},
			want: FallbackContent("Java Basics", "intro to java"),
		},
		{
			name: "missing level keys normalized",
			gen:  &stubGenerator{content: Content{LevelBeginner: {"a", "b"}}},
			want: Content{LevelBeginner: {"a", "b"}, LevelIntermediate: {}, LevelAdvanced: {}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&stubRepo{}, tt.gen)
			topic, err := svc.Create(ctx, "u1", NewTopic{Title: "Java Basics", Description: "intro to java", Level: LevelBeginner})
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}
			if len(topic.Content) != len(Levels) {
				t.Errorf("content has %d keys, want %d", len(topic.Content), len(Levels))
			}
			if !reflect.DeepEqual(topic.Content, tt.want) {
				t.Errorf("content = %v, want %v", topic.Content, tt.want)
			}
		})
	}
}

func TestServiceOwnership(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	svc := newTestService(repo, &stubGenerator{content: NewContent()})

	created, err := svc.Create(ctx, "owner", NewTopic{Title: "Go Routines", Level: LevelAdvanced})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if _, err = svc.Update(ctx, created.Slug, "intruder", UpdateTopic{Title: "Hijacked"}); err != ErrNotOwner {
		t.Errorf("Update() error = %v, want %v", err, ErrNotOwner)
	}
	if _, err = svc.Delete(ctx, created.Slug, "intruder"); err != ErrNotOwner {
		t.Errorf("Delete() error = %v, want %v", err, ErrNotOwner)
	}

	// record unchanged
	got, err := svc.GetBySlug(ctx, created.Slug)
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Title != "Go Routines" {
		t.Errorf("title = %q, want unchanged %q", got.Title, "Go Routines")
	}

	if _, err = svc.Delete(ctx, created.Slug, "owner"); err != nil {
		t.Errorf("Delete() by owner error = %v", err)
	}
	if _, err = svc.GetBySlug(ctx, created.Slug); errors.Cause(err) != ErrNotFound {
		t.Errorf("GetBySlug() after delete error = %v, want %v", err, ErrNotFound)
	}
}

func TestServiceUpdateRecomputesSlug(t *testing.T) {
	ctx := context.Background()
	repo := &stubRepo{}
	svc := newTestService(repo, &stubGenerator{content: NewContent()})

	created, err := svc.Create(ctx, "u1", NewTopic{Title: "Java Basics", Level: LevelBeginner})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// same title keeps the slug
	unchanged, err := svc.Update(ctx, created.Slug, "u1", UpdateTopic{Title: "Java Basics", Description: "updated"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if unchanged.Slug != "java-basics" {
		t.Errorf("slug = %q, want %q", unchanged.Slug, "java-basics")
	}
	if unchanged.Description != "updated" {
		t.Errorf("description = %q, want %q", unchanged.Description, "updated")
	}

	renamed, err := svc.Update(ctx, created.Slug, "u1", UpdateTopic{Title: "Java Advanced"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if renamed.Slug != "java-advanced" {
		t.Errorf("slug = %q, want %q", renamed.Slug, "java-advanced")
	}
}
