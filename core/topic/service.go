package topic

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/ErickRdzRm7/EduAI/core"
)

var (
	// errors
	ErrNotFound   = errors.New("topic not found")
	ErrSlugExists = errors.New("a topic with this slug already exists")
	ErrNotOwner   = errors.New("you do not own this topic")

	errTopicFieldRequired = errors.New("at least one field is required")
)

type (
	// Generator produces per-level learning content for a topic. AI-backed
	// in production, deterministic in tests.
	Generator interface {
		TopicContent(ctx context.Context, title, description, level string) (Content, error)
	}

	Repository interface {
		CreateTopic(ctx context.Context, t Topic) (Topic, error)
		SearchTopics(ctx context.Context, filter SearchFilter, ordering ...core.DBOrdering) ([]Topic, error)
		GetTopicBySlug(ctx context.Context, slug string) (Topic, error)
		UpdateTopic(ctx context.Context, t Topic) (Topic, error)
		DeleteTopic(ctx context.Context, id string) error
		FilterSlugs(ctx context.Context, prefix string) ([]string, error)
	}

	Service interface {
		Create(ctx context.Context, userID string, nt NewTopic) (Topic, error)
		Search(ctx context.Context, filter SearchFilter, ordering ...core.DBOrdering) ([]Topic, error)
		GetBySlug(ctx context.Context, slug string) (Topic, error)
		Update(ctx context.Context, slug, userID string, ut UpdateTopic) (Topic, error)
		Delete(ctx context.Context, slug, userID string) (Topic, error)
	}

	service struct {
		conf   *core.Config
		logger core.Logger
		repo   Repository
		gen    Generator
	}
)

var _ Service = (*service)(nil)

func NewService(conf *core.Config, logger core.Logger, repo Repository, gen Generator) *service {
	return &service{
		conf:   conf,
		logger: logger,
		repo:   repo,
		gen:    gen,
	}
}

func (svc *service) Create(ctx context.Context, userID string, nt NewTopic) (Topic, error) {
	slug, err := svc.uniqueSlug(ctx, nt.Title)
	if err != nil {
		return Topic{}, err
	}

	now := time.Now().UTC()
	t := Topic{
		Title:       nt.Title,
		Slug:        slug,
		Description: nt.Description,
		Level:       nt.Level,
		Content:     svc.generateContent(ctx, nt.Title, nt.Description, nt.Level),
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateTopic(ctx, t)
}

func (svc *service) Search(ctx context.Context, filter SearchFilter, ordering ...core.DBOrdering) ([]Topic, error) {
	return svc.repo.SearchTopics(ctx, filter, ordering...)
}

func (svc *service) GetBySlug(ctx context.Context, slug string) (Topic, error) {
	return svc.repo.GetTopicBySlug(ctx, slug)
}

func (svc *service) Update(ctx context.Context, slug, userID string, ut UpdateTopic) (Topic, error) {
	t, err := svc.repo.GetTopicBySlug(ctx, slug)
	if err != nil {
		return Topic{}, err
	}
	if t.UserID != userID {
		return Topic{}, ErrNotOwner
	}

	if ut.Title != "" && ut.Title != t.Title {
		t.Title = ut.Title
		// recompute the slug, ignoring the topic's own
		newSlug, err := svc.uniqueSlug(ctx, ut.Title, t.Slug)
		if err != nil {
			return Topic{}, err
		}
		t.Slug = newSlug
	}
	if ut.Description != "" {
		t.Description = ut.Description
	}
	if ut.Level != "" {
		t.Level = ut.Level
	}
	if ut.Content != nil {
		t.Content = ut.Content.Normalize()
	}
	t.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateTopic(ctx, t)
}

func (svc *service) Delete(ctx context.Context, slug, userID string) (Topic, error) {
	t, err := svc.repo.GetTopicBySlug(ctx, slug)
	if err != nil {
		return Topic{}, err
	}
	if t.UserID != userID {
		return Topic{}, ErrNotOwner
	}
	if err = svc.repo.DeleteTopic(ctx, t.ID); err != nil {
		return Topic{}, err
	}
	return t, nil
}

func (svc *service) uniqueSlug(ctx context.Context, title string, ownSlugs ...string) (string, error) {
	existing, err := svc.repo.FilterSlugs(ctx, Slugify(title))
	if err != nil {
		return "", errors.Wrap(err, "filtering slugs")
	}
	taken := make(map[string]bool, len(existing))
	for _, s := range existing {
		taken[s] = true
	}
	for _, s := range ownSlugs {
		delete(taken, s)
	}
	return UniqueSlug(title, func(slug string) bool { return taken[slug] })
}

// generateContent asks the Generator for per-level content within the
// configured deadline, substituting FallbackContent on any failure.
func (svc *service) generateContent(ctx context.Context, title, description, level string) Content {
	ctx, cancel := context.WithTimeout(ctx, svc.conf.AI.Timeout)
	defer cancel()

	content, err := svc.gen.TopicContent(ctx, title, description, level)
	if err != nil {
		svc.logger.Warn("content generation failed; falling back", "topic", title, "err", err)
		return FallbackContent(title, description)
	}
	return content.Normalize()
}

// FallbackContent builds deterministic placeholder content for a topic
// when generation fails or times out.
func FallbackContent(title, description string) Content {
	return Content{
		LevelBeginner: {
			fmt.Sprintf("Introduction to %s (Beginner)", title),
			fmt.Sprintf("Topic Description: %s", description),
			"More content coming soon...",
		},
		LevelIntermediate: {
			fmt.Sprintf("Welcome to %s (Intermediate)!", title),
			"More content coming soon...",
		},
		LevelAdvanced: {
			fmt.Sprintf("Welcome to %s (Advanced)!", title),
			"More content coming soon...",
		},
	}
}
