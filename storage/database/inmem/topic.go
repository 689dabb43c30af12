package inmemdb

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/ErickRdzRm7/EduAI/core"
	"github.com/ErickRdzRm7/EduAI/core/topic"
)

type topicRepository struct {
	db *topicTable
}

var _ topic.Repository = (*topicRepository)(nil)

func NewTopicRepository(db *DB) *topicRepository {
	return &topicRepository{db: db.topic}
}

func (repo *topicRepository) query() []topic.Topic {
	topics := make([]topic.Topic, 0, len(repo.db.table))
	for _, t := range repo.db.table {
		topics = append(topics, *t)
	}
	return topics
}

func (repo *topicRepository) CreateTopic(ctx context.Context, t topic.Topic) (topic.Topic, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, existing := range repo.db.table {
		if existing.Slug == t.Slug {
			return topic.Topic{}, topic.ErrSlugExists
		}
	}
	t.ID = uuid.New().String()
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *topicRepository) SearchTopics(ctx context.Context, filter topic.SearchFilter, ordering ...core.DBOrdering) ([]topic.Topic, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	topics := make([]topic.Topic, 0)
	for _, t := range repo.query() {
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(t.Title), strings.ToLower(filter.Search)) &&
			!strings.Contains(strings.ToLower(t.Description), strings.ToLower(filter.Search)) {
			continue
		}
		if filter.Level != "" && t.Level != filter.Level {
			continue
		}
		if filter.UserID != "" && t.UserID != filter.UserID {
			continue
		}
		topics = append(topics, t)
	}

	// newest first, matching the sqlx default
	sort.Slice(topics, func(i, j int) bool { return topics[i].CreatedAt.After(topics[j].CreatedAt) })
	return topics, nil
}

func (repo *topicRepository) GetTopicBySlug(ctx context.Context, slug string) (topic.Topic, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	for _, t := range repo.query() {
		if t.Slug == slug {
			return t, nil
		}
	}
	return topic.Topic{}, topic.ErrNotFound
}

func (repo *topicRepository) UpdateTopic(ctx context.Context, t topic.Topic) (topic.Topic, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[t.ID]; !ok {
		return topic.Topic{}, topic.ErrNotFound
	}
	for _, existing := range repo.db.table {
		if existing.Slug == t.Slug && existing.ID != t.ID {
			return topic.Topic{}, topic.ErrSlugExists
		}
	}
	repo.db.table[t.ID] = &t
	return t, nil
}

func (repo *topicRepository) DeleteTopic(ctx context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return topic.ErrNotFound
	}
	delete(repo.db.table, id)
	return nil
}

func (repo *topicRepository) FilterSlugs(ctx context.Context, prefix string) ([]string, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	var slugs []string
	for _, t := range repo.query() {
		if strings.HasPrefix(t.Slug, prefix) {
			slugs = append(slugs, t.Slug)
		}
	}
	return slugs, nil
}
