package sqlxrepos

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/ErickRdzRm7/EduAI/core"
	"github.com/ErickRdzRm7/EduAI/core/topic"
)

// jsonbContent maps topic.Content to a JSONB column.
type jsonbContent topic.Content

var _ driver.Valuer = (jsonbContent)(nil)
var _ sql.Scanner = (*jsonbContent)(nil)

func (c jsonbContent) Value() (driver.Value, error) {
	return json.Marshal(c)
}

func (c *jsonbContent) Scan(src interface{}) error {
	b, ok := src.([]byte)
	if !ok {
		return errors.Errorf("unsupported content type %T", src)
	}
	return json.Unmarshal(b, c)
}

type dbTopic struct {
	ID          string       `db:"id"`
	Title       string       `db:"title"`
	Slug        string       `db:"slug"`
	Description string       `db:"description"`
	Level       string       `db:"level"`
	Content     jsonbContent `db:"content"`
	UserID      string       `db:"user_id"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
}

func (repo topicRepository) boil(t topic.Topic) dbTopic {
	return dbTopic{
		ID:          t.ID,
		Title:       t.Title,
		Slug:        t.Slug,
		Description: t.Description,
		Level:       t.Level,
		Content:     jsonbContent(t.Content),
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (repo topicRepository) unboil(t dbTopic) topic.Topic {
	return topic.Topic{
		ID:          t.ID,
		Title:       t.Title,
		Slug:        t.Slug,
		Description: t.Description,
		Level:       t.Level,
		Content:     topic.Content(t.Content).Normalize(),
		UserID:      t.UserID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// topicOrderColumns whitelists the columns user-supplied orderings may
// reference. Orderings come off the query string, so anything else must
// never reach the SQL.
var topicOrderColumns = map[string]bool{
	"title":      true,
	"slug":       true,
	"level":      true,
	"created_at": true,
	"updated_at": true,
}

func topicOrderClause(ordering []core.DBOrdering) string {
	var clause strings.Builder
	for _, ord := range ordering {
		if !topicOrderColumns[ord.Field] {
			continue
		}
		if clause.Len() > 0 {
			clause.WriteString(", ")
		}
		clause.WriteString(ord.String())
	}
	if clause.Len() == 0 {
		return "created_at DESC"
	}
	return clause.String()
}

type topicRepository struct {
	db *sqlx.DB
}

var _ topic.Repository = (*topicRepository)(nil)

func NewTopicRepository(db *sqlx.DB) *topicRepository {
	return &topicRepository{db: db}
}

// trapNoRowsErr maps psql "no rows" err to topic.ErrNotFound
func (repo topicRepository) trapNoRowsErr(err error, msg string) error {
	if err == sql.ErrNoRows {
		return topic.ErrNotFound
	}
	return dbErr(err, msg)
}

func (repo topicRepository) CreateTopic(ctx context.Context, t topic.Topic) (topic.Topic, error) {
	t.ID = uuid.New().String()
	query := `
		INSERT INTO topic (id, title, slug, description, level, content, user_id, created_at, updated_at)
		VALUES (:id, :title, :slug, :description, :level, :content, :user_id, :created_at, :updated_at)`
	if _, err := repo.db.NamedExecContext(ctx, query, repo.boil(t)); err != nil {
		if pqErr, ok := errors.Cause(err).(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return topic.Topic{}, topic.ErrSlugExists
		}
		return topic.Topic{}, dbErr(err, "inserting topic")
	}
	return t, nil
}

func (repo topicRepository) SearchTopics(ctx context.Context, filter topic.SearchFilter, ordering ...core.DBOrdering) ([]topic.Topic, error) {
	query := `SELECT * FROM topic`
	var clauses []string
	var args []interface{}

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d)", n, n))
	}
	if filter.Level != "" {
		args = append(args, filter.Level)
		clauses = append(clauses, fmt.Sprintf("level = $%d", len(args)))
	}
	if filter.UserID != "" {
		args = append(args, filter.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id = $%d", len(args)))
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}

	query += " ORDER BY " + topicOrderClause(ordering)

	var dbTopics []dbTopic
	if err := repo.db.SelectContext(ctx, &dbTopics, query, args...); err != nil {
		return nil, dbErr(err, "searching topics")
	}
	topics := make([]topic.Topic, 0, len(dbTopics))
	for _, t := range dbTopics {
		topics = append(topics, repo.unboil(t))
	}
	return topics, nil
}

func (repo topicRepository) GetTopicBySlug(ctx context.Context, slug string) (topic.Topic, error) {
	var t dbTopic
	query := `SELECT * FROM topic WHERE slug = $1`
	if err := repo.db.GetContext(ctx, &t, query, slug); err != nil {
		return topic.Topic{}, repo.trapNoRowsErr(err, "getting topic by slug")
	}
	return repo.unboil(t), nil
}

func (repo topicRepository) UpdateTopic(ctx context.Context, t topic.Topic) (topic.Topic, error) {
	query := `
		UPDATE topic
		SET title = :title, slug = :slug, description = :description,
		    level = :level, content = :content, updated_at = :updated_at
		WHERE id = :id`
	res, err := repo.db.NamedExecContext(ctx, query, repo.boil(t))
	if err != nil {
		if pqErr, ok := errors.Cause(err).(*pq.Error); ok && pqErr.Code == pqUniqueViolation {
			return topic.Topic{}, topic.ErrSlugExists
		}
		return topic.Topic{}, dbErr(err, "updating topic")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return topic.Topic{}, topic.ErrNotFound
	}
	return t, nil
}

func (repo topicRepository) DeleteTopic(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM topic WHERE id = $1`, id)
	if err != nil {
		return dbErr(err, "deleting topic")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return topic.ErrNotFound
	}
	return nil
}

func (repo topicRepository) FilterSlugs(ctx context.Context, prefix string) ([]string, error) {
	var slugs []string
	query := `SELECT slug FROM topic WHERE slug LIKE $1`
	if err := repo.db.SelectContext(ctx, &slugs, query, prefix+"%"); err != nil {
		return nil, dbErr(err, "filtering slugs")
	}
	return slugs, nil
}
