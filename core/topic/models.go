package topic

import (
	"time"

	validator "github.com/go-playground/validator/v10"

	"github.com/ErickRdzRm7/EduAI/core"
)

// Levels a Topic (and its per-level content) can be pitched at.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Levels lists the valid levels in display order.
var Levels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

// Content holds learning items keyed by level name. A well-formed
// Content always carries exactly the three level keys.
type Content map[string][]string

// NewContent returns an empty Content with all level keys present.
func NewContent() Content {
	c := make(Content, len(Levels))
	for _, lvl := range Levels {
		c[lvl] = []string{}
	}
	return c
}

// Normalize ensures all level keys exist and drops unknown ones.
func (c Content) Normalize() Content {
	norm := NewContent()
	for _, lvl := range Levels {
		if items, ok := c[lvl]; ok && items != nil {
			norm[lvl] = items
		}
	}
	return norm
}

type Topic struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Level       string    `json:"level"`
	Content     Content   `json:"content"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type NewTopic struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Level       string `json:"level" validate:"required,oneof=Beginner Intermediate Advanced"`
}

func (nt *NewTopic) Validate(validate *validator.Validate) error {
	nt.Title = core.CleanString(nt.Title)
	nt.Description = core.CleanString(nt.Description)
	return validate.Struct(nt)
}

// UpdateTopic defines what information may be provided to modify an existing
// Topic. At least one field must be set.
type UpdateTopic struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Level       string  `json:"level" validate:"omitempty,oneof=Beginner Intermediate Advanced"`
	Content     Content `json:"content"`
}

func (ut *UpdateTopic) Validate(validate *validator.Validate) error {
	ut.Title = core.CleanString(ut.Title)
	ut.Description = core.CleanString(ut.Description)

	if ut.Title == "" && ut.Description == "" && ut.Level == "" && ut.Content == nil {
		return core.NewValidationError(errTopicFieldRequired)
	}
	return validate.Struct(ut)
}

// SearchFilter narrows SearchTopics results. Zero values are ignored.
type SearchFilter struct {
	Search string
	Level  string
	UserID string
}
