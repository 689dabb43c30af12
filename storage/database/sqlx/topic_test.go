package sqlxrepos

import (
	"database/sql/driver"
	"testing"

	"github.com/pkg/errors"

	"github.com/ErickRdzRm7/EduAI/core"
)

func TestTopicOrderClause(t *testing.T) {
	tests := []struct {
		name     string
		ordering []core.DBOrdering
		want     string
	}{
		{name: "no ordering", want: "created_at DESC"},
		{name: "single field", ordering: []core.DBOrdering{{Field: "title", Ascending: true}}, want: "title ASC"},
		{
			name: "multiple fields",
			ordering: []core.DBOrdering{
				{Field: "level", Ascending: true},
				{Field: "created_at"},
			},
			want: "level ASC, created_at DESC",
		},
		{
			name:     "unknown column ignored",
			ordering: []core.DBOrdering{{Field: "password_hash"}},
			want:     "created_at DESC",
		},
		{
			name:     "subquery never reaches the sql",
			ordering: []core.DBOrdering{{Field: `(SELECT password_hash FROM "user" LIMIT 1)`}},
			want:     "created_at DESC",
		},
		{
			name: "unknown column dropped among valid ones",
			ordering: []core.DBOrdering{
				{Field: "slug", Ascending: true},
				{Field: "id; DROP TABLE topic"},
			},
			want: "slug ASC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := topicOrderClause(tt.ordering); got != tt.want {
				t.Errorf("topicOrderClause() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDBErr(t *testing.T) {
	if err := dbErr(errors.New("boom"), "inserting topic"); core.IsShutdown(err) {
		t.Errorf("dbErr() = %v, want a plain wrapped error", err)
	}
	err := dbErr(driver.ErrBadConn, "inserting topic")
	if !core.IsShutdown(err) {
		t.Errorf("dbErr() = %v, want a shutdown error", err)
	}
}
