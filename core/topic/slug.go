package topic

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ErickRdzRm7/EduAI/core"
)

// maxSlugAttempts caps the `base-N` collision suffix search.
const maxSlugAttempts = 10

var (
	slugSpaceRx   = regexp.MustCompile(`\s+`)
	slugInvalidRx = regexp.MustCompile(`[^\w-]`)

	errSlugExhausted = fmt.Errorf("could not generate unique slug")
)

// Slugify derives a URL-safe slug from a title: lowercased, runs of
// whitespace collapsed to "-", remaining non-word characters stripped.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugSpaceRx.ReplaceAllString(s, "-")
	s = slugInvalidRx.ReplaceAllString(s, "")
	return s
}

// UniqueSlug returns the first of `base`, `base-1`, `base-2`, ... that
// taken reports as free. It gives up after maxSlugAttempts suffixes.
func UniqueSlug(title string, taken func(slug string) bool) (string, error) {
	base := Slugify(title)
	slug := base
	for i := 1; taken(slug); i++ {
		if i > maxSlugAttempts {
			return "", core.NewValidationError(errSlugExhausted, core.FieldError{Field: "title", Error: errSlugExhausted.Error()})
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return slug, nil
}
