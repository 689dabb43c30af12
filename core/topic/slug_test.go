package topic

import (
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "simple", title: "Java Basics", want: "java-basics"},
		{name: "already lower", title: "golang", want: "golang"},
		{name: "extra whitespace", title: "  Data   Structures \t 101 ", want: "data-structures-101"},
		{name: "punctuation stripped", title: "Intro to C#!", want: "intro-to-c"},
		{name: "unicode stripped", title: "Café Culture", want: "caf-culture"},
		{name: "keeps digits and underscores", title: "unit_2 review", want: "unit_2-review"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.title); got != tt.want {
				t.Errorf("Slugify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	takenSet := func(slugs ...string) func(string) bool {
		set := make(map[string]bool, len(slugs))
		for _, s := range slugs {
			set[s] = true
		}
		return func(slug string) bool { return set[slug] }
	}

	tests := []struct {
		name    string
		title   string
		taken   func(string) bool
		want    string
		wantErr bool
	}{
		{name: "no collision", title: "Java Basics", taken: takenSet(), want: "java-basics"},
		{name: "one collision", title: "Java Basics", taken: takenSet("java-basics"), want: "java-basics-1"},
		{name: "two collisions", title: "Java Basics", taken: takenSet("java-basics", "java-basics-1"), want: "java-basics-2"},
		{name: "gap reused", title: "Java Basics", taken: takenSet("java-basics", "java-basics-2"), want: "java-basics-1"},
		{name: "exhausted", title: "Java Basics", taken: func(string) bool { return true }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UniqueSlug(tt.title, tt.taken)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UniqueSlug() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("UniqueSlug() = %q, want %q", got, tt.want)
			}
		})
	}
}
