package blog

import (
	"strings"
	"testing"
)

func TestMakeSlug(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Hello, World! 2024", "hello-world-2024"},
		{"My Post", "my-post"},
		{"  Spaces   everywhere  ", "spaces-everywhere"},
		{"UPPER case & symbols!!", "upper-case-symbols"},
		{"---", "post"},
		{"", "post"},
		{"already-a-slug", "already-a-slug"},
	}

	for _, tt := range tests {
		if got := MakeSlug(tt.title); got != tt.want {
			t.Errorf("MakeSlug(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestEstimateReadTime(t *testing.T) {
	word := "word "

	tests := []struct {
		name  string
		words int
		want  string
	}{
		{"empty content floors at one minute", 0, "1 min read"},
		{"single word", 1, "1 min read"},
		{"exactly one page", 200, "1 min read"},
		{"just over one page", 201, "2 min read"},
		{"two pages", 400, "2 min read"},
		{"five hundred words", 500, "3 min read"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := strings.TrimSpace(strings.Repeat(word, tt.words))
			if got := EstimateReadTime(content); got != tt.want {
				t.Errorf("EstimateReadTime(%d words) = %q, want %q", tt.words, got, tt.want)
			}
		})
	}
}

func TestFullPublicURL(t *testing.T) {
	got := FullPublicURL("https://automatizalo.co/", "my-post")
	want := "https://automatizalo.co/blog/my-post"
	if got != want {
		t.Errorf("FullPublicURL = %q, want %q", got, want)
	}
}

func TestTranslationUsable(t *testing.T) {
	tests := []struct {
		name string
		tr   BlogTranslation
		want bool
	}{
		{"complete", BlogTranslation{Title: "t", Content: "c"}, true},
		{"empty title", BlogTranslation{Title: "", Content: "c"}, false},
		{"empty content", BlogTranslation{Title: "t", Content: ""}, false},
		{"empty excerpt still usable", BlogTranslation{Title: "t", Excerpt: "", Content: "c"}, true},
	}
	for _, tt := range tests {
		if got := tt.tr.Usable(); got != tt.want {
			t.Errorf("%s: Usable() = %v, want %v", tt.name, got, tt.want)
		}
	}
}
