package newsletter

import (
	"strings"
	"testing"
	"time"

	"automatizalo-backend/internal/domain/blog"
	"automatizalo-backend/internal/domain/notify"
)

func TestFrequencyWindow(t *testing.T) {
	tests := []struct {
		frequency string
		want      time.Duration
		wantErr   bool
	}{
		{"daily", 24 * time.Hour, false},
		{"weekly", 7 * 24 * time.Hour, false},
		{"monthly", 30 * 24 * time.Hour, false},
		{"yearly", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := FrequencyWindow(tt.frequency)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FrequencyWindow(%q): expected error", tt.frequency)
			}
			continue
		}
		if err != nil {
			t.Errorf("FrequencyWindow(%q): %v", tt.frequency, err)
		}
		if got != tt.want {
			t.Errorf("FrequencyWindow(%q) = %v, want %v", tt.frequency, got, tt.want)
		}
	}
}

func TestComposeDefaults(t *testing.T) {
	subject, html, err := Compose(nil, nil, "https://example.com", "", "")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if subject != defaultSubject {
		t.Errorf("subject = %q, want default", subject)
	}
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Errorf("expected full HTML document, got %q", html)
	}
}

func TestComposeWithTemplateAndPosts(t *testing.T) {
	tmpl := &notify.NewsletterTemplate{
		Subject:    "Weekly digest",
		HeaderHTML: `<h1 class="brand">Automatizalo</h1>`,
		FooterHTML: `<p class="fine">You are receiving this because you subscribed.</p>`,
	}
	posts := []blog.BlogPost{
		{Title: "First post", Slug: "first-post", Excerpt: "Short intro.", Date: "2024-05-01", ReadTime: "3 min read"},
		{Title: "Second post", Slug: "second-post", Excerpt: "Another one.", Date: "2024-05-02", ReadTime: "1 min read"},
	}

	subject, html, err := Compose(tmpl, posts, "https://automatizalo.co", "", "")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if subject != "Weekly digest" {
		t.Errorf("subject = %q, want template subject", subject)
	}
	for _, want := range []string{
		`<h1 class="brand">Automatizalo</h1>`,
		`<p class="fine">You are receiving this because you subscribed.</p>`,
		"https://automatizalo.co/blog/first-post",
		"First post",
		"Second post",
		"3 min read",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("composed HTML missing %q", want)
		}
	}
}

func TestComposeCustomOverrides(t *testing.T) {
	tmpl := &notify.NewsletterTemplate{Subject: "Weekly digest"}
	subject, html, err := Compose(tmpl, nil, "https://example.com", "Special edition", "<p>Hand-written <strong>intro</strong></p>")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if subject != "Special edition" {
		t.Errorf("subject = %q, custom subject should win over template", subject)
	}
	if !strings.Contains(html, "<p>Hand-written <strong>intro</strong></p>") {
		t.Errorf("custom content markup was escaped or dropped:\n%s", html)
	}
	if strings.Contains(html, "&lt;p&gt;") {
		t.Errorf("custom content was HTML-escaped")
	}
}

func TestComposeSanitizesCustomContent(t *testing.T) {
	_, html, err := Compose(nil, nil, "https://example.com", "", `<p>ok</p><script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if !strings.Contains(html, "<p>ok</p>") {
		t.Errorf("benign markup stripped from custom content")
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("script tag survived sanitization")
	}
}

func TestComposeEscapesPostTitles(t *testing.T) {
	posts := []blog.BlogPost{{Title: `<script>alert("x")</script>`, Slug: "x", Date: "2024-01-01"}}
	_, html, err := Compose(nil, posts, "https://example.com", "", "")
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("post title was not escaped")
	}
}
