package blogwebhook

import (
	"errors"
	"testing"
	"time"

	"automatizalo-backend/internal/domain/blog"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":    "My Post",
		"content":  "# Hi\n\nBody text.",
		"excerpt":  "e",
		"category": "c",
		"author":   "a",
	}
}

func TestBuildPostDefaults(t *testing.T) {
	p := validPayload()
	post, err := BuildPost(p, p, blog.StatusPublished, false, testNow)
	if err != nil {
		t.Fatal(err)
	}

	if post.Slug != "my-post" {
		t.Errorf("slug = %q, want my-post", post.Slug)
	}
	if post.Status != blog.StatusPublished {
		t.Errorf("status = %q, want published default", post.Status)
	}
	if post.Date != "2025-06-15" {
		t.Errorf("date = %q, want 2025-06-15", post.Date)
	}
	if post.ReadTime != "1 min read" {
		t.Errorf("read_time = %q, want 1 min read", post.ReadTime)
	}
	if len(post.Tags) != 0 {
		t.Errorf("tags = %v, want empty", post.Tags)
	}
	if post.Featured {
		t.Error("featured should default to false")
	}
	if post.Image != blog.PlaceholderImage {
		t.Errorf("image = %q, want placeholder", post.Image)
	}
	if post.Content != "<h1>Hi</h1><p>Body text.</p>" {
		t.Errorf("content = %q, want normalized HTML", post.Content)
	}
}

func TestBuildPostDraftVariantDefaults(t *testing.T) {
	p := validPayload()
	p["slug"] = "explicit-slug"
	post, err := BuildPost(p, p, blog.StatusDraft, true, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if post.Status != blog.StatusDraft {
		t.Errorf("status = %q, want draft default", post.Status)
	}
	if post.Slug != "explicit-slug" {
		t.Errorf("slug = %q, want explicit-slug", post.Slug)
	}
}

func TestBuildPostMissingFields(t *testing.T) {
	for _, field := range []string{"title", "content", "excerpt", "category", "author"} {
		p := validPayload()
		delete(p, field)
		_, err := BuildPost(p, p, blog.StatusPublished, false, testNow)
		if err == nil {
			t.Errorf("missing %s: expected error", field)
			continue
		}
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != field {
			t.Errorf("missing %s: got %v, want ValidationError naming it", field, err)
		}
	}
}

func TestBuildPostRequireSlug(t *testing.T) {
	p := validPayload()
	if _, err := BuildPost(p, p, blog.StatusDraft, true, testNow); err == nil {
		t.Fatal("draft variant must reject a payload without slug")
	}
}

func TestBuildPostExplicitValuesKept(t *testing.T) {
	p := validPayload()
	p["status"] = "draft"
	p["featured"] = true
	p["tags"] = []interface{}{"ai", "automation"}
	p["read_time"] = "7 min read"
	p["date"] = "2024-01-01"

	post, err := BuildPost(p, p, blog.StatusPublished, false, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if post.Status != "draft" || !post.Featured || post.ReadTime != "7 min read" || post.Date != "2024-01-01" {
		t.Errorf("explicit fields not kept: %+v", post)
	}
	if len(post.Tags) != 2 {
		t.Errorf("tags = %v", post.Tags)
	}
}

func TestBuildPostInvalidStatusFallsBack(t *testing.T) {
	p := validPayload()
	p["status"] = "archived"
	post, err := BuildPost(p, p, blog.StatusPublished, false, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if post.Status != blog.StatusPublished {
		t.Errorf("status = %q, unknown status must fall back to default", post.Status)
	}
}

func TestBuildPostHTMLContentUntouched(t *testing.T) {
	p := validPayload()
	p["content"] = "<p>Already HTML</p>"
	post, err := BuildPost(p, p, blog.StatusPublished, false, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if post.Content != "<p>Already HTML</p>" {
		t.Errorf("content = %q, want unchanged", post.Content)
	}
}

func TestInlineTranslations(t *testing.T) {
	p := validPayload()
	p["translations"] = map[string]interface{}{
		"fr": map[string]interface{}{"title": "Mon article", "excerpt": "ex", "content": "<p>fr</p>"},
		"es": map[string]interface{}{"title": "", "content": "<p>es</p>"},
		"de": map[string]interface{}{"title": "x", "content": "y"},
	}

	got := InlineTranslations(p)
	if len(got) != 1 {
		t.Fatalf("got %d translations, want 1", len(got))
	}
	fr, ok := got["fr"]
	if !ok || fr.Title != "Mon article" {
		t.Errorf("fr translation missing or wrong: %+v", got)
	}
	// es had an empty title, de is not a target language
}
