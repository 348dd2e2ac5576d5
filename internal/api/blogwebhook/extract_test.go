package blogwebhook

import (
	"encoding/json"
	"testing"

	"automatizalo-backend/internal/domain/blog"
)

func mustObj(t *testing.T, raw string) map[string]interface{} {
	t.Helper()
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		t.Fatal(err)
	}
	return obj
}

func TestExtractDirectFieldWins(t *testing.T) {
	obj := mustObj(t, `{"image_url":"https://a/x.png","nested":{"cover_image":"https://b/y.png"}}`)
	got := ExtractImageURL(obj, obj)
	if got != "https://a/x.png" {
		t.Errorf("got %q, want direct field https://a/x.png", got)
	}
}

func TestExtractFieldPriority(t *testing.T) {
	obj := mustObj(t, `{"imageUrl":"https://a/second.png","image_url":"https://a/first.png"}`)
	if got := ExtractImageURL(obj, obj); got != "https://a/first.png" {
		t.Errorf("got %q, image_url should be checked before imageUrl", got)
	}
}

func TestExtractFromArrayFirstElement(t *testing.T) {
	var top interface{}
	if err := json.Unmarshal([]byte(`[{"cover_image":"https://a/cover.jpg","title":"T"}]`), &top); err != nil {
		t.Fatal(err)
	}
	effective := top.([]interface{})[0].(map[string]interface{})
	if got := ExtractImageURL(top, effective); got != "https://a/cover.jpg" {
		t.Errorf("got %q, want array element cover", got)
	}
}

func TestExtractRecursiveScan(t *testing.T) {
	obj := mustObj(t, `{"meta":{"attachments":[{"photo_link":"https://cdn/pic.webp"}]}}`)
	if got := ExtractImageURL(obj, obj); got != "https://cdn/pic.webp" {
		t.Errorf("got %q, want nested scan hit", got)
	}
}

func TestExtractScanIgnoresNonImageURLs(t *testing.T) {
	obj := mustObj(t, `{"source_url":"https://example.com/page.html"}`)
	if got := ExtractImageURL(obj, obj); got != blog.PlaceholderImage {
		t.Errorf("got %q, .html URL must not match", got)
	}
}

func TestExtractFromOutputBlock(t *testing.T) {
	obj := mustObj(t, "{\"output\":\"```json\\n{\\\"image\\\":\\\"https://a/gen.png\\\"}\\n```\"}")
	if got := ExtractImageURL(obj, obj); got != "https://a/gen.png" {
		t.Errorf("got %q, want output block image", got)
	}
}

func TestExtractPlaceholderFallback(t *testing.T) {
	obj := mustObj(t, `{"title":"no pictures here","count":5,"nested":{"a":[1,2,3]}}`)
	if got := ExtractImageURL(obj, obj); got != blog.PlaceholderImage {
		t.Errorf("got %q, want placeholder", got)
	}
}

func TestExtractNeverPanicsOnOddShapes(t *testing.T) {
	inputs := []string{`null`, `[]`, `[1,2,3]`, `{"image":42}`, `{"data":"not an array"}`}
	for _, raw := range inputs {
		var top interface{}
		json.Unmarshal([]byte(raw), &top)
		eff, _ := top.(map[string]interface{})
		if got := ExtractImageURL(top, eff); got == "" {
			t.Errorf("ExtractImageURL(%s) returned empty, want placeholder", raw)
		}
	}
}
