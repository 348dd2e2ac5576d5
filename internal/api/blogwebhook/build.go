package blogwebhook

import (
	"fmt"
	"time"

	"automatizalo-backend/internal/domain/blog"
	"automatizalo-backend/internal/markdown"
)

// requiredFields for the standard webhook endpoint. The draft variant
// additionally requires an explicit slug.
var requiredFields = []string{"title", "content", "excerpt", "category", "author"}

// ValidationError names the first missing mandatory field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// BuildPost validates the effective payload and assembles a BlogPost
// row with all defaults applied. No persistence happens here, so a
// validation failure guarantees no database write.
func BuildPost(top interface{}, payload map[string]interface{}, defaultStatus string, requireSlug bool, now time.Time) (blog.BlogPost, error) {
	required := requiredFields
	if requireSlug {
		required = append(append([]string{}, requiredFields...), "slug")
	}
	for _, f := range required {
		if s, ok := payload[f].(string); !ok || s == "" {
			return blog.BlogPost{}, &ValidationError{Field: f}
		}
	}

	title := payload["title"].(string)
	content := markdown.ToHTML(payload["content"].(string))

	post := blog.BlogPost{
		Title:    title,
		Slug:     stringField(payload, "slug", blog.MakeSlug(title)),
		Excerpt:  payload["excerpt"].(string),
		Content:  content,
		Category: payload["category"].(string),
		Author:   payload["author"].(string),
		Tags:     tagsField(payload),
		Date:     stringField(payload, "date", now.Format("2006-01-02")),
		Image:    ExtractImageURL(top, payload),
		Featured: boolField(payload, "featured"),
		Status:   statusField(payload, defaultStatus),
	}

	post.ReadTime = stringField(payload, "read_time", stringField(payload, "readTime", blog.EstimateReadTime(content)))

	return post, nil
}

// InlineTranslations pulls pre-translated copies out of the payload, if
// the caller supplied any. Keys outside the target language set and
// unusable rows are ignored.
func InlineTranslations(payload map[string]interface{}) map[string]blog.BlogTranslation {
	raw, ok := payload["translations"].(map[string]interface{})
	if !ok {
		return nil
	}
	out := make(map[string]blog.BlogTranslation)
	for _, lang := range blog.TargetLanguages {
		obj, ok := raw[lang].(map[string]interface{})
		if !ok {
			continue
		}
		tr := blog.BlogTranslation{
			Lang:    lang,
			Title:   stringField(obj, "title", ""),
			Excerpt: stringField(obj, "excerpt", ""),
			Content: stringField(obj, "content", ""),
		}
		if tr.Usable() {
			out[lang] = tr
		}
	}
	return out
}

func stringField(payload map[string]interface{}, key, fallback string) string {
	if s, ok := payload[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

func boolField(payload map[string]interface{}, key string) bool {
	b, _ := payload[key].(bool)
	return b
}

func statusField(payload map[string]interface{}, fallback string) string {
	s, _ := payload["status"].(string)
	if s == blog.StatusDraft || s == blog.StatusPublished {
		return s
	}
	return fallback
}

func tagsField(payload map[string]interface{}) blog.TagList {
	arr, ok := payload["tags"].([]interface{})
	if !ok {
		return blog.TagList{}
	}
	tags := make(blog.TagList, 0, len(arr))
	for _, v := range arr {
		if s, ok := v.(string); ok && s != "" {
			tags = append(tags, s)
		}
	}
	return tags
}
