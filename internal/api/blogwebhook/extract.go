package blogwebhook

import (
	"regexp"
	"sort"
	"strings"

	"automatizalo-backend/internal/domain/blog"
)

// Cover image extraction is a best-effort heuristic over arbitrarily
// shaped payloads. Each strategy is a pure function tried in order;
// the first non-empty result wins, and a fixed placeholder is the
// final fallback. Extraction never fails.

type imageStrategy func(top interface{}, effective map[string]interface{}) string

var imageFields = []string{
	"image_url", "imageUrl", "image", "url",
	"coverImage", "cover_image", "featured_image",
}

var imageKeyHints = []string{"image", "img", "cover", "photo", "picture", "url"}

var imageURLPattern = regexp.MustCompile(`(?i)^https?://\S+\.(png|jpe?g|gif|webp|avif|svg)(\?\S*)?$`)

var imageStrategies = []imageStrategy{
	directFieldStrategy,
	arrayFirstElementStrategy,
	recursiveScanStrategy,
	dataArrayStrategy,
	outputBlockStrategy,
}

// ExtractImageURL walks the strategy list and returns the best-guess
// cover image URL, or the placeholder when nothing matches.
func ExtractImageURL(top interface{}, effective map[string]interface{}) string {
	for _, s := range imageStrategies {
		if url := s(top, effective); url != "" {
			return url
		}
	}
	return blog.PlaceholderImage
}

// (a) direct known field names on the effective object
func directFieldStrategy(_ interface{}, effective map[string]interface{}) string {
	return knownFields(effective)
}

// (b) same fields on the first element when the top level is an array
func arrayFirstElementStrategy(top interface{}, _ map[string]interface{}) string {
	arr, ok := top.([]interface{})
	if !ok || len(arr) == 0 {
		return ""
	}
	obj, ok := arr[0].(map[string]interface{})
	if !ok {
		return ""
	}
	return knownFields(obj)
}

// (c) depth-first scan for image-ish keys holding image-extension URLs
func recursiveScanStrategy(top interface{}, _ map[string]interface{}) string {
	return scan(top)
}

// (d) nested data[0] convention
func dataArrayStrategy(_ interface{}, effective map[string]interface{}) string {
	data, ok := effective["data"].([]interface{})
	if !ok || len(data) == 0 {
		return ""
	}
	obj, ok := data[0].(map[string]interface{})
	if !ok {
		return ""
	}
	return knownFields(obj)
}

// (e) fenced ```json``` block inside an "output" string field
func outputBlockStrategy(_ interface{}, effective map[string]interface{}) string {
	out, ok := effective["output"].(string)
	if !ok {
		return ""
	}
	obj := parseFencedJSON(out)
	if obj == nil {
		return ""
	}
	return knownFields(obj)
}

func knownFields(obj map[string]interface{}) string {
	for _, f := range imageFields {
		if s, ok := obj[f].(string); ok && strings.HasPrefix(s, "http") {
			return s
		}
	}
	return ""
}

func scan(v interface{}) string {
	switch t := v.(type) {
	case map[string]interface{}:
		// sorted keys keep the scan deterministic for a given shape
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if s, ok := t[k].(string); ok && keyLooksImagey(k) && imageURLPattern.MatchString(s) {
				return s
			}
		}
		for _, k := range keys {
			if url := scan(t[k]); url != "" {
				return url
			}
		}
	case []interface{}:
		for _, item := range t {
			if url := scan(item); url != "" {
				return url
			}
		}
	}
	return ""
}

func keyLooksImagey(key string) bool {
	k := strings.ToLower(key)
	for _, hint := range imageKeyHints {
		if strings.Contains(k, hint) {
			return true
		}
	}
	return false
}
