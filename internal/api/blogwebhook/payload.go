package blogwebhook

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Automation tools post payloads in several shapes: a plain object, an
// array whose first element is the real object, an object carrying a
// nested "data" array, or an object whose "output" field embeds a
// fenced JSON block. The shape is resolved once, before validation.

type PayloadShape int

const (
	ShapeObject PayloadShape = iota
	ShapeArray
	ShapeDataArray
	ShapeOutputJSON
)

func (s PayloadShape) String() string {
	switch s {
	case ShapeArray:
		return "array"
	case ShapeDataArray:
		return "data_array"
	case ShapeOutputJSON:
		return "output_json"
	default:
		return "object"
	}
}

var fencedJSON = regexp.MustCompile("(?s)```json\\s*(.*?)```")

// ResolvePayload detects the payload shape and returns the effective
// post object. The raw top-level object is also returned so the image
// extractor can scan fields outside the effective object.
func ResolvePayload(raw []byte) (effective map[string]interface{}, top interface{}, shape PayloadShape, err error) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, nil, ShapeObject, fmt.Errorf("invalid JSON body: %w", err)
	}

	switch t := v.(type) {
	case []interface{}:
		if len(t) == 0 {
			return nil, v, ShapeArray, fmt.Errorf("empty array payload")
		}
		obj, ok := t[0].(map[string]interface{})
		if !ok {
			return nil, v, ShapeArray, fmt.Errorf("array payload does not contain an object")
		}
		return obj, v, ShapeArray, nil

	case map[string]interface{}:
		// nested data[0] convention
		if data, ok := t["data"].([]interface{}); ok && len(data) > 0 {
			if obj, ok := data[0].(map[string]interface{}); ok && looksLikePost(obj) {
				return obj, v, ShapeDataArray, nil
			}
		}
		// fenced ```json``` block inside an "output" string
		if out, ok := t["output"].(string); ok {
			if obj := parseFencedJSON(out); obj != nil && looksLikePost(obj) {
				return obj, v, ShapeOutputJSON, nil
			}
		}
		return t, v, ShapeObject, nil

	default:
		return nil, v, ShapeObject, fmt.Errorf("payload must be a JSON object or array")
	}
}

// looksLikePost is the minimal signal that a nested object is the post
// itself rather than arbitrary metadata.
func looksLikePost(obj map[string]interface{}) bool {
	_, hasTitle := obj["title"]
	_, hasContent := obj["content"]
	return hasTitle || hasContent
}

func parseFencedJSON(s string) map[string]interface{} {
	m := fencedJSON.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), &obj); err != nil {
		return nil
	}
	return obj
}
