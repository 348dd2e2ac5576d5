package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// richTextFields carry admin-authored or webhook-supplied HTML and must
// not be stripped. Everything else on public routes gets the strict
// policy.
var richTextFields = map[string]bool{
	"content":        true,
	"custom_content": true,
	"customContent":  true,
}

// SanitizeAndCleanInputMiddleware cleans string fields in JSON input
// using bluemonday. Applied to public routes only.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		var body map[string]interface{}
		buf, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
			return
		}
		if err := json.Unmarshal(buf, &body); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
			return
		}

		strict := bluemonday.StrictPolicy()
		rich := bluemonday.UGCPolicy()
		for k, v := range body {
			str, ok := v.(string)
			if !ok {
				continue
			}
			if richTextFields[k] {
				body[k] = rich.Sanitize(str)
			} else {
				body[k] = strict.Sanitize(str)
			}
		}

		newBody, _ := json.Marshal(body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
		c.Request.ContentLength = int64(len(newBody))

		c.Next()
	}
}
