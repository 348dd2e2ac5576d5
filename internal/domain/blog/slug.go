package blog

import (
	"fmt"
	"regexp"
	"strings"
)

/*
	Slug / read-time helpers
	------------------------
	- Responsible ONLY for:
	  • deriving URL-safe slugs from titles
	  • estimating read time from content length
	  • building public post URLs
	- No persistence here
*/

var (
	nonSlug   = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
	wordSplit = regexp.MustCompile(`\s+`)
)

// MakeSlug derives a URL-safe slug from a post title.
// Example: "Hello, World! 2024" -> "hello-world-2024"
func MakeSlug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlug.ReplaceAllString(s, "")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")

	if s == "" {
		s = "post"
	}
	return s
}

// EstimateReadTime estimates reading time at 200 words per minute,
// never below one minute. Example: 400 words -> "2 min read".
func EstimateReadTime(content string) string {
	words := len(wordSplit.Split(strings.TrimSpace(content), -1))
	if strings.TrimSpace(content) == "" {
		words = 0
	}
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}

// PublicURL builds the public blog URL for a slug.
// Example: "my-post" -> "/blog/my-post"
func PublicURL(slug string) string {
	return "/blog/" + slug
}

// FullPublicURL builds the absolute public URL for a slug given the
// configured site base.
func FullPublicURL(base, slug string) string {
	return strings.TrimRight(base, "/") + PublicURL(slug)
}
