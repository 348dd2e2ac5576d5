// Package markdown converts loosely-structured markdown-ish text into
// HTML fragments. It is a best-effort regex converter, not a full
// markdown parser: nested lists, inline code, and tables are not
// supported.
package markdown

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	reH3     = regexp.MustCompile(`(?m)^### (.+)$`)
	reH2     = regexp.MustCompile(`(?m)^## (.+)$`)
	reH1     = regexp.MustCompile(`(?m)^# (.+)$`)
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic = regexp.MustCompile(`\*([^*]+)\*`)
	reUL     = regexp.MustCompile(`(?m)^- (.+)$`)
	reOL     = regexp.MustCompile(`(?m)^\d+\. (.+)$`)

	// Per-line conversion produces back-to-back sibling lists; these
	// collapse them into one.
	reULJoin = regexp.MustCompile(`</ul>\s*<ul>`)
	reOLJoin = regexp.MustCompile(`</ol>\s*<ol>`)

	reTopLevel = regexp.MustCompile(`^<(h1|h2|h3|p|ul|ol|div)[\s>]`)
)

// IsHTML reports whether content already looks like an HTML fragment.
func IsHTML(content string) bool {
	return strings.Contains(content, "<h1>") ||
		strings.Contains(content, "<p>") ||
		strings.Contains(content, "<strong>")
}

// ToHTML converts markdown-ish content to HTML. Input that already
// contains HTML block tags is returned unchanged, so the conversion is
// idempotent.
func ToHTML(content string) string {
	if IsHTML(content) {
		return content
	}

	out := content

	out = reH3.ReplaceAllString(out, "<h3>$1</h3>")
	out = reH2.ReplaceAllString(out, "<h2>$1</h2>")
	out = reH1.ReplaceAllString(out, "<h1>$1</h1>")

	out = reBold.ReplaceAllString(out, "<strong>$1</strong>")
	out = reItalic.ReplaceAllString(out, "<em>$1</em>")

	out = reUL.ReplaceAllString(out, "<ul><li>$1</li></ul>")
	out = reOL.ReplaceAllString(out, "<ol><li>$1</li></ol>")
	out = reULJoin.ReplaceAllString(out, "")
	out = reOLJoin.ReplaceAllString(out, "")

	out = paragraphs(out)

	if !reTopLevel.MatchString(strings.TrimSpace(out)) {
		out = fmt.Sprintf("<p>%s</p>", strings.TrimSpace(out))
	}
	return out
}

// paragraphs wraps double-newline separated runs of plain text in <p>
// tags, leaving already-tagged blocks alone.
func paragraphs(s string) string {
	blocks := regexp.MustCompile(`\n\s*\n`).Split(s, -1)
	var b strings.Builder
	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		if strings.HasPrefix(block, "<") {
			b.WriteString(block)
		} else {
			b.WriteString("<p>" + strings.ReplaceAll(block, "\n", " ") + "</p>")
		}
	}
	return b.String()
}
