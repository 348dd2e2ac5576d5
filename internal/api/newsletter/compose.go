package newsletter

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"automatizalo-backend/internal/domain/blog"
	"automatizalo-backend/internal/domain/notify"
)

const defaultSubject = "Automatizalo - latest from the blog"

// newsletterTmpl renders the digest body. Header/footer come from the
// stored template; post excerpts are trusted admin-authored HTML.
var newsletterTmpl = template.Must(template.New("newsletter").Parse(`<!DOCTYPE html>
<html>
<body style="font-family:Arial,sans-serif;max-width:600px;margin:0 auto;">
{{.Header}}
{{if .Intro}}<div class="intro">{{.Intro}}</div>{{end}}
{{range .Posts}}
<div style="margin:24px 0;border-bottom:1px solid #eee;padding-bottom:16px;">
  <h2 style="margin-bottom:4px;"><a href="{{.URL}}">{{.Title}}</a></h2>
  <p style="color:#888;font-size:12px;">{{.Date}} · {{.ReadTime}}</p>
  <p>{{.Excerpt}}</p>
</div>
{{end}}
{{.Footer}}
</body>
</html>`))

type composedPost struct {
	Title    string
	URL      string
	Date     string
	ReadTime string
	Excerpt  string
}

type composeData struct {
	Header template.HTML
	Footer template.HTML
	Intro  template.HTML
	Posts  []composedPost
}

// FrequencyWindow maps a send frequency to the lookback period for
// "recent posts".
func FrequencyWindow(frequency string) (time.Duration, error) {
	switch frequency {
	case "daily":
		return 24 * time.Hour, nil
	case "weekly":
		return 7 * 24 * time.Hour, nil
	case "monthly":
		return 30 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown frequency %q", frequency)
	}
}

// Compose renders the digest HTML and resolves the subject line. tmpl
// may be nil, in which case the compiled-in defaults are used.
// customContent is admin-authored rich text; it is UGC-sanitized and
// rendered as HTML, not escaped.
func Compose(tmpl *notify.NewsletterTemplate, posts []blog.BlogPost, siteBase, customSubject, customContent string) (subject, html string, err error) {
	subject = defaultSubject
	data := composeData{}
	if customContent != "" {
		data.Intro = template.HTML(bluemonday.UGCPolicy().Sanitize(customContent))
	}

	if tmpl != nil {
		if tmpl.Subject != "" {
			subject = tmpl.Subject
		}
		data.Header = template.HTML(tmpl.HeaderHTML)
		data.Footer = template.HTML(tmpl.FooterHTML)
	}
	if customSubject != "" {
		subject = customSubject
	}

	for _, p := range posts {
		data.Posts = append(data.Posts, composedPost{
			Title:    p.Title,
			URL:      blog.FullPublicURL(siteBase, p.Slug),
			Date:     p.Date,
			ReadTime: p.ReadTime,
			Excerpt:  p.Excerpt,
		})
	}

	var buf bytes.Buffer
	if err := newsletterTmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("rendering newsletter: %w", err)
	}
	return subject, buf.String(), nil
}
