package webhookconfig

import (
	"fmt"
	"regexp"
	"strings"
)

// Form webhooks are surfaced on the site as embedded iframes. Admins
// paste either a bare form URL or a full iframe snippet; both are
// normalized to the same embed code.

var (
	iframeSrc = regexp.MustCompile(`<iframe[^>]*\ssrc=["']([^"']+)["']`)
	httpURL   = regexp.MustCompile(`^https?://\S+$`)
)

// ToEmbedCode converts a form URL or pasted iframe snippet into the
// canonical embed code. Returns an error when the input is neither.
func ToEmbedCode(input string) (string, error) {
	src, err := ExtractEmbedURL(input)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(
		`<iframe src="%s" width="100%%" height="600" frameborder="0" style="border:none;"></iframe>`,
		src,
	), nil
}

// ExtractEmbedURL pulls the target URL out of a bare URL or an iframe
// snippet.
func ExtractEmbedURL(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", fmt.Errorf("empty embed input")
	}

	if m := iframeSrc.FindStringSubmatch(s); m != nil {
		return m[1], nil
	}
	if httpURL.MatchString(s) {
		return s, nil
	}
	return "", fmt.Errorf("input is neither a URL nor an iframe snippet")
}
