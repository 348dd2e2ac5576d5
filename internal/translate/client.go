package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Translator converts a post's text fields into a target language.
type Translator interface {
	TranslatePost(ctx context.Context, targetLang, title, excerpt, content string) (Result, error)
}

// Result is one language's translated copy of a post.
type Result struct {
	Title   string `json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content"`
}

// GoogleClient talks to a Google-Translate-compatible endpoint:
// POST {q, target, format:"html"} ->
// {data:{translations:[{translatedText}]}}.
type GoogleClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewGoogleClient(baseURL, apiKey string) *GoogleClient {
	return &GoogleClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

type translateRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Format string   `json:"format"`
}

type translateResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText string `json:"translatedText"`
		} `json:"translations"`
	} `json:"data"`
}

// TranslatePost sends title, excerpt and content as one batched call
// and maps the three results back by position.
func (c *GoogleClient) TranslatePost(ctx context.Context, targetLang, title, excerpt, content string) (Result, error) {
	body, err := json.Marshal(translateRequest{
		Q:      []string{title, excerpt, content},
		Target: targetLang,
		Format: "html",
	})
	if err != nil {
		return Result{}, err
	}

	url := c.BaseURL
	if c.APIKey != "" {
		url += "?key=" + c.APIKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("translation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Result{}, fmt.Errorf("translation API returned %d: %s", resp.StatusCode, string(b))
	}

	var tr translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return Result{}, fmt.Errorf("decoding translation response: %w", err)
	}
	if len(tr.Data.Translations) != 3 {
		return Result{}, fmt.Errorf("translation API returned %d segments, want 3", len(tr.Data.Translations))
	}

	return Result{
		Title:   tr.Data.Translations[0].TranslatedText,
		Excerpt: tr.Data.Translations[1].TranslatedText,
		Content: tr.Data.Translations[2].TranslatedText,
	}, nil
}
