package translate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslatePost(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		var req translateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.Target != "es" {
			t.Errorf("target = %q, want es", req.Target)
		}
		if req.Format != "html" {
			t.Errorf("format = %q, want html", req.Format)
		}
		if len(req.Q) != 3 {
			t.Fatalf("len(q) = %d, want 3", len(req.Q))
		}

		var resp translateResponse
		for _, q := range req.Q {
			resp.Data.Translations = append(resp.Data.Translations, struct {
				TranslatedText string `json:"translatedText"`
			}{TranslatedText: "es:" + q})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := NewGoogleClient(srv.URL, "")
	res, err := c.TranslatePost(context.Background(), "es", "Title", "Excerpt", "<p>Content</p>")
	if err != nil {
		t.Fatalf("TranslatePost: %v", err)
	}
	if res.Title != "es:Title" || res.Excerpt != "es:Excerpt" || res.Content != "es:<p>Content</p>" {
		t.Errorf("unexpected result: %+v", res)
	}
}

func TestTranslatePostAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewGoogleClient(srv.URL, "key")
	if _, err := c.TranslatePost(context.Background(), "fr", "t", "e", "c"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestTranslatePostShortResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"translations":[{"translatedText":"only one"}]}}`))
	}))
	defer srv.Close()

	c := NewGoogleClient(srv.URL, "")
	if _, err := c.TranslatePost(context.Background(), "fr", "t", "e", "c"); err == nil {
		t.Fatal("expected error for short translation response")
	}
}
