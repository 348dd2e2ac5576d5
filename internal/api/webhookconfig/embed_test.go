package webhookconfig

import (
	"strings"
	"testing"
)

func TestExtractEmbedURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"bare url", "https://n8n.example.com/form/abc", "https://n8n.example.com/form/abc", false},
		{"iframe snippet", `<iframe width="640" src="https://n8n.example.com/form/x" height="480"></iframe>`, "https://n8n.example.com/form/x", false},
		{"iframe single quotes", `<iframe src='https://a/b'></iframe>`, "https://a/b", false},
		{"whitespace around url", "  https://a/b  ", "https://a/b", false},
		{"empty", "", "", true},
		{"plain text", "not a url", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractEmbedURL(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToEmbedCode(t *testing.T) {
	code, err := ToEmbedCode("https://n8n.example.com/form/abc")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(code, `src="https://n8n.example.com/form/abc"`) {
		t.Errorf("embed code missing src: %s", code)
	}
	if !strings.HasPrefix(code, "<iframe ") || !strings.HasSuffix(code, "</iframe>") {
		t.Errorf("embed code not an iframe: %s", code)
	}

	// converting the produced embed code again must yield the same URL
	again, err := ExtractEmbedURL(code)
	if err != nil {
		t.Fatal(err)
	}
	if again != "https://n8n.example.com/form/abc" {
		t.Errorf("round trip = %q", again)
	}
}
