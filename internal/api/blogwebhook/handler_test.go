package blogwebhook

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// The validation path must reject bad payloads before any persistence
// is attempted; database.DB is deliberately nil in these tests, so a
// write attempt would panic.

func postJSON(t *testing.T, handler gin.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/blog/webhook", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	handler(c)
	return w
}

func TestReceivePostMissingFieldNoWrite(t *testing.T) {
	w := postJSON(t, ReceivePost, `{"title":"T","content":"C","excerpt":"e","category":"c"}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["error"] != "Missing required field: author" {
		t.Errorf("error = %q", body["error"])
	}
}

func TestReceivePostMalformedJSON(t *testing.T) {
	w := postJSON(t, ReceivePost, `{broken`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestReceiveDraftRequiresSlug(t *testing.T) {
	w := postJSON(t, ReceiveDraft, `{"title":"T","content":"C","excerpt":"e","category":"c","author":"a"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "slug") {
		t.Errorf("error should name the slug field: %s", w.Body.String())
	}
}
