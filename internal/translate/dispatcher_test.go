package translate

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"automatizalo-backend/internal/domain/blog"

	"github.com/rs/zerolog"
)

type fakeTranslator struct {
	fail map[string]bool
	// empty makes the language return an empty-title result
	empty map[string]bool
}

func (f *fakeTranslator) TranslatePost(ctx context.Context, lang, title, excerpt, content string) (Result, error) {
	if f.fail[lang] {
		return Result{}, errors.New("upstream unavailable")
	}
	if f.empty[lang] {
		return Result{Title: "", Excerpt: "", Content: ""}, nil
	}
	return Result{Title: lang + ":" + title, Excerpt: lang + ":" + excerpt, Content: lang + ":" + content}, nil
}

type memStore struct {
	mu   sync.Mutex
	rows []blog.BlogTranslation
}

func (m *memStore) SaveTranslation(tr blog.BlogTranslation) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rows = append(m.rows, tr)
	return nil
}

func (m *memStore) langs() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[string]bool{}
	for _, r := range m.rows {
		out[r.Lang] = true
	}
	return out
}

func newTestDispatcher(tr Translator, store TranslationStore) *Dispatcher {
	d := NewDispatcher(tr, store, zerolog.Nop())
	d.Timeout = 5 * time.Second
	return d
}

func TestDispatchAllLanguages(t *testing.T) {
	store := &memStore{}
	d := newTestDispatcher(&fakeTranslator{}, store)

	post := blog.BlogPost{ID: "p1", Title: "T", Excerpt: "E", Content: "<p>C</p>"}
	d.Run(post, nil)

	got := store.langs()
	if !got["es"] || !got["fr"] {
		t.Fatalf("expected es and fr rows, got %v", got)
	}
	for _, r := range store.rows {
		if r.PostID != "p1" {
			t.Errorf("row has post_id %q, want p1", r.PostID)
		}
	}
}

func TestDispatchPartialFailure(t *testing.T) {
	store := &memStore{}
	d := newTestDispatcher(&fakeTranslator{fail: map[string]bool{"fr": true}}, store)

	d.Run(blog.BlogPost{ID: "p2", Title: "T", Excerpt: "E", Content: "C"}, nil)

	got := store.langs()
	if !got["es"] {
		t.Error("es translation should be persisted despite fr failure")
	}
	if got["fr"] {
		t.Error("fr translation should not be persisted after failure")
	}
}

func TestDispatchEmptyResultNotPersisted(t *testing.T) {
	store := &memStore{}
	d := newTestDispatcher(&fakeTranslator{empty: map[string]bool{"es": true}}, store)

	d.Run(blog.BlogPost{ID: "p3", Title: "T", Excerpt: "E", Content: "C"}, nil)

	got := store.langs()
	if got["es"] {
		t.Error("empty es result must not be persisted")
	}
	if !got["fr"] {
		t.Error("fr translation should still be persisted")
	}
}

func TestDispatchSkipsCoveredLanguages(t *testing.T) {
	store := &memStore{}
	d := newTestDispatcher(&fakeTranslator{}, store)

	d.Run(blog.BlogPost{ID: "p4", Title: "T", Excerpt: "E", Content: "C"}, map[string]bool{"es": true})

	got := store.langs()
	if got["es"] {
		t.Error("es was supplied inline and must not be re-translated")
	}
	if !got["fr"] {
		t.Error("fr should be translated")
	}
}
