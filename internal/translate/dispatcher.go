package translate

import (
	"context"
	"sync"
	"time"

	"automatizalo-backend/internal/domain/blog"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// TranslationStore persists completed translations. Satisfied by
// GormStore in production and by fakes in tests.
type TranslationStore interface {
	SaveTranslation(tr blog.BlogTranslation) error
}

// GormStore writes translation rows through gorm.
type GormStore struct {
	DB *gorm.DB
}

func (s GormStore) SaveTranslation(tr blog.BlogTranslation) error {
	return s.DB.Create(&tr).Error
}

// Dispatcher fans a stored post out to the translation API, one
// goroutine per target language. Failures in one language never block
// another; results are persisted independently and errors are only
// logged. This runs after the webhook response has been written, so
// nothing here is caller-visible.
type Dispatcher struct {
	Translator Translator
	Store      TranslationStore
	Languages  []string
	Timeout    time.Duration
	Log        zerolog.Logger
}

func NewDispatcher(tr Translator, store TranslationStore, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		Translator: tr,
		Store:      store,
		Languages:  blog.TargetLanguages,
		Timeout:    60 * time.Second,
		Log:        log.With().Str("component", "translate").Logger(),
	}
}

// DispatchAsync starts translation in a detached goroutine and returns
// immediately. skip lists languages already covered (e.g. supplied
// inline in the webhook payload).
func (d *Dispatcher) DispatchAsync(post blog.BlogPost, skip map[string]bool) {
	go d.Run(post, skip)
}

// Run translates and persists synchronously. Exposed separately so
// tests can wait for completion.
func (d *Dispatcher) Run(post blog.BlogPost, skip map[string]bool) {
	ctx, cancel := context.WithTimeout(context.Background(), d.Timeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, lang := range d.Languages {
		if skip[lang] {
			continue
		}
		wg.Add(1)
		go func(lang string) {
			defer wg.Done()
			d.translateOne(ctx, post, lang)
		}(lang)
	}
	wg.Wait()
}

func (d *Dispatcher) translateOne(ctx context.Context, post blog.BlogPost, lang string) {
	res, err := d.Translator.TranslatePost(ctx, lang, post.Title, post.Excerpt, post.Content)
	if err != nil {
		d.Log.Error().Err(err).Str("post_id", post.ID).Str("lang", lang).
			Msg("translation call failed, skipping language")
		return
	}

	tr := blog.BlogTranslation{
		PostID:  post.ID,
		Lang:    lang,
		Title:   res.Title,
		Excerpt: res.Excerpt,
		Content: res.Content,
	}
	if !tr.Usable() {
		d.Log.Warn().Str("post_id", post.ID).Str("lang", lang).
			Msg("translation returned empty title or content, not persisting")
		return
	}

	if err := d.Store.SaveTranslation(tr); err != nil {
		d.Log.Error().Err(err).Str("post_id", post.ID).Str("lang", lang).
			Msg("failed to persist translation")
		return
	}
	d.Log.Info().Str("post_id", post.ID).Str("lang", lang).Msg("translation stored")
}
