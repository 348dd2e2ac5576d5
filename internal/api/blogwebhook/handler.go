package blogwebhook

import (
	"errors"
	"io"
	"net/http"
	"time"

	"automatizalo-backend/config"
	"automatizalo-backend/database"
	"automatizalo-backend/internal/cache"
	"automatizalo-backend/internal/domain/blog"
	"automatizalo-backend/internal/translate"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var (
	dispatcher *translate.Dispatcher
	postCache  *cache.PostCache
	logg       zerolog.Logger
)

// Setup wires the package-level collaborators. Called once from main.
func Setup(d *translate.Dispatcher, pc *cache.PostCache, log zerolog.Logger) {
	dispatcher = d
	postCache = pc
	logg = log.With().Str("component", "blogwebhook").Logger()
}

// ReceivePost handles the standard automation webhook. New posts
// default to published and the response carries id/slug/url. The post
// row is committed before the response; translation runs afterwards in
// the background and its failures are never surfaced here.
//
// POST /api/blog/webhook
func ReceivePost(c *gin.Context) {
	post, payload, shape, ok := ingest(c, blog.StatusPublished, false)
	if !ok {
		return
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	afterInsert(post, payload)

	logg.Info().Str("id", post.ID).Str("slug", post.Slug).
		Str("shape", shape.String()).Msg("webhook post created")

	c.JSON(http.StatusCreated, CreatedResponse{
		Success: true,
		Message: "Blog post created successfully",
		ID:      post.ID,
		Slug:    post.Slug,
		URL:     blog.PublicURL(post.Slug),
		FullURL: blog.FullPublicURL(config.SITE_BASE_URL, post.Slug),
	})
}

// ReceiveDraft handles the alternate webhook used by the drafting
// workflow. It additionally requires an explicit slug, defaults status
// to draft, and echoes the stored row.
//
// POST /api/blog/webhook/draft
func ReceiveDraft(c *gin.Context) {
	post, payload, _, ok := ingest(c, blog.StatusDraft, true)
	if !ok {
		return
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	afterInsert(post, payload)

	logg.Info().Str("id", post.ID).Str("slug", post.Slug).Msg("webhook draft created")

	c.JSON(http.StatusOK, DraftResponse{
		Success: true,
		Message: "Blog post received",
		Data:    post,
	})
}

// ingest reads, shape-resolves, validates and builds the post. It
// writes the error response itself and reports ok=false on failure.
func ingest(c *gin.Context, defaultStatus string, requireSlug bool) (blog.BlogPost, map[string]interface{}, PayloadShape, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 1<<20))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Error reading request body"})
		return blog.BlogPost{}, nil, ShapeObject, false
	}

	payload, top, shape, err := ResolvePayload(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return blog.BlogPost{}, nil, shape, false
	}

	post, err := BuildPost(top, payload, defaultStatus, requireSlug, time.Now())
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error()})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return blog.BlogPost{}, nil, shape, false
	}
	return post, payload, shape, true
}

// afterInsert persists inline translations, kicks off background
// translation for the remaining languages, and drops stale cache
// entries. The caller's response is already decided at this point.
func afterInsert(post blog.BlogPost, payload map[string]interface{}) {
	skip := map[string]bool{}
	for lang, tr := range InlineTranslations(payload) {
		tr.PostID = post.ID
		if err := database.DB.Create(&tr).Error; err != nil {
			logg.Error().Err(err).Str("post_id", post.ID).Str("lang", lang).
				Msg("failed to persist inline translation")
			continue
		}
		skip[lang] = true
	}

	if dispatcher != nil {
		dispatcher.DispatchAsync(post, skip)
	}
	if postCache != nil {
		postCache.Invalidate(post.Slug)
	}
}
