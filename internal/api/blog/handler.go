package blogapi

import (
	"net/http"
	"time"

	"automatizalo-backend/database"
	"automatizalo-backend/internal/cache"
	"automatizalo-backend/internal/domain/blog"
	"automatizalo-backend/internal/markdown"
	"automatizalo-backend/internal/translate"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var (
	postCache  *cache.PostCache
	dispatcher *translate.Dispatcher
	logg       zerolog.Logger
)

// Setup wires the package-level collaborators. Called once from main.
func Setup(pc *cache.PostCache, d *translate.Dispatcher, log zerolog.Logger) {
	postCache = pc
	dispatcher = d
	logg = log.With().Str("component", "blog").Logger()
}

// ------------------------------
// GET /api/blog  (public, cached)
// ------------------------------
func ListPublished(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := postCache.GetPublished(ctx); err == nil && cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	var posts []blog.BlogPost
	err := blog.PublishedQuery(database.DB).
		Preload("Translations").
		Order("date DESC, created_at DESC").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	if err := postCache.SetPublished(ctx, posts); err != nil {
		logg.Warn().Err(err).Msg("failed to cache published posts")
	}
	c.JSON(http.StatusOK, posts)
}

// ------------------------------
// GET /api/blog/:slug  (public, cached)
// ------------------------------
func GetBySlug(c *gin.Context) {
	slug := c.Param("slug")
	ctx := c.Request.Context()

	if cached, err := postCache.GetBySlug(ctx, slug); err == nil && cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	var post blog.BlogPost
	err := blog.PublishedQuery(database.DB).
		Preload("Translations").
		Where("slug = ?", slug).
		First(&post).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := postCache.SetBySlug(ctx, &post); err != nil {
		logg.Warn().Err(err).Str("slug", slug).Msg("failed to cache post")
	}
	c.JSON(http.StatusOK, post)
}

// ------------------------------
// GET /api/blog/categories  (public)
// ------------------------------
func ListCategories(c *gin.Context) {
	var categories []string
	err := blog.PublishedQuery(database.DB).
		Distinct("category").
		Where("category <> ''").
		Order("category").
		Pluck("category", &categories).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// ------------------------------
// Admin CRUD
// ------------------------------

// GET /admin/blog - drafts included
func AdminList(c *gin.Context) {
	var posts []blog.BlogPost
	err := database.DB.
		Preload("Translations").
		Order("created_at DESC").
		Find(&posts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

// POST /admin/blog - the admin form variant. Content goes through the
// same normalizer as the webhook path.
func Create(c *gin.Context) {
	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post := req.ToPost()
	if post.Slug == "" {
		post.Slug = blog.MakeSlug(post.Title)
	}
	post.Content = markdown.ToHTML(post.Content)
	if post.ReadTime == "" {
		post.ReadTime = blog.EstimateReadTime(post.Content)
	}
	if post.Date == "" {
		post.Date = time.Now().Format("2006-01-02")
	}
	if post.Status == "" {
		post.Status = blog.StatusDraft
	}

	if err := database.DB.Create(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	postCache.Invalidate(post.Slug)

	if dispatcher != nil && post.Status == blog.StatusPublished {
		dispatcher.DispatchAsync(post, nil)
	}

	c.JSON(http.StatusCreated, post)
}

// PUT /admin/blog/:id
func Update(c *gin.Context) {
	id := c.Param("id")

	var req PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post blog.BlogPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	oldSlug := post.Slug
	req.Apply(&post)
	post.Content = markdown.ToHTML(post.Content)

	if err := database.DB.Save(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	postCache.Invalidate(oldSlug)
	postCache.Invalidate(post.Slug)

	c.JSON(http.StatusOK, post)
}

// PATCH /admin/blog/:id/status
func SetStatus(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.Status != blog.StatusDraft && body.Status != blog.StatusPublished {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be draft or published"})
		return
	}

	var post blog.BlogPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := database.DB.Model(&post).Update("status", body.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	postCache.Invalidate(post.Slug)

	c.JSON(http.StatusOK, gin.H{"id": post.ID, "status": body.Status})
}

// PATCH /admin/blog/:id/featured
func SetFeatured(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Featured bool `json:"featured"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var post blog.BlogPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := database.DB.Model(&post).Update("featured", body.Featured).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	postCache.Invalidate(post.Slug)

	c.JSON(http.StatusOK, gin.H{"id": post.ID, "featured": body.Featured})
}

// DELETE /admin/blog/:id - cascades to translations via the FK
// constraint.
func Delete(c *gin.Context) {
	id := c.Param("id")

	var post blog.BlogPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := database.DB.Select("Translations").Delete(&post).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	postCache.Invalidate(post.Slug)

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}
