package blogapi

import (
	"net/http"

	"automatizalo-backend/database"
	"automatizalo-backend/internal/domain/blog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// PUT /admin/blog/:id/translations - upsert from the manual
// translation panel. One row per (post, lang).
func UpsertTranslation(c *gin.Context) {
	id := c.Param("id")

	var req TranslationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !validLang(req.Lang) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lang must be one of: es, fr"})
		return
	}

	var post blog.BlogPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	tr := blog.BlogTranslation{
		PostID:  post.ID,
		Lang:    req.Lang,
		Title:   req.Title,
		Excerpt: req.Excerpt,
		Content: req.Content,
	}
	if !tr.Usable() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "translation must have a title and content"})
		return
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "lang"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "excerpt", "content", "updated_at"}),
	}).Create(&tr).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	postCache.Invalidate(post.Slug)

	c.JSON(http.StatusOK, tr)
}

// DELETE /admin/blog/:id/translations/:lang
func DeleteTranslation(c *gin.Context) {
	id := c.Param("id")
	lang := c.Param("lang")

	res := database.DB.Where("post_id = ? AND lang = ?", id, lang).Delete(&blog.BlogTranslation{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Translation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Translation deleted"})
}

// POST /admin/blog/:id/translate - re-run the automatic translation
// pipeline for a post, replacing stored rows.
func TranslateNow(c *gin.Context) {
	id := c.Param("id")

	var post blog.BlogPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	if err := database.DB.Where("post_id = ?", post.ID).Delete(&blog.BlogTranslation{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	dispatcher.DispatchAsync(post, nil)

	c.JSON(http.StatusAccepted, gin.H{"message": "Translation started", "id": post.ID})
}

func validLang(lang string) bool {
	for _, l := range blog.TargetLanguages {
		if l == lang {
			return true
		}
	}
	return false
}
