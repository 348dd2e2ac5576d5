package blogapi

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"automatizalo-backend/database"
	"automatizalo-backend/internal/domain/blog"

	"github.com/gin-gonic/gin"
)

// GET /admin/blog/export - streams every post as CSV.
func ExportCSV(c *gin.Context) {
	var posts []blog.BlogPost
	if err := database.DB.Order("created_at ASC").Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load posts"})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", "attachment; filename=blog_posts.csv")

	w := csv.NewWriter(c.Writer)
	defer w.Flush()

	header := []string{"id", "title", "slug", "excerpt", "category", "tags", "author", "date", "read_time", "status", "featured", "image", "created_at"}
	if err := w.Write(header); err != nil {
		logg.Error().Err(err).Msg("csv export failed")
		return
	}

	for _, p := range posts {
		row := []string{
			p.ID,
			p.Title,
			p.Slug,
			p.Excerpt,
			p.Category,
			strings.Join(p.Tags, ";"),
			p.Author,
			p.Date,
			p.ReadTime,
			p.Status,
			fmt.Sprintf("%t", p.Featured),
			p.Image,
			p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if err := w.Write(row); err != nil {
			logg.Error().Err(err).Str("id", p.ID).Msg("csv export failed mid-stream")
			return
		}
	}
}
