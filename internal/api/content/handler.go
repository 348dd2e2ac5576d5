package contentapi

import (
	"net/http"
	"time"

	"automatizalo-backend/database"
	"automatizalo-backend/internal/cache"
	"automatizalo-backend/internal/domain/content"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var contactCache *cache.ContactCache

// Setup builds the contact-info cache. Called once from main.
func Setup() {
	contactCache = cache.NewContactCache(5*time.Minute, nil, func() (*content.ContactInfo, error) {
		var info content.ContactInfo
		if err := database.DB.First(&info).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return &content.ContactInfo{}, nil
			}
			return nil, err
		}
		return &info, nil
	})
}

// ------------------------------
// Page content
// ------------------------------

// GET /api/content/:page - all section overrides for a page. Sections
// without a row fall back to the frontend's compiled-in defaults.
func GetPageContent(c *gin.Context) {
	page := c.Param("page")

	var rows []content.PageContent
	if err := database.DB.Where("page = ?", page).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load content"})
		return
	}

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.SectionName] = r.Content
	}
	c.JSON(http.StatusOK, out)
}

// PUT /admin/content/:page/:section - upsert keyed by (page, section).
func UpsertPageContent(c *gin.Context) {
	var body struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := content.PageContent{
		Page:        c.Param("page"),
		SectionName: c.Param("section"),
		Content:     body.Content,
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}, {Name: "section_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

// ------------------------------
// Page images
// ------------------------------

// GET /api/images/:page
func GetPageImages(c *gin.Context) {
	page := c.Param("page")

	var rows []content.PageImage
	if err := database.DB.Where("page = ?", page).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load images"})
		return
	}

	out := make(map[string]string, len(rows))
	for _, r := range rows {
		out[r.SectionID] = r.ImageURL
	}
	c.JSON(http.StatusOK, out)
}

// PUT /admin/images/:page/:section
func UpsertPageImage(c *gin.Context) {
	var body struct {
		ImageURL string `json:"image_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row := content.PageImage{
		Page:      c.Param("page"),
		SectionID: c.Param("section"),
		ImageURL:  body.ImageURL,
	}

	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "page"}, {Name: "section_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"image_url", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

// ------------------------------
// Testimonials
// ------------------------------

// GET /api/testimonials
func ListTestimonials(c *gin.Context) {
	var rows []content.Testimonial
	if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load testimonials"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /admin/testimonials
func CreateTestimonial(c *gin.Context) {
	var row content.Testimonial
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if row.Name == "" || row.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and text are required"})
		return
	}
	if err := database.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

// PUT /admin/testimonials/:id
func UpdateTestimonial(c *gin.Context) {
	id := c.Param("id")

	var row content.Testimonial
	if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}

	var body content.Testimonial
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row.Name = body.Name
	row.Company = body.Company
	row.Text = body.Text
	row.AvatarURL = body.AvatarURL
	if err := database.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /admin/testimonials/:id
func DeleteTestimonial(c *gin.Context) {
	res := database.DB.Delete(&content.Testimonial{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Testimonial not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Testimonial deleted"})
}

// ------------------------------
// Contact info
// ------------------------------

// GET /api/contact-info - served from the in-memory TTL cache.
func GetContactInfo(c *gin.Context) {
	info, err := contactCache.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact info"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// PUT /admin/contact
func UpdateContactInfo(c *gin.Context) {
	var body content.ContactInfo
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing content.ContactInfo
	err := database.DB.First(&existing).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		if err := database.DB.Create(&body).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		existing = body
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	default:
		existing.Phone = body.Phone
		existing.Email = body.Email
		existing.Address = body.Address
		existing.Website = body.Website
		if err := database.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	contactCache.Invalidate()
	c.JSON(http.StatusOK, existing)
}
