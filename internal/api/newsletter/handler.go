package newsletter

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"automatizalo-backend/config"
	"automatizalo-backend/database"
	"automatizalo-backend/internal/domain/blog"
	"automatizalo-backend/internal/domain/notify"
	"automatizalo-backend/internal/mailer"
)

var (
	send mailer.Mailer
	logg zerolog.Logger
)

func Setup(m mailer.Mailer, log zerolog.Logger) {
	send = m
	logg = log
}

type sendRequest struct {
	TemplateID    string `json:"templateId"`
	Frequency     string `json:"frequency" binding:"required"`
	CustomSubject string `json:"customSubject"`
	CustomContent string `json:"customContent"`
	TestMode      bool   `json:"testMode"`
	TestEmail     string `json:"testEmail"`
	PreviewOnly   bool   `json:"previewOnly"`
}

// Send composes a digest for the given frequency window and either
// returns a preview, delivers a single test email, or broadcasts to
// every subscriber on that frequency. Only broadcasts are recorded in
// the send history.
func Send(c *gin.Context) {
	var req sendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	window, err := FrequencyWindow(req.Frequency)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var tmpl *notify.NewsletterTemplate
	if req.TemplateID != "" {
		var t notify.NewsletterTemplate
		if err := database.DB.First(&t, "id = ?", req.TemplateID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		tmpl = &t
	}

	var posts []blog.BlogPost
	since := time.Now().Add(-window).Format("2006-01-02")
	if err := blog.PublishedQuery(database.DB).
		Where("date >= ?", since).
		Order("date DESC").
		Find(&posts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	subject, html, err := Compose(tmpl, posts, config.SITE_BASE_URL, req.CustomSubject, req.CustomContent)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if req.PreviewOnly {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"subject":   subject,
			"html":      html,
			"postCount": len(posts),
		})
		return
	}

	if send == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "mail delivery is not configured"})
		return
	}

	if req.TestMode {
		if req.TestEmail == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "testEmail is required in test mode"})
			return
		}
		if err := send.Send([]string{req.TestEmail}, subject, html); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Test newsletter sent to " + req.TestEmail,
		})
		return
	}

	var subs []notify.Subscriber
	if err := database.DB.Where("frequency = ?", req.Frequency).Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(subs) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "No subscribers for frequency " + req.Frequency,
			"sent":    0,
		})
		return
	}

	sent := 0
	for _, s := range subs {
		if err := send.Send([]string{s.Email}, subject, html); err != nil {
			logg.Error().Err(err).Str("email", s.Email).Msg("newsletter delivery failed")
			continue
		}
		sent++
	}

	hist := notify.NewsletterHistory{
		ID:             uuid.NewString(),
		Frequency:      req.Frequency,
		Subject:        subject,
		RecipientCount: sent,
		SentAt:         time.Now(),
	}
	if tmpl != nil {
		hist.TemplateID = &tmpl.ID
	}
	if err := database.DB.Create(&hist).Error; err != nil {
		logg.Error().Err(err).Msg("failed to record newsletter history")
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Newsletter sent",
		"sent":    sent,
	})
}

func History(c *gin.Context) {
	var rows []notify.NewsletterHistory
	if err := database.DB.Order("sent_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func ListTemplates(c *gin.Context) {
	var rows []notify.NewsletterTemplate
	if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

type templateRequest struct {
	Name       string `json:"name" binding:"required"`
	Subject    string `json:"subject" binding:"required"`
	HeaderHTML string `json:"header_html"`
	FooterHTML string `json:"footer_html"`
}

func CreateTemplate(c *gin.Context) {
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t := notify.NewsletterTemplate{
		Name:       req.Name,
		Subject:    req.Subject,
		HeaderHTML: req.HeaderHTML,
		FooterHTML: req.FooterHTML,
	}
	if err := database.DB.Create(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, t)
}

func UpdateTemplate(c *gin.Context) {
	var t notify.NewsletterTemplate
	if err := database.DB.First(&t, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		return
	}
	var req templateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t.Name = req.Name
	t.Subject = req.Subject
	t.HeaderHTML = req.HeaderHTML
	t.FooterHTML = req.FooterHTML
	if err := database.DB.Save(&t).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func DeleteTemplate(c *gin.Context) {
	if err := database.DB.Delete(&notify.NewsletterTemplate{}, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}

type subscribeRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Frequency string `json:"frequency"`
}

// Subscribe is idempotent per email: re-subscribing updates the
// frequency instead of erroring on the unique index.
func Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Frequency == "" {
		req.Frequency = "weekly"
	}
	if _, err := FrequencyWindow(req.Frequency); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing notify.Subscriber
	err := database.DB.Where("email = ?", req.Email).First(&existing).Error
	switch {
	case err == nil:
		existing.Frequency = req.Frequency
		if err := database.DB.Save(&existing).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Subscription updated"})
	case err == gorm.ErrRecordNotFound:
		sub := notify.Subscriber{Email: req.Email, Frequency: req.Frequency}
		if err := database.DB.Create(&sub).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Subscribed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func Unsubscribe(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
		return
	}
	res := database.DB.Where("email = ?", email).Delete(&notify.Subscriber{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "subscriber not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Unsubscribed"})
}

func ListSubscribers(c *gin.Context) {
	var subs []notify.Subscriber
	if err := database.DB.Order("created_at DESC").Find(&subs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, subs)
}
