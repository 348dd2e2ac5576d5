package webhookconfig

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"automatizalo-backend/database"
	"automatizalo-backend/internal/domain/notify"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var testClient = &http.Client{Timeout: 15 * time.Second}

// GET /admin/webhooks
func List(c *gin.Context) {
	var rows []notify.WebhookConfig
	if err := database.DB.Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load webhooks"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /admin/webhooks - form-kind configs accept a pasted iframe and
// store its extracted URL.
func Create(c *gin.Context) {
	var row notify.WebhookConfig
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if row.Name == "" || row.ProductionURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and production_url are required"})
		return
	}

	if row.Kind == notify.WebhookKindForm {
		url, err := ExtractEmbedURL(row.ProductionURL)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		row.ProductionURL = url
	}

	if err := database.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

// PUT /admin/webhooks/:id
func Update(c *gin.Context) {
	id := c.Param("id")

	var row notify.WebhookConfig
	if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Webhook not found"})
		return
	}

	var body notify.WebhookConfig
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row.Name = body.Name
	row.Kind = body.Kind
	row.ProductionURL = body.ProductionURL
	row.TestURL = body.TestURL
	row.Active = body.Active
	if body.Mode == notify.ModeTest || body.Mode == notify.ModeProduction {
		row.Mode = body.Mode
	}

	if err := database.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /admin/webhooks/:id
func Delete(c *gin.Context) {
	res := database.DB.Delete(&notify.WebhookConfig{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Webhook not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Webhook deleted"})
}

// GET /admin/webhooks/:id/url - the URL the current mode resolves to
func ResolveURL(c *gin.Context) {
	var row notify.WebhookConfig
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Webhook not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": row.ActiveURL(), "mode": row.Mode})
}

// GET /api/webhooks/resolve/:kind - the active URL for a kind, used by
// the public site to target contact forms and signups.
func ResolveByKind(c *gin.Context) {
	kind := c.Param("kind")
	var row notify.WebhookConfig
	err := database.DB.
		Where("kind = ? AND active = ?", kind, true).
		Order("created_at DESC").
		First(&row).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No active webhook for kind " + kind})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": row.ActiveURL(), "mode": row.Mode})
}

// GET /admin/webhooks/:id/embed - embed code for form webhooks
func EmbedCode(c *gin.Context) {
	var row notify.WebhookConfig
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Webhook not found"})
		return
	}
	if row.Kind != notify.WebhookKindForm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only form webhooks have embed codes"})
		return
	}

	code, err := ToEmbedCode(row.ActiveURL())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"embed_code": code})
}

// POST /admin/webhooks/:id/test - fires a probe delivery at the URL
// the current mode resolves to.
func TestFire(c *gin.Context) {
	var row notify.WebhookConfig
	if err := database.DB.First(&row, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Webhook not found"})
		return
	}

	deliveryID := uuid.NewString()
	payload := []byte(`{"test":true,"delivery_id":"` + deliveryID + `","source":"automatizalo-backend"}`)

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodPost, row.ActiveURL(), bytes.NewReader(payload))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid webhook URL"})
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := testClient.Do(req)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "delivery failed: " + err.Error(), "delivery_id": deliveryID})
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

	c.JSON(http.StatusOK, gin.H{
		"delivery_id": deliveryID,
		"status":      resp.StatusCode,
		"response":    string(body),
	})
}
