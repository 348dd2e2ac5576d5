package automations

import (
	"net/http"
	"time"

	"automatizalo-backend/database"
	"automatizalo-backend/internal/domain/clients"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// ------------------------------
// Catalog (public + admin)
// ------------------------------

// GET /api/automations - active catalog entries
func ListCatalog(c *gin.Context) {
	var rows []clients.Automation
	if err := database.DB.Where("active = ?", true).Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load automations"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /admin/automations
func Create(c *gin.Context) {
	var row clients.Automation
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if row.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}
	if err := database.DB.Create(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

// PUT /admin/automations/:id
func Update(c *gin.Context) {
	id := c.Param("id")

	var row clients.Automation
	if err := database.DB.First(&row, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Automation not found"})
		return
	}

	var body clients.Automation
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row.Title = body.Title
	row.Description = body.Description
	row.ImageURL = body.ImageURL
	row.InstallationPrice = body.InstallationPrice
	row.MonthlyPrice = body.MonthlyPrice
	row.Active = body.Active
	if err := database.DB.Save(&row).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, row)
}

// DELETE /admin/automations/:id
func Delete(c *gin.Context) {
	res := database.DB.Delete(&clients.Automation{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Automation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Automation deleted"})
}

// ------------------------------
// Client portal
// ------------------------------

// GET /api/my/automations - the caller's purchased automations
func ListMine(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var rows []clients.ClientAutomation
	err := database.DB.
		Preload("Automation").
		Where("client_id = ?", userID).
		Order("purchase_date DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load automations"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /api/my/automations/:id/purchase
func Purchase(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	automationID := c.Param("id")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var a clients.Automation
		if err := tx.First(&a, "id = ? AND active = ?", automationID, true).Error; err != nil {
			return err
		}

		now := time.Now()
		next := now.AddDate(0, 1, 0)
		ca := clients.ClientAutomation{
			ClientID:        userID,
			AutomationID:    a.ID,
			Status:          clients.AutomationActive,
			PurchaseDate:    now,
			NextBillingDate: &next,
		}
		if err := tx.Create(&ca).Error; err != nil {
			return err
		}

		c.JSON(http.StatusCreated, ca)
		return nil
	})

	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Failed to purchase automation", "details": err.Error()})
	}
}

// POST /api/my/automations/:id/cancel
func Cancel(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	res := database.DB.Model(&clients.ClientAutomation{}).
		Where("id = ? AND client_id = ?", c.Param("id"), userID).
		Update("status", clients.AutomationCanceled)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Automation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Automation canceled"})
}
