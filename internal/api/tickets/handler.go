package tickets

import (
	"net/http"

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
// Client portal
// ------------------------------

// POST /api/my/tickets
func Create(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		AutomationID *string `json:"automation_id"`
		Title        string  `json:"title" binding:"required"`
		Description  string  `json:"description" binding:"required"`
		Priority     string  `json:"priority"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket := clients.SupportTicket{
		ClientID:     userID,
		AutomationID: body.AutomationID,
		Title:        body.Title,
		Description:  body.Description,
		Priority:     body.Priority,
		Status:       clients.TicketOpen,
	}
	if ticket.Priority == "" {
		ticket.Priority = "medium"
	}

	if err := database.DB.Create(&ticket).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GET /api/my/tickets - caller's tickets with responses
func ListMine(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var rows []clients.SupportTicket
	err := database.DB.
		Preload("Responses", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("client_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tickets"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /api/my/tickets/:id/responses - client reply on own ticket
func Respond(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ticket clients.SupportTicket
	if err := database.DB.First(&ticket, "id = ? AND client_id = ?", c.Param("id"), userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	resp := clients.TicketResponse{
		TicketID: ticket.ID,
		Message:  body.Message,
		IsAdmin:  false,
	}
	if err := database.DB.Create(&resp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// ------------------------------
// Admin side
// ------------------------------

// GET /admin/tickets?status=open
func AdminList(c *gin.Context) {
	q := database.DB.Model(&clients.SupportTicket{}).
		Preload("Responses").
		Order("created_at DESC")
	if status := c.Query("status"); status != "" {
		if !clients.ValidTicketStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		q = q.Where("status = ?", status)
	}

	var rows []clients.SupportTicket
	if err := q.Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tickets"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// POST /admin/tickets/:id/responses - admin reply
func AdminRespond(c *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var ticket clients.SupportTicket
	if err := database.DB.First(&ticket, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}

	resp := clients.TicketResponse{
		TicketID: ticket.ID,
		Message:  body.Message,
		IsAdmin:  true,
	}
	if err := database.DB.Create(&resp).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// a fresh admin reply moves open tickets into progress
	if ticket.Status == clients.TicketOpen {
		database.DB.Model(&ticket).Update("status", clients.TicketInProgress)
	}

	c.JSON(http.StatusCreated, resp)
}

// PATCH /admin/tickets/:id/status
func SetStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !clients.ValidTicketStatus(body.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	res := database.DB.Model(&clients.SupportTicket{}).
		Where("id = ?", c.Param("id")).
		Update("status", body.Status)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": res.Error.Error()})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ticket not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "status": body.Status})
}
