package admin

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"automatizalo-backend/database"
	"automatizalo-backend/internal/domain/blog"
	"automatizalo-backend/internal/domain/clients"
	"automatizalo-backend/internal/domain/notify"
	"automatizalo-backend/internal/domain/users"
)

type AdminClient struct {
	ID              uint   `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	IsVerified      bool   `json:"is_verified"`
	AutomationCount int64  `json:"automation_count"`
	OpenTickets     int64  `json:"open_tickets"`
	JoinedAt        string `json:"joined_at"`
}

type AdminStats struct {
	TotalClients     int64          `json:"total_clients"`
	TotalPosts       int64          `json:"total_posts"`
	PublishedPosts   int64          `json:"published_posts"`
	DraftPosts       int64          `json:"draft_posts"`
	RecentPosts      int64          `json:"recent_posts"`
	OpenTickets      int64          `json:"open_tickets"`
	TotalSubscribers int64          `json:"total_subscribers"`
	TicketsByStatus  map[string]int `json:"tickets_by_status"`
}

// GetStats powers the admin dashboard overview cards.
func GetStats(c *gin.Context) {
	var stats AdminStats

	database.DB.Model(&users.User{}).Where("role = ?", users.RoleClient).Count(&stats.TotalClients)
	database.DB.Model(&blog.BlogPost{}).Count(&stats.TotalPosts)
	database.DB.Model(&blog.BlogPost{}).Where("status = ?", blog.StatusPublished).Count(&stats.PublishedPosts)
	database.DB.Model(&blog.BlogPost{}).Where("status = ?", blog.StatusDraft).Count(&stats.DraftPosts)

	thirtyDaysAgo := time.Now().AddDate(0, 0, -30).Format("2006-01-02")
	database.DB.Model(&blog.BlogPost{}).
		Where("status = ? AND date >= ?", blog.StatusPublished, thirtyDaysAgo).
		Count(&stats.RecentPosts)

	database.DB.Model(&clients.SupportTicket{}).
		Where("status <> ?", clients.TicketClosed).
		Count(&stats.OpenTickets)
	database.DB.Model(&notify.Subscriber{}).Count(&stats.TotalSubscribers)

	type statusCount struct {
		Status string
		Count  int
	}
	var counts []statusCount
	database.DB.Model(&clients.SupportTicket{}).
		Select("status, COUNT(id) as count").
		Group("status").
		Scan(&counts)

	stats.TicketsByStatus = map[string]int{}
	for _, sc := range counts {
		stats.TicketsByStatus[sc.Status] = sc.Count
	}

	c.JSON(http.StatusOK, stats)
}

func ListClients(c *gin.Context) {
	var rows []users.User
	if err := database.DB.Where("role = ?", users.RoleClient).Order("created_at DESC").Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load clients"})
		return
	}

	result := make([]AdminClient, 0, len(rows))
	for _, u := range rows {
		var automationCount, openTickets int64
		database.DB.Model(&clients.ClientAutomation{}).
			Where("client_id = ? AND status = ?", u.ID, clients.AutomationActive).
			Count(&automationCount)
		database.DB.Model(&clients.SupportTicket{}).
			Where("client_id = ? AND status <> ?", u.ID, clients.TicketClosed).
			Count(&openTickets)

		result = append(result, AdminClient{
			ID:              u.ID,
			Name:            u.Name,
			Email:           u.Email,
			Phone:           u.Phone,
			IsVerified:      u.IsVerified,
			AutomationCount: automationCount,
			OpenTickets:     openTickets,
			JoinedAt:        u.CreatedAt.Format("2006-01-02"),
		})
	}

	c.JSON(http.StatusOK, result)
}

func GetClientDetails(c *gin.Context) {
	clientID := c.Param("id")

	var user users.User
	if err := database.DB.First(&user, clientID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}

	var automations []clients.ClientAutomation
	if err := database.DB.Preload("Automation").Where("client_id = ?", clientID).Find(&automations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch automations"})
		return
	}

	var tickets []clients.SupportTicket
	if err := database.DB.Where("client_id = ?", clientID).Order("created_at DESC").Find(&tickets).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tickets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"client":      user,
		"automations": automations,
		"tickets":     tickets,
	})
}
