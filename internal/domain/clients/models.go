package clients

import (
	"time"

	"automatizalo-backend/internal/domain/users"
)

const (
	AutomationActive   = "active"
	AutomationCanceled = "canceled"
)

const (
	TicketOpen       = "open"
	TicketInProgress = "in_progress"
	TicketResolved   = "resolved"
	TicketClosed     = "closed"
)

// ValidTicketStatus reports whether s is one of the ticket status enum
// values.
func ValidTicketStatus(s string) bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketResolved, TicketClosed:
		return true
	}
	return false
}

// Automation is a product in the catalog: a packaged workflow the
// business resells to clients.
type Automation struct {
	ID                string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title             string  `gorm:"not null" json:"title"`
	Description       string  `gorm:"type:text" json:"description"`
	ImageURL          string  `json:"image_url"`
	InstallationPrice float64 `json:"installation_price"`
	MonthlyPrice      float64 `json:"monthly_price"`
	Active            bool    `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientAutomation links a client to an automation they purchased.
type ClientAutomation struct {
	ID           string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID     uint   `gorm:"not null;index:idx_client_automation,unique,priority:1" json:"client_id"`
	Client       users.User `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	AutomationID string `gorm:"type:uuid;not null;index:idx_client_automation,unique,priority:2" json:"automation_id"`
	Automation   Automation `gorm:"foreignKey:AutomationID" json:"automation,omitempty"`

	Status          string     `gorm:"not null;default:'active'" json:"status"`
	PurchaseDate    time.Time  `json:"purchase_date"`
	NextBillingDate *time.Time `json:"next_billing_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SupportTicket struct {
	ID           string  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ClientID     uint    `gorm:"not null;index" json:"client_id"`
	Client       users.User `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"-"`
	AutomationID *string `gorm:"type:uuid;index" json:"automation_id,omitempty"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Priority    string `gorm:"not null;default:'medium'" json:"priority"`
	Status      string `gorm:"not null;default:'open';index" json:"status"`

	Responses []TicketResponse `gorm:"foreignKey:TicketID;constraint:OnDelete:CASCADE;" json:"responses,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TicketResponse struct {
	ID       string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TicketID string `gorm:"type:uuid;not null;index" json:"ticket_id"`
	Message  string `gorm:"type:text;not null" json:"message"`
	IsAdmin  bool   `gorm:"not null;default:false" json:"is_admin"`

	CreatedAt time.Time `json:"created_at"`
}
