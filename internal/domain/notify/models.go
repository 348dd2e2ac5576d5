package notify

import "time"

const (
	WebhookKindForm       = "form"
	WebhookKindPost       = "post"
	WebhookKindNewsletter = "newsletter"
)

const (
	ModeTest       = "test"
	ModeProduction = "production"
)

// WebhookConfig is an outbound webhook used to trigger an external
// workflow tool. Each config carries a production and a test URL; Mode
// selects which one is live.
type WebhookConfig struct {
	ID            string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string `gorm:"not null" json:"name"`
	Kind          string `gorm:"not null;index" json:"kind"`
	ProductionURL string `gorm:"not null" json:"production_url"`
	TestURL       string `json:"test_url"`
	Mode          string `gorm:"not null;default:'test'" json:"mode"`
	Active        bool   `gorm:"not null;default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ActiveURL returns the URL the current mode points at, falling back to
// the production URL when no test URL is configured.
func (w WebhookConfig) ActiveURL() string {
	if w.Mode == ModeTest && w.TestURL != "" {
		return w.TestURL
	}
	return w.ProductionURL
}

type Subscriber struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Email     string `gorm:"not null;uniqueIndex" json:"email"`
	Frequency string `gorm:"not null;default:'weekly'" json:"frequency"`

	CreatedAt time.Time `json:"created_at"`
}

type NewsletterTemplate struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name       string `gorm:"not null" json:"name"`
	Subject    string `gorm:"not null" json:"subject"`
	HeaderHTML string `gorm:"type:text" json:"header_html"`
	FooterHTML string `gorm:"type:text" json:"footer_html"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewsletterHistory records a real (non-test) send.
type NewsletterHistory struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	TemplateID     *string   `gorm:"type:uuid" json:"template_id,omitempty"`
	Frequency      string    `gorm:"not null" json:"frequency"`
	Subject        string    `gorm:"not null" json:"subject"`
	RecipientCount int       `gorm:"not null" json:"recipient_count"`
	SentAt         time.Time `json:"sent_at"`
}
