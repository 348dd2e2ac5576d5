package content

import "time"

// PageContent is an admin override for a single editable section of a
// marketing page. Absence of a row means the frontend renders its
// compiled-in default copy.
type PageContent struct {
	ID          string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Page        string `gorm:"not null;uniqueIndex:idx_page_section,priority:1" json:"page"`
	SectionName string `gorm:"not null;uniqueIndex:idx_page_section,priority:2" json:"section_name"`
	Content     string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PageImage is an admin override for a single image slot on a page.
type PageImage struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Page      string `gorm:"not null;uniqueIndex:idx_page_image,priority:1" json:"page"`
	SectionID string `gorm:"not null;uniqueIndex:idx_page_image,priority:2" json:"section_id"`
	ImageURL  string `gorm:"not null" json:"image_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Testimonial struct {
	ID        string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string `gorm:"not null" json:"name"`
	Company   string `json:"company"`
	Text      string `gorm:"type:text;not null" json:"text"`
	AvatarURL string `json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactInfo is the site-wide contact block shown in the footer and on
// the contact page. A single row table.
type ContactInfo struct {
	ID      string `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Website string `json:"website"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
