package blog

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

// PlaceholderImage is stored when no cover image can be located in an
// inbound payload.
const PlaceholderImage = "https://images.unsplash.com/photo-1485827404703-89b55fcc595e?w=800"

type BlogPost struct {
	ID       string   `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title    string   `gorm:"not null" json:"title"`
	Slug     string   `gorm:"not null;uniqueIndex" json:"slug"`
	Excerpt  string   `gorm:"not null" json:"excerpt"`
	Content  string   `gorm:"type:text;not null" json:"content"`
	Category string   `gorm:"index" json:"category"`
	Tags     TagList  `gorm:"type:text" json:"tags"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	ReadTime string   `gorm:"column:read_time" json:"readTime"`
	Image    string   `json:"image"`
	Featured bool     `gorm:"not null;default:false" json:"featured"`
	Status   string   `gorm:"not null;default:'draft';index" json:"status"`

	Translations []BlogTranslation `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;" json:"translations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BlogPost) TableName() string { return "blog_posts" }

// PublishedQuery scopes to posts visible on the public site.
func PublishedQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&BlogPost{}).Where("status = ?", StatusPublished)
}
