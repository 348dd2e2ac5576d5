package blog

import "time"

// TargetLanguages are the languages posts are translated into after
// creation. The source language is English.
var TargetLanguages = []string{"es", "fr"}

type BlogTranslation struct {
	PostID  string `gorm:"type:uuid;primaryKey" json:"post_id"`
	Lang    string `gorm:"primaryKey" json:"lang"`
	Title   string `gorm:"not null" json:"title"`
	Excerpt string `json:"excerpt"`
	Content string `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (BlogTranslation) TableName() string { return "blog_translations" }

// Usable reports whether a translation result is worth persisting. An
// empty title or content means the upstream call failed or returned
// garbage, and the row is skipped.
func (t BlogTranslation) Usable() bool {
	return t.Title != "" && t.Content != ""
}
