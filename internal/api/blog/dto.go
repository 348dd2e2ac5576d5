package blogapi

import "automatizalo-backend/internal/domain/blog"

// PostRequest is the admin create/update form body.
type PostRequest struct {
	Title    string   `json:"title" binding:"required"`
	Slug     string   `json:"slug"`
	Excerpt  string   `json:"excerpt" binding:"required"`
	Content  string   `json:"content" binding:"required"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Author   string   `json:"author"`
	Date     string   `json:"date"`
	ReadTime string   `json:"read_time"`
	Image    string   `json:"image"`
	Featured *bool    `json:"featured"`
	Status   string   `json:"status"`
}

func (r PostRequest) ToPost() blog.BlogPost {
	post := blog.BlogPost{
		Title:    r.Title,
		Slug:     r.Slug,
		Excerpt:  r.Excerpt,
		Content:  r.Content,
		Category: r.Category,
		Tags:     blog.TagList(r.Tags),
		Author:   r.Author,
		Date:     r.Date,
		ReadTime: r.ReadTime,
		Image:    r.Image,
		Status:   r.Status,
	}
	if r.Featured != nil {
		post.Featured = *r.Featured
	}
	if post.Tags == nil {
		post.Tags = blog.TagList{}
	}
	return post
}

// Apply copies the request onto an existing post, leaving unset
// optional fields alone.
func (r PostRequest) Apply(post *blog.BlogPost) {
	post.Title = r.Title
	post.Excerpt = r.Excerpt
	post.Content = r.Content
	if r.Slug != "" {
		post.Slug = r.Slug
	}
	if r.Category != "" {
		post.Category = r.Category
	}
	if r.Tags != nil {
		post.Tags = blog.TagList(r.Tags)
	}
	if r.Author != "" {
		post.Author = r.Author
	}
	if r.Date != "" {
		post.Date = r.Date
	}
	if r.ReadTime != "" {
		post.ReadTime = r.ReadTime
	}
	if r.Image != "" {
		post.Image = r.Image
	}
	if r.Featured != nil {
		post.Featured = *r.Featured
	}
	if r.Status == blog.StatusDraft || r.Status == blog.StatusPublished {
		post.Status = r.Status
	}
}

// TranslationRequest is the manual translation panel body.
type TranslationRequest struct {
	Lang    string `json:"lang" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Excerpt string `json:"excerpt"`
	Content string `json:"content" binding:"required"`
}
