package blogwebhook

import "automatizalo-backend/internal/domain/blog"

// CreatedResponse is the body of the standard webhook endpoint.
type CreatedResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
	Slug    string `json:"slug"`
	URL     string `json:"url"`
	FullURL string `json:"fullUrl"`
}

// DraftResponse is the body of the draft variant, which echoes the
// stored row.
type DraftResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    blog.BlogPost `json:"data"`
}
