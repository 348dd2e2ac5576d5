package blogapi

import (
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"automatizalo-backend/config"
	"automatizalo-backend/database"
	"automatizalo-backend/internal/domain/blog"

	"github.com/gin-gonic/gin"
	openai "github.com/sashabaranov/go-openai"
)

const excerptPrompt = "Write a very brief summary of this blog post in 1-2 sentences. Respond without HTML or Markdown. Text:\n\n%s"

var stripTags = regexp.MustCompile(`<[^>]*>`)

// POST /admin/blog/:id/excerpt - regenerates the excerpt from the
// post content. Requires OPENAI_API_KEY.
func RegenerateExcerpt(c *gin.Context) {
	if config.OPENAI_API_KEY == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "OPENAI_API_KEY not configured"})
		return
	}

	id := c.Param("id")
	var post blog.BlogPost
	if err := database.DB.First(&post, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	plain := strings.TrimSpace(stripTags.ReplaceAllString(post.Content, " "))
	if plain == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Post has no content to summarize"})
		return
	}

	client := openai.NewClient(config.OPENAI_API_KEY)
	resp, err := client.CreateChatCompletion(c.Request.Context(), openai.ChatCompletionRequest{
		Model: openai.GPT4oMini,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(excerptPrompt, plain)},
		},
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Summarization failed: " + err.Error()})
		return
	}
	if len(resp.Choices) == 0 {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Summarization returned no result"})
		return
	}

	excerpt := strings.TrimSpace(resp.Choices[0].Message.Content)
	if excerpt == "" {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Summarization returned an empty excerpt"})
		return
	}

	if err := database.DB.Model(&post).Update("excerpt", excerpt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	postCache.Invalidate(post.Slug)

	c.JSON(http.StatusOK, gin.H{"id": post.ID, "excerpt": excerpt})
}
