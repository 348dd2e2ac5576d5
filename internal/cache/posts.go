package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"automatizalo-backend/internal/domain/blog"

	"github.com/redis/go-redis/v9"
)

const publishedListKey = "blog:published"

// PostCache caches published posts in redis. A nil client disables
// caching entirely, so callers never need to branch on availability.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	return &PostCache{client: client, ttl: ttl}
}

// GetBySlug returns a cached post, or nil on a miss.
func (c *PostCache) GetBySlug(ctx context.Context, slug string) (*blog.BlogPost, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, slugKey(slug)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}
	var post blog.BlogPost
	if err := json.Unmarshal([]byte(data), &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached post: %w", err)
	}
	return &post, nil
}

// SetBySlug stores a post under its slug with the configured TTL.
func (c *PostCache) SetBySlug(ctx context.Context, post *blog.BlogPost) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("failed to marshal post: %w", err)
	}
	return c.client.Set(ctx, slugKey(post.Slug), data, c.ttl).Err()
}

// GetPublished returns the cached published-post list, or nil on a miss.
func (c *PostCache) GetPublished(ctx context.Context) ([]blog.BlogPost, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	data, err := c.client.Get(ctx, publishedListKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get from cache: %w", err)
	}
	var posts []blog.BlogPost
	if err := json.Unmarshal([]byte(data), &posts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached posts: %w", err)
	}
	return posts, nil
}

// SetPublished caches the published-post list.
func (c *PostCache) SetPublished(ctx context.Context, posts []blog.BlogPost) error {
	if c == nil || c.client == nil {
		return nil
	}
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("failed to marshal posts: %w", err)
	}
	return c.client.Set(ctx, publishedListKey, data, c.ttl).Err()
}

// Invalidate drops the list key and, when slug is non-empty, the
// per-slug entry. Called after any post write.
func (c *PostCache) Invalidate(slug string) {
	if c == nil || c.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	keys := []string{publishedListKey}
	if slug != "" {
		keys = append(keys, slugKey(slug))
	}
	c.client.Del(ctx, keys...)
}

func slugKey(slug string) string {
	return "blog:slug:" + slug
}
