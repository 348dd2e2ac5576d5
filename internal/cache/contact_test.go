package cache

import (
	"errors"
	"testing"
	"time"

	"automatizalo-backend/internal/domain/content"
)

func TestContactCacheExpiry(t *testing.T) {
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	loads := 0

	c := NewContactCache(
		time.Minute,
		func() time.Time { return clock },
		func() (*content.ContactInfo, error) {
			loads++
			return &content.ContactInfo{Email: "hello@automatizalo.co"}, nil
		},
	)

	if _, err := c.Get(); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Get(); err != nil {
		t.Fatal(err)
	}
	if loads != 1 {
		t.Errorf("loads = %d, want 1 (second Get should hit cache)", loads)
	}

	clock = clock.Add(61 * time.Second)
	if _, err := c.Get(); err != nil {
		t.Fatal(err)
	}
	if loads != 2 {
		t.Errorf("loads = %d, want 2 after TTL expiry", loads)
	}
}

func TestContactCacheInvalidate(t *testing.T) {
	loads := 0
	c := NewContactCache(time.Hour, nil, func() (*content.ContactInfo, error) {
		loads++
		return &content.ContactInfo{}, nil
	})

	c.Get()
	c.Invalidate()
	c.Get()
	if loads != 2 {
		t.Errorf("loads = %d, want 2 after Invalidate", loads)
	}
}

func TestContactCacheLoadError(t *testing.T) {
	c := NewContactCache(time.Hour, nil, func() (*content.ContactInfo, error) {
		return nil, errors.New("db down")
	})
	if _, err := c.Get(); err == nil {
		t.Fatal("expected load error to propagate")
	}
}
