package automations

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPurchaseRequiresAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/my/automations/:id/purchase", Purchase)

	req := httptest.NewRequest(http.MethodPost, "/api/my/automations/0b9f10c2/purchase", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 before any lookup", w.Code)
	}
}

func TestCancelRequiresAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/my/automations/:id/cancel", Cancel)

	req := httptest.NewRequest(http.MethodPost, "/api/my/automations/0b9f10c2/cancel", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401 before any update", w.Code)
	}
}
