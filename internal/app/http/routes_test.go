package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRegisteredRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r)

	registered := map[string]bool{}
	for _, ri := range r.Routes() {
		registered[ri.Method+" "+ri.Path] = true
	}

	// Routes whose handlers read a path parameter must declare it in
	// the pattern; gin silently yields "" for an undeclared name.
	want := []string{
		"POST /api/blog/webhook",
		"POST /api/blog/webhook/draft",
		"GET /api/blog/:slug",
		"GET /api/my/automations",
		"POST /api/my/automations/:id/purchase",
		"POST /api/my/automations/:id/cancel",
		"POST /api/my/tickets",
		"POST /api/my/tickets/:id/responses",
		"PUT /admin/blog/:id",
		"DELETE /admin/blog/:id/translations/:lang",
		"PUT /admin/content/:page/:section",
		"POST /admin/webhooks/:id/test",
		"POST /admin/newsletter/send",
	}
	for _, w := range want {
		if !registered[w] {
			t.Errorf("route %q not registered", w)
		}
	}
}
