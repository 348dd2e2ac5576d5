package routes

import (
	adminapi "automatizalo-backend/internal/api/admin"
	authapi "automatizalo-backend/internal/api/auth"
	"automatizalo-backend/internal/api/automations"
	blogapi "automatizalo-backend/internal/api/blog"
	"automatizalo-backend/internal/api/blogwebhook"
	contentapi "automatizalo-backend/internal/api/content"
	"automatizalo-backend/internal/api/newsletter"
	"automatizalo-backend/internal/api/tickets"
	"automatizalo-backend/internal/api/users"
	"automatizalo-backend/internal/api/webhookconfig"
	"automatizalo-backend/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Automation payloads arrive as raw markdown/HTML, so the webhook
	// routes bypass input sanitization.
	r.POST("/api/blog/webhook", blogwebhook.ReceivePost)
	r.POST("/api/blog/webhook/draft", blogwebhook.ReceiveDraft)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/api/blog", blogapi.ListPublished)
	r.GET("/api/blog/categories", blogapi.ListCategories)
	r.GET("/api/blog/:slug", blogapi.GetBySlug)

	r.GET("/api/content/:page", contentapi.GetPageContent)
	r.GET("/api/images/:page", contentapi.GetPageImages)
	r.GET("/api/testimonials", contentapi.ListTestimonials)
	r.GET("/api/contact-info", contentapi.GetContactInfo)
	r.GET("/api/automations", automations.ListCatalog)
	r.GET("/api/webhooks/resolve/:kind", webhookconfig.ResolveByKind)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.GET("/verify", authapi.VerifyEmail)
	public.POST("/request-password-reset", authapi.RequestPasswordReset)
	public.POST("/reset-password", authapi.ResetPassword)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	public.POST("/api/newsletter/subscribe", newsletter.Subscribe)
	public.GET("/api/newsletter/unsubscribe", newsletter.Unsubscribe)

	// Authenticated (client portal)
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.PUT("/me", users.UpdateProfile)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/api/my/automations", automations.ListMine)
	auth.POST("/api/my/automations/:id/purchase", automations.Purchase)
	auth.POST("/api/my/automations/:id/cancel", automations.Cancel)

	auth.POST("/api/my/tickets", tickets.Create)
	auth.GET("/api/my/tickets", tickets.ListMine)
	auth.POST("/api/my/tickets/:id/responses", tickets.Respond)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/stats", adminapi.GetStats)
	admin.GET("/clients", adminapi.ListClients)
	admin.GET("/clients/:id", adminapi.GetClientDetails)

	admin.GET("/blog", blogapi.AdminList)
	admin.POST("/blog", blogapi.Create)
	admin.PUT("/blog/:id", blogapi.Update)
	admin.PATCH("/blog/:id/status", blogapi.SetStatus)
	admin.PATCH("/blog/:id/featured", blogapi.SetFeatured)
	admin.DELETE("/blog/:id", blogapi.Delete)
	admin.GET("/blog/export", blogapi.ExportCSV)
	admin.POST("/blog/:id/excerpt", blogapi.RegenerateExcerpt)
	admin.PUT("/blog/:id/translations", blogapi.UpsertTranslation)
	admin.DELETE("/blog/:id/translations/:lang", blogapi.DeleteTranslation)
	admin.POST("/blog/:id/translate", blogapi.TranslateNow)

	admin.PUT("/content/:page/:section", contentapi.UpsertPageContent)
	admin.PUT("/images/:page/:section", contentapi.UpsertPageImage)
	admin.POST("/testimonials", contentapi.CreateTestimonial)
	admin.PUT("/testimonials/:id", contentapi.UpdateTestimonial)
	admin.DELETE("/testimonials/:id", contentapi.DeleteTestimonial)
	admin.PUT("/contact-info", contentapi.UpdateContactInfo)

	admin.POST("/automations", automations.Create)
	admin.PUT("/automations/:id", automations.Update)
	admin.DELETE("/automations/:id", automations.Delete)

	admin.GET("/tickets", tickets.AdminList)
	admin.POST("/tickets/:id/responses", tickets.AdminRespond)
	admin.PATCH("/tickets/:id/status", tickets.SetStatus)

	admin.GET("/webhooks", webhookconfig.List)
	admin.POST("/webhooks", webhookconfig.Create)
	admin.PUT("/webhooks/:id", webhookconfig.Update)
	admin.DELETE("/webhooks/:id", webhookconfig.Delete)
	admin.GET("/webhooks/:id/url", webhookconfig.ResolveURL)
	admin.GET("/webhooks/:id/embed", webhookconfig.EmbedCode)
	admin.POST("/webhooks/:id/test", webhookconfig.TestFire)

	admin.POST("/newsletter/send", newsletter.Send)
	admin.GET("/newsletter/history", newsletter.History)
	admin.GET("/newsletter/subscribers", newsletter.ListSubscribers)
	admin.GET("/newsletter/templates", newsletter.ListTemplates)
	admin.POST("/newsletter/templates", newsletter.CreateTemplate)
	admin.PUT("/newsletter/templates/:id", newsletter.UpdateTemplate)
	admin.DELETE("/newsletter/templates/:id", newsletter.DeleteTemplate)
}
