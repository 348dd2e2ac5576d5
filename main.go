package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"automatizalo-backend/config"
	"automatizalo-backend/database"
	blogapi "automatizalo-backend/internal/api/blog"
	"automatizalo-backend/internal/api/blogwebhook"
	contentapi "automatizalo-backend/internal/api/content"
	"automatizalo-backend/internal/api/newsletter"
	routes "automatizalo-backend/internal/app/http"
	"automatizalo-backend/internal/cache"
	"automatizalo-backend/internal/mailer"
	"automatizalo-backend/internal/translate"
	"automatizalo-backend/pkg/logger"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	log := logger.New()

	// Redis is optional; without it blog reads hit the database.
	var rdb *redis.Client
	if config.REDIS_URL != "" {
		opt, err := redis.ParseURL(config.REDIS_URL)
		if err != nil {
			log.Warn().Err(err).Msg("invalid REDIS_URL, caching disabled")
		} else {
			rdb = redis.NewClient(opt)
		}
	}
	postCache := cache.NewPostCache(rdb, 5*time.Minute)

	translator := translate.NewGoogleClient(config.TRANSLATE_API_URL, config.TRANSLATE_API_KEY)
	dispatcher := translate.NewDispatcher(translator, translate.GormStore{DB: database.DB}, log)

	var mail mailer.Mailer
	if gm, err := mailer.NewGmail(); err != nil {
		log.Warn().Err(err).Msg("gmail sender not configured, newsletter delivery disabled")
	} else {
		mail = gm
	}

	blogwebhook.Setup(dispatcher, postCache, log)
	blogapi.Setup(postCache, dispatcher, log)
	contentapi.Setup()
	newsletter.Setup(mail, log)

	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
