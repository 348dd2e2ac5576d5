package database

import (
	"fmt"
	"log"

	"automatizalo-backend/config"
	"automatizalo-backend/internal/domain/blog"
	"automatizalo-backend/internal/domain/clients"
	"automatizalo-backend/internal/domain/content"
	"automatizalo-backend/internal/domain/notify"
	"automatizalo-backend/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := config.DB_URL
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	// Required for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("Failed to enable pgcrypto extension:", err)
	}

	if err := DB.AutoMigrate(
		// core
		&users.User{},
		&users.VerificationToken{},

		// blog
		&blog.BlogPost{},
		&blog.BlogTranslation{},

		// site content
		&content.PageContent{},
		&content.PageImage{},
		&content.Testimonial{},
		&content.ContactInfo{},

		// client portal
		&clients.Automation{},
		&clients.ClientAutomation{},
		&clients.SupportTicket{},
		&clients.TicketResponse{},

		// outbound
		&notify.WebhookConfig{},
		&notify.Subscriber{},
		&notify.NewsletterTemplate{},
		&notify.NewsletterHistory{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
