package users

import "time"

const (
	TokenTypeVerifyEmail   = "verify_email"
	TokenTypePasswordReset = "password_reset"
)

// A user holds at most one live token per type, so a pending
// verify_email token never blocks a password_reset one.
type VerificationToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex:idx_verification_user_type"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Token     string `gorm:"uniqueIndex"`
	Type      string `gorm:"uniqueIndex:idx_verification_user_type"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
