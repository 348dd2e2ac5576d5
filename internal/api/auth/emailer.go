package auth

import (
	"fmt"

	"automatizalo-backend/config"
	"automatizalo-backend/internal/mailer"
)

// SendVerificationEmail mails the account-verification link through the
// Gmail relay. When mail credentials are not configured the link is
// printed instead, which keeps local development working.
func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/auth/verify?token=%s", config.SITE_BASE_URL, token)
	body := fmt.Sprintf(
		`<p>Welcome to Automatizalo.</p><p>Click <a href="%s">here</a> to verify your account.</p>`,
		link,
	)
	return sendOrPrint(to, "Verify Your Account", body, link)
}

// SendPasswordResetEmail mails a password-reset link.
func SendPasswordResetEmail(to string, link string) error {
	body := fmt.Sprintf(
		`<p>A password reset was requested for your account.</p><p><a href="%s">Reset your password</a>. The link expires in one hour.</p>`,
		link,
	)
	return sendOrPrint(to, "Reset Your Password", body, link)
}

func sendOrPrint(to, subject, body, link string) error {
	gm, err := mailer.NewGmail()
	if err != nil {
		fmt.Printf("Mail not configured, link for %s: %s\n", to, link)
		return nil
	}
	return gm.Send([]string{to}, subject, body)
}
