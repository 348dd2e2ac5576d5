// Package mailer sends HTML mail through Gmail's SMTP relay using an
// OAuth2 refresh token instead of a password.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"

	"automatizalo-backend/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = "587"
)

// Mailer delivers mail. Satisfied by Gmail in production and by fakes
// in tests.
type Mailer interface {
	Send(to []string, subject, htmlBody string) error
}

type Gmail struct {
	sender string
	tokens oauth2.TokenSource
}

// NewGmail builds a Gmail mailer from the configured OAuth client and
// refresh token. Returns an error when the mail credentials are not
// configured.
func NewGmail() (*Gmail, error) {
	if config.GMAIL_CLIENT_ID == "" || config.GMAIL_CLIENT_SECRET == "" ||
		config.GMAIL_REFRESH_TOKEN == "" || config.GMAIL_SENDER == "" {
		return nil, errors.New("gmail credentials not configured")
	}

	conf := &oauth2.Config{
		ClientID:     config.GMAIL_CLIENT_ID,
		ClientSecret: config.GMAIL_CLIENT_SECRET,
		Endpoint:     google.Endpoint,
		Scopes:       []string{"https://mail.google.com/"},
	}
	tokens := conf.TokenSource(context.Background(), &oauth2.Token{
		RefreshToken: config.GMAIL_REFRESH_TOKEN,
	})

	return &Gmail{sender: config.GMAIL_SENDER, tokens: tokens}, nil
}

// Send delivers one HTML message to the given recipients.
func (g *Gmail) Send(to []string, subject, htmlBody string) error {
	tok, err := g.tokens.Token()
	if err != nil {
		return fmt.Errorf("refreshing gmail token: %w", err)
	}

	msg := BuildMessage(g.sender, to, subject, htmlBody)
	auth := xoauth2Auth{user: g.sender, accessToken: tok.AccessToken}

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, g.sender, to, msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

// BuildMessage assembles an RFC 5322 HTML message. Recipients go in a
// single To header; the envelope recipients are handled by SendMail.
func BuildMessage(from string, to []string, subject, htmlBody string) []byte {
	msg := "From: " + from + "\r\n" +
		"To: " + joinAddresses(to) + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		htmlBody + "\r\n"
	return []byte(msg)
}

func joinAddresses(to []string) string {
	out := ""
	for i, addr := range to {
		if i > 0 {
			out += ", "
		}
		out += addr
	}
	return out
}

// xoauth2Auth implements the SASL XOAUTH2 mechanism Gmail expects.
type xoauth2Auth struct {
	user        string
	accessToken string
}

func (a xoauth2Auth) Start(server *smtp.ServerInfo) (string, []byte, error) {
	if !server.TLS {
		return "", nil, errors.New("xoauth2 requires a TLS connection")
	}
	resp := []byte("user=" + a.user + "\x01auth=Bearer " + a.accessToken + "\x01\x01")
	return "XOAUTH2", resp, nil
}

func (a xoauth2Auth) Next(fromServer []byte, more bool) ([]byte, error) {
	if more {
		// server sent an error challenge; an empty response elicits the
		// final error
		return []byte{}, nil
	}
	return nil, nil
}
