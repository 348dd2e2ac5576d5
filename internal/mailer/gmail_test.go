package mailer

import (
	"net/smtp"
	"strings"
	"testing"
)

func TestBuildMessage(t *testing.T) {
	msg := string(BuildMessage("from@x.co", []string{"a@x.co", "b@x.co"}, "Hello", "<p>Hi</p>"))

	for _, want := range []string{
		"From: from@x.co\r\n",
		"To: a@x.co, b@x.co\r\n",
		"Subject: Hello\r\n",
		"Content-Type: text/html; charset=UTF-8\r\n",
		"\r\n\r\n<p>Hi</p>\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestXOAuth2Start(t *testing.T) {
	a := xoauth2Auth{user: "me@x.co", accessToken: "tok123"}

	proto, resp, err := a.Start(&smtp.ServerInfo{TLS: true})
	if err != nil {
		t.Fatal(err)
	}
	if proto != "XOAUTH2" {
		t.Errorf("proto = %q", proto)
	}
	want := "user=me@x.co\x01auth=Bearer tok123\x01\x01"
	if string(resp) != want {
		t.Errorf("initial response = %q, want %q", resp, want)
	}
}

func TestXOAuth2RequiresTLS(t *testing.T) {
	a := xoauth2Auth{user: "me@x.co", accessToken: "tok"}
	if _, _, err := a.Start(&smtp.ServerInfo{TLS: false}); err == nil {
		t.Fatal("expected error without TLS")
	}
}
