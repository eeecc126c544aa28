package mailer

import (
	"fmt"
	"net/smtp"
	"os"
)

// Sender dispatches a single HTML email. Handlers depend on this interface
// so tests can swap in a stub.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

// Mailer sends through a plain-auth SMTP relay configured from the
// environment (SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS).
type Mailer struct {
	Host string
	Port string
	User string
	Pass string
}

func NewFromEnv() *Mailer {
	return &Mailer{
		Host: os.Getenv("SMTP_HOST"),
		Port: os.Getenv("SMTP_PORT"),
		User: os.Getenv("SMTP_USER"),
		Pass: os.Getenv("SMTP_PASS"),
	}
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.User, to, subject, htmlBody,
	)
	auth := smtp.PlainAuth("", m.User, m.Pass, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.User, []string{to}, []byte(msg))
}
