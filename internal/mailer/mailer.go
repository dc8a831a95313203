// Package mailer sends the admin a plain-text note when a visitor leaves
// feedback. It is disabled entirely when no SMTP host is configured.
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"craftfolio/internal/config"
	"craftfolio/internal/models"
)

type Mailer struct {
	host       string
	port       int
	username   string
	password   string
	fromEmail  string
	adminEmail string
}

// New returns nil when SMTP is not configured; callers treat a nil Mailer
// as "notifications off".
func New(cfg *config.Config) *Mailer {
	if cfg.SMTP.Host == "" || cfg.SMTP.AdminEmail == "" {
		return nil
	}
	return &Mailer{
		host:       cfg.SMTP.Host,
		port:       cfg.SMTP.Port,
		username:   cfg.SMTP.Username,
		password:   cfg.SMTP.Password,
		fromEmail:  cfg.SMTP.FromEmail,
		adminEmail: cfg.SMTP.AdminEmail,
	}
}

// NotifyFeedback emails the configured admin address about a new
// submission.
func (m *Mailer) NotifyFeedback(fb *models.Feedback) error {
	rating := "not given"
	if fb.Rating != nil {
		rating = fmt.Sprintf("%d/5", *fb.Rating)
	}

	body := fmt.Sprintf(
		"New feedback from %s\n\nEmail: %s\nRating: %s\n\n%s\n",
		fb.Name, orDash(fb.Email), rating, fb.Message,
	)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.fromEmail)
	msg.SetHeader("To", m.adminEmail)
	msg.SetHeader("Subject", fmt.Sprintf("New feedback from %s", fb.Name))
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send feedback notification: %w", err)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
