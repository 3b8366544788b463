package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/dropship/backend/internal/domain/supplier"
	"github.com/dropship/backend/internal/infrastructure/config"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const welcomeSubject = "Welcome to the marketplace"

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<html>
<body>
<p>Hello {{.Name}},</p>
<p>Your supplier account has been created. Your storefront is available at
<a href="/suppliers/{{.Slug}}">/suppliers/{{.Slug}}</a>.</p>
<p>You can now manage your stock locations and start listing products.</p>
</body>
</html>`))

// sendFunc performs the actual SMTP delivery. Swapped out in tests.
type sendFunc func(m *gomail.Message) error

// SMTPWelcomeMailer delivers supplier welcome emails over SMTP
type SMTPWelcomeMailer struct {
	cfg    config.SMTPConfig
	send   sendFunc
	logger *zap.Logger
}

// NewSMTPWelcomeMailer creates a welcome mailer using the given SMTP settings
func NewSMTPWelcomeMailer(cfg config.SMTPConfig, logger *zap.Logger) *SMTPWelcomeMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	return &SMTPWelcomeMailer{
		cfg:    cfg,
		send: func(m *gomail.Message) error {
			return dialer.DialAndSend(m)
		},
		logger: logger,
	}
}

// SendWelcome sends the onboarding email to the supplier's contact address
func (m *SMTPWelcomeMailer) SendWelcome(ctx context.Context, s *supplier.Supplier) error {
	if s.Email == "" {
		return fmt.Errorf("supplier %s has no contact email", s.ID)
	}

	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, map[string]string{
		"Name": s.Name,
		"Slug": s.Slug,
	}); err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", s.EmailWithName())
	msg.SetHeader("Subject", welcomeSubject)
	msg.SetBody("text/html", body.String())

	if err := m.send(msg); err != nil {
		return fmt.Errorf("send welcome email to %s: %w", s.Email, err)
	}

	m.logger.Info("welcome email sent",
		zap.String("supplier_id", s.ID.String()),
		zap.String("email", s.Email),
	)
	return nil
}
