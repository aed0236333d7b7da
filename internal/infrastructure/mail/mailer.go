package mail

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/config"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
)

// SMTPMailer sends transactional email over one configured SMTP transport.
// Each send is a synchronous dial-and-send round trip.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPMailer creates a mailer from SMTP configuration
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
	}
}

func (m *SMTPMailer) send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}
	return nil
}

// SendOTP emails a one-time code with purpose-specific copy
func (m *SMTPMailer) SendOTP(_ context.Context, to, code string, purpose entities.OTPPurpose, ttl time.Duration) error {
	subject, body, err := renderOTPBody(code, purpose, ttl)
	if err != nil {
		return err
	}
	return m.send(to, subject, body)
}

// SendWelcome emails the signup welcome message
func (m *SMTPMailer) SendWelcome(_ context.Context, to, name string) error {
	body, err := renderWelcomeBody(name)
	if err != nil {
		return err
	}
	return m.send(to, "Welcome to CrowdWave", body)
}

// SendDeliveryUpdate notifies a sender of delivery progress
func (m *SMTPMailer) SendDeliveryUpdate(_ context.Context, to, packageID, status, message string) error {
	body, err := renderDeliveryUpdateBody(packageID, status, message)
	if err != nil {
		return err
	}
	return m.send(to, "Delivery update for your package", body)
}

// SendPromotional sends one promotional email. Batch pacing is the
// caller's concern.
func (m *SMTPMailer) SendPromotional(_ context.Context, to, subject, body string) error {
	return m.send(to, subject, body)
}

// SendTest sends a minimal message to verify the transport configuration
func (m *SMTPMailer) SendTest(_ context.Context, to string) error {
	return m.send(to, "CrowdWave CRM test email", "<p>The email configuration works.</p>")
}
