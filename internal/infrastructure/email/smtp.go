package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/gestio-app/gestio/internal/shared/config"
	"github.com/gestio-app/gestio/internal/shared/logger"
)

// SMTPEmailService delivers subscription reminder mail through a plain
// SMTP relay. When email is disabled in config the service logs the
// message instead of sending it, which keeps local installs working
// without a mail account.
type SMTPEmailService struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPEmailService(cfg *config.EmailConfig) *SMTPEmailService {
	return &SMTPEmailService{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger: logger.NewLogger().With("component", "email"),
	}
}

// SendReminder sends a plain-text reminder message to the client.
func (s *SMTPEmailService) SendReminder(ctx context.Context, to, subject, body string) error {
	if !s.cfg.Enabled {
		s.logger.Infow("email disabled, skipping reminder",
			"to", to,
			"subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- s.dialer.DialAndSend(m)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
	}

	s.logger.Infow("reminder email sent", "to", to)
	return nil
}
