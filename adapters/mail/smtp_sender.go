package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/khoahotran/devfolio/internal/application/service"
	"github.com/khoahotran/devfolio/internal/config"
)

type smtpSender struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPSender(cfg config.Config) (service.Mailer, error) {
	if cfg.SMTP.Host == "" {
		return nil, fmt.Errorf("config SMTP host not found")
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpSender{
		addr: cfg.SMTP.Host + ":" + cfg.SMTP.Port,
		from: cfg.SMTP.From,
		auth: auth,
	}, nil
}

func (s *smtpSender) Send(ctx context.Context, to, subject, body string) error {
	msg := []byte("From: " + s.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
