// Package mailer delivers confirmation codes out-of-band. Delivery is
// fire-and-forget from the caller's point of view: failures are logged,
// never propagated into the signup flow.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/smtp"

	"reviewhub/internal/config"

	"golang.org/x/time/rate"
)

type Mailer interface {
	SendConfirmationCode(ctx context.Context, email, code string) error
}

// ErrThrottled means the outbound limiter rejected the send.
var ErrThrottled = errors.New("mail rate limit exceeded")

// New picks the SMTP transport when configured, otherwise a log-only
// mailer so development setups work without a relay.
func New(cfg *config.Config, logger *slog.Logger) Mailer {
	limiter := rate.NewLimiter(rate.Limit(cfg.MailPerSec), cfg.MailBurst)
	if cfg.SMTPAddr == "" {
		logger.Info("SMTP_ADDR not set, confirmation codes will be logged")
		return &logMailer{logger: logger, limiter: limiter}
	}
	return &smtpMailer{
		addr:    cfg.SMTPAddr,
		from:    cfg.MailFrom,
		limiter: limiter,
		logger:  logger,
	}
}

type smtpMailer struct {
	addr    string
	from    string
	limiter *rate.Limiter
	logger  *slog.Logger
}

func (m *smtpMailer) SendConfirmationCode(ctx context.Context, email, code string) error {
	if !m.limiter.Allow() {
		return ErrThrottled
	}

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: reviewhub confirmation code\r\n\r\n%s\r\n",
		m.from, email, code,
	)
	if err := smtp.SendMail(m.addr, nil, m.from, []string{email}, []byte(msg)); err != nil {
		return fmt.Errorf("send confirmation mail: %w", err)
	}

	m.logger.Info("confirmation code sent", "email", email)
	return nil
}

// logMailer writes the code to the log instead of sending it.
type logMailer struct {
	logger  *slog.Logger
	limiter *rate.Limiter
}

func (m *logMailer) SendConfirmationCode(ctx context.Context, email, code string) error {
	if !m.limiter.Allow() {
		return ErrThrottled
	}
	m.logger.Info("confirmation code (not sent)", "email", email, "code", code)
	return nil
}
