// Package mail delivers guest checkout codes through an SMTP relay.
package mail

import (
	"fmt"
	"log/slog"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/pkg/errors"

	"github.com/sebvsnk/Base-E-commerce/config"
	"github.com/sebvsnk/Base-E-commerce/internal/domain/service"
)

const defaultOtpTTL = 10 * time.Minute

type smtpMailer struct {
	client *gomail.Client
	from   string
	otpTTL time.Duration
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config, logger *slog.Logger) (service.OtpMailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" {
		return nil, errors.New("mail configuration must be provided")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Mail.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Mail.Username),
		gomail.WithPassword(cfg.Mail.Password),
	}

	client, err := gomail.NewClient(cfg.Mail.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create smtp client")
	}

	// The expiry named in the email must match the code's actual lifetime.
	otpTTL := defaultOtpTTL
	if cfg.Otp != nil && cfg.Otp.TTL > 0 {
		otpTTL = cfg.Otp.TTL
	}

	return &smtpMailer{
		client: client,
		from:   cfg.Mail.From,
		otpTTL: otpTTL,
		logger: logger,
	}, nil
}

// SendOtp emails the verification code to a guest customer.
func (m *smtpMailer) SendOtp(email, code string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return errors.Wrap(err, "set from address")
	}
	if err := msg.To(email); err != nil {
		return errors.Wrap(err, "set to address")
	}

	msg.Subject("Tu código de verificación")
	msg.SetBodyString(gomail.TypeTextPlain, otpBody(code, m.otpTTL))

	if err := m.client.DialAndSend(msg); err != nil {
		m.logger.Error("failed to send otp email", slog.String("email", email), slog.Any("error", err))

		return errors.Wrap(err, "send otp email")
	}

	m.logger.Info("otp email sent", slog.String("email", email))

	return nil
}

func otpBody(code string, ttl time.Duration) string {
	return fmt.Sprintf(
		"Tu código de verificación es: %s\n\nEste código expira en %d minutos. Si no solicitaste este código, ignora este correo.",
		code, int(ttl.Minutes()),
	)
}
