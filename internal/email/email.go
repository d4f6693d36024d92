package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rideshare-connect/rideshare/config"
)

// Sender delivers notification mail over plain SMTP. The pack carries
// no dedicated mail dependency, so net/smtp does the sending.
type Sender struct {
	cfg config.SMTPConfig
}

func NewSender(cfg config.SMTPConfig) *Sender {
	return &Sender{cfg: cfg}
}

func (s *Sender) Send(_ context.Context, to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + s.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var a smtp.Auth
	if s.cfg.User != "" {
		a = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}
	if err := smtp.SendMail(addr, a, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// OTPBody renders the password-reset message.
func OTPBody(otp string) string {
	return fmt.Sprintf("Your OTP for password reset is: %s. It expires in 10 minutes.\n\nIf you didn't request this, please ignore this email.\n\nRideShare Connect - Share the Ride, Split the Cost", otp)
}
