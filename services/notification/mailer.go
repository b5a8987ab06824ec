package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// SMTPSender sends emails through an SMTP relay (Gmail in production).
type SMTPSender struct {
	host         string
	port         int
	username     string
	password     string
	businessName string
	logger       *zap.Logger
}

func NewSMTPSender(host string, port int, username, password, businessName string, logger *zap.Logger) *SMTPSender {
	return &SMTPSender{
		host:         host,
		port:         port,
		username:     username,
		password:     password,
		businessName: businessName,
		logger:       logger,
	}
}

// Send delivers a single email. When SMTP credentials are not configured the
// message is logged and dropped instead of failing the caller.
func (s *SMTPSender) Send(ctx context.Context, msg Email) error {
	from := msg.From
	if from == "" {
		from = fmt.Sprintf("%q <%s>", s.businessName, s.username)
	}

	if s.username == "" || s.password == "" {
		s.logger.Warn("SMTP credentials not configured, skipping email",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	dialer := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("could not send email to %s: %w", msg.To, err)
	}

	s.logger.Info("Email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}
