package mail

import (
	"context"

	"github.com/hynux/meetlink/internal/config"
	log "github.com/sirupsen/logrus"
	gomail "github.com/wneessen/go-mail"
)

// MailError wraps an SMTP connection, authentication, or delivery failure.
// The underlying error text is propagated unmodified.
type MailError struct {
	Err error
}

func (e *MailError) Error() string { return e.Err.Error() }
func (e *MailError) Unwrap() error { return e.Err }

// Email is a single HTML message to one recipient.
type Email struct {
	To       string
	Subject  string
	HtmlBody string
}

type Sender interface {
	Send(ctx context.Context, email Email) error
}

// SmtpSender opens one authenticated SMTP session per call, upgrading the
// connection with STARTTLS before authenticating. No pooling, no retry.
type SmtpSender struct {
	cfg config.Smtp
}

func NewSmtpSender(cfg config.Smtp) *SmtpSender {
	return &SmtpSender{cfg: cfg}
}

func (s *SmtpSender) Send(ctx context.Context, email Email) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return &MailError{Err: err}
	}
	if err := msg.To(email.To); err != nil {
		return &MailError{Err: err}
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextHTML, email.HtmlBody)

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSMandatory),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return &MailError{Err: err}
	}

	log.Debugf("Sending invitation email to %s via %s:%d", email.To, s.cfg.Host, s.cfg.Port)
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Errorf("unable to send invitation email: %v", err)
		return &MailError{Err: err}
	}
	return nil
}
