package mail

import (
	"bytes"
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"reparotec/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

var ErrMissingSMTPHost = errors.New("missing SMTP_HOST")

// SMTPMailer delivers customer-facing email (quotes, reminders).
// Mock mode (MAILER_MOCK) logs instead of dialing, mirroring the payment
// gateway's local setup.
//
// Env vars: SMTP_HOST, SMTP_PORT (default 587), SMTP_USERNAME,
// SMTP_PASSWORD, MAIL_FROM.

type SMTPMailer struct {
	client   *gomail.Client
	from     string
	mockMode bool
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer() (*SMTPMailer, error) {
	if isMailerMockEnabled() {
		log.Printf("[mail][mailer] mock mode enabled")
		return &SMTPMailer{mockMode: true}, nil
	}

	host := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if host == "" {
		log.Printf("[mail][mailer] missing SMTP_HOST")
		return nil, ErrMissingSMTPHost
	}

	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if user := os.Getenv("SMTP_USERNAME"); user != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(user),
			gomail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		log.Printf("[mail][mailer] failed creating smtp client err=%v", err)
		return nil, err
	}

	from := os.Getenv("MAIL_FROM")
	if from == "" {
		from = "no-reply@reparotec.local"
	}
	return &SMTPMailer{client: client, from: from}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg interfaces.MailMessage) error {
	if m != nil && m.mockMode {
		log.Printf("[mail][mailer] mock send to=%s subject=%q attachments=%d", msg.To, msg.Subject, len(msg.Attachments))
		return nil
	}
	if m == nil || m.client == nil {
		return errors.New("mailer not configured")
	}

	out := gomail.NewMsg()
	if err := out.From(m.from); err != nil {
		return err
	}
	if err := out.To(msg.To); err != nil {
		return err
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	for _, att := range msg.Attachments {
		if err := out.AttachReader(att.Filename, bytes.NewReader(att.Content)); err != nil {
			return err
		}
	}

	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		log.Printf("[mail][mailer] send failed to=%s err=%v", msg.To, err)
		return err
	}
	log.Printf("[mail][mailer] send success to=%s subject=%q", msg.To, msg.Subject)
	return nil
}

func isMailerMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("MAILER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
