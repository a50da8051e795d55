// Package mailer is the notification sink. Delivery failures are the
// caller's to log; nothing here ever blocks or rolls back a persisted
// state change.
package mailer

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

// Message is a single outbound notification.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

// Sender delivers notification messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTP sends through a configured SMTP relay.
type SMTP struct {
	client *mail.Client
	from   string
}

// NewSMTP builds an SMTP sender. user/pass may be empty for relays that
// accept unauthenticated submission.
func NewSMTP(host string, port int, user, pass, from string) (*SMTP, error) {
	opts := []mail.Option{
		mail.WithPort(port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if user != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(user),
			mail.WithPassword(pass),
		)
	}
	client, err := mail.NewClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("init smtp client: %w", err)
	}
	return &SMTP{client: client, from: from}, nil
}

func (s *SMTP) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := m.To(msg.To...); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// Nop discards messages. Used when SMTP is not configured.
type Nop struct{}

func (Nop) Send(context.Context, Message) error { return nil }
