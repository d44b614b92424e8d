package mailer

import (
	"context"
	"fmt"
	"html"

	"github.com/wneessen/go-mail"
)

// ContactMessage is the fully built outbound message for one contact-form
// submission. Building is kept separate from sending so the construction
// can be exercised without an SMTP relay.
type ContactMessage struct {
	Subject     string
	ReplyToName string
	ReplyToAddr string
	Text        string
	HTML        string
}

// BuildContactMessage renders the fixed subject template and embeds the
// submission in both a plain-text and an HTML body.
func BuildContactMessage(name, email, message string) ContactMessage {
	text := fmt.Sprintf(
		"Nume: %s\nEmail: %s\n\nMesaj:\n%s\n",
		name, email, message,
	)

	htmlBody := fmt.Sprintf(
		"<p><strong>Nume:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Mesaj:</strong><br>%s</p>",
		html.EscapeString(name),
		html.EscapeString(email),
		html.EscapeString(message),
	)

	return ContactMessage{
		Subject:     "Mesaj nou de la " + name,
		ReplyToName: name,
		ReplyToAddr: email,
		Text:        text,
		HTML:        htmlBody,
	}
}

// SMTPSender delivers contact messages through an authenticated relay.
// No retry: a failed send surfaces to the submitter.
type SMTPSender struct {
	client *mail.Client
	from   string
	to     string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

func NewSMTPSender(cfg SMTPConfig) (*SMTPSender, error) {
	client, err := mail.NewClient(
		cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create smtp client: %w", err)
	}

	return &SMTPSender{
		client: client,
		from:   cfg.From,
		to:     cfg.To,
	}, nil
}

func (s *SMTPSender) SendContact(ctx context.Context, m ContactMessage) error {
	msg := mail.NewMsg()
	msg.SetMessageID()
	msg.SetDate()

	if err := msg.From(s.from); err != nil {
		return fmt.Errorf("could not set the from address: %w", err)
	}
	if err := msg.To(s.to); err != nil {
		return fmt.Errorf("could not set the to address: %w", err)
	}
	if err := msg.ReplyToFormat(m.ReplyToName, m.ReplyToAddr); err != nil {
		return fmt.Errorf("could not set the reply-to address: %w", err)
	}

	msg.Subject(m.Subject)
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	msg.AddAlternativeString(mail.TypeTextHTML, m.HTML)

	return s.client.DialAndSendWithContext(ctx, msg)
}
