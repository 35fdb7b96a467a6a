package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPEmailProvider sends through a plain SMTP relay.
type SMTPEmailProvider struct {
	host string
	from string
	send func(m ...*gomail.Message) error
}

func NewSMTPEmailProvider(host string, port int, username, password, from string) *SMTPEmailProvider {
	d := gomail.NewDialer(host, port, username, password)
	return &SMTPEmailProvider{
		host: host,
		from: from,
		send: d.DialAndSend,
	}
}

func (p *SMTPEmailProvider) Name() string { return "smtp" }

func (p *SMTPEmailProvider) SendEmail(ctx context.Context, msg EmailMessage) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	messageID := fmt.Sprintf("<%s@%s>", uuid.NewString(), p.host)

	m := gomail.NewMessage()
	m.SetHeader("From", p.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetHeader("Message-ID", messageID)
	if msg.IsHTML {
		m.SetBody("text/html", msg.Body)
	} else {
		m.SetBody("text/plain", msg.Body)
	}

	if err := p.send(m); err != nil {
		return "", fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return messageID, nil
}
