package notification

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendGridMailEndpoint = "/v3/mail/send"

// SendGridEmailProvider sends through the SendGrid v3 mail API.
type SendGridEmailProvider struct {
	apiKey    string
	host      string
	fromEmail string
	fromName  string
}

func NewSendGridEmailProvider(apiKey, fromEmail, fromName string) *SendGridEmailProvider {
	return &SendGridEmailProvider{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (p *SendGridEmailProvider) Name() string { return "sendgrid" }

func (p *SendGridEmailProvider) SendEmail(ctx context.Context, msg EmailMessage) (string, error) {
	from := mail.NewEmail(p.fromName, p.fromEmail)
	to := mail.NewEmail("", msg.To)

	contentType := "text/plain"
	if msg.IsHTML {
		contentType = "text/html"
	}
	message := mail.NewV3MailInit(from, msg.Subject, to, mail.NewContent(contentType, msg.Body))

	// Client mutates its request body on send, so one per call.
	request := sendgrid.GetRequest(p.apiKey, sendGridMailEndpoint, p.host)
	request.Method = "POST"
	client := &sendgrid.Client{Request: request}

	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}

	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}
