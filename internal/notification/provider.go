package notification

import (
	"context"
	"errors"
	"time"
)

var (
	ErrMockSMSFailure = errors.New("mock SMS delivery failure")
	ErrInvalidMobile  = errors.New("recipient is not a valid mobile number")
)

// SMSProvider delivers a text message to an already normalized number and
// returns the provider's message id.
type SMSProvider interface {
	Name() string
	SendSMS(ctx context.Context, to, message string) (string, error)
}

// EmailMessage is a single-recipient email.
type EmailMessage struct {
	To      string
	Subject string
	Body    string
	IsHTML  bool
}

// EmailProvider delivers an email and returns the provider's message id.
type EmailProvider interface {
	Name() string
	SendEmail(ctx context.Context, msg EmailMessage) (string, error)
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
