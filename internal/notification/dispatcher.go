package notification

import (
	"context"
	"fmt"
	"time"

	"booking-admin-console/internal/domain"
	"booking-admin-console/internal/logger"
	"booking-admin-console/internal/utils"
)

// Sender is the send capability the admin workflow depends on. Both methods
// always return a result; delivery faults are reported in it, never raised.
type Sender interface {
	SendSMS(ctx context.Context, toRaw, message string) domain.NotificationResult
	SendEmail(ctx context.Context, to, subject, message string, isHTML bool) domain.NotificationResult
}

// Dispatcher routes each channel to the one provider configured at startup.
type Dispatcher struct {
	sms            SMSProvider
	email          EmailProvider
	validateMobile bool
	now            func() time.Time
}

type Option func(*Dispatcher)

// WithMobileValidation rejects SMS recipients that are not Indian mobile
// numbers before the provider is called.
func WithMobileValidation() Option {
	return func(d *Dispatcher) { d.validateMobile = true }
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

func NewDispatcher(sms SMSProvider, email EmailProvider, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		sms:   sms,
		email: email,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SendSMS normalizes toRaw and sends message through the SMS provider.
func (d *Dispatcher) SendSMS(ctx context.Context, toRaw, message string) (result domain.NotificationResult) {
	to := utils.NormalizePhone(toRaw)
	result = domain.NotificationResult{
		Channel:  domain.NotificationChannelSMS,
		Provider: d.sms.Name(),
	}
	defer d.recoverInto(&result)

	if d.validateMobile && !utils.IsValidMobile(to) {
		d.complete(&result, "", ErrInvalidMobile, "to", to)
		return result
	}

	logger.ProviderCall(string(result.Channel), result.Provider, "to", to)
	id, err := d.sms.SendSMS(ctx, to, message)
	d.complete(&result, id, err, "to", to)
	return result
}

// SendEmail sends one email through the email provider.
func (d *Dispatcher) SendEmail(ctx context.Context, to, subject, message string, isHTML bool) (result domain.NotificationResult) {
	result = domain.NotificationResult{
		Channel:  domain.NotificationChannelEmail,
		Provider: d.email.Name(),
	}
	defer d.recoverInto(&result)

	logger.ProviderCall(string(result.Channel), result.Provider, "to", to, "subject", subject)
	id, err := d.email.SendEmail(ctx, EmailMessage{
		To:      to,
		Subject: subject,
		Body:    message,
		IsHTML:  isHTML,
	})
	d.complete(&result, id, err, "to", to, "subject", subject)
	return result
}

func (d *Dispatcher) complete(result *domain.NotificationResult, messageID string, err error, args ...any) {
	result.Timestamp = d.now()
	result.MessageID = messageID
	result.Success = err == nil
	if err != nil {
		result.Error = err.Error()
	}
	logger.ProviderResult(string(result.Channel), result.Provider, err, append(args, "message_id", messageID)...)
}

func (d *Dispatcher) recoverInto(result *domain.NotificationResult) {
	if r := recover(); r != nil {
		d.complete(result, "", fmt.Errorf("provider panic: %v", r))
	}
}
