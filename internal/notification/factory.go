package notification

import (
	"fmt"
	"time"

	"booking-admin-console/internal/config"
)

// NewSMSProvider builds the SMS provider named in cfg.
func NewSMSProvider(cfg config.SMSConfig) (SMSProvider, error) {
	switch cfg.Provider {
	case "", config.ProviderMock:
		latency, rate := 1000, 0.05
		if cfg.MockLatencyMs != nil {
			latency = *cfg.MockLatencyMs
		}
		if cfg.MockFailureRate != nil {
			rate = *cfg.MockFailureRate
		}
		return NewMockSMSProvider(time.Duration(latency)*time.Millisecond, rate), nil
	case config.ProviderTwilio:
		tw := cfg.Twilio
		return NewTwilioSMSProvider(tw.BaseURL, tw.AccountSID, tw.AuthToken, tw.FromNumber), nil
	default:
		return nil, fmt.Errorf("unsupported SMS provider: %q", cfg.Provider)
	}
}

// NewEmailProvider builds the email provider named in cfg. smtp settings are
// only read for the smtp provider.
func NewEmailProvider(cfg config.EmailConfig, smtp config.SMTPConfig) (EmailProvider, error) {
	switch cfg.Provider {
	case "", config.ProviderMock:
		latency := 800
		if cfg.MockLatencyMs != nil {
			latency = *cfg.MockLatencyMs
		}
		return NewMockEmailProvider(time.Duration(latency) * time.Millisecond), nil
	case config.ProviderSendGrid:
		sg := cfg.SendGrid
		return NewSendGridEmailProvider(sg.APIKey, sg.FromEmail, sg.FromName), nil
	case config.ProviderSMTP:
		return NewSMTPEmailProvider(smtp.Host, smtp.Port, smtp.User, smtp.Password, smtp.From), nil
	default:
		return nil, fmt.Errorf("unsupported email provider: %q", cfg.Provider)
	}
}

// NewDispatcherFromConfig wires the configured providers into a Dispatcher.
func NewDispatcherFromConfig(cfg *config.Config, opts ...Option) (*Dispatcher, error) {
	sms, err := NewSMSProvider(cfg.Notification.SMS)
	if err != nil {
		return nil, err
	}
	email, err := NewEmailProvider(cfg.Notification.Email, cfg.SMTP)
	if err != nil {
		return nil, err
	}
	return NewDispatcher(sms, email, opts...), nil
}
