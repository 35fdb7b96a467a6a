package notification

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"booking-admin-console/internal/logger"
)

// MockSMSProvider logs instead of sending. It sleeps to imitate network
// latency and fails a configurable share of sends (5% by default) so callers
// see partial failures outside production.
type MockSMSProvider struct {
	latency     time.Duration
	failureRate float64
	roll        func() float64
}

func NewMockSMSProvider(latency time.Duration, failureRate float64) *MockSMSProvider {
	return &MockSMSProvider{
		latency:     latency,
		failureRate: failureRate,
		roll:        rand.Float64,
	}
}

func (p *MockSMSProvider) Name() string { return "mock" }

func (p *MockSMSProvider) SendSMS(ctx context.Context, to, message string) (string, error) {
	logger.Info("Mock SMS", "to", to, "message", message)

	if err := wait(ctx, p.latency); err != nil {
		return "", err
	}
	if p.roll() < p.failureRate {
		return "", ErrMockSMSFailure
	}
	return "mock_sms_" + uuid.NewString(), nil
}

// MockEmailProvider logs instead of sending and never fails.
type MockEmailProvider struct {
	latency time.Duration
}

func NewMockEmailProvider(latency time.Duration) *MockEmailProvider {
	return &MockEmailProvider{latency: latency}
}

func (p *MockEmailProvider) Name() string { return "mock" }

func (p *MockEmailProvider) SendEmail(ctx context.Context, msg EmailMessage) (string, error) {
	logger.Info("Mock email", "to", msg.To, "subject", msg.Subject, "is_html", msg.IsHTML, "body", msg.Body)

	// Cancellation only cuts the simulated latency short.
	_ = wait(ctx, p.latency)
	return "mock_email_" + uuid.NewString(), nil
}
