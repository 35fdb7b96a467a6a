package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
server:
  port: 8080
database:
  host: localhost
  user: booking
  database: booking_admin
jwt:
  secret: 0123456789abcdef0123456789abcdef
`

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse([]byte(baseYAML))
	require.NoError(t, err)

	assert.Equal(t, ProviderMock, cfg.Notification.SMS.Provider)
	assert.Equal(t, ProviderMock, cfg.Notification.Email.Provider)
	assert.Equal(t, 1000, *cfg.Notification.SMS.MockLatencyMs)
	assert.Equal(t, 800, *cfg.Notification.Email.MockLatencyMs)
	assert.InDelta(t, 0.05, *cfg.Notification.SMS.MockFailureRate, 1e-9)
	assert.Equal(t, "BookingHub", cfg.App.SystemName)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, "0 */15 * * * *", cfg.Scheduler.ReconcileAdminCodes)
}

func TestParse_ExplicitZeroLatencyKept(t *testing.T) {
	cfg, err := Parse([]byte(baseYAML + `
notification:
  sms:
    mock_latency_ms: 0
    mock_failure_rate: 0
`))
	require.NoError(t, err)
	assert.Equal(t, 0, *cfg.Notification.SMS.MockLatencyMs)
	assert.Equal(t, 0.0, *cfg.Notification.SMS.MockFailureRate)
}

func TestParse_EnvOverrides(t *testing.T) {
	t.Setenv("SMS_PROVIDER", "Twilio")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "secret")
	t.Setenv("TWILIO_FROM_NUMBER", "+15005550006")
	t.Setenv("APP_SYSTEM_NAME", "StayDesk")
	t.Setenv("DB_PORT", "6543")

	cfg, err := Parse([]byte(baseYAML))
	require.NoError(t, err)
	assert.Equal(t, ProviderTwilio, cfg.Notification.SMS.Provider)
	assert.Equal(t, "AC123", cfg.Notification.SMS.Twilio.AccountSID)
	assert.Equal(t, "https://api.twilio.com", cfg.Notification.SMS.Twilio.BaseURL)
	assert.Equal(t, "StayDesk", cfg.App.SystemName)
	assert.Equal(t, 6543, cfg.Database.Port)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		extra   string
		wantErr string
	}{
		{"Unknown SMS provider", "notification:\n  sms:\n    provider: pigeon\n", "unsupported SMS provider"},
		{"Unknown email provider", "notification:\n  email:\n    provider: fax\n", "unsupported email provider"},
		{"Twilio without creds", "notification:\n  sms:\n    provider: twilio\n", "twilio account_sid"},
		{"SendGrid without key", "notification:\n  email:\n    provider: sendgrid\n", "sendgrid api_key is required"},
		{"SMTP without host", "notification:\n  email:\n    provider: smtp\n", "SMTP host is required"},
		{"Failure rate out of range", "notification:\n  sms:\n    mock_failure_rate: 1.5\n", "failure rate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(baseYAML + tt.extra))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParse_ShortSecret(t *testing.T) {
	_, err := Parse([]byte(`
server:
  port: 8080
database:
  host: localhost
  user: booking
  database: booking_admin
jwt:
  secret: short
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 32 characters")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(baseYAML), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", (&Config{Server: ServerConfig{Host: "0.0.0.0", Port: cfg.Server.Port}}).GetServerAddress())
	assert.Equal(t, "postgres://booking:@localhost:0/booking_admin?sslmode=disable", cfg.GetDatabaseConnectionString())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
