package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider names accepted by the notification config.
const (
	ProviderMock     = "mock"
	ProviderTwilio   = "twilio"
	ProviderSendGrid = "sendgrid"
	ProviderSMTP     = "smtp"
)

// Config represents the application configuration
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Database     DatabaseConfig     `yaml:"database"`
	SMTP         SMTPConfig         `yaml:"smtp"`
	JWT          JWTConfig          `yaml:"jwt"`
	App          AppConfig          `yaml:"app"`
	Notification NotificationConfig `yaml:"notification"`
	Log          LogConfig          `yaml:"log"`
	Scheduler    SchedulerConfig    `yaml:"scheduler"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"ssl_mode"`
}

// SMTPConfig contains settings for the smtp email provider
type SMTPConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
}

// JWTConfig contains the secret used to verify admin bearer tokens
type JWTConfig struct {
	Secret            string `yaml:"secret"`
	AccessTokenExpiry int    `yaml:"access_token_expiry_minutes"`
}

// AppConfig contains values used in outbound message templates
type AppConfig struct {
	SystemName string `yaml:"system_name"`
}

// NotificationConfig selects one provider per channel for the process lifetime
type NotificationConfig struct {
	SMS      SMSConfig   `yaml:"sms"`
	Email    EmailConfig `yaml:"email"`
	OpsEmail string      `yaml:"ops_email"`
}

type SMSConfig struct {
	Provider        string       `yaml:"provider"` // "mock" or "twilio"
	MockLatencyMs   *int         `yaml:"mock_latency_ms"`
	MockFailureRate *float64     `yaml:"mock_failure_rate"`
	Twilio          TwilioConfig `yaml:"twilio"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
	BaseURL    string `yaml:"base_url"`
}

type EmailConfig struct {
	Provider      string         `yaml:"provider"` // "mock", "sendgrid" or "smtp"
	MockLatencyMs *int           `yaml:"mock_latency_ms"`
	SendGrid      SendGridConfig `yaml:"sendgrid"`
}

type SendGridConfig struct {
	APIKey    string `yaml:"api_key"`
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// SchedulerConfig contains cron schedule settings
type SchedulerConfig struct {
	ReconcileAdminCodes  string `yaml:"reconcile_admin_codes"`
	PendingRequestDigest string `yaml:"pending_request_digest"`
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML bytes, applies env overrides and defaults, then validates
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.overrideWithEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	// Database
	if val := os.Getenv("DB_HOST"); val != "" {
		c.Database.Host = val
	}
	if val := os.Getenv("DB_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Database.Port)
	}
	if val := os.Getenv("DB_USER"); val != "" {
		c.Database.User = val
	}
	if val := os.Getenv("DB_PASSWORD"); val != "" {
		c.Database.Password = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Database.Database = val
	}
	if val := os.Getenv("DB_SSL_MODE"); val != "" {
		c.Database.SSLMode = val
	}

	// SMTP
	if val := os.Getenv("SMTP_HOST"); val != "" {
		c.SMTP.Host = val
	}
	if val := os.Getenv("SMTP_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.SMTP.Port)
	}
	if val := os.Getenv("SMTP_USER"); val != "" {
		c.SMTP.User = val
	}
	if val := os.Getenv("SMTP_PASSWORD"); val != "" {
		c.SMTP.Password = val
	}
	if val := os.Getenv("SMTP_FROM"); val != "" {
		c.SMTP.From = val
	}

	// JWT
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWT.Secret = val
	}

	// Server
	if val := os.Getenv("SERVER_HOST"); val != "" {
		c.Server.Host = val
	}
	if val := os.Getenv("SERVER_PORT"); val != "" {
		fmt.Sscanf(val, "%d", &c.Server.Port)
	}

	// Notification providers
	if val := os.Getenv("SMS_PROVIDER"); val != "" {
		c.Notification.SMS.Provider = val
	}
	if val := os.Getenv("EMAIL_PROVIDER"); val != "" {
		c.Notification.Email.Provider = val
	}
	if val := os.Getenv("TWILIO_ACCOUNT_SID"); val != "" {
		c.Notification.SMS.Twilio.AccountSID = val
	}
	if val := os.Getenv("TWILIO_AUTH_TOKEN"); val != "" {
		c.Notification.SMS.Twilio.AuthToken = val
	}
	if val := os.Getenv("TWILIO_FROM_NUMBER"); val != "" {
		c.Notification.SMS.Twilio.FromNumber = val
	}
	if val := os.Getenv("SENDGRID_API_KEY"); val != "" {
		c.Notification.Email.SendGrid.APIKey = val
	}
	if val := os.Getenv("OPS_EMAIL"); val != "" {
		c.Notification.OpsEmail = val
	}

	// App
	if val := os.Getenv("APP_SYSTEM_NAME"); val != "" {
		c.App.SystemName = val
	}

	// Log
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
}

func (c *Config) applyDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.JWT.AccessTokenExpiry == 0 {
		c.JWT.AccessTokenExpiry = 60
	}
	if c.App.SystemName == "" {
		c.App.SystemName = "BookingHub"
	}

	n := &c.Notification
	n.SMS.Provider = strings.ToLower(strings.TrimSpace(n.SMS.Provider))
	if n.SMS.Provider == "" {
		n.SMS.Provider = ProviderMock
	}
	n.Email.Provider = strings.ToLower(strings.TrimSpace(n.Email.Provider))
	if n.Email.Provider == "" {
		n.Email.Provider = ProviderMock
	}
	if n.SMS.MockLatencyMs == nil {
		n.SMS.MockLatencyMs = intPtr(1000)
	}
	if n.SMS.MockFailureRate == nil {
		n.SMS.MockFailureRate = floatPtr(0.05)
	}
	if n.Email.MockLatencyMs == nil {
		n.Email.MockLatencyMs = intPtr(800)
	}
	if n.SMS.Twilio.BaseURL == "" {
		n.SMS.Twilio.BaseURL = "https://api.twilio.com"
	}
	if n.Email.SendGrid.FromName == "" {
		n.Email.SendGrid.FromName = c.App.SystemName
	}

	if c.Scheduler.ReconcileAdminCodes == "" {
		c.Scheduler.ReconcileAdminCodes = "0 */15 * * * *" // every 15 minutes
	}
	if c.Scheduler.PendingRequestDigest == "" {
		c.Scheduler.PendingRequestDigest = "0 0 9 * * *" // 9 AM UTC
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Server validation
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	// Database validation
	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}
	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}
	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	// JWT validation
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if len(c.JWT.Secret) < 32 {
		return fmt.Errorf("JWT secret must be at least 32 characters")
	}

	// SMS provider
	switch c.Notification.SMS.Provider {
	case ProviderMock:
		if rate := *c.Notification.SMS.MockFailureRate; rate < 0 || rate > 1 {
			return fmt.Errorf("mock SMS failure rate must be between 0 and 1, got %v", rate)
		}
	case ProviderTwilio:
		tw := c.Notification.SMS.Twilio
		if tw.AccountSID == "" || tw.AuthToken == "" || tw.FromNumber == "" {
			return fmt.Errorf("twilio account_sid, auth_token and from_number are required")
		}
	default:
		return fmt.Errorf("unsupported SMS provider: %q", c.Notification.SMS.Provider)
	}

	// Email provider
	switch c.Notification.Email.Provider {
	case ProviderMock:
	case ProviderSendGrid:
		if c.Notification.Email.SendGrid.APIKey == "" {
			return fmt.Errorf("sendgrid api_key is required")
		}
		if c.Notification.Email.SendGrid.FromEmail == "" {
			return fmt.Errorf("sendgrid from_email is required")
		}
	case ProviderSMTP:
		if c.SMTP.Host == "" {
			return fmt.Errorf("SMTP host is required")
		}
		if c.SMTP.Port <= 0 || c.SMTP.Port > 65535 {
			return fmt.Errorf("invalid SMTP port: %d", c.SMTP.Port)
		}
	default:
		return fmt.Errorf("unsupported email provider: %q", c.Notification.Email.Provider)
	}

	return nil
}

// GetDatabaseConnectionString returns a PostgreSQL connection string
func (c *Config) GetDatabaseConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// GetServerAddress returns the HTTP server address
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }
