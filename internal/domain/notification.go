package domain

import "time"

type NotificationChannel string

const (
	NotificationChannelSMS   NotificationChannel = "sms"
	NotificationChannelEmail NotificationChannel = "email"
)

// NotificationResult is the outcome of one send attempt on one channel. It is
// never persisted.
type NotificationResult struct {
	Success   bool                `json:"success"`
	Channel   NotificationChannel `json:"channel"`
	Provider  string              `json:"provider"`
	MessageID string              `json:"message_id,omitempty"`
	Timestamp time.Time           `json:"timestamp"`
	Error     string              `json:"error,omitempty"`
}
