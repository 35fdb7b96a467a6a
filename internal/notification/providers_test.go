package notification

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"booking-admin-console/internal/config"
)

func TestTwilioSMSProvider(t *testing.T) {
	var gotForm url.Values
	var gotPath, gotUser, gotPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUser, gotPass, _ = r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		gotForm, _ = url.ParseQuery(string(body))

		w.Header().Set("Content-Type", "application/json")
		switch gotForm.Get("To") {
		case "+910000000000":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number."}`))
		case "+911111111111":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`<html>gateway</html>`))
		case "+912222222222":
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"status":"queued"}`))
		default:
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"sid":"SM123","status":"queued"}`))
		}
	}))
	defer srv.Close()

	p := NewTwilioSMSProvider(srv.URL+"/", "AC42", "token", "+15005550006")
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id, err := p.SendSMS(ctx, "+919876543210", "Your code")
		require.NoError(t, err)
		assert.Equal(t, "SM123", id)
		assert.Equal(t, "/2010-04-01/Accounts/AC42/Messages.json", gotPath)
		assert.Equal(t, "AC42", gotUser)
		assert.Equal(t, "token", gotPass)
		assert.Equal(t, "+919876543210", gotForm.Get("To"))
		assert.Equal(t, "+15005550006", gotForm.Get("From"))
		assert.Equal(t, "Your code", gotForm.Get("Body"))
	})

	t.Run("Non-success status wraps reason", func(t *testing.T) {
		_, err := p.SendSMS(ctx, "+910000000000", "Your code")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
		assert.Contains(t, err.Error(), "not a valid phone number")
	})

	t.Run("Undecodable success body fails", func(t *testing.T) {
		id, err := p.SendSMS(ctx, "+911111111111", "Your code")
		require.Error(t, err)
		assert.Empty(t, id)
		assert.Contains(t, err.Error(), "decode response")
	})

	t.Run("Success body without sid fails", func(t *testing.T) {
		id, err := p.SendSMS(ctx, "+912222222222", "Your code")
		require.Error(t, err)
		assert.Empty(t, id)
		assert.Contains(t, err.Error(), "no message sid")
	})
}

func TestSendGridEmailProvider(t *testing.T) {
	var payload map[string]any
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if r.URL.Path != sendGridMailEndpoint {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		to := payload["personalizations"].([]any)[0].(map[string]any)["to"].([]any)[0].(map[string]any)["email"]
		if to == "reject@example.com" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"errors":[{"message":"sender not verified"}]}`))
			return
		}
		w.Header().Set("X-Message-Id", "sg-abc")
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	p := NewSendGridEmailProvider("SG.key", "noreply@example.com", "BookingHub")
	p.host = srv.URL
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id, err := p.SendEmail(ctx, EmailMessage{To: "r@example.com", Subject: "Admin Access Request Approved", Body: "<p>ok</p>", IsHTML: true})
		require.NoError(t, err)
		assert.Equal(t, "sg-abc", id)
		assert.Equal(t, "Bearer SG.key", auth)
		assert.Equal(t, "Admin Access Request Approved", payload["subject"])
		content := payload["content"].([]any)[0].(map[string]any)
		assert.Equal(t, "text/html", content["type"])
	})

	t.Run("Error status", func(t *testing.T) {
		_, err := p.SendEmail(ctx, EmailMessage{To: "reject@example.com", Subject: "s", Body: "b"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 403")
	})
}

func TestSMTPEmailProvider(t *testing.T) {
	p := NewSMTPEmailProvider("mail.example.com", 587, "user", "pass", "noreply@example.com")

	var sent *gomail.Message
	p.send = func(m ...*gomail.Message) error {
		sent = m[0]
		return nil
	}

	id, err := p.SendEmail(context.Background(), EmailMessage{To: "r@example.com", Subject: "Hello", Body: "plain"})
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Contains(t, id, "@mail.example.com>")
	assert.Equal(t, []string{"r@example.com"}, sent.GetHeader("To"))
	assert.Equal(t, []string{"Hello"}, sent.GetHeader("Subject"))
	assert.Equal(t, []string{id}, sent.GetHeader("Message-ID"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.SendEmail(ctx, EmailMessage{To: "r@example.com"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFactory(t *testing.T) {
	zero := 0
	rate := 0.0

	sms, err := NewSMSProvider(config.SMSConfig{Provider: config.ProviderMock, MockLatencyMs: &zero, MockFailureRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "mock", sms.Name())

	sms, err = NewSMSProvider(config.SMSConfig{Provider: config.ProviderTwilio, Twilio: config.TwilioConfig{BaseURL: "https://api.twilio.com"}})
	require.NoError(t, err)
	assert.Equal(t, "twilio", sms.Name())

	_, err = NewSMSProvider(config.SMSConfig{Provider: "pigeon"})
	assert.Error(t, err)

	email, err := NewEmailProvider(config.EmailConfig{Provider: config.ProviderSendGrid}, config.SMTPConfig{})
	require.NoError(t, err)
	assert.Equal(t, "sendgrid", email.Name())

	email, err = NewEmailProvider(config.EmailConfig{Provider: config.ProviderSMTP}, config.SMTPConfig{Host: "localhost", Port: 25})
	require.NoError(t, err)
	assert.Equal(t, "smtp", email.Name())

	email, err = NewEmailProvider(config.EmailConfig{}, config.SMTPConfig{})
	require.NoError(t, err)
	assert.Equal(t, "mock", email.Name())

	_, err = NewEmailProvider(config.EmailConfig{Provider: "fax"}, config.SMTPConfig{})
	assert.Error(t, err)
}
