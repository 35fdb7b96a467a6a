package notification

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sendgrid/rest"
)

// TwilioSMSProvider sends through the Twilio Messages REST API.
type TwilioSMSProvider struct {
	client     *rest.Client
	baseURL    string
	accountSID string
	authToken  string
	from       string
}

func NewTwilioSMSProvider(baseURL, accountSID, authToken, from string) *TwilioSMSProvider {
	return &TwilioSMSProvider{
		client:     &rest.Client{HTTPClient: &http.Client{Timeout: 10 * time.Second}},
		baseURL:    strings.TrimRight(baseURL, "/"),
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
	}
}

func (p *TwilioSMSProvider) Name() string { return "twilio" }

type twilioMessage struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (p *TwilioSMSProvider) SendSMS(ctx context.Context, to, message string) (string, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", p.from)
	form.Set("Body", message)

	credentials := base64.StdEncoding.EncodeToString([]byte(p.accountSID + ":" + p.authToken))
	req := rest.Request{
		Method:  rest.Post,
		BaseURL: fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", p.baseURL, url.PathEscape(p.accountSID)),
		Headers: map[string]string{
			"Authorization": "Basic " + credentials,
			"Content-Type":  "application/x-www-form-urlencoded",
			"Accept":        "application/json",
		},
		Body: []byte(form.Encode()),
	}

	resp, err := p.client.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("twilio request failed: %w", err)
	}

	var body twilioMessage
	decodeErr := json.Unmarshal([]byte(resp.Body), &body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		reason := body.Message
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		return "", fmt.Errorf("twilio error: status %d: %s", resp.StatusCode, reason)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("twilio error: decode response: %w", decodeErr)
	}
	if body.SID == "" {
		return "", fmt.Errorf("twilio error: status %d response has no message sid", resp.StatusCode)
	}
	if body.Status == "failed" || body.Status == "undelivered" {
		return body.SID, fmt.Errorf("twilio error: message %s %s", body.SID, body.Status)
	}

	return body.SID, nil
}
