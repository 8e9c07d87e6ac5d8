// Package meta sends outbound messages through the Meta Graph API for
// WhatsApp Cloud and Messenger.
package meta

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/flowreach/flowreach/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

const defaultBaseURL = "https://graph.facebook.com/v19.0"

// ErrWhatsAppNotConfigured is returned when WhatsApp credentials are
// missing.
var ErrWhatsAppNotConfigured = goerr.New("whatsapp sender is not configured")

// ErrMessengerNotConfigured is returned when the Messenger page token
// is missing.
var ErrMessengerNotConfigured = goerr.New("messenger sender is not configured")

// Client posts messages to the Graph API
type Client struct {
	httpClient *http.Client
	baseURL    string

	whatsAppToken string
	phoneNumberID string
	pageToken     string
}

// Option is a functional option for Client configuration
type Option func(*Client)

// WithHTTPClient replaces the HTTP client. Mainly for testing.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL replaces the Graph API endpoint. Mainly for testing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithWhatsApp configures WhatsApp Cloud API sending
func WithWhatsApp(accessToken, phoneNumberID string) Option {
	return func(c *Client) {
		c.whatsAppToken = accessToken
		c.phoneNumberID = phoneNumberID
	}
}

// WithMessenger configures Messenger page sending
func WithMessenger(pageToken string) Option {
	return func(c *Client) {
		c.pageToken = pageToken
	}
}

// New creates a Graph API client. Channels without credentials stay
// disabled and their send methods return typed errors.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WhatsAppEnabled reports whether WhatsApp sending is configured
func (c *Client) WhatsAppEnabled() bool {
	return c.whatsAppToken != "" && c.phoneNumberID != ""
}

// MessengerEnabled reports whether Messenger sending is configured
func (c *Client) MessengerEnabled() bool {
	return c.pageToken != ""
}

// SendWhatsApp sends a text message to a WhatsApp user
func (c *Client) SendWhatsApp(ctx context.Context, to, text string) error {
	if !c.WhatsAppEnabled() {
		return goerr.Wrap(ErrWhatsAppNotConfigured, "cannot send", goerr.V("to", to))
	}

	payload := map[string]any{
		"messaging_product": "whatsapp",
		"to":                to,
		"type":              "text",
		"text": map[string]any{
			"body": text,
		},
	}

	endpoint := c.baseURL + "/" + c.phoneNumberID + "/messages"
	return c.post(ctx, endpoint, c.whatsAppToken, payload)
}

// SendMessenger sends a text message to a Messenger user
func (c *Client) SendMessenger(ctx context.Context, recipientID, text string) error {
	if !c.MessengerEnabled() {
		return goerr.Wrap(ErrMessengerNotConfigured, "cannot send", goerr.V("recipient", recipientID))
	}

	payload := map[string]any{
		"recipient": map[string]any{
			"id": recipientID,
		},
		"message": map[string]any{
			"text": text,
		},
		"messaging_type": "RESPONSE",
	}

	endpoint := c.baseURL + "/me/messages?access_token=" + url.QueryEscape(c.pageToken)
	return c.post(ctx, endpoint, "", payload)
}

func (c *Client) post(ctx context.Context, endpoint, bearerToken string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal graph API payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(err, "failed to create graph API request")
	}
	req.Header.Set("Content-Type", "application/json")
	if bearerToken != "" {
		req.Header.Set("Authorization", "Bearer "+bearerToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to call graph API")
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return goerr.New("graph API returned error",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
		)
	}

	return nil
}
