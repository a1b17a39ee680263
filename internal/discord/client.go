package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"vrcwatch/internal/event"
)

// Notifier is the interface the poll loop depends on. Implemented by *Client;
// tests substitute their own.
type Notifier interface {
	Send(ctx context.Context, evt event.Event) error
}

var _ Notifier = (*Client)(nil)

// Client posts matched events to a Discord webhook as colored embeds.
type Client struct {
	webhookURL string
	username   string
	http       *http.Client
	userAgent  string
}

const (
	defaultUserAgent = "vrcwatch/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient validates the webhook URL and builds a Client.
func NewClient(webhookURL, username string) (*Client, error) {
	trimmed := strings.TrimSpace(webhookURL)
	if trimmed == "" {
		return nil, fmt.Errorf("webhook url is empty")
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse webhook url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("webhook url %q: unsupported scheme %q", trimmed, parsed.Scheme)
	}
	return &Client{
		webhookURL: trimmed,
		username:   strings.TrimSpace(username),
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

type embed struct {
	Description string `json:"description"`
	Color       int    `json:"color"`
}

type message struct {
	Username string  `json:"username,omitempty"`
	Embeds   []embed `json:"embeds"`
}

// Send posts one event as an embed whose color matches the event's rule
// color. Failures are returned to the caller to log and count; the poll loop
// never retries.
func (c *Client) Send(ctx context.Context, evt event.Event) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	rule := event.Rule{Keyword: evt.Keyword, Color: evt.Color}
	payload := message{
		Username: c.username,
		Embeds: []embed{{
			Description: fmt.Sprintf("%s - %s", evt.Time.Format("2006-01-02 15:04:05"), evt.Line),
			Color:       rule.EmbedColor(),
		}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
