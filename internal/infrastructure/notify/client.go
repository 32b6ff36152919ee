// Package notify posts synthesized notifications to the notification
// service's ingest endpoint. The order service depends on the Sender
// interface so tests can stub the call.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Payload is the exact JSON shape the notification ingest endpoint accepts.
type Payload struct {
	NotificationID string `json:"notificationId"`
	UserID         string `json:"userId"`
	TypeID         string `json:"typeId"`
	Content        string `json:"content"`
}

// Sender submits one notification. A non-nil error means the notification
// was not accepted; the caller decides what that does to its own response.
type Sender interface {
	Send(ctx context.Context, p Payload) error
}

// Client is an HTTP Sender targeting a fixed ingest URL.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient builds a Client for the given ingest URL.
func NewClient(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		url:        url,
	}
}

// Send POSTs the payload as JSON. Any non-2xx response counts as failure.
func (c *Client) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal notification payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notification endpoint returned %s", resp.Status)
	}
	return nil
}
