// Package notify pushes alert notifications to a configured webhook. The
// receiving end (app push gateway, chat bridge) is outside this service.
package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/mamadbah2/farmplan/internal/config"
)

// Client exposes the notification operations used by the application.
type Client interface {
	Send(ctx context.Context, notification Notification) error
}

// Notification is the payload delivered to the webhook.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Crop    string `json:"crop,omitempty"`
	Price   string `json:"price,omitempty"`
}

// WebhookClient is a resty-backed implementation of Client.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client using the provided configuration values.
func NewClient(cfg config.NotifyConfig) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.AuthToken != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.AuthToken))
	}

	return &WebhookClient{
		httpClient: restyClient,
		url:        cfg.WebhookURL,
	}
}

// Send posts the notification to the webhook endpoint.
func (c *WebhookClient) Send(ctx context.Context, notification Notification) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(notification).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("notification webhook error: code=%d, body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
