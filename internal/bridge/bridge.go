// Package bridge talks to the companion agent running on the driver's
// device. The agent owns the platform-specific accept gesture and the
// local summary notification; this side only issues the calls.
package bridge

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/config"
	"github.com/Product-X-Deepak/EazyDelivery-sub002/internal/domain"
)

const (
	acceptPath = "/accept"
	notifyPath = "/notify"
)

type AcceptRequest struct {
	Package  string  `json:"package"`
	Platform string  `json:"platform"`
	OrderID  string  `json:"order_id"`
	Amount   float64 `json:"amount"`
}

type Summary struct {
	OrderID  string          `json:"order_id"`
	Platform string          `json:"platform"`
	Amount   float64         `json:"amount"`
	Priority domain.Priority `json:"priority"`
	Accepted bool            `json:"accepted"`
	Reason   string          `json:"reason,omitempty"`
}

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func New(cfg config.Bridge, logger *zap.Logger) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(cfg.RetryWaitTime).
		SetRetryMaxWaitTime(10 * time.Second)

	return &Client{
		http:   client,
		logger: logger,
	}
}

// Accept asks the device agent to perform the platform's accept gesture.
func (c *Client) Accept(ctx context.Context, req AcceptRequest) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(acceptPath)
	if err != nil {
		return fmt.Errorf("bridge accept: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("bridge accept: unexpected status %s", resp.Status())
	}

	c.logger.Info("accept gesture dispatched",
		zap.String("order_id", req.OrderID),
		zap.String("platform", req.Platform),
	)
	return nil
}

// Notify posts the driver-facing summary notification. Best effort: a
// failure here never blocks order processing.
func (c *Client) Notify(ctx context.Context, s Summary) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(s).
		Post(notifyPath)
	if err != nil {
		return fmt.Errorf("bridge notify: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("bridge notify: unexpected status %s", resp.Status())
	}
	return nil
}
