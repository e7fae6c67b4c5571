package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found")

// Priority is the desirability tier assigned to a parsed order.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Delivery status lifecycle for a persisted order.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusPickedUp  = "picked_up"
	StatusDelivered = "delivered"
)

// NotificationEvent is one raw notification as posted by a delivery app,
// exactly as the device agent saw it. Ephemeral: parsed, then discarded.
type NotificationEvent struct {
	Package        string    `json:"package"`
	NotificationID int       `json:"notification_id"`
	PostedAt       time.Time `json:"posted_at"`
	Title          string    `json:"title"`
	Text           string    `json:"text"`
}

// ParsedOrder holds the fields extracted from a notification's free-form text.
// DistanceKm and TimeMin are zero when the text carried no estimate.
type ParsedOrder struct {
	Platform   string
	Package    string
	Amount     float64
	DistanceKm float64
	TimeMin    int
	Title      string
	Text       string
	PostedAt   time.Time
}

// Order is the durable record written after a notification survives the
// pipeline. Never mutated concurrently per ID; status changes go through
// UpdateDeliveryStatus.
type Order struct {
	ID             string    `json:"order_id"`
	Platform       string    `json:"platform"`
	Package        string    `json:"package"`
	Amount         float64   `json:"amount"`
	DistanceKm     float64   `json:"distance_km,omitempty"`
	TimeMin        int       `json:"time_min,omitempty"`
	Priority       Priority  `json:"priority"`
	IsAccepted     bool      `json:"is_accepted"`
	DeliveryStatus string    `json:"delivery_status"`
	RawTitle       string    `json:"raw_title,omitempty"`
	RawText        string    `json:"raw_text,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// Platform is the per-app user configuration consulted by the decision rule.
// Read-mostly; updated via the HTTP API.
type Platform struct {
	Name         string  `json:"name"`
	Package      string  `json:"package"`
	IsEnabled    bool    `json:"is_enabled"`
	MinAmount    float64 `json:"min_amount"`
	MaxAmount    float64 `json:"max_amount"`
	AutoAccept   bool    `json:"auto_accept"`
	AcceptMedium bool    `json:"accept_medium"`
}
