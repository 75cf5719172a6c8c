// Package notify implements the outbound side path: when a chat message asks
// for a human operator, an email notification is fired best-effort.
package notify

import (
	"context"
	"time"
)

// OperatorRequest carries what the notification needs about the triggering
// chat message.
type OperatorRequest struct {
	Message    string
	ReceivedAt time.Time
}

// Notifier sends an operator-request notification to the configured recipient
type Notifier interface {
	// Send sends a notification for an operator request
	Send(ctx context.Context, req OperatorRequest) error
	// Name returns the notifier type name (for logging)
	Name() string
	// IsConfigured returns true if the notifier has server-side config
	IsConfigured() bool
}

// IntentDetector decides whether a user message expresses a given intent.
// Keeping this separate from the Notifier lets the trigger condition evolve
// (today a phrase match, tomorrow a classifier) without touching the sender.
type IntentDetector func(message string) bool
