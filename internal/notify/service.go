package notify

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// PhraseIntent returns a detector matching a literal phrase
// case-insensitively anywhere in the message.
func PhraseIntent(phrase string) IntentDetector {
	phrase = strings.ToLower(strings.TrimSpace(phrase))
	return func(message string) bool {
		if phrase == "" {
			return false
		}
		return strings.Contains(strings.ToLower(message), phrase)
	}
}

// Service fires operator-request notifications. Failures are logged but never
// surfaced to the chat caller, and an unconfigured notifier is a silent no-op.
type Service struct {
	notifier Notifier
	detect   IntentDetector
}

// NewService creates a notification service
func NewService(notifier Notifier, detect IntentDetector) *Service {
	return &Service{
		notifier: notifier,
		detect:   detect,
	}
}

// HandleMessage checks the user message for the operator-request intent and
// sends the notification when it matches. Returns true when the intent was
// detected, regardless of whether the send succeeded.
func (s *Service) HandleMessage(ctx context.Context, message string) bool {
	if s == nil || s.detect == nil || !s.detect(message) {
		return false
	}

	if s.notifier == nil || !s.notifier.IsConfigured() {
		fmt.Println("Notification: operator request detected but no notifier configured")
		return true
	}

	req := OperatorRequest{
		Message:    message,
		ReceivedAt: time.Now(),
	}
	if err := s.notifier.Send(ctx, req); err != nil {
		fmt.Printf("Notification: %s send failed: %v\n", s.notifier.Name(), err)
	}

	return true
}

// IsEmailAvailable returns true if email notifications can be used
func (s *Service) IsEmailAvailable() bool {
	return s != nil && s.notifier != nil && s.notifier.IsConfigured()
}
