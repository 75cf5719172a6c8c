// Package gcal reads the shared office calendar with service-account
// credentials. The feed is read-only and queried fresh on every chat request.
package gcal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/elabo-srl/assistant/internal/presence"
)

// Client wraps the Google Calendar API client
type Client struct {
	service    *calendar.Service
	calendarID string
	location   *time.Location
}

// NewClient creates a calendar client from service-account JSON credentials.
// The timezone name defines the midnight-to-midnight window used by
// ListTodayEvents; an unknown name falls back to UTC.
func NewClient(ctx context.Context, credentialsJSON []byte, calendarID, timezone string) (*Client, error) {
	if len(credentialsJSON) == 0 {
		return nil, fmt.Errorf("no service account credentials provided")
	}
	if calendarID == "" {
		return nil, fmt.Errorf("calendar id is required")
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account credentials: %w", err)
	}

	service, err := calendar.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		fmt.Printf("Warning: unknown timezone %q, falling back to UTC\n", timezone)
		loc = time.UTC
	}

	return &Client{
		service:    service,
		calendarID: calendarID,
		location:   loc,
	}, nil
}

// ListTodayEvents returns today's events in the configured timezone, ordered
// by start time. Cancelled and malformed items are skipped rather than
// failing the whole request.
func (c *Client) ListTodayEvents(ctx context.Context) ([]presence.Event, error) {
	if c.service == nil {
		return nil, fmt.Errorf("calendar service not initialized")
	}

	now := time.Now().In(c.location)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, c.location)
	endOfDay := startOfDay.Add(24 * time.Hour)

	events, err := c.service.Events.List(c.calendarID).
		TimeMin(startOfDay.Format(time.RFC3339)).
		TimeMax(endOfDay.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list today's events: %w", err)
	}

	result := make([]presence.Event, 0, len(events.Items))
	for _, item := range events.Items {
		if item == nil || item.Status == "cancelled" {
			continue
		}

		ev := presence.Event{
			Summary:     item.Summary,
			Description: item.Description,
			Location:    item.Location,
		}
		for _, attendee := range item.Attendees {
			if attendee == nil || attendee.Email == "" {
				continue
			}
			ev.Attendees = append(ev.Attendees, presence.Attendee{
				DisplayName: attendee.DisplayName,
				Email:       attendee.Email,
			})
		}

		result = append(result, ev)
	}

	return result, nil
}
