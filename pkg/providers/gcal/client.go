// Package gcal is the Google Calendar provider. It is a thin pass-through
// over the Calendar v3 API; only the provider contract around it matters
// to the bridge. Missing credentials make construction fail, which the
// bridge turns into an absent tool set.
package gcal

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/bobi-voice/bobi/pkg/bridge"
	"github.com/bobi-voice/bobi/pkg/configutil"
	"github.com/bobi-voice/bobi/pkg/errorsx"
	"github.com/bobi-voice/bobi/pkg/googleauth"
)

const eventTimeZone = "Europe/Belgrade"

// Settings is the provider block from the config file.
type Settings struct {
	CredentialsPath string `mapstructure:"credentials_path"`
	TokenPath       string `mapstructure:"token_path"`
	CalendarID      string `mapstructure:"calendar_id"`
}

// Client wraps an authenticated Calendar service.
type Client struct {
	log        *slog.Logger
	svc        *calendar.Service
	calendarID string
}

// NewClient authenticates and builds the Calendar service.
func NewClient(ctx context.Context, log *slog.Logger, settings map[string]any) (*Client, error) {
	if err := configutil.ValidateSettings(settings, configutil.Schema{
		Required: []string{"credentials_path", "token_path"},
		Optional: []string{"calendar_id"},
	}); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonConfig)
	}
	var s Settings
	if err := configutil.DecodeSettings(settings, &s); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonConfig)
	}
	if s.CalendarID == "" {
		s.CalendarID = "primary"
	}

	httpClient, err := googleauth.NewHTTPClient(ctx, s.CredentialsPath, s.TokenPath, calendar.CalendarScope)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAuth)
	}

	log.Info("calendar_provider_ready", slog.String("calendar_id", s.CalendarID))
	return &Client{log: log, svc: svc, calendarID: s.CalendarID}, nil
}

// Optional adapts construction to the bridge's optional-provider contract.
func Optional(ctx context.Context, log *slog.Logger, settings map[string]any) bridge.OptionalProvider {
	return func() (bridge.Provider, error) {
		return NewClient(ctx, log, settings)
	}
}

// Events lists events in a date range, defaulting to the next seven days.
func (c *Client) Events(startDate, endDate string, maxResults int) (map[string]any, error) {
	start := time.Now().UTC()
	if startDate != "" {
		parsed, err := parseWhen(startDate)
		if err != nil {
			return nil, err
		}
		start = parsed
	}
	end := start.Add(7 * 24 * time.Hour)
	if endDate != "" {
		parsed, err := parseWhen(endDate)
		if err != nil {
			return nil, err
		}
		end = parsed
	}

	res, err := c.svc.Events.List(c.calendarID).
		TimeMin(start.Format(time.RFC3339)).
		TimeMax(end.Format(time.RFC3339)).
		MaxResults(int64(maxResults)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
	}
	return map[string]any{
		"success": true,
		"events":  res.Items,
		"count":   len(res.Items),
	}, nil
}

// CreateEvent inserts a new event.
func (c *Client) CreateEvent(title, startTime, endTime string, attendees []string, description string) (map[string]any, error) {
	event := &calendar.Event{
		Summary:     title,
		Description: description,
		Start:       &calendar.EventDateTime{DateTime: startTime, TimeZone: eventTimeZone},
		End:         &calendar.EventDateTime{DateTime: endTime, TimeZone: eventTimeZone},
	}
	for _, email := range attendees {
		event.Attendees = append(event.Attendees, &calendar.EventAttendee{Email: email})
	}

	created, err := c.svc.Events.Insert(c.calendarID, event).Do()
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
	}
	c.log.Info("event_created", slog.String("event_id", created.Id))
	return map[string]any{
		"success": true,
		"event":   created,
		"message": fmt.Sprintf("Event '%s' kreiran za %s", title, startTime),
	}, nil
}

// CheckAvailability returns free slots of at least the requested duration
// within business hours (09:00-17:00) on the given day.
func (c *Client) CheckAvailability(date string, durationMinutes int) (map[string]any, error) {
	day, err := parseWhen(date)
	if err != nil {
		return nil, err
	}
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, day.Location())
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), 17, 0, 0, 0, day.Location())

	res, err := c.svc.Events.List(c.calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Do()
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
	}

	busy := make([]interval, 0, len(res.Items))
	for _, ev := range res.Items {
		start, err := eventTime(ev.Start)
		if err != nil {
			continue
		}
		end, err := eventTime(ev.End)
		if err != nil {
			continue
		}
		busy = append(busy, interval{start: start, end: end})
	}

	slots := freeSlots(dayStart, dayEnd, busy, time.Duration(durationMinutes)*time.Minute)
	return map[string]any{
		"success":         true,
		"available_slots": slots,
		"count":           len(slots),
	}, nil
}

// RescheduleEvent moves an event to a new start, preserving its duration.
func (c *Client) RescheduleEvent(eventID, newStartTime string) (map[string]any, error) {
	event, err := c.svc.Events.Get(c.calendarID, eventID).Do()
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
	}
	oldStart, err := eventTime(event.Start)
	if err != nil {
		return nil, err
	}
	oldEnd, err := eventTime(event.End)
	if err != nil {
		return nil, err
	}

	newStart, err := parseWhen(newStartTime)
	if err != nil {
		return nil, err
	}
	newEnd := newStart.Add(oldEnd.Sub(oldStart))

	event.Start = &calendar.EventDateTime{DateTime: newStart.Format(time.RFC3339), TimeZone: eventTimeZone}
	event.End = &calendar.EventDateTime{DateTime: newEnd.Format(time.RFC3339), TimeZone: eventTimeZone}

	updated, err := c.svc.Events.Update(c.calendarID, eventID, event).Do()
	if err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonGoogleAPI)
	}
	c.log.Info("event_rescheduled", slog.String("event_id", eventID))
	return map[string]any{
		"success": true,
		"event":   updated,
		"message": fmt.Sprintf("Event je pomeren na %s", newStartTime),
	}, nil
}

// interval is one busy stretch on the calendar.
type interval struct {
	start time.Time
	end   time.Time
}

// freeSlots walks the busy intervals in order and collects the gaps that
// fit minDuration.
func freeSlots(dayStart, dayEnd time.Time, busy []interval, minDuration time.Duration) []map[string]string {
	sort.Slice(busy, func(i, j int) bool { return busy[i].start.Before(busy[j].start) })

	slots := make([]map[string]string, 0)
	current := dayStart
	for _, b := range busy {
		if b.start.Sub(current) >= minDuration {
			slots = append(slots, map[string]string{
				"start": current.Format(time.RFC3339),
				"end":   b.start.Format(time.RFC3339),
			})
		}
		if b.end.After(current) {
			current = b.end
		}
	}
	if dayEnd.Sub(current) >= minDuration {
		slots = append(slots, map[string]string{
			"start": current.Format(time.RFC3339),
			"end":   dayEnd.Format(time.RFC3339),
		})
	}
	return slots
}

func eventTime(edt *calendar.EventDateTime) (time.Time, error) {
	if edt == nil {
		return time.Time{}, errorsx.New("event has no time", errorsx.ReasonBadRequest)
	}
	if edt.DateTime != "" {
		return parseWhen(edt.DateTime)
	}
	return parseWhen(edt.Date)
}

// parseWhen accepts RFC3339, a local datetime, or a bare date.
func parseWhen(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errorsx.New(fmt.Sprintf("unparseable time '%s'", value), errorsx.ReasonBadRequest)
}
