package gcal

import "github.com/bobi-voice/bobi/pkg/bridge"

// Name implements bridge.Provider.
func (c *Client) Name() string { return "calendar" }

// Tools implements bridge.Provider.
func (c *Client) Tools() []bridge.Tool {
	return []bridge.Tool{
		{
			Name:        "get_calendar_events",
			Description: "Lista kalendar događaja. Parametri: start_date?, end_date?, max_results?",
			Handler: func(args map[string]any) (map[string]any, error) {
				startDate := bridge.OptionalString(args, "start_date", "")
				endDate := bridge.OptionalString(args, "end_date", "")
				maxResults := bridge.OptionalInt(args, "max_results", 10)
				return c.Events(startDate, endDate, maxResults)
			},
		},
		{
			Name:        "create_event",
			Description: "Kreira novi event. Parametri: title, start_time, end_time, attendees?, description?",
			Handler: func(args map[string]any) (map[string]any, error) {
				title, err := bridge.RequiredString(args, "title")
				if err != nil {
					return nil, err
				}
				startTime, err := bridge.RequiredString(args, "start_time")
				if err != nil {
					return nil, err
				}
				endTime, err := bridge.RequiredString(args, "end_time")
				if err != nil {
					return nil, err
				}
				attendees := bridge.OptionalStrings(args, "attendees")
				description := bridge.OptionalString(args, "description", "")
				return c.CreateEvent(title, startTime, endTime, attendees, description)
			},
		},
		{
			Name:        "check_availability",
			Description: "Provera slobodnih termina. Parametri: date, duration_minutes?",
			Handler: func(args map[string]any) (map[string]any, error) {
				date, err := bridge.RequiredString(args, "date")
				if err != nil {
					return nil, err
				}
				duration := bridge.OptionalInt(args, "duration_minutes", 30)
				return c.CheckAvailability(date, duration)
			},
		},
		{
			Name:        "reschedule_event",
			Description: "Pomera event. Parametri: event_id, new_start_time",
			Handler: func(args map[string]any) (map[string]any, error) {
				eventID, err := bridge.RequiredString(args, "event_id")
				if err != nil {
					return nil, err
				}
				newStart, err := bridge.RequiredString(args, "new_start_time")
				if err != nil {
					return nil, err
				}
				return c.RescheduleEvent(eventID, newStart)
			},
		},
	}
}

var _ bridge.Provider = (*Client)(nil)
