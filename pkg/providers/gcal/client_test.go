package gcal

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/bobi-voice/bobi/pkg/errorsx"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClientRejectsIncompleteSettings(t *testing.T) {
	_, err := NewClient(context.Background(), testLogger(), map[string]any{
		"credentials_path": "credentials.json",
	})
	if err == nil {
		t.Fatalf("expected error for missing token_path")
	}
	if !errorsx.HasReason(err, errorsx.ReasonConfig) {
		t.Fatalf("expected config reason, got %s", errorsx.Reason(err))
	}
}

func TestOptionalFailsWithoutCredentials(t *testing.T) {
	build := Optional(context.Background(), testLogger(), map[string]any{
		"credentials_path": "no-such-credentials.json",
		"token_path":       "no-such-token.json",
	})
	if _, err := build(); err == nil {
		t.Fatalf("expected provider init failure")
	}
}

func TestToolsExposeFixedSet(t *testing.T) {
	c := &Client{log: testLogger(), calendarID: "primary"}
	tools := c.Tools()
	if len(tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(tools))
	}
	for _, tool := range tools {
		if tool.Name == "" || tool.Description == "" || tool.Handler == nil {
			t.Fatalf("incomplete tool %q", tool.Name)
		}
	}
}

func TestFreeSlots(t *testing.T) {
	day := time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)
	start := day.Add(9 * time.Hour)
	end := day.Add(17 * time.Hour)
	busy := []interval{
		{start: day.Add(10 * time.Hour), end: day.Add(11 * time.Hour)},
		{start: day.Add(13 * time.Hour), end: day.Add(13*time.Hour + 30*time.Minute)},
	}

	slots := freeSlots(start, end, busy, 30*time.Minute)
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d: %v", len(slots), slots)
	}
	if slots[0]["start"] != start.Format(time.RFC3339) {
		t.Fatalf("expected first slot at day start, got %v", slots[0])
	}
	if slots[2]["end"] != end.Format(time.RFC3339) {
		t.Fatalf("expected last slot at day end, got %v", slots[2])
	}
}

func TestFreeSlotsFullyBooked(t *testing.T) {
	day := time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)
	start := day.Add(9 * time.Hour)
	end := day.Add(17 * time.Hour)
	busy := []interval{{start: start, end: end}}

	if slots := freeSlots(start, end, busy, 30*time.Minute); len(slots) != 0 {
		t.Fatalf("expected no slots, got %v", slots)
	}
}

func TestFreeSlotsUnsortedAndOverlapping(t *testing.T) {
	day := time.Date(2024, 11, 8, 0, 0, 0, 0, time.UTC)
	start := day.Add(9 * time.Hour)
	end := day.Add(17 * time.Hour)
	busy := []interval{
		{start: day.Add(14 * time.Hour), end: day.Add(15 * time.Hour)},
		{start: day.Add(9 * time.Hour), end: day.Add(12 * time.Hour)},
		{start: day.Add(11 * time.Hour), end: day.Add(11*time.Hour + 30*time.Minute)},
	}

	slots := freeSlots(start, end, busy, time.Hour)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %v", slots)
	}
	if slots[0]["start"] != day.Add(12*time.Hour).Format(time.RFC3339) {
		t.Fatalf("expected first slot at 12:00, got %v", slots[0])
	}
}

func TestParseWhen(t *testing.T) {
	for _, in := range []string{"2024-11-08T10:00:00Z", "2024-11-08T10:00:00", "2024-11-08"} {
		if _, err := parseWhen(in); err != nil {
			t.Fatalf("expected %q to parse: %v", in, err)
		}
	}
	if _, err := parseWhen("sutra"); err == nil {
		t.Fatalf("expected parse error")
	}
	if !errorsx.HasReason(parseWhenErr("sutra"), errorsx.ReasonBadRequest) {
		t.Fatalf("expected bad_request reason")
	}
}

func parseWhenErr(v string) error {
	_, err := parseWhen(v)
	return err
}
