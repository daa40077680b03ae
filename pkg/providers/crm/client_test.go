package crm

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/bobi-voice/bobi/pkg/errorsx"
)

func testClient(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(slog.New(slog.NewTextHandler(io.Discard, nil)), map[string]any{
		"data_dir": "testdata",
	})
	if err != nil {
		t.Fatalf("client error: %v", err)
	}
	return c
}

func TestSearchContacts(t *testing.T) {
	c := testClient(t)

	out, err := c.SearchContacts("delta")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["count"] != 2 {
		t.Fatalf("expected 2 matches by company, got %v", out["count"])
	}

	out, err = c.SearchContacts("ana savić")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	contacts := out["contacts"].([]Contact)
	if len(contacts) != 1 || contacts[0].ID != "contact-002" {
		t.Fatalf("expected contact-002, got %v", contacts)
	}

	out, _ = c.SearchContacts("nepostojeći")
	if out["count"] != 0 {
		t.Fatalf("expected no matches, got %v", out["count"])
	}
}

func TestLogInteractionUpdatesContact(t *testing.T) {
	c := testClient(t)

	out, err := c.LogInteraction("contact-001", "call", "Dogovoren sastanak za petak")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	interaction := out["interaction"].(Interaction)
	if !strings.HasPrefix(interaction.ID, "int-") {
		t.Fatalf("unexpected interaction id %q", interaction.ID)
	}

	details, err := c.ContactDetails("contact-001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	history := details["interaction_history"].([]Interaction)
	if len(history) != 1 || history[0].ID != interaction.ID {
		t.Fatalf("expected interaction in history, got %v", history)
	}
	contact := details["contact"].(Contact)
	if contact.LastContact != interaction.Timestamp {
		t.Fatalf("expected last_contact bumped, got %q", contact.LastContact)
	}
}

func TestLogInteractionUnknownContact(t *testing.T) {
	c := testClient(t)
	_, err := c.LogInteraction("contact-404", "call", "x")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errorsx.HasReason(err, errorsx.ReasonNotFound) {
		t.Fatalf("expected not_found reason, got %s", errorsx.Reason(err))
	}
}

func TestDealPipeline(t *testing.T) {
	c := testClient(t)

	out, err := c.DealPipeline("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// contact-003 has no deal and must be excluded
	if out["count"] != 2 {
		t.Fatalf("expected 2 deals, got %v", out["count"])
	}

	out, err = c.DealPipeline("proposal")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	deals := out["deals"].([]map[string]any)
	if len(deals) != 1 || deals[0]["contact_id"] != "contact-002" {
		t.Fatalf("expected contact-002 deal, got %v", deals)
	}
}

func TestCreateTask(t *testing.T) {
	c := testClient(t)
	out, err := c.CreateTask("contact-002", "Poslati ponudu", "2024-11-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	task := out["task"].(Task)
	if task.Status != "pending" || task.ContactName != "Ana Savić" {
		t.Fatalf("unexpected task %+v", task)
	}
}

func TestCompanyInfo(t *testing.T) {
	c := testClient(t)

	out, err := c.CompanyInfo("delta holding")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	company := out["company"].(map[string]any)
	if company["contact_count"] != 2 {
		t.Fatalf("expected 2 contacts, got %v", company["contact_count"])
	}

	if _, err := c.CompanyInfo("Nepoznata Firma"); err == nil {
		t.Fatalf("expected error for unknown company")
	}
}

func TestToolsExposeFixedSet(t *testing.T) {
	c := testClient(t)
	tools := c.Tools()
	if len(tools) != 6 {
		t.Fatalf("expected 6 tools, got %d", len(tools))
	}
	for _, tool := range tools {
		if tool.Name == "" || tool.Description == "" || tool.Handler == nil {
			t.Fatalf("incomplete tool %+v", tool.Name)
		}
	}
}
