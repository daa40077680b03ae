package prompt

import (
	"strings"
	"testing"
)

type fakeIntrospector struct {
	names []string
	descs map[string]string
}

func (f fakeIntrospector) ListTools() []string              { return f.names }
func (f fakeIntrospector) DescribeTools() map[string]string { return f.descs }

func TestForTools(t *testing.T) {
	in := fakeIntrospector{
		names: []string{"create_work_order", "search_contacts"},
		descs: map[string]string{
			"create_work_order": "Kreira novi radni nalog.",
			"search_contacts":   "Pretraga kontakata.",
		},
	}
	got := ForTools("Ti si Bobi.", "Odgovaraj kratko.", in)

	if !strings.HasPrefix(got, "Ti si Bobi.\n\nOdgovaraj kratko.\n\n") {
		t.Fatalf("unexpected preamble: %q", got)
	}
	woIdx := strings.Index(got, "- create_work_order: Kreira novi radni nalog.")
	scIdx := strings.Index(got, "- search_contacts: Pretraga kontakata.")
	if woIdx == -1 || scIdx == -1 {
		t.Fatalf("missing tool lines: %q", got)
	}
	if woIdx > scIdx {
		t.Fatalf("expected registration order preserved: %q", got)
	}
}

func TestForToolsEmptyPreamble(t *testing.T) {
	got := ForTools("", "", fakeIntrospector{names: []string{"ping"}, descs: map[string]string{"ping": "Health check."}})
	if !strings.HasPrefix(got, "Dostupni alati:\n") {
		t.Fatalf("expected tool list only, got %q", got)
	}
}
