// Package prompt assembles the system prompt advertised to the driving
// model from the bridge's introspection surface.
package prompt

import (
	"fmt"
	"strings"
)

// Introspector is the read-only slice of the bridge the builder needs.
type Introspector interface {
	ListTools() []string
	DescribeTools() map[string]string
}

// ForTools renders persona, base instructions, then one line per tool in
// registration order. Because both membership and descriptions come from
// the same registry, the prompt can never advertise a tool that is not
// actually callable.
func ForTools(persona, basePrompt string, in Introspector) string {
	var b strings.Builder
	if persona != "" {
		b.WriteString(persona)
		b.WriteString("\n\n")
	}
	if basePrompt != "" {
		b.WriteString(basePrompt)
		b.WriteString("\n\n")
	}
	b.WriteString("Dostupni alati:\n")
	descriptions := in.DescribeTools()
	for _, name := range in.ListTools() {
		fmt.Fprintf(&b, "- %s: %s\n", name, descriptions[name])
	}
	return b.String()
}
