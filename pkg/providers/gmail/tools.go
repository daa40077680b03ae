package gmail

import "github.com/bobi-voice/bobi/pkg/bridge"

// Name implements bridge.Provider.
func (c *Client) Name() string { return "gmail" }

// Tools implements bridge.Provider.
func (c *Client) Tools() []bridge.Tool {
	return []bridge.Tool{
		{
			Name:        "search_emails",
			Description: "Pretraga emailova. Parametri: query, max_results?",
			Handler: func(args map[string]any) (map[string]any, error) {
				query, err := bridge.RequiredString(args, "query")
				if err != nil {
					return nil, err
				}
				maxResults := bridge.OptionalInt(args, "max_results", 10)
				return c.SearchEmails(query, maxResults)
			},
		},
		{
			Name:        "get_email_thread",
			Description: "Ceo email thread. Parametri: thread_id",
			Handler: func(args map[string]any) (map[string]any, error) {
				threadID, err := bridge.RequiredString(args, "thread_id")
				if err != nil {
					return nil, err
				}
				return c.EmailThread(threadID)
			},
		},
		{
			Name:        "draft_email",
			Description: "Kreira draft. Parametri: to, subject, body",
			Handler: func(args map[string]any) (map[string]any, error) {
				return c.composeCall(args, c.DraftEmail)
			},
		},
		{
			Name:        "send_email",
			Description: "Šalje email. Parametri: to, subject, body",
			Handler: func(args map[string]any) (map[string]any, error) {
				return c.composeCall(args, c.SendEmail)
			},
		},
		{
			Name:        "get_recent_emails",
			Description: "Nedavni emailovi. Parametri: from_address?, max_results?",
			Handler: func(args map[string]any) (map[string]any, error) {
				fromAddress := bridge.OptionalString(args, "from_address", "")
				maxResults := bridge.OptionalInt(args, "max_results", 5)
				return c.RecentEmails(fromAddress, maxResults)
			},
		},
	}
}

// composeCall extracts the shared to/subject/body triple for draft and send.
func (c *Client) composeCall(args map[string]any, op func(to, subject, body string) (map[string]any, error)) (map[string]any, error) {
	to, err := bridge.RequiredString(args, "to")
	if err != nil {
		return nil, err
	}
	subject, err := bridge.RequiredString(args, "subject")
	if err != nil {
		return nil, err
	}
	body, err := bridge.RequiredString(args, "body")
	if err != nil {
		return nil, err
	}
	return op(to, subject, body)
}

var _ bridge.Provider = (*Client)(nil)
