package crm

import "github.com/bobi-voice/bobi/pkg/bridge"

// Name implements bridge.Provider.
func (c *Client) Name() string { return "crm" }

// Tools implements bridge.Provider.
func (c *Client) Tools() []bridge.Tool {
	return []bridge.Tool{
		{
			Name:        "search_contacts",
			Description: "Pretraga kontakata. Parametri: query",
			Handler: func(args map[string]any) (map[string]any, error) {
				query, err := bridge.RequiredString(args, "query")
				if err != nil {
					return nil, err
				}
				return c.SearchContacts(query)
			},
		},
		{
			Name:        "get_contact_details",
			Description: "Detalji kontakta. Parametri: contact_id",
			Handler: func(args map[string]any) (map[string]any, error) {
				id, err := bridge.RequiredString(args, "contact_id")
				if err != nil {
					return nil, err
				}
				return c.ContactDetails(id)
			},
		},
		{
			Name:        "get_deal_pipeline",
			Description: "Lista dealova. Parametri: stage?",
			Handler: func(args map[string]any) (map[string]any, error) {
				return c.DealPipeline(bridge.OptionalString(args, "stage", ""))
			},
		},
		{
			Name:        "log_interaction",
			Description: "Beleži interakciju. Parametri: contact_id, interaction_type, notes",
			Handler: func(args map[string]any) (map[string]any, error) {
				contactID, err := bridge.RequiredString(args, "contact_id")
				if err != nil {
					return nil, err
				}
				interactionType, err := bridge.RequiredString(args, "interaction_type")
				if err != nil {
					return nil, err
				}
				notes, err := bridge.RequiredString(args, "notes")
				if err != nil {
					return nil, err
				}
				return c.LogInteraction(contactID, interactionType, notes)
			},
		},
		{
			Name:        "create_task",
			Description: "Kreira zadatak. Parametri: contact_id, title, due_date",
			Handler: func(args map[string]any) (map[string]any, error) {
				contactID, err := bridge.RequiredString(args, "contact_id")
				if err != nil {
					return nil, err
				}
				title, err := bridge.RequiredString(args, "title")
				if err != nil {
					return nil, err
				}
				dueDate, err := bridge.RequiredString(args, "due_date")
				if err != nil {
					return nil, err
				}
				return c.CreateTask(contactID, title, dueDate)
			},
		},
		{
			Name:        "get_company_info",
			Description: "Informacije o kompaniji. Parametri: company_name",
			Handler: func(args map[string]any) (map[string]any, error) {
				name, err := bridge.RequiredString(args, "company_name")
				if err != nil {
					return nil, err
				}
				return c.CompanyInfo(name)
			},
		},
	}
}

var _ bridge.Provider = (*Client)(nil)
