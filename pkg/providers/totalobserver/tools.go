package totalobserver

import "github.com/bobi-voice/bobi/pkg/bridge"

// Name implements bridge.Provider.
func (c *Client) Name() string { return "totalobserver" }

// Tools implements bridge.Provider. Descriptions are the Serbian usage
// text advertised to the driving model, unchanged from the demo prompt.
func (c *Client) Tools() []bridge.Tool {
	return []bridge.Tool{
		{
			Name:        "create_work_order",
			Description: "Kreira novi radni nalog. Parametri: building_id, issue_type, description, priority, reporter_name?",
			Handler: func(args map[string]any) (map[string]any, error) {
				buildingID, err := bridge.RequiredString(args, "building_id")
				if err != nil {
					return nil, err
				}
				issueType, err := bridge.RequiredString(args, "issue_type")
				if err != nil {
					return nil, err
				}
				description, err := bridge.RequiredString(args, "description")
				if err != nil {
					return nil, err
				}
				priority := bridge.OptionalString(args, "priority", "medium")
				reporter := bridge.OptionalString(args, "reporter_name", "")
				return c.CreateWorkOrder(buildingID, issueType, description, priority, reporter)
			},
		},
		{
			Name:        "get_work_order_status",
			Description: "Proverava status radnog naloga. Parametri: work_order_id",
			Handler: func(args map[string]any) (map[string]any, error) {
				id, err := bridge.RequiredString(args, "work_order_id")
				if err != nil {
					return nil, err
				}
				return c.WorkOrderStatus(id)
			},
		},
		{
			Name:        "list_open_work_orders",
			Description: "Lista otvorenih radnih naloga. Parametri: building_id?, technician_id?",
			Handler: func(args map[string]any) (map[string]any, error) {
				buildingID := bridge.OptionalString(args, "building_id", "")
				technicianID := bridge.OptionalString(args, "technician_id", "")
				return c.ListOpenWorkOrders(buildingID, technicianID)
			},
		},
		{
			Name:        "assign_technician",
			Description: "Dodeljuje tehničara radnom nalogu. Parametri: work_order_id, technician_id",
			Handler: func(args map[string]any) (map[string]any, error) {
				workOrderID, err := bridge.RequiredString(args, "work_order_id")
				if err != nil {
					return nil, err
				}
				technicianID, err := bridge.RequiredString(args, "technician_id")
				if err != nil {
					return nil, err
				}
				return c.AssignTechnician(workOrderID, technicianID)
			},
		},
		{
			Name:        "get_building_info",
			Description: "Informacije o zgradi. Parametri: building_id",
			Handler: func(args map[string]any) (map[string]any, error) {
				id, err := bridge.RequiredString(args, "building_id")
				if err != nil {
					return nil, err
				}
				return c.BuildingInfo(id)
			},
		},
		{
			Name:        "get_technician_availability",
			Description: "Provera dostupnosti tehničara. Parametri: date?, skill_type?",
			Handler: func(args map[string]any) (map[string]any, error) {
				date := bridge.OptionalString(args, "date", "")
				skill := bridge.OptionalString(args, "skill_type", "")
				return c.TechnicianAvailability(date, skill)
			},
		},
		{
			Name:        "update_work_order",
			Description: "Ažurira radni nalog. Parametri: work_order_id, status?, notes?",
			Handler: func(args map[string]any) (map[string]any, error) {
				id, err := bridge.RequiredString(args, "work_order_id")
				if err != nil {
					return nil, err
				}
				status := bridge.OptionalString(args, "status", "")
				notes := bridge.OptionalString(args, "notes", "")
				return c.UpdateWorkOrder(id, status, notes)
			},
		},
		{
			Name:        "get_tenant_info",
			Description: "Informacije o zakupcu. Parametri: tenant_name",
			Handler: func(args map[string]any) (map[string]any, error) {
				name, err := bridge.RequiredString(args, "tenant_name")
				if err != nil {
					return nil, err
				}
				return c.TenantInfo(name)
			},
		},
	}
}

var _ bridge.Provider = (*Client)(nil)
