// Package totalobserver is the mock facility-management backend for the
// demo assistant. Datasets are loaded from JSON fixtures once and mutated
// in memory; nothing is persisted between runs.
package totalobserver

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bobi-voice/bobi/pkg/configutil"
	"github.com/bobi-voice/bobi/pkg/errorsx"
)

// Settings is the provider block from the config file.
type Settings struct {
	DataDir string `mapstructure:"data_dir"`
}

// Building is one managed property from the buildings fixture.
type Building struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Manager string `json:"manager"`
	Units   int    `json:"units"`
}

// Technician is one field worker from the technicians fixture.
type Technician struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Skills    []string `json:"skills"`
	Available bool     `json:"available"`
	Phone     string   `json:"phone"`
}

// WorkOrder is a service ticket. Fixtures seed the open ones; new orders
// are appended at runtime.
type WorkOrder struct {
	ID             string `json:"id"`
	BuildingID     string `json:"building_id"`
	BuildingName   string `json:"building_name"`
	IssueType      string `json:"issue_type"`
	Description    string `json:"description"`
	Priority       string `json:"priority"`
	Status         string `json:"status"`
	AssignedTo     string `json:"assigned_to,omitempty"`
	AssignedToName string `json:"assigned_to_name,omitempty"`
	CreatedAt      string `json:"created_at"`
	Reporter       string `json:"reporter"`
	Notes          string `json:"notes,omitempty"`
}

// Client simulates the TotalObserver work-order API. All mutations are
// mutex-guarded; concurrency safety of this shared state is the provider's
// job, not the bridge's.
type Client struct {
	log *slog.Logger

	mu          sync.Mutex
	buildings   []Building
	technicians []Technician
	workOrders  []WorkOrder
	nextWOID    int
}

// NewClient loads the fixtures from settings. A missing fixture file only
// empties that dataset; the demo keeps running, matching the original
// assistant's behavior.
func NewClient(log *slog.Logger, settings map[string]any) (*Client, error) {
	if err := configutil.ValidateSettings(settings, configutil.Schema{
		Optional: []string{"data_dir"},
	}); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonConfig)
	}
	var s Settings
	if err := configutil.DecodeSettings(settings, &s); err != nil {
		return nil, errorsx.Wrap(err, errorsx.ReasonConfig)
	}
	if s.DataDir == "" {
		s.DataDir = "mock-data"
	}

	c := &Client{
		log:      log,
		nextWOID: 1848, // continues the fixture's WO-2024 sequence
	}
	loadFixture(log, filepath.Join(s.DataDir, "buildings.json"), &c.buildings)
	loadFixture(log, filepath.Join(s.DataDir, "technicians.json"), &c.technicians)
	loadFixture(log, filepath.Join(s.DataDir, "work_orders.json"), &c.workOrders)
	return c, nil
}

func loadFixture[T any](log *slog.Logger, path string, out *[]T) {
	data, err := os.ReadFile(path)
	if err == nil {
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		err = errorsx.Wrap(err, errorsx.ReasonDataLoad)
		if log != nil {
			log.Warn("fixture_load_failed",
				slog.String("path", path),
				slog.String("error", err.Error()))
		}
		*out = nil
	}
}

// CreateWorkOrder opens a new work order against a known building.
func (c *Client) CreateWorkOrder(buildingID, issueType, description, priority, reporter string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	building := c.findBuilding(buildingID)
	if building == nil {
		return nil, errorsx.New(fmt.Sprintf("building '%s' not found", buildingID), errorsx.ReasonNotFound)
	}
	if reporter == "" {
		reporter = "AI Assistant"
	}

	wo := WorkOrder{
		ID:           fmt.Sprintf("WO-2024-%d", c.nextWOID),
		BuildingID:   buildingID,
		BuildingName: building.Name,
		IssueType:    issueType,
		Description:  description,
		Priority:     priority,
		Status:       "pending",
		CreatedAt:    time.Now().Format(time.RFC3339),
		Reporter:     reporter,
	}
	c.nextWOID++
	c.workOrders = append(c.workOrders, wo)

	c.log.Info("work_order_created", slog.String("work_order_id", wo.ID))
	return map[string]any{
		"success":    true,
		"work_order": wo,
		"message":    fmt.Sprintf("Radni nalog %s je kreiran za %s", wo.ID, building.Name),
	}, nil
}

// WorkOrderStatus returns a single work order by id.
func (c *Client) WorkOrderStatus(workOrderID string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wo := c.findWorkOrder(workOrderID)
	if wo == nil {
		return nil, errorsx.New(fmt.Sprintf("work order '%s' not found", workOrderID), errorsx.ReasonNotFound)
	}
	return map[string]any{
		"success":    true,
		"work_order": *wo,
	}, nil
}

// ListOpenWorkOrders returns pending and in-progress orders, optionally
// filtered by building or assigned technician.
func (c *Client) ListOpenWorkOrders(buildingID, technicianID string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := make([]WorkOrder, 0)
	for _, wo := range c.workOrders {
		if wo.Status != "pending" && wo.Status != "in_progress" {
			continue
		}
		if buildingID != "" && wo.BuildingID != buildingID {
			continue
		}
		if technicianID != "" && wo.AssignedTo != technicianID {
			continue
		}
		filtered = append(filtered, wo)
	}
	return map[string]any{
		"success":     true,
		"work_orders": filtered,
		"count":       len(filtered),
	}, nil
}

// AssignTechnician puts a technician on a work order and moves it to
// in_progress.
func (c *Client) AssignTechnician(workOrderID, technicianID string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wo := c.findWorkOrder(workOrderID)
	if wo == nil {
		return nil, errorsx.New(fmt.Sprintf("work order '%s' not found", workOrderID), errorsx.ReasonNotFound)
	}
	var tech *Technician
	for i := range c.technicians {
		if c.technicians[i].ID == technicianID {
			tech = &c.technicians[i]
			break
		}
	}
	if tech == nil {
		return nil, errorsx.New(fmt.Sprintf("technician '%s' not found", technicianID), errorsx.ReasonNotFound)
	}

	wo.AssignedTo = technicianID
	wo.AssignedToName = tech.Name
	wo.Status = "in_progress"

	c.log.Info("technician_assigned",
		slog.String("work_order_id", workOrderID),
		slog.String("technician_id", technicianID))
	return map[string]any{
		"success":    true,
		"work_order": *wo,
		"message":    fmt.Sprintf("Tehničar %s je dodeljen radnom nalogu %s", tech.Name, workOrderID),
	}, nil
}

// BuildingInfo returns a building with its currently open orders.
func (c *Client) BuildingInfo(buildingID string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	building := c.findBuilding(buildingID)
	if building == nil {
		return nil, errorsx.New(fmt.Sprintf("building '%s' not found", buildingID), errorsx.ReasonNotFound)
	}

	open := make([]WorkOrder, 0)
	for _, wo := range c.workOrders {
		if wo.BuildingID == buildingID && (wo.Status == "pending" || wo.Status == "in_progress") {
			open = append(open, wo)
		}
	}
	recent := open
	if len(recent) > 5 {
		recent = recent[:5]
	}
	return map[string]any{
		"success":          true,
		"building":         *building,
		"open_work_orders": len(open),
		"recent_issues":    recent,
	}, nil
}

// TechnicianAvailability lists available technicians, optionally filtered
// by skill. The date argument is accepted but unused by the mock.
func (c *Client) TechnicianAvailability(date, skillType string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := make([]Technician, 0)
	for _, t := range c.technicians {
		if !t.Available {
			continue
		}
		if skillType != "" && !hasSkill(t, skillType) {
			continue
		}
		filtered = append(filtered, t)
	}
	return map[string]any{
		"success":               true,
		"available_technicians": filtered,
		"count":                 len(filtered),
	}, nil
}

// UpdateWorkOrder changes status and/or notes of an order.
func (c *Client) UpdateWorkOrder(workOrderID, status, notes string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wo := c.findWorkOrder(workOrderID)
	if wo == nil {
		return nil, errorsx.New(fmt.Sprintf("work order '%s' not found", workOrderID), errorsx.ReasonNotFound)
	}
	if status != "" {
		wo.Status = status
	}
	if notes != "" {
		wo.Notes = notes
	}
	c.log.Info("work_order_updated", slog.String("work_order_id", workOrderID))
	return map[string]any{
		"success":    true,
		"work_order": *wo,
	}, nil
}

// TenantInfo returns placeholder tenant data, as in the original demo.
func (c *Client) TenantInfo(tenantName string) (map[string]any, error) {
	return map[string]any{
		"success": true,
		"tenant": map[string]any{
			"name":          tenantName,
			"contact":       "+381641234567",
			"building":      "Plaza Mall",
			"unit":          "Food Court - Unit 23",
			"lease_expires": "2025-12-31",
			"open_tickets":  1,
		},
	}, nil
}

func (c *Client) findBuilding(id string) *Building {
	for i := range c.buildings {
		if c.buildings[i].ID == id {
			return &c.buildings[i]
		}
	}
	return nil
}

func (c *Client) findWorkOrder(id string) *WorkOrder {
	for i := range c.workOrders {
		if c.workOrders[i].ID == id {
			return &c.workOrders[i]
		}
	}
	return nil
}

func hasSkill(t Technician, skill string) bool {
	for _, s := range t.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
