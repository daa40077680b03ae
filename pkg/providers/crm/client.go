// Package crm is the mock HubSpot-style CRM backend for the demo
// assistant. Contacts come from a JSON fixture; interactions and tasks
// are created in memory at runtime.
package crm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bobi-voice/bobi/pkg/configutil"
	"github.com/bobi-voice/bobi/pkg/errorsx"
)

// Settings is the provider block from the config file.
type Settings struct {
	DataDir string `mapstructure:"data_dir"`
}

// Contact is one CRM record. Deal fields are present only for contacts
// with an open deal.
type Contact struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Company     string  `json:"company"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DealStage   string  `json:"deal_stage,omitempty"`
	DealValue   float64 `json:"deal_value,omitempty"`
	LastContact string  `json:"last_contact,omitempty"`
}

// Interaction is one logged touchpoint with a contact.
type Interaction struct {
	ID        string `json:"id"`
	ContactID string `json:"contact_id"`
	Type      string `json:"type"`
	Notes     string `json:"notes"`
	Timestamp string `json:"timestamp"`
}

// Task is a follow-up item attached to a contact.
type Task struct {
	ID          string `json:"id"`
	ContactID   string `json:"contact_id"`
	ContactName string `json:"contact_name"`
	Title       string `json:"title"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// Client simulates the CRM API. Shared state is mutex-guarded here, per
// the provider side of the concurrency contract.
type Client struct {
	log *slog.Logger

	mu           sync.Mutex
	contacts     []Contact
	interactions []Interaction
	tasks        []Task
}

// NewClient loads the contacts fixture. A missing fixture empties the
// dataset without failing construction.
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

	c := &Client{log: log}
	path := filepath.Join(s.DataDir, "crm_contacts.json")
	data, err := os.ReadFile(path)
	if err == nil {
		err = json.Unmarshal(data, &c.contacts)
	}
	if err != nil {
		log.Warn("fixture_load_failed",
			slog.String("path", path),
			slog.String("error", errorsx.Wrap(err, errorsx.ReasonDataLoad).Error()))
		c.contacts = nil
	}
	return c, nil
}

// SearchContacts matches name or company, case-insensitive substring.
func (c *Client) SearchContacts(query string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	q := strings.ToLower(query)
	results := make([]Contact, 0)
	for _, contact := range c.contacts {
		if strings.Contains(strings.ToLower(contact.Name), q) ||
			strings.Contains(strings.ToLower(contact.Company), q) {
			results = append(results, contact)
		}
	}
	return map[string]any{
		"success":  true,
		"contacts": results,
		"count":    len(results),
	}, nil
}

// ContactDetails returns one contact with its interaction history.
func (c *Client) ContactDetails(contactID string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact := c.findContact(contactID)
	if contact == nil {
		return nil, errorsx.New(fmt.Sprintf("contact '%s' not found", contactID), errorsx.ReasonNotFound)
	}
	history := make([]Interaction, 0)
	for _, i := range c.interactions {
		if i.ContactID == contactID {
			history = append(history, i)
		}
	}
	return map[string]any{
		"success":             true,
		"contact":             *contact,
		"interaction_history": history,
	}, nil
}

// DealPipeline lists contacts carrying a deal, optionally filtered by stage.
func (c *Client) DealPipeline(stage string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	deals := make([]map[string]any, 0)
	for _, contact := range c.contacts {
		if contact.DealStage == "" {
			continue
		}
		if stage != "" && contact.DealStage != stage {
			continue
		}
		deals = append(deals, map[string]any{
			"contact_id":   contact.ID,
			"company":      contact.Company,
			"contact_name": contact.Name,
			"stage":        contact.DealStage,
			"value":        contact.DealValue,
			"last_contact": contact.LastContact,
		})
	}
	return map[string]any{
		"success": true,
		"deals":   deals,
		"count":   len(deals),
	}, nil
}

// LogInteraction appends a touchpoint and bumps the contact's last_contact.
func (c *Client) LogInteraction(contactID, interactionType, notes string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact := c.findContact(contactID)
	if contact == nil {
		return nil, errorsx.New(fmt.Sprintf("contact '%s' not found", contactID), errorsx.ReasonNotFound)
	}

	interaction := Interaction{
		ID:        "int-" + uuid.NewString(),
		ContactID: contactID,
		Type:      interactionType,
		Notes:     notes,
		Timestamp: time.Now().Format(time.RFC3339),
	}
	c.interactions = append(c.interactions, interaction)
	contact.LastContact = interaction.Timestamp

	c.log.Info("interaction_logged",
		slog.String("contact_id", contactID),
		slog.String("type", interactionType))
	return map[string]any{
		"success":     true,
		"interaction": interaction,
		"message":     fmt.Sprintf("Interakcija sa %s je zabeležena", contact.Name),
	}, nil
}

// CreateTask records a follow-up for a contact.
func (c *Client) CreateTask(contactID, title, dueDate string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	contact := c.findContact(contactID)
	if contact == nil {
		return nil, errorsx.New(fmt.Sprintf("contact '%s' not found", contactID), errorsx.ReasonNotFound)
	}

	task := Task{
		ID:          "task-" + uuid.NewString(),
		ContactID:   contactID,
		ContactName: contact.Name,
		Title:       title,
		DueDate:     dueDate,
		Status:      "pending",
		CreatedAt:   time.Now().Format(time.RFC3339),
	}
	c.tasks = append(c.tasks, task)

	c.log.Info("task_created",
		slog.String("contact_id", contactID),
		slog.String("title", title))
	return map[string]any{
		"success": true,
		"task":    task,
		"message": fmt.Sprintf("Zadatak '%s' je kreiran za %s", title, contact.Name),
	}, nil
}

// CompanyInfo groups contacts under a company name (exact, case-insensitive).
func (c *Client) CompanyInfo(companyName string) (map[string]any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	matched := make([]Contact, 0)
	for _, contact := range c.contacts {
		if strings.EqualFold(contact.Company, companyName) {
			matched = append(matched, contact)
		}
	}
	if len(matched) == 0 {
		return nil, errorsx.New(fmt.Sprintf("company '%s' not found", companyName), errorsx.ReasonNotFound)
	}
	return map[string]any{
		"success": true,
		"company": map[string]any{
			"name":          companyName,
			"contact_count": len(matched),
			"contacts":      matched,
		},
	}, nil
}

func (c *Client) findContact(id string) *Contact {
	for i := range c.contacts {
		if c.contacts[i].ID == id {
			return &c.contacts[i]
		}
	}
	return nil
}
