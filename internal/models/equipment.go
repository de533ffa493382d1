package models

import "time"

// Equipment represents a tracked asset. Category is a free-form string; the
// recommended values live in EquipmentCategories but are not enforced.
type Equipment struct {
	ID                  string          `json:"id" yaml:"id"`
	Name                string          `json:"name" yaml:"name" validate:"required,max=200"`
	SerialNumber        string          `json:"serial_number" yaml:"serial_number" validate:"required,max=100"`
	Category            string          `json:"category" yaml:"category" validate:"required,max=100"`
	Department          Department      `json:"department" yaml:"department" validate:"required"`
	AssignedTo          string          `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	Location            string          `json:"location" yaml:"location" validate:"required,max=200"`
	PurchaseDate        time.Time       `json:"purchase_date" yaml:"purchase_date"`
	WarrantyExpiry      *time.Time      `json:"warranty_expiry,omitempty" yaml:"warranty_expiry,omitempty"`
	Status              EquipmentStatus `json:"status" yaml:"status"`
	MaintenanceTeamID   string          `json:"maintenance_team_id" yaml:"maintenance_team_id" validate:"required"`
	DefaultTechnicianID string          `json:"default_technician_id,omitempty" yaml:"default_technician_id,omitempty"`
	Notes               string          `json:"notes,omitempty" yaml:"notes,omitempty"`
	ImageURL            string          `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}
