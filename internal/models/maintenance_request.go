package models

import "time"

// MaintenanceRequest represents a repair job or a scheduled preventive task.
// CreatedAt is immutable once set. CompletedDate is stamped on the first
// transition into the repaired stage and is never cleared afterwards.
type MaintenanceRequest struct {
	ID            string          `json:"id" yaml:"id"`
	Subject       string          `json:"subject" yaml:"subject" validate:"required,max=200"`
	Description   string          `json:"description,omitempty" yaml:"description,omitempty"`
	Type          RequestType     `json:"type" yaml:"type" validate:"required"`
	Stage         RequestStage    `json:"stage" yaml:"stage"`
	EquipmentID   string          `json:"equipment_id" yaml:"equipment_id" validate:"required"`
	TeamID        string          `json:"team_id" yaml:"team_id"`
	AssignedToID  string          `json:"assigned_to_id,omitempty" yaml:"assigned_to_id,omitempty"`
	ScheduledDate *time.Time      `json:"scheduled_date,omitempty" yaml:"scheduled_date,omitempty"`
	CompletedDate *time.Time      `json:"completed_date,omitempty" yaml:"completed_date,omitempty"`
	Duration      int             `json:"duration,omitempty" yaml:"duration,omitempty"` // minutes
	Priority      RequestPriority `json:"priority" yaml:"priority"`
	CreatedAt     time.Time       `json:"created_at" yaml:"created_at"`
	CreatedBy     string          `json:"created_by" yaml:"created_by"`
}
