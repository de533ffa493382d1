package service

import (
	"fmt"
	"time"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/models"
	"gearguard-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// EquipmentService handles business logic for equipment assets
type EquipmentService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewEquipmentService creates a new equipment service
func NewEquipmentService(st *store.Store, validator *validator.Validate) *EquipmentService {
	return &EquipmentService{
		store:     st,
		validator: validator,
	}
}

// CreateEquipmentRequest represents the data needed to create an equipment record
type CreateEquipmentRequest struct {
	Name                string     `json:"name" validate:"required,max=200"`
	SerialNumber        string     `json:"serial_number" validate:"required,max=100"`
	Category            string     `json:"category" validate:"required,max=100"`
	Department          string     `json:"department" validate:"required"`
	AssignedTo          string     `json:"assigned_to"`
	Location            string     `json:"location" validate:"required,max=200"`
	PurchaseDate        time.Time  `json:"purchase_date" validate:"required"`
	WarrantyExpiry      *time.Time `json:"warranty_expiry"`
	MaintenanceTeamID   string     `json:"maintenance_team_id" validate:"required"`
	DefaultTechnicianID string     `json:"default_technician_id"`
	Notes               string     `json:"notes"`
	ImageURL            string     `json:"image_url"`
}

// UpdateEquipmentRequest represents the data needed to update an equipment record
type UpdateEquipmentRequest struct {
	Name                *string    `json:"name" validate:"omitempty,max=200"`
	SerialNumber        *string    `json:"serial_number" validate:"omitempty,max=100"`
	Category            *string    `json:"category" validate:"omitempty,max=100"`
	Department          *string    `json:"department"`
	AssignedTo          *string    `json:"assigned_to"`
	Location            *string    `json:"location" validate:"omitempty,max=200"`
	PurchaseDate        *time.Time `json:"purchase_date"`
	WarrantyExpiry      *time.Time `json:"warranty_expiry"`
	Status              *string    `json:"status"`
	MaintenanceTeamID   *string    `json:"maintenance_team_id"`
	DefaultTechnicianID *string    `json:"default_technician_id"`
	Notes               *string    `json:"notes"`
	ImageURL            *string    `json:"image_url"`
}

// EquipmentResponse represents an equipment record with resolved display
// fields. A dangling team id resolves to "Unknown Team" rather than an error.
type EquipmentResponse struct {
	models.Equipment
	TeamName         string `json:"team_name"`
	OpenRequestCount int    `json:"open_request_count"`
}

// CreateEquipment creates a new equipment record with status operational
func (s *EquipmentService) CreateEquipment(req *CreateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, ok := s.store.TeamByID(req.MaintenanceTeamID); !ok {
		return nil, apperrors.ErrTeamNotFound
	}

	eq := models.Equipment{
		ID:                  store.NewID(store.PrefixEquipment),
		Name:                req.Name,
		SerialNumber:        req.SerialNumber,
		Category:            req.Category,
		Department:          models.Department(req.Department),
		AssignedTo:          req.AssignedTo,
		Location:            req.Location,
		PurchaseDate:        req.PurchaseDate,
		WarrantyExpiry:      req.WarrantyExpiry,
		Status:              models.EquipmentOperational,
		MaintenanceTeamID:   req.MaintenanceTeamID,
		DefaultTechnicianID: req.DefaultTechnicianID,
		Notes:               req.Notes,
		ImageURL:            req.ImageURL,
	}
	s.store.AddEquipment(eq)

	return s.convertToResponse(eq), nil
}

// GetEquipmentByID retrieves an equipment record by ID
func (s *EquipmentService) GetEquipmentByID(id string) (*EquipmentResponse, error) {
	eq, ok := s.store.EquipmentByID(id)
	if !ok {
		return nil, apperrors.ErrEquipmentNotFound
	}
	return s.convertToResponse(eq), nil
}

// ListEquipment retrieves all equipment, optionally filtered by team
func (s *EquipmentService) ListEquipment(teamID string) []EquipmentResponse {
	var items []models.Equipment
	if teamID != "" {
		items = s.store.EquipmentForTeam(teamID)
	} else {
		items = s.store.Equipment()
	}

	responses := make([]EquipmentResponse, len(items))
	for i, eq := range items {
		responses[i] = *s.convertToResponse(eq)
	}
	return responses
}

// UpdateEquipment updates an existing equipment record. Only supplied fields change.
func (s *EquipmentService) UpdateEquipment(id string, req *UpdateEquipmentRequest) (*EquipmentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Status != nil && !models.EquipmentStatus(*req.Status).IsValid() {
		return nil, apperrors.ErrInvalidStatus
	}

	ok := s.store.UpdateEquipment(id, func(eq *models.Equipment) {
		if req.Name != nil {
			eq.Name = *req.Name
		}
		if req.SerialNumber != nil {
			eq.SerialNumber = *req.SerialNumber
		}
		if req.Category != nil {
			eq.Category = *req.Category
		}
		if req.Department != nil {
			eq.Department = models.Department(*req.Department)
		}
		if req.AssignedTo != nil {
			eq.AssignedTo = *req.AssignedTo
		}
		if req.Location != nil {
			eq.Location = *req.Location
		}
		if req.PurchaseDate != nil {
			eq.PurchaseDate = *req.PurchaseDate
		}
		if req.WarrantyExpiry != nil {
			eq.WarrantyExpiry = req.WarrantyExpiry
		}
		if req.Status != nil {
			eq.Status = models.EquipmentStatus(*req.Status)
		}
		if req.MaintenanceTeamID != nil {
			eq.MaintenanceTeamID = *req.MaintenanceTeamID
		}
		if req.DefaultTechnicianID != nil {
			eq.DefaultTechnicianID = *req.DefaultTechnicianID
		}
		if req.Notes != nil {
			eq.Notes = *req.Notes
		}
		if req.ImageURL != nil {
			eq.ImageURL = *req.ImageURL
		}
	})
	if !ok {
		return nil, apperrors.ErrEquipmentNotFound
	}

	eq, _ := s.store.EquipmentByID(id)
	return s.convertToResponse(eq), nil
}

// MarkScrapped sets the equipment status to scrapped. Scrapping is terminal:
// this is the explicit, manual action triggered from the detail view, and it
// is independent of requests being dragged into the scrap column.
func (s *EquipmentService) MarkScrapped(id string) (*EquipmentResponse, error) {
	ok := s.store.UpdateEquipment(id, func(eq *models.Equipment) {
		eq.Status = models.EquipmentScrapped
	})
	if !ok {
		return nil, apperrors.ErrEquipmentNotFound
	}

	eq, _ := s.store.EquipmentByID(id)
	return s.convertToResponse(eq), nil
}

// DeleteEquipment deletes an equipment record. Requests for it keep their
// dangling equipment id.
func (s *EquipmentService) DeleteEquipment(id string) error {
	if !s.store.DeleteEquipment(id) {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

func (s *EquipmentService) convertToResponse(eq models.Equipment) *EquipmentResponse {
	teamName := "Unknown Team"
	if team, ok := s.store.TeamByID(eq.MaintenanceTeamID); ok {
		teamName = team.Name
	}

	open := 0
	for _, r := range s.store.RequestsForEquipment(eq.ID) {
		if r.Stage.IsOpen() {
			open++
		}
	}

	return &EquipmentResponse{
		Equipment:        eq,
		TeamName:         teamName,
		OpenRequestCount: open,
	}
}
