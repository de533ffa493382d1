package service

import (
	"fmt"
	"strings"
	"time"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/logger"
	"gearguard-backend/internal/models"
	"gearguard-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// RequestService handles business logic for maintenance requests, including
// the kanban stage transition rules.
type RequestService struct {
	store     *store.Store
	validator *validator.Validate
	notifier  Notifier
	now       func() time.Time
}

// NewRequestService creates a new request service
func NewRequestService(st *store.Store, validator *validator.Validate, notifier Notifier) *RequestService {
	return &RequestService{
		store:     st,
		validator: validator,
		notifier:  notifier,
		now:       time.Now,
	}
}

// CreateRequestRequest represents the data needed to create a maintenance request
type CreateRequestRequest struct {
	Subject       string     `json:"subject" validate:"required,max=200"`
	Description   string     `json:"description"`
	Type          string     `json:"type"` // corrective (default) or preventive
	EquipmentID   string     `json:"equipment_id" validate:"required"`
	TeamID        string     `json:"team_id"`
	AssignedToID  string     `json:"assigned_to_id"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Priority      string     `json:"priority"`
	CreatedBy     string     `json:"created_by"`
}

// UpdateRequestRequest represents a partial update to a maintenance request.
// Stage changes should go through MoveStage so transition side effects apply.
type UpdateRequestRequest struct {
	Subject       *string    `json:"subject" validate:"omitempty,max=200"`
	Description   *string    `json:"description"`
	Type          *string    `json:"type"`
	TeamID        *string    `json:"team_id"`
	AssignedToID  *string    `json:"assigned_to_id"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	Priority      *string    `json:"priority"`
}

// RequestResponse represents a maintenance request with resolved display
// names. Dangling references resolve to "Unknown ..." instead of failing.
type RequestResponse struct {
	models.MaintenanceRequest
	EquipmentName string `json:"equipment_name"`
	TeamName      string `json:"team_name"`
	AssigneeName  string `json:"assignee_name,omitempty"`
}

// CreateRequest creates a maintenance request in the new stage. The team
// defaults to the equipment's maintenance team and the assignee to its default
// technician. Validation happens before any store mutation.
func (s *RequestService) CreateRequest(req *CreateRequestRequest) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	reqType := models.RequestTypeCorrective
	if req.Type != "" {
		reqType = models.RequestType(req.Type)
		if !reqType.IsValid() {
			return nil, apperrors.ErrInvalidRequestType
		}
	}

	priority := models.PriorityMedium
	if req.Priority != "" {
		priority = models.RequestPriority(req.Priority)
		if !priority.IsValid() {
			return nil, apperrors.ErrInvalidPriority
		}
	}

	eq, ok := s.store.EquipmentByID(req.EquipmentID)
	if !ok {
		return nil, apperrors.ErrEquipmentNotFound
	}

	teamID := req.TeamID
	if teamID == "" {
		teamID = eq.MaintenanceTeamID
	}
	if teamID == "" {
		return nil, apperrors.NewValidationError("team_id", "required when the equipment has no maintenance team")
	}

	assignee := req.AssignedToID
	if assignee == "" {
		assignee = eq.DefaultTechnicianID
	}

	record := models.MaintenanceRequest{
		ID:            store.NewID(store.PrefixRequest),
		Subject:       req.Subject,
		Description:   req.Description,
		Type:          reqType,
		Stage:         models.StageNew,
		EquipmentID:   req.EquipmentID,
		TeamID:        teamID,
		AssignedToID:  assignee,
		ScheduledDate: req.ScheduledDate,
		Priority:      priority,
		CreatedAt:     s.now(),
		CreatedBy:     req.CreatedBy,
	}
	s.store.AddRequest(record)
	s.notifier.Notify(NotifyCreated, fmt.Sprintf("maintenance request created for %s", eq.Name))

	return s.convertToResponse(record), nil
}

// GetRequestByID retrieves a maintenance request by ID
func (s *RequestService) GetRequestByID(id string) (*RequestResponse, error) {
	r, ok := s.store.RequestByID(id)
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return s.convertToResponse(r), nil
}

// ListRequests retrieves all requests, optionally filtered by equipment
func (s *RequestService) ListRequests(equipmentID string) []RequestResponse {
	var items []models.MaintenanceRequest
	if equipmentID != "" {
		items = s.store.RequestsForEquipment(equipmentID)
	} else {
		items = s.store.Requests()
	}

	responses := make([]RequestResponse, len(items))
	for i, r := range items {
		responses[i] = *s.convertToResponse(r)
	}
	return responses
}

// UpdateRequest applies a partial update. Stage is untouched here.
func (s *RequestService) UpdateRequest(id string, req *UpdateRequestRequest) (*RequestResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.Type != nil && !models.RequestType(*req.Type).IsValid() {
		return nil, apperrors.ErrInvalidRequestType
	}
	if req.Priority != nil && !models.RequestPriority(*req.Priority).IsValid() {
		return nil, apperrors.ErrInvalidPriority
	}

	ok := s.store.UpdateRequest(id, func(r *models.MaintenanceRequest) {
		if req.Subject != nil {
			r.Subject = *req.Subject
		}
		if req.Description != nil {
			r.Description = *req.Description
		}
		if req.Type != nil {
			r.Type = models.RequestType(*req.Type)
		}
		if req.TeamID != nil {
			r.TeamID = *req.TeamID
		}
		if req.AssignedToID != nil {
			r.AssignedToID = *req.AssignedToID
		}
		if req.ScheduledDate != nil {
			r.ScheduledDate = req.ScheduledDate
		}
		if req.Priority != nil {
			r.Priority = models.RequestPriority(*req.Priority)
		}
	})
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}

	r, _ := s.store.RequestByID(id)
	return s.convertToResponse(r), nil
}

// MoveStage moves a request to another kanban column and applies the
// transition side effects. There is no enforced transition graph; moving to
// the current stage is a no-op. Entering repaired stamps CompletedDate once
// and never clears it. Entering scrap raises a notification naming the
// equipment but does not touch the equipment's own status.
func (s *RequestService) MoveStage(id string, stage models.RequestStage) (*RequestResponse, error) {
	if !stage.IsValid() {
		return nil, apperrors.ErrInvalidStage
	}

	current, ok := s.store.RequestByID(id)
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}

	if current.Stage != stage {
		completedAt := s.now()
		s.store.UpdateRequest(id, func(r *models.MaintenanceRequest) {
			r.Stage = stage
			if stage == models.StageRepaired && r.CompletedDate == nil {
				r.CompletedDate = &completedAt
			}
		})

		logger.New().WithEntity("request", id).Infof("stage moved from %s to %s", current.Stage, stage)

		if stage == models.StageScrap {
			name := "Unknown Equipment"
			if eq, ok := s.store.EquipmentByID(current.EquipmentID); ok {
				name = eq.Name
			}
			s.notifier.Notify(NotifyScrapFlagged, fmt.Sprintf("equipment %q flagged for scrap evaluation", name))
		}
	}

	r, _ := s.store.RequestByID(id)
	return s.convertToResponse(r), nil
}

// Assign assigns a technician to a request and forces the stage to
// in_progress in the same update: assigning work starts it.
func (s *RequestService) Assign(id, memberID string) (*RequestResponse, error) {
	if _, ok := s.store.MemberByID(memberID); !ok {
		return nil, apperrors.ErrMemberNotFound
	}

	ok := s.store.UpdateRequest(id, func(r *models.MaintenanceRequest) {
		r.AssignedToID = memberID
		r.Stage = models.StageInProgress
	})
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}

	r, _ := s.store.RequestByID(id)
	return s.convertToResponse(r), nil
}

// RecordDuration records the time spent on a repaired request, in minutes.
// Non-positive values are a silent no-op.
func (s *RequestService) RecordDuration(id string, minutes int) (*RequestResponse, error) {
	current, ok := s.store.RequestByID(id)
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	if current.Stage != models.StageRepaired {
		return nil, apperrors.ErrNotRepaired
	}

	if minutes > 0 {
		s.store.UpdateRequest(id, func(r *models.MaintenanceRequest) {
			r.Duration = minutes
		})
	}

	r, _ := s.store.RequestByID(id)
	return s.convertToResponse(r), nil
}

// DeleteRequest deletes a maintenance request
func (s *RequestService) DeleteRequest(id string) error {
	if !s.store.DeleteRequest(id) {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

// BoardFilter narrows the kanban board projection. All fields are optional;
// EquipmentID carries the pre-selection hint from the navigation layer.
type BoardFilter struct {
	Search      string
	Type        string
	TeamID      string
	EquipmentID string
}

// BoardResponse groups the filtered requests by kanban column.
type BoardResponse struct {
	New        []RequestResponse `json:"new"`
	InProgress []RequestResponse `json:"in_progress"`
	Repaired   []RequestResponse `json:"repaired"`
	Scrap      []RequestResponse `json:"scrap"`
}

// Board projects the current request collection onto the kanban board. Search
// matches the subject or the resolved equipment name, case-insensitively.
func (s *RequestService) Board(filter BoardFilter) *BoardResponse {
	board := &BoardResponse{
		New:        []RequestResponse{},
		InProgress: []RequestResponse{},
		Repaired:   []RequestResponse{},
		Scrap:      []RequestResponse{},
	}

	search := strings.ToLower(filter.Search)
	for _, r := range s.store.Requests() {
		if filter.Type != "" && string(r.Type) != filter.Type {
			continue
		}
		if filter.TeamID != "" && r.TeamID != filter.TeamID {
			continue
		}
		if filter.EquipmentID != "" && r.EquipmentID != filter.EquipmentID {
			continue
		}

		resp := s.convertToResponse(r)
		if search != "" &&
			!strings.Contains(strings.ToLower(resp.Subject), search) &&
			!strings.Contains(strings.ToLower(resp.EquipmentName), search) {
			continue
		}

		switch r.Stage {
		case models.StageNew:
			board.New = append(board.New, *resp)
		case models.StageInProgress:
			board.InProgress = append(board.InProgress, *resp)
		case models.StageRepaired:
			board.Repaired = append(board.Repaired, *resp)
		case models.StageScrap:
			board.Scrap = append(board.Scrap, *resp)
		}
	}

	return board
}

func (s *RequestService) convertToResponse(r models.MaintenanceRequest) *RequestResponse {
	equipmentName := "Unknown Equipment"
	if eq, ok := s.store.EquipmentByID(r.EquipmentID); ok {
		equipmentName = eq.Name
	}

	teamName := "Unknown Team"
	if team, ok := s.store.TeamByID(r.TeamID); ok {
		teamName = team.Name
	}

	assigneeName := ""
	if r.AssignedToID != "" {
		assigneeName = "Unknown Member"
		if m, ok := s.store.MemberByID(r.AssignedToID); ok {
			assigneeName = m.Name
		}
	}

	return &RequestResponse{
		MaintenanceRequest: r,
		EquipmentName:      equipmentName,
		TeamName:           teamName,
		AssigneeName:       assigneeName,
	}
}
