package service

import (
	"fmt"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/models"
	"gearguard-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// MemberService handles business logic for team members
type MemberService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewMemberService creates a new member service
func NewMemberService(st *store.Store, validator *validator.Validate) *MemberService {
	return &MemberService{
		store:     st,
		validator: validator,
	}
}

// CreateMemberRequest represents the data needed to create a team member
type CreateMemberRequest struct {
	Name   string `json:"name" validate:"required,max=200"`
	Email  string `json:"email" validate:"required,email,max=255"`
	Avatar string `json:"avatar"`
	Role   string `json:"role" validate:"required"` // technician or manager
	TeamID string `json:"team_id" validate:"required"`
}

// UpdateMemberRequest represents the data needed to update a team member
type UpdateMemberRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=200"`
	Email  *string `json:"email" validate:"omitempty,email,max=255"`
	Avatar *string `json:"avatar"`
	Role   *string `json:"role"`
	TeamID *string `json:"team_id"`
}

// CreateMember creates a new team member. The team must exist; email
// uniqueness is deliberately not checked.
func (s *MemberService) CreateMember(req *CreateMemberRequest) (*models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	role := models.MemberRole(req.Role)
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "must be technician or manager")
	}

	if _, ok := s.store.TeamByID(req.TeamID); !ok {
		return nil, apperrors.ErrTeamNotFound
	}

	member := models.TeamMember{
		ID:     store.NewID(store.PrefixMember),
		Name:   req.Name,
		Email:  req.Email,
		Avatar: req.Avatar,
		Role:   role,
		TeamID: req.TeamID,
	}
	s.store.AddMember(member)

	return &member, nil
}

// GetMemberByID retrieves a team member by ID
func (s *MemberService) GetMemberByID(id string) (*models.TeamMember, error) {
	member, ok := s.store.MemberByID(id)
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}
	return &member, nil
}

// ListMembers retrieves all team members, optionally filtered by team
func (s *MemberService) ListMembers(teamID string) []models.TeamMember {
	if teamID != "" {
		members := s.store.MembersForTeam(teamID)
		if members == nil {
			members = []models.TeamMember{}
		}
		return members
	}
	return s.store.Members()
}

// UpdateMember updates an existing team member. Only supplied fields change.
func (s *MemberService) UpdateMember(id string, req *UpdateMemberRequest) (*models.TeamMember, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.Role != nil && !models.MemberRole(*req.Role).IsValid() {
		return nil, apperrors.NewValidationError("role", "must be technician or manager")
	}

	ok := s.store.UpdateMember(id, func(member *models.TeamMember) {
		if req.Name != nil {
			member.Name = *req.Name
		}
		if req.Email != nil {
			member.Email = *req.Email
		}
		if req.Avatar != nil {
			member.Avatar = *req.Avatar
		}
		if req.Role != nil {
			member.Role = models.MemberRole(*req.Role)
		}
		if req.TeamID != nil {
			member.TeamID = *req.TeamID
		}
	})
	if !ok {
		return nil, apperrors.ErrMemberNotFound
	}

	member, _ := s.store.MemberByID(id)
	return &member, nil
}

// DeleteMember deletes a team member. Requests assigned to the member keep
// their dangling assignee id.
func (s *MemberService) DeleteMember(id string) error {
	if !s.store.DeleteMember(id) {
		return apperrors.ErrMemberNotFound
	}
	return nil
}
