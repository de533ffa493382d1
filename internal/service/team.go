package service

import (
	"fmt"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/models"
	"gearguard-backend/internal/store"

	"github.com/go-playground/validator/v10"
)

// TeamService handles business logic for maintenance teams
type TeamService struct {
	store     *store.Store
	validator *validator.Validate
}

// NewTeamService creates a new team service
func NewTeamService(st *store.Store, validator *validator.Validate) *TeamService {
	return &TeamService{
		store:     st,
		validator: validator,
	}
}

// CreateTeamRequest represents the data needed to create a team
type CreateTeamRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	Color       string `json:"color" validate:"max=20"`
}

// UpdateTeamRequest represents the data needed to update a team
type UpdateTeamRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Color       *string `json:"color" validate:"omitempty,max=20"`
}

// TeamResponse represents the response data for a team, with the membership
// list derived from TeamMember.TeamID.
type TeamResponse struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Description string              `json:"description"`
	Color       string              `json:"color"`
	Members     []models.TeamMember `json:"members"`
}

// CreateTeam creates a new team
func (s *TeamService) CreateTeam(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	team := models.Team{
		ID:          store.NewID(store.PrefixTeam),
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	}
	s.store.AddTeam(team)

	return s.convertToResponse(team), nil
}

// GetTeamByID retrieves a team by ID
func (s *TeamService) GetTeamByID(id string) (*TeamResponse, error) {
	team, ok := s.store.TeamByID(id)
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	return s.convertToResponse(team), nil
}

// ListTeams retrieves all teams in insertion order
func (s *TeamService) ListTeams() []TeamResponse {
	teams := s.store.Teams()
	responses := make([]TeamResponse, len(teams))
	for i, team := range teams {
		responses[i] = *s.convertToResponse(team)
	}
	return responses
}

// UpdateTeam updates an existing team. Only supplied fields change.
func (s *TeamService) UpdateTeam(id string, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	ok := s.store.UpdateTeam(id, func(team *models.Team) {
		if req.Name != nil {
			team.Name = *req.Name
		}
		if req.Description != nil {
			team.Description = *req.Description
		}
		if req.Color != nil {
			team.Color = *req.Color
		}
	})
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}

	team, _ := s.store.TeamByID(id)
	return s.convertToResponse(team), nil
}

// DeleteTeam deletes a team. Members, equipment, and requests referencing the
// team are left in place with dangling ids; resolvers report them as absent.
func (s *TeamService) DeleteTeam(id string) error {
	if !s.store.DeleteTeam(id) {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

func (s *TeamService) convertToResponse(team models.Team) *TeamResponse {
	members := s.store.MembersForTeam(team.ID)
	if members == nil {
		members = []models.TeamMember{}
	}
	return &TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		Color:       team.Color,
		Members:     members,
	}
}
