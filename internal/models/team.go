package models

// Team represents a maintenance team. Membership is not stored here; the
// authoritative link is TeamMember.TeamID and member lists are derived from it.
type Team struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name" validate:"required,max=100"`
	Description string `json:"description" yaml:"description" validate:"max=500"`
	Color       string `json:"color" yaml:"color"`
}

// TeamMember represents a technician or manager belonging to a team.
// Email uniqueness is not enforced; duplicates are a known gap.
type TeamMember struct {
	ID     string     `json:"id" yaml:"id"`
	Name   string     `json:"name" yaml:"name" validate:"required,max=200"`
	Email  string     `json:"email" yaml:"email" validate:"required,email,max=255"`
	Avatar string     `json:"avatar,omitempty" yaml:"avatar,omitempty"`
	Role   MemberRole `json:"role" yaml:"role" validate:"required"`
	TeamID string     `json:"team_id" yaml:"team_id" validate:"required"`
}
