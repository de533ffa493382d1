package store

import "gearguard-backend/internal/models"

// Read-side lookups. Every call recomputes from the current collections; no
// caching, O(n) scans. Returned slices and records are copies, so callers can
// never alias store state.

// Teams returns all teams in insertion order.
func (s *Store) Teams() []models.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Team(nil), s.teams...)
}

// Members returns all team members in insertion order.
func (s *Store) Members() []models.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TeamMember(nil), s.members...)
}

// Equipment returns all equipment in insertion order.
func (s *Store) Equipment() []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Equipment(nil), s.equipment...)
}

// Requests returns all maintenance requests in insertion order.
func (s *Store) Requests() []models.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.MaintenanceRequest(nil), s.requests...)
}

// TeamByID looks up a team by id.
func (s *Store) TeamByID(id string) (models.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teams {
		if t.ID == id {
			return t, true
		}
	}
	return models.Team{}, false
}

// MemberByID looks up a team member by id.
func (s *Store) MemberByID(id string) (models.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return models.TeamMember{}, false
}

// EquipmentByID looks up an equipment record by id.
func (s *Store) EquipmentByID(id string) (models.Equipment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.equipment {
		if e.ID == id {
			return e, true
		}
	}
	return models.Equipment{}, false
}

// RequestByID looks up a maintenance request by id.
func (s *Store) RequestByID(id string) (models.MaintenanceRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.requests {
		if r.ID == id {
			return r, true
		}
	}
	return models.MaintenanceRequest{}, false
}

// RequestsForEquipment returns every request for the given equipment id in
// insertion order, regardless of stage.
func (s *Store) RequestsForEquipment(equipmentID string) []models.MaintenanceRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.MaintenanceRequest
	for _, r := range s.requests {
		if r.EquipmentID == equipmentID {
			out = append(out, r)
		}
	}
	return out
}

// MembersForTeam returns the members whose TeamID matches, in insertion order.
// TeamMember.TeamID is the single source of truth for membership.
func (s *Store) MembersForTeam(teamID string) []models.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.TeamMember
	for _, m := range s.members {
		if m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out
}

// EquipmentForTeam returns the equipment maintained by the given team.
func (s *Store) EquipmentForTeam(teamID string) []models.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Equipment
	for _, e := range s.equipment {
		if e.MaintenanceTeamID == teamID {
			out = append(out, e)
		}
	}
	return out
}
