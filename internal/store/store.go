package store

import (
	"sync"

	"gearguard-backend/internal/models"
)

// Store is the single source of truth for all four entity collections. It is
// an in-memory snapshot store: records live for the process lifetime and every
// read reflects the most recent write. A single mutex serializes access, which
// ports the original single-threaded mutation model to a multi-threaded host.
//
// Updates are lenient: mutating or deleting an unknown id is a no-op, reported
// through the returned boolean so callers can choose to surface it.
type Store struct {
	mu sync.RWMutex

	teams     []models.Team
	members   []models.TeamMember
	equipment []models.Equipment
	requests  []models.MaintenanceRequest

	seed Snapshot
}

// Snapshot is an initial or saved state of all four collections.
type Snapshot struct {
	Teams     []models.Team               `yaml:"teams"`
	Members   []models.TeamMember         `yaml:"team_members"`
	Equipment []models.Equipment          `yaml:"equipment"`
	Requests  []models.MaintenanceRequest `yaml:"requests"`
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// NewFromSnapshot creates a store pre-populated with the given snapshot.
func NewFromSnapshot(snap Snapshot) *Store {
	s := New()
	s.Seed(snap)
	return s
}

// Seed installs the snapshot as the store's contents and remembers it so that
// Reset can restore it later.
func (s *Store) Seed(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seed = snap
	s.installLocked(snap)
}

// Reset restores the last seeded snapshot, discarding every mutation since.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.installLocked(s.seed)
}

func (s *Store) installLocked(snap Snapshot) {
	s.teams = append([]models.Team(nil), snap.Teams...)
	s.members = append([]models.TeamMember(nil), snap.Members...)
	s.equipment = append([]models.Equipment(nil), snap.Equipment...)
	s.requests = append([]models.MaintenanceRequest(nil), snap.Requests...)
}

// AddTeam appends a team. The caller supplies a unique id.
func (s *Store) AddTeam(t models.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = append(s.teams, t)
}

// UpdateTeam applies mutate to the team with the given id under the store
// lock. Returns false when no team matched; the store is left unchanged.
func (s *Store) UpdateTeam(id string, mutate func(*models.Team)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.teams {
		if s.teams[i].ID == id {
			updated := s.teams[i]
			mutate(&updated)
			updated.ID = id // ids are immutable
			s.teams[i] = updated
			return true
		}
	}
	return false
}

// DeleteTeam removes the team with the given id. Idempotent; no cascade to
// members, equipment, or requests that reference the team.
func (s *Store) DeleteTeam(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.teams {
		if s.teams[i].ID == id {
			s.teams = append(s.teams[:i], s.teams[i+1:]...)
			return true
		}
	}
	return false
}

// AddMember appends a team member.
func (s *Store) AddMember(m models.TeamMember) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.members = append(s.members, m)
}

// UpdateMember applies mutate to the member with the given id.
func (s *Store) UpdateMember(id string, mutate func(*models.TeamMember)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			updated := s.members[i]
			mutate(&updated)
			updated.ID = id
			s.members[i] = updated
			return true
		}
	}
	return false
}

// DeleteMember removes the member with the given id.
func (s *Store) DeleteMember(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.members {
		if s.members[i].ID == id {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return true
		}
	}
	return false
}

// AddEquipment appends an equipment record.
func (s *Store) AddEquipment(e models.Equipment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.equipment = append(s.equipment, e)
}

// UpdateEquipment applies mutate to the equipment with the given id.
func (s *Store) UpdateEquipment(id string, mutate func(*models.Equipment)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.equipment {
		if s.equipment[i].ID == id {
			updated := s.equipment[i]
			mutate(&updated)
			updated.ID = id
			s.equipment[i] = updated
			return true
		}
	}
	return false
}

// DeleteEquipment removes the equipment with the given id.
func (s *Store) DeleteEquipment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.equipment {
		if s.equipment[i].ID == id {
			s.equipment = append(s.equipment[:i], s.equipment[i+1:]...)
			return true
		}
	}
	return false
}

// AddRequest appends a maintenance request.
func (s *Store) AddRequest(r models.MaintenanceRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, r)
}

// UpdateRequest applies mutate to the request with the given id. CreatedAt is
// immutable and survives any mutation.
func (s *Store) UpdateRequest(id string, mutate func(*models.MaintenanceRequest)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			updated := s.requests[i]
			mutate(&updated)
			updated.ID = id
			updated.CreatedAt = s.requests[i].CreatedAt
			s.requests[i] = updated
			return true
		}
	}
	return false
}

// DeleteRequest removes the request with the given id.
func (s *Store) DeleteRequest(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.requests {
		if s.requests[i].ID == id {
			s.requests = append(s.requests[:i], s.requests[i+1:]...)
			return true
		}
	}
	return false
}
