package service

import (
	"gearguard-backend/internal/models"
	"gearguard-backend/internal/store"
)

// DashboardService aggregates the headline numbers shown on the dashboard.
type DashboardService struct {
	store *store.Store
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(st *store.Store) *DashboardService {
	return &DashboardService{store: st}
}

// DashboardStats holds the aggregate counters for the overview page.
type DashboardStats struct {
	EquipmentTotal       int     `json:"equipment_total"`
	OpenRequests         int     `json:"open_requests"`
	CriticalOpenRequests int     `json:"critical_open_requests"`
	TeamMembers          int     `json:"team_members"`
	OperationalShare     float64 `json:"operational_share"` // 0..1
}

// Stats recomputes the counters from the current store snapshot.
func (s *DashboardService) Stats() *DashboardStats {
	stats := &DashboardStats{}

	equipment := s.store.Equipment()
	stats.EquipmentTotal = len(equipment)
	operational := 0
	for _, eq := range equipment {
		if eq.Status == models.EquipmentOperational {
			operational++
		}
	}
	if stats.EquipmentTotal > 0 {
		stats.OperationalShare = float64(operational) / float64(stats.EquipmentTotal)
	}

	for _, r := range s.store.Requests() {
		if r.Stage.IsOpen() {
			stats.OpenRequests++
			if r.Priority == models.PriorityCritical {
				stats.CriticalOpenRequests++
			}
		}
	}

	stats.TeamMembers = len(s.store.Members())
	return stats
}
