package service

import (
	"time"

	"gearguard-backend/internal/models"
	"gearguard-backend/internal/store"
)

// CalendarService projects preventive maintenance requests onto a month grid.
// Grids are Sunday-aligned whole weeks covering the reference month, so a
// grid is always 35 or 42 days and includes the leading and trailing days of
// the adjacent months.
type CalendarService struct {
	store *store.Store
}

// NewCalendarService creates a new calendar service
func NewCalendarService(st *store.Store) *CalendarService {
	return &CalendarService{store: st}
}

// CalendarDay is one grid cell with the preventive requests scheduled on it.
type CalendarDay struct {
	Date         time.Time                   `json:"date"`
	InMonth      bool                        `json:"in_month"`
	Requests     []models.MaintenanceRequest `json:"requests"`
	RequestCount int                         `json:"request_count"`
}

// MonthView is the full grid for one reference month.
type MonthView struct {
	Month string        `json:"month"` // YYYY-MM
	Days  []CalendarDay `json:"days"`
}

// MonthGrid returns the ordered day sequence for the month containing ref.
// The length is always a multiple of 7 and every day of the month is present.
func (s *CalendarService) MonthGrid(ref time.Time) []time.Time {
	loc := ref.Location()
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, loc)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -int(first.Weekday()))
	end := last.AddDate(0, 0, 6-int(last.Weekday()))

	var days []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// RequestsOnDay returns the preventive requests scheduled on the given
// calendar day, compared by local date rather than timestamp.
func (s *CalendarService) RequestsOnDay(day time.Time) []models.MaintenanceRequest {
	var out []models.MaintenanceRequest
	for _, r := range s.store.Requests() {
		if r.Type != models.RequestTypePreventive || r.ScheduledDate == nil {
			continue
		}
		if sameDay(r.ScheduledDate.In(day.Location()), day) {
			out = append(out, r)
		}
	}
	return out
}

// Month builds the full view for the month containing ref.
func (s *CalendarService) Month(ref time.Time) *MonthView {
	view := &MonthView{Month: ref.Format("2006-01")}
	for _, day := range s.MonthGrid(ref) {
		requests := s.RequestsOnDay(day)
		if requests == nil {
			requests = []models.MaintenanceRequest{}
		}
		view.Days = append(view.Days, CalendarDay{
			Date:         day,
			InMonth:      day.Month() == ref.Month(),
			Requests:     requests,
			RequestCount: len(requests),
		})
	}
	return view
}

// PrevMonth returns the first day of the month before ref.
func (s *CalendarService) PrevMonth(ref time.Time) time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return first.AddDate(0, -1, 0)
}

// NextMonth returns the first day of the month after ref.
func (s *CalendarService) NextMonth(ref time.Time) time.Time {
	first := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
	return first.AddDate(0, 1, 0)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
