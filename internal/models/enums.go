package models

// MemberRole represents the role of a member inside a maintenance team
type MemberRole string

const (
	MemberRoleTechnician MemberRole = "technician"
	MemberRoleManager    MemberRole = "manager"
)

// EquipmentStatus represents the operational state of an asset
type EquipmentStatus string

const (
	EquipmentOperational      EquipmentStatus = "operational"
	EquipmentUnderMaintenance EquipmentStatus = "under_maintenance"
	EquipmentScrapped         EquipmentStatus = "scrapped"
)

// RequestType distinguishes reactive repairs from scheduled maintenance
type RequestType string

const (
	RequestTypeCorrective RequestType = "corrective"
	RequestTypePreventive RequestType = "preventive"
)

// RequestStage is the kanban-column state of a maintenance request.
// There is no enforced transition graph; any stage is reachable from any other.
type RequestStage string

const (
	StageNew        RequestStage = "new"
	StageInProgress RequestStage = "in_progress"
	StageRepaired   RequestStage = "repaired"
	StageScrap      RequestStage = "scrap"
)

// RequestPriority represents the urgency of a maintenance request
type RequestPriority string

const (
	PriorityLow      RequestPriority = "low"
	PriorityMedium   RequestPriority = "medium"
	PriorityHigh     RequestPriority = "high"
	PriorityCritical RequestPriority = "critical"
)

// Department represents the business unit an asset belongs to
type Department string

const (
	DepartmentProduction     Department = "Production"
	DepartmentIT             Department = "IT"
	DepartmentLogistics      Department = "Logistics"
	DepartmentAdministration Department = "Administration"
	DepartmentQualityControl Department = "Quality Control"
	DepartmentResearch       Department = "Research & Development"
)

// Departments is the fixed list offered to clients.
var Departments = []Department{
	DepartmentProduction,
	DepartmentIT,
	DepartmentLogistics,
	DepartmentAdministration,
	DepartmentQualityControl,
	DepartmentResearch,
}

// EquipmentCategories is the recommended category list. Category stays a free-form
// string on the record; this list is advisory only and is not enforced on create.
var EquipmentCategories = []string{
	"CNC Machine",
	"Computer",
	"Vehicle",
	"HVAC System",
	"Electrical Panel",
	"Conveyor Belt",
	"Forklift",
	"Printer",
	"Server",
	"Generator",
}

// IsValid checks whether the stage is one of the known kanban columns
func (s RequestStage) IsValid() bool {
	switch s {
	case StageNew, StageInProgress, StageRepaired, StageScrap:
		return true
	}
	return false
}

// IsOpen reports whether a request in this stage still needs work
func (s RequestStage) IsOpen() bool {
	return s == StageNew || s == StageInProgress
}

// IsValid checks whether the priority is one of the known levels
func (p RequestPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// IsValid checks whether the type is corrective or preventive
func (t RequestType) IsValid() bool {
	return t == RequestTypeCorrective || t == RequestTypePreventive
}

// IsValid checks whether the status is one of the known equipment states
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentOperational, EquipmentUnderMaintenance, EquipmentScrapped:
		return true
	}
	return false
}

// IsValid checks whether the role is technician or manager
func (r MemberRole) IsValid() bool {
	return r == MemberRoleTechnician || r == MemberRoleManager
}
