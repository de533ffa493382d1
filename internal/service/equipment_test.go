package service_test

import (
	"testing"
	"time"

	apperrors "gearguard-backend/internal/errors"
	"gearguard-backend/internal/models"
	"gearguard-backend/internal/service"
	"gearguard-backend/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

// EquipmentServiceTestSuite defines the test suite for equipment assets
type EquipmentServiceTestSuite struct {
	suite.Suite
	store *store.Store
	svc   *service.EquipmentService
}

// SetupTest sets up the test suite with one team on file
func (suite *EquipmentServiceTestSuite) SetupTest() {
	suite.store = store.NewFromSnapshot(store.Snapshot{
		Teams: []models.Team{{ID: "t1", Name: "Mechanical", Color: "#ff0000"}},
	})
	suite.svc = service.NewEquipmentService(suite.store, validator.New())
}

func (suite *EquipmentServiceTestSuite) createEquipment() *service.EquipmentResponse {
	eq, err := suite.svc.CreateEquipment(&service.CreateEquipmentRequest{
		Name:              "CNC Mill",
		SerialNumber:      "SN-1",
		Category:          "CNC Machine",
		Department:        "Production",
		Location:          "Hall 1",
		PurchaseDate:      time.Date(2021, 6, 14, 0, 0, 0, 0, time.UTC),
		MaintenanceTeamID: "t1",
	})
	suite.Require().NoError(err)
	return eq
}

func (suite *EquipmentServiceTestSuite) TestCreateStartsOperational() {
	eq := suite.createEquipment()
	suite.Equal(models.EquipmentOperational, eq.Status)
	suite.Equal("Mechanical", eq.TeamName)
	suite.Zero(eq.OpenRequestCount)
}

func (suite *EquipmentServiceTestSuite) TestCreateRequiresExistingTeam() {
	_, err := suite.svc.CreateEquipment(&service.CreateEquipmentRequest{
		Name:              "Orphan",
		SerialNumber:      "SN-9",
		Category:          "Other",
		Department:        "IT",
		Location:          "Nowhere",
		PurchaseDate:      time.Now(),
		MaintenanceTeamID: "team-missing",
	})
	suite.ErrorIs(err, apperrors.ErrTeamNotFound)
	suite.Empty(suite.store.Equipment())
}

func (suite *EquipmentServiceTestSuite) TestMarkScrappedIsExplicitAndTerminal() {
	eq := suite.createEquipment()

	scrapped, err := suite.svc.MarkScrapped(eq.ID)
	suite.NoError(err)
	suite.Equal(models.EquipmentScrapped, scrapped.Status)
}

func (suite *EquipmentServiceTestSuite) TestOpenRequestCountIgnoresClosedStages() {
	eq := suite.createEquipment()

	suite.store.AddRequest(models.MaintenanceRequest{ID: "r1", EquipmentID: eq.ID, Stage: models.StageNew})
	suite.store.AddRequest(models.MaintenanceRequest{ID: "r2", EquipmentID: eq.ID, Stage: models.StageInProgress})
	suite.store.AddRequest(models.MaintenanceRequest{ID: "r3", EquipmentID: eq.ID, Stage: models.StageRepaired})
	suite.store.AddRequest(models.MaintenanceRequest{ID: "r4", EquipmentID: eq.ID, Stage: models.StageScrap})

	got, err := suite.svc.GetEquipmentByID(eq.ID)
	suite.NoError(err)
	suite.Equal(2, got.OpenRequestCount)
}

func (suite *EquipmentServiceTestSuite) TestDanglingTeamResolvesToUnknown() {
	eq := suite.createEquipment()
	suite.store.DeleteTeam("t1")

	got, err := suite.svc.GetEquipmentByID(eq.ID)
	suite.NoError(err)
	suite.Equal("Unknown Team", got.TeamName)
}

func (suite *EquipmentServiceTestSuite) TestUpdateRejectsUnknownStatus() {
	eq := suite.createEquipment()

	bad := "exploded"
	_, err := suite.svc.UpdateEquipment(eq.ID, &service.UpdateEquipmentRequest{Status: &bad})
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)
}

func TestEquipmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EquipmentServiceTestSuite))
}

func TestDashboardStats(t *testing.T) {
	st := store.NewFromSnapshot(store.Snapshot{
		Members: []models.TeamMember{
			{ID: "m1", Name: "A", Email: "a@x.io", Role: models.MemberRoleTechnician, TeamID: "t1"},
			{ID: "m2", Name: "B", Email: "b@x.io", Role: models.MemberRoleManager, TeamID: "t1"},
		},
		Equipment: []models.Equipment{
			{ID: "e1", Status: models.EquipmentOperational},
			{ID: "e2", Status: models.EquipmentUnderMaintenance},
			{ID: "e3", Status: models.EquipmentOperational},
			{ID: "e4", Status: models.EquipmentScrapped},
		},
		Requests: []models.MaintenanceRequest{
			{ID: "r1", Stage: models.StageNew, Priority: models.PriorityCritical},
			{ID: "r2", Stage: models.StageInProgress, Priority: models.PriorityLow},
			{ID: "r3", Stage: models.StageRepaired, Priority: models.PriorityCritical},
			{ID: "r4", Stage: models.StageScrap, Priority: models.PriorityHigh},
		},
	})

	stats := service.NewDashboardService(st).Stats()

	if stats.EquipmentTotal != 4 {
		t.Errorf("EquipmentTotal = %d, want 4", stats.EquipmentTotal)
	}
	if stats.OpenRequests != 2 {
		t.Errorf("OpenRequests = %d, want 2", stats.OpenRequests)
	}
	if stats.CriticalOpenRequests != 1 {
		t.Errorf("CriticalOpenRequests = %d, want 1", stats.CriticalOpenRequests)
	}
	if stats.TeamMembers != 2 {
		t.Errorf("TeamMembers = %d, want 2", stats.TeamMembers)
	}
	if stats.OperationalShare != 0.5 {
		t.Errorf("OperationalShare = %f, want 0.5", stats.OperationalShare)
	}
}
