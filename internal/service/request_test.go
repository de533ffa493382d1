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

// recordingNotifier captures events for assertions
type recordingNotifier struct {
	kinds    []string
	messages []string
}

func (n *recordingNotifier) Notify(kind, message string) {
	n.kinds = append(n.kinds, kind)
	n.messages = append(n.messages, message)
}

// RequestServiceTestSuite defines the test suite for the request lifecycle
type RequestServiceTestSuite struct {
	suite.Suite
	store    *store.Store
	notifier *recordingNotifier
	svc      *service.RequestService
}

// SetupTest seeds a minimal fixture: one team, one technician, one machine.
func (suite *RequestServiceTestSuite) SetupTest() {
	suite.store = store.NewFromSnapshot(store.Snapshot{
		Teams: []models.Team{
			{ID: "t1", Name: "Mechanical", Color: "#ff0000"},
		},
		Members: []models.TeamMember{
			{ID: "m1", Name: "Priya Nair", Email: "priya@x.io", Role: models.MemberRoleTechnician, TeamID: "t1"},
		},
		Equipment: []models.Equipment{
			{ID: "e1", Name: "CNC Mill", SerialNumber: "SN-1", Category: "CNC Machine",
				Department: models.DepartmentProduction, Location: "Hall 1",
				Status: models.EquipmentOperational, MaintenanceTeamID: "t1", DefaultTechnicianID: "m1"},
		},
	})
	suite.notifier = &recordingNotifier{}
	suite.svc = service.NewRequestService(suite.store, validator.New(), suite.notifier)
}

func (suite *RequestServiceTestSuite) TestCreateDefaultsTeamAndAssigneeFromEquipment() {
	resp, err := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject:     "Spindle noise",
		EquipmentID: "e1",
		CreatedBy:   "Operator",
	})
	suite.NoError(err)
	suite.Equal(models.StageNew, resp.Stage)
	suite.Equal("t1", resp.TeamID)
	suite.Equal("m1", resp.AssignedToID)
	suite.Equal(models.RequestTypeCorrective, resp.Type)
	suite.Equal(models.PriorityMedium, resp.Priority)
	suite.False(resp.CreatedAt.IsZero())
	suite.Equal("CNC Mill", resp.EquipmentName)
}

func (suite *RequestServiceTestSuite) TestCreateWithEmptySubjectMutatesNothing() {
	before := len(suite.store.Requests())

	_, err := suite.svc.CreateRequest(&service.CreateRequestRequest{
		EquipmentID: "e1",
	})
	suite.Error(err)
	suite.Len(suite.store.Requests(), before)
}

func (suite *RequestServiceTestSuite) TestCreateWithUnknownEquipmentRejected() {
	_, err := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject:     "Ghost machine",
		EquipmentID: "e-missing",
	})
	suite.ErrorIs(err, apperrors.ErrEquipmentNotFound)
	suite.Empty(suite.store.Requests())
}

func (suite *RequestServiceTestSuite) TestMoveToRepairedStampsCompletedDate() {
	resp, err := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject: "Belt worn", EquipmentID: "e1",
	})
	suite.NoError(err)
	suite.Nil(resp.CompletedDate)

	moved, err := suite.svc.MoveStage(resp.ID, models.StageRepaired)
	suite.NoError(err)
	suite.Equal(models.StageRepaired, moved.Stage)
	suite.NotNil(moved.CompletedDate)

	// Equipment status is not touched by request transitions
	eq, _ := suite.store.EquipmentByID("e1")
	suite.Equal(models.EquipmentOperational, eq.Status)
}

func (suite *RequestServiceTestSuite) TestCompletedDateIsSticky() {
	resp, _ := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject: "Belt worn", EquipmentID: "e1",
	})

	repaired, _ := suite.svc.MoveStage(resp.ID, models.StageRepaired)
	firstStamp := *repaired.CompletedDate

	reopened, err := suite.svc.MoveStage(resp.ID, models.StageInProgress)
	suite.NoError(err)
	suite.NotNil(reopened.CompletedDate)
	suite.Equal(firstStamp, *reopened.CompletedDate)

	time.Sleep(5 * time.Millisecond)
	again, _ := suite.svc.MoveStage(resp.ID, models.StageRepaired)
	suite.Equal(firstStamp, *again.CompletedDate)
}

func (suite *RequestServiceTestSuite) TestMoveToScrapNotifiesWithEquipmentName() {
	resp, _ := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject: "Beyond repair", EquipmentID: "e1",
	})
	suite.notifier.kinds = nil

	_, err := suite.svc.MoveStage(resp.ID, models.StageScrap)
	suite.NoError(err)
	suite.Equal([]string{service.NotifyScrapFlagged}, suite.notifier.kinds)
	suite.Contains(suite.notifier.messages[0], "CNC Mill")

	// Scrapping the request does not scrap the equipment
	eq, _ := suite.store.EquipmentByID("e1")
	suite.Equal(models.EquipmentOperational, eq.Status)
}

func (suite *RequestServiceTestSuite) TestMoveToSameStageHasNoSideEffect() {
	resp, _ := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject: "Belt worn", EquipmentID: "e1",
	})
	suite.notifier.kinds = nil

	moved, err := suite.svc.MoveStage(resp.ID, models.StageNew)
	suite.NoError(err)
	suite.Equal(models.StageNew, moved.Stage)
	suite.Nil(moved.CompletedDate)
	suite.Empty(suite.notifier.kinds)
}

func (suite *RequestServiceTestSuite) TestMoveStageUnknownRequest() {
	_, err := suite.svc.MoveStage("req-missing", models.StageRepaired)
	suite.ErrorIs(err, apperrors.ErrRequestNotFound)
}

func (suite *RequestServiceTestSuite) TestMoveStageRejectsUnknownColumn() {
	resp, _ := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject: "Belt worn", EquipmentID: "e1",
	})

	_, err := suite.svc.MoveStage(resp.ID, models.RequestStage("limbo"))
	suite.ErrorIs(err, apperrors.ErrInvalidStage)
}

func (suite *RequestServiceTestSuite) TestAssignForcesInProgress() {
	suite.store.AddRequest(models.MaintenanceRequest{
		ID: "r1", Subject: "Unassigned job", EquipmentID: "e1", TeamID: "t1",
		Stage: models.StageNew, CreatedAt: time.Now(),
	})

	resp, err := suite.svc.Assign("r1", "m1")
	suite.NoError(err)
	suite.Equal("m1", resp.AssignedToID)
	suite.Equal(models.StageInProgress, resp.Stage)
	suite.Equal("Priya Nair", resp.AssigneeName)
}

func (suite *RequestServiceTestSuite) TestAssignUnknownMemberRejected() {
	suite.store.AddRequest(models.MaintenanceRequest{
		ID: "r1", Subject: "Unassigned job", EquipmentID: "e1", TeamID: "t1",
		Stage: models.StageNew, CreatedAt: time.Now(),
	})

	_, err := suite.svc.Assign("r1", "m-missing")
	suite.ErrorIs(err, apperrors.ErrMemberNotFound)

	r, _ := suite.store.RequestByID("r1")
	suite.Equal(models.StageNew, r.Stage)
	suite.Empty(r.AssignedToID)
}

func (suite *RequestServiceTestSuite) TestRecordDurationOnlyWhenRepaired() {
	resp, _ := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject: "Belt worn", EquipmentID: "e1",
	})

	_, err := suite.svc.RecordDuration(resp.ID, 30)
	suite.ErrorIs(err, apperrors.ErrNotRepaired)

	suite.svc.MoveStage(resp.ID, models.StageRepaired)

	recorded, err := suite.svc.RecordDuration(resp.ID, 30)
	suite.NoError(err)
	suite.Equal(30, recorded.Duration)
}

func (suite *RequestServiceTestSuite) TestRecordNonPositiveDurationIsNoOp() {
	resp, _ := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject: "Belt worn", EquipmentID: "e1",
	})
	suite.svc.MoveStage(resp.ID, models.StageRepaired)
	suite.svc.RecordDuration(resp.ID, 45)

	recorded, err := suite.svc.RecordDuration(resp.ID, 0)
	suite.NoError(err)
	suite.Equal(45, recorded.Duration)

	recorded, err = suite.svc.RecordDuration(resp.ID, -10)
	suite.NoError(err)
	suite.Equal(45, recorded.Duration)
}

func (suite *RequestServiceTestSuite) TestDanglingEquipmentResolvesToUnknown() {
	resp, _ := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject: "Belt worn", EquipmentID: "e1",
	})
	suite.store.DeleteEquipment("e1")

	got, err := suite.svc.GetRequestByID(resp.ID)
	suite.NoError(err)
	suite.Equal("Unknown Equipment", got.EquipmentName)
}

func (suite *RequestServiceTestSuite) TestBoardGroupsAndFilters() {
	suite.store.AddEquipment(models.Equipment{
		ID: "e2", Name: "Forklift", SerialNumber: "SN-2", Category: "Forklift",
		Department: models.DepartmentLogistics, Location: "Warehouse",
		Status: models.EquipmentOperational, MaintenanceTeamID: "t1",
	})
	suite.svc.CreateRequest(&service.CreateRequestRequest{Subject: "Spindle noise", EquipmentID: "e1"})
	suite.svc.CreateRequest(&service.CreateRequestRequest{Subject: "Fork bent", EquipmentID: "e2"})
	preventive, _ := suite.svc.CreateRequest(&service.CreateRequestRequest{
		Subject: "Monthly check", EquipmentID: "e1", Type: "preventive",
	})
	suite.svc.MoveStage(preventive.ID, models.StageInProgress)

	board := suite.svc.Board(service.BoardFilter{})
	suite.Len(board.New, 2)
	suite.Len(board.InProgress, 1)
	suite.Empty(board.Repaired)
	suite.Empty(board.Scrap)

	filtered := suite.svc.Board(service.BoardFilter{EquipmentID: "e2"})
	suite.Len(filtered.New, 1)
	suite.Equal("Fork bent", filtered.New[0].Subject)
	suite.Empty(filtered.InProgress)

	searched := suite.svc.Board(service.BoardFilter{Search: "forklift"})
	suite.Len(searched.New, 1)
	suite.Equal("Fork bent", searched.New[0].Subject)

	byType := suite.svc.Board(service.BoardFilter{Type: "preventive"})
	suite.Empty(byType.New)
	suite.Len(byType.InProgress, 1)
}

func TestRequestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RequestServiceTestSuite))
}
