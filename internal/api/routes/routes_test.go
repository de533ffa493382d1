package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "gearguard-backend/docs" // This is needed for swag
	"gearguard-backend/internal/api/routes"
	"gearguard-backend/internal/auth"
	"gearguard-backend/internal/config"
	"gearguard-backend/internal/models"
	"gearguard-backend/internal/service"
	"gearguard-backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

// RoutesTestSuite exercises the API end to end: real router, real services,
// in-memory store seeded with a small fixture.
type RoutesTestSuite struct {
	suite.Suite
	store  *store.Store
	router *gin.Engine
}

func (suite *RoutesTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest rebuilds the router on a fresh fixture store
func (suite *RoutesTestSuite) SetupTest() {
	scheduled := time.Date(2025, time.August, 12, 9, 0, 0, 0, time.UTC)
	snap := store.Snapshot{
		Teams: []models.Team{
			{ID: "team-1", Name: "Mechanics", Description: "Shop floor crew", Color: "#3b82f6"},
		},
		Members: []models.TeamMember{
			{ID: "tm-1", Name: "Jordan Fixit", Email: "jordan@gearguard.io", Role: models.MemberRoleTechnician, TeamID: "team-1"},
		},
		Equipment: []models.Equipment{
			{
				ID:                  "eq-1",
				Name:                "CNC Mill",
				SerialNumber:        "CNC-001",
				Category:            "Machining",
				Department:          models.DepartmentProduction,
				Location:            "Hall A",
				PurchaseDate:        time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC),
				Status:              models.EquipmentOperational,
				MaintenanceTeamID:   "team-1",
				DefaultTechnicianID: "tm-1",
			},
		},
		Requests: []models.MaintenanceRequest{
			{
				ID:            "req-1",
				Subject:       "Monthly lubrication",
				Type:          models.RequestTypePreventive,
				Stage:         models.StageNew,
				EquipmentID:   "eq-1",
				TeamID:        "team-1",
				ScheduledDate: &scheduled,
				Priority:      models.PriorityMedium,
				CreatedAt:     time.Date(2025, time.August, 1, 8, 0, 0, 0, time.UTC),
			},
		},
	}

	suite.store = store.NewFromSnapshot(snap)
	suite.router = routes.SetupRoutes(suite.store, &config.Config{
		Environment:    "test",
		JWTSecret:      "test-secret",
		AllowedOrigins: []string{"http://localhost:3000"},
	})
}

func (suite *RoutesTestSuite) request(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	req.RequestURI = path
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.router.ServeHTTP(recorder, req)
	return recorder
}

func (suite *RoutesTestSuite) decode(recorder *httptest.ResponseRecorder, out interface{}) {
	suite.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), out))
}

func (suite *RoutesTestSuite) TestHealth() {
	recorder := suite.request("GET", "/health", nil)
	suite.Equal(http.StatusOK, recorder.Code)

	var response map[string]interface{}
	suite.decode(recorder, &response)
	suite.Equal("healthy", response["status"])
}

func (suite *RoutesTestSuite) TestSwaggerDocServed() {
	recorder := suite.request("GET", "/swagger/doc.json", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var doc map[string]interface{}
	suite.decode(recorder, &doc)
	suite.Equal("/api/v1", doc["basePath"])
	suite.Contains(doc, "paths")
}

func (suite *RoutesTestSuite) TestUnknownRouteReturnsJSON404() {
	recorder := suite.request("GET", "/api/v1/nope", nil)
	suite.Equal(http.StatusNotFound, recorder.Code)

	var response map[string]interface{}
	suite.decode(recorder, &response)
	suite.Equal("/api/v1/nope", response["path"])
}

func (suite *RoutesTestSuite) TestTeamLifecycle() {
	recorder := suite.request("POST", "/api/v1/teams", map[string]interface{}{
		"name":        "Electrical",
		"description": "High-voltage work",
		"color":       "#f59e0b",
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	var created service.TeamResponse
	suite.decode(recorder, &created)
	suite.NotEmpty(created.ID)
	suite.Equal("Electrical", created.Name)

	recorder = suite.request("PUT", "/api/v1/teams/"+created.ID, map[string]interface{}{
		"color": "#10b981",
	})
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var updated service.TeamResponse
	suite.decode(recorder, &updated)
	suite.Equal("Electrical", updated.Name)
	suite.Equal("#10b981", updated.Color)

	recorder = suite.request("DELETE", "/api/v1/teams/"+created.ID, nil)
	suite.Equal(http.StatusOK, recorder.Code)

	recorder = suite.request("GET", "/api/v1/teams/"+created.ID, nil)
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RoutesTestSuite) TestTeamListIncludesDerivedMembers() {
	recorder := suite.request("GET", "/api/v1/teams", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var teams []service.TeamResponse
	suite.decode(recorder, &teams)
	suite.Require().Len(teams, 1)
	suite.Require().Len(teams[0].Members, 1)
	suite.Equal("tm-1", teams[0].Members[0].ID)
}

func (suite *RoutesTestSuite) TestUpdateUnknownTeamReturns404() {
	recorder := suite.request("PUT", "/api/v1/teams/team-missing", map[string]interface{}{
		"name": "Ghost",
	})
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RoutesTestSuite) TestEquipmentShowsTeamNameAndOpenCount() {
	recorder := suite.request("GET", "/api/v1/equipment/eq-1", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var equipment service.EquipmentResponse
	suite.decode(recorder, &equipment)
	suite.Equal("Mechanics", equipment.TeamName)
	suite.Equal(1, equipment.OpenRequestCount)
}

func (suite *RoutesTestSuite) TestScrapEquipmentEndpoint() {
	recorder := suite.request("POST", "/api/v1/equipment/eq-1/scrap", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var equipment service.EquipmentResponse
	suite.decode(recorder, &equipment)
	suite.Equal(models.EquipmentScrapped, equipment.Status)
}

func (suite *RoutesTestSuite) TestCreateRequestDefaultsFromEquipment() {
	recorder := suite.request("POST", "/api/v1/requests", map[string]interface{}{
		"subject":      "Spindle vibration",
		"equipment_id": "eq-1",
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	var created service.RequestResponse
	suite.decode(recorder, &created)
	suite.Equal(models.RequestTypeCorrective, created.Type)
	suite.Equal(models.StageNew, created.Stage)
	suite.Equal("team-1", created.TeamID)
	suite.Equal("tm-1", created.AssignedToID)
	suite.Equal("CNC Mill", created.EquipmentName)
}

func (suite *RoutesTestSuite) TestCreateRequestUnknownEquipment() {
	recorder := suite.request("POST", "/api/v1/requests", map[string]interface{}{
		"subject":      "Ghost machine",
		"equipment_id": "eq-missing",
	})
	suite.Equal(http.StatusNotFound, recorder.Code)
}

func (suite *RoutesTestSuite) TestMoveStageToRepairedStampsCompletion() {
	recorder := suite.request("PUT", "/api/v1/requests/req-1/stage", map[string]interface{}{
		"stage": "repaired",
	})
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var moved service.RequestResponse
	suite.decode(recorder, &moved)
	suite.Equal(models.StageRepaired, moved.Stage)
	suite.NotNil(moved.CompletedDate)

	// Duration can only be recorded once repaired.
	recorder = suite.request("PUT", "/api/v1/requests/req-1/duration", map[string]interface{}{
		"minutes": 45,
	})
	suite.Require().Equal(http.StatusOK, recorder.Code)
	suite.decode(recorder, &moved)
	suite.Equal(45, moved.Duration)
}

func (suite *RoutesTestSuite) TestRecordDurationBeforeRepairRejected() {
	recorder := suite.request("PUT", "/api/v1/requests/req-1/duration", map[string]interface{}{
		"minutes": 45,
	})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *RoutesTestSuite) TestMoveStageInvalid() {
	recorder := suite.request("PUT", "/api/v1/requests/req-1/stage", map[string]interface{}{
		"stage": "vaporized",
	})
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *RoutesTestSuite) TestAssignForcesInProgress() {
	recorder := suite.request("PUT", "/api/v1/requests/req-1/assign", map[string]interface{}{
		"member_id": "tm-1",
	})
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var assigned service.RequestResponse
	suite.decode(recorder, &assigned)
	suite.Equal(models.StageInProgress, assigned.Stage)
	suite.Equal("Jordan Fixit", assigned.AssigneeName)
}

func (suite *RoutesTestSuite) TestBoardGroupsByStage() {
	suite.request("POST", "/api/v1/requests", map[string]interface{}{
		"subject":      "Spindle vibration",
		"equipment_id": "eq-1",
	})

	recorder := suite.request("GET", "/api/v1/requests/board?type=preventive", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var board service.BoardResponse
	suite.decode(recorder, &board)
	suite.Len(board.New, 1)
	suite.Equal("req-1", board.New[0].ID)
	suite.Empty(board.InProgress)
}

func (suite *RoutesTestSuite) TestCalendarMonthQuery() {
	recorder := suite.request("GET", "/api/v1/calendar?month=2025-08", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var view service.MonthView
	suite.decode(recorder, &view)
	suite.Equal("2025-08", view.Month)
	suite.Equal(42, len(view.Days))

	scheduled := 0
	for _, day := range view.Days {
		scheduled += day.RequestCount
	}
	suite.Equal(1, scheduled)
}

func (suite *RoutesTestSuite) TestCalendarRejectsBadMonth() {
	recorder := suite.request("GET", "/api/v1/calendar?month=August", nil)
	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *RoutesTestSuite) TestDashboardStats() {
	recorder := suite.request("GET", "/api/v1/dashboard/stats", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var stats service.DashboardStats
	suite.decode(recorder, &stats)
	suite.Equal(1, stats.EquipmentTotal)
	suite.Equal(1, stats.OpenRequests)
	suite.Equal(1, stats.TeamMembers)
	suite.InDelta(1.0, stats.OperationalShare, 0.001)
}

func (suite *RoutesTestSuite) TestMetaLists() {
	recorder := suite.request("GET", "/api/v1/meta", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var meta map[string][]string
	suite.decode(recorder, &meta)
	suite.NotEmpty(meta["equipment_categories"])
	suite.Contains(meta["departments"], "Production")
}

func (suite *RoutesTestSuite) TestAuthFlow() {
	recorder := suite.request("POST", "/api/v1/auth/signup", map[string]interface{}{
		"name":     "Alex Rivera",
		"email":    "alex@gearguard.io",
		"password": "hunter22",
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	var token auth.TokenResponse
	suite.decode(recorder, &token)
	suite.Equal("bearer", token.TokenType)
	suite.NotEmpty(token.AccessToken)

	// Me requires the token.
	recorder = suite.request("GET", "/api/v1/auth/me", nil)
	suite.Equal(http.StatusUnauthorized, recorder.Code)

	req, _ := http.NewRequest("GET", "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token.AccessToken))
	authed := httptest.NewRecorder()
	suite.router.ServeHTTP(authed, req)
	suite.Require().Equal(http.StatusOK, authed.Code)

	var me auth.User
	suite.decode(authed, &me)
	suite.Equal("alex@gearguard.io", me.Email)

	recorder = suite.request("POST", "/api/v1/auth/login", map[string]interface{}{
		"email":    "alex@gearguard.io",
		"password": "wrong",
	})
	suite.Equal(http.StatusUnauthorized, recorder.Code)
}

func TestRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(RoutesTestSuite))
}
