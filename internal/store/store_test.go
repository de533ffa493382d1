package store_test

import (
	"testing"
	"time"

	"gearguard-backend/internal/models"
	"gearguard-backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// StoreTestSuite defines the test suite for the entity store
type StoreTestSuite struct {
	suite.Suite
	store *store.Store
}

// SetupTest sets up a fresh store for each test
func (suite *StoreTestSuite) SetupTest() {
	suite.store = store.New()
}

func (suite *StoreTestSuite) TestAddThenLookupReturnsEqualRecord() {
	team := models.Team{ID: "team-a", Name: "Mechanical", Description: "desc", Color: "#ff0000"}
	suite.store.AddTeam(team)

	got, ok := suite.store.TeamByID("team-a")
	suite.True(ok)
	suite.Equal(team, got)
}

func (suite *StoreTestSuite) TestUpdateChangesOnlySuppliedFields() {
	suite.store.AddTeam(models.Team{ID: "team-a", Name: "Mechanical", Description: "original", Color: "#ff0000"})
	suite.store.AddTeam(models.Team{ID: "team-b", Name: "Electrical", Color: "#00ff00"})

	ok := suite.store.UpdateTeam("team-a", func(t *models.Team) {
		t.Name = "Mechanics"
	})
	suite.True(ok)

	updated, _ := suite.store.TeamByID("team-a")
	suite.Equal("Mechanics", updated.Name)
	suite.Equal("original", updated.Description)
	suite.Equal("#ff0000", updated.Color)

	other, _ := suite.store.TeamByID("team-b")
	suite.Equal("Electrical", other.Name)
}

func (suite *StoreTestSuite) TestUpdateCannotChangeID() {
	suite.store.AddEquipment(models.Equipment{ID: "eq-a", Name: "Press"})

	suite.store.UpdateEquipment("eq-a", func(eq *models.Equipment) {
		eq.ID = "eq-hijacked"
		eq.Name = "Press 2"
	})

	got, ok := suite.store.EquipmentByID("eq-a")
	suite.True(ok)
	suite.Equal("Press 2", got.Name)
	_, hijacked := suite.store.EquipmentByID("eq-hijacked")
	suite.False(hijacked)
}

func (suite *StoreTestSuite) TestUpdateUnknownIDIsNoOp() {
	suite.store.AddTeam(models.Team{ID: "team-a", Name: "Mechanical"})

	ok := suite.store.UpdateTeam("team-missing", func(t *models.Team) {
		t.Name = "changed"
	})
	suite.False(ok)
	suite.Len(suite.store.Teams(), 1)

	unchanged, _ := suite.store.TeamByID("team-a")
	suite.Equal("Mechanical", unchanged.Name)
}

func (suite *StoreTestSuite) TestDeleteIsIdempotent() {
	suite.store.AddMember(models.TeamMember{ID: "tm-a", Name: "Alex", Email: "a@x.io", Role: models.MemberRoleTechnician, TeamID: "team-a"})

	suite.True(suite.store.DeleteMember("tm-a"))
	suite.Len(suite.store.Members(), 0)

	suite.False(suite.store.DeleteMember("tm-a"))
	suite.Len(suite.store.Members(), 0)
}

func (suite *StoreTestSuite) TestDeleteUnknownIDLeavesCollectionUnchanged() {
	suite.store.AddRequest(models.MaintenanceRequest{ID: "req-a", Subject: "fix", EquipmentID: "eq-a"})

	suite.False(suite.store.DeleteRequest("req-missing"))
	suite.Len(suite.store.Requests(), 1)
}

func (suite *StoreTestSuite) TestRequestCreatedAtIsImmutable() {
	created := time.Date(2025, 8, 1, 9, 0, 0, 0, time.UTC)
	suite.store.AddRequest(models.MaintenanceRequest{ID: "req-a", Subject: "fix", CreatedAt: created})

	suite.store.UpdateRequest("req-a", func(r *models.MaintenanceRequest) {
		r.CreatedAt = time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		r.Subject = "fix harder"
	})

	got, _ := suite.store.RequestByID("req-a")
	suite.Equal(created, got.CreatedAt)
	suite.Equal("fix harder", got.Subject)
}

func (suite *StoreTestSuite) TestRequestsForEquipmentKeepsInsertionOrder() {
	suite.store.AddRequest(models.MaintenanceRequest{ID: "req-1", EquipmentID: "eq-a", Stage: models.StageNew})
	suite.store.AddRequest(models.MaintenanceRequest{ID: "req-2", EquipmentID: "eq-b", Stage: models.StageNew})
	suite.store.AddRequest(models.MaintenanceRequest{ID: "req-3", EquipmentID: "eq-a", Stage: models.StageScrap})

	got := suite.store.RequestsForEquipment("eq-a")
	suite.Len(got, 2)
	suite.Equal("req-1", got[0].ID)
	suite.Equal("req-3", got[1].ID)
}

func (suite *StoreTestSuite) TestMembersForTeamDerivesMembership() {
	suite.store.AddTeam(models.Team{ID: "t1", Name: "Mechanical", Color: "#ff0000"})
	suite.store.AddMember(models.TeamMember{ID: "m1", Name: "Alex", Email: "a@x.io", Role: models.MemberRoleTechnician, TeamID: "t1"})
	suite.store.AddMember(models.TeamMember{ID: "m2", Name: "Priya", Email: "p@x.io", Role: models.MemberRoleManager, TeamID: "t2"})

	members := suite.store.MembersForTeam("t1")
	suite.Len(members, 1)
	suite.Equal("m1", members[0].ID)
}

func (suite *StoreTestSuite) TestResetRestoresSeedSnapshot() {
	snap := store.Snapshot{
		Teams: []models.Team{{ID: "t1", Name: "Mechanical"}},
	}
	suite.store.Seed(snap)

	suite.store.AddTeam(models.Team{ID: "t2", Name: "Electrical"})
	suite.store.UpdateTeam("t1", func(t *models.Team) { t.Name = "renamed" })
	suite.Len(suite.store.Teams(), 2)

	suite.store.Reset()

	teams := suite.store.Teams()
	suite.Len(teams, 1)
	suite.Equal("Mechanical", teams[0].Name)
}

func (suite *StoreTestSuite) TestReadsReturnCopies() {
	suite.store.AddTeam(models.Team{ID: "t1", Name: "Mechanical"})

	teams := suite.store.Teams()
	teams[0].Name = "mutated by caller"

	got, _ := suite.store.TeamByID("t1")
	suite.Equal("Mechanical", got.Name)
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestDefaultSnapshotDecodes(t *testing.T) {
	snap, err := store.DefaultSnapshot()
	assert.NoError(t, err)
	assert.NotEmpty(t, snap.Teams)
	assert.NotEmpty(t, snap.Members)
	assert.NotEmpty(t, snap.Equipment)
	assert.NotEmpty(t, snap.Requests)

	// Seed references must resolve against each other
	st := store.NewFromSnapshot(snap)
	for _, m := range snap.Members {
		_, ok := st.TeamByID(m.TeamID)
		assert.True(t, ok, "member %s points at missing team %s", m.ID, m.TeamID)
	}
	for _, eq := range snap.Equipment {
		_, ok := st.TeamByID(eq.MaintenanceTeamID)
		assert.True(t, ok, "equipment %s points at missing team %s", eq.ID, eq.MaintenanceTeamID)
	}
	for _, r := range snap.Requests {
		_, ok := st.EquipmentByID(r.EquipmentID)
		assert.True(t, ok, "request %s points at missing equipment %s", r.ID, r.EquipmentID)
	}
}

func TestNewIDUsesPrefix(t *testing.T) {
	id := store.NewID(store.PrefixRequest)
	assert.Contains(t, id, "req-")
	assert.NotEqual(t, id, store.NewID(store.PrefixRequest))
}
