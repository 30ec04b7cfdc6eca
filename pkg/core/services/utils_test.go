package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hernanbarrientos/escala-connect/pkg/core/model"
	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2026-03")
	require.NoError(t, err)
	assert.Equal(t, 2026, year)
	assert.Equal(t, time.March, month)

	_, _, err = ParseMonth("03/2026")
	assert.Error(t, err)

	_, _, err = ParseMonth("2026-13")
	assert.Error(t, err)
}

func TestMonthRange(t *testing.T) {
	start, end := monthRange(2026, time.December)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)
}

func TestParseExperience_DefaultsToIntermediate(t *testing.T) {
	assert.Equal(t, model.ExperienceAdvanced, parseExperience("ADVANCED"))
	assert.Equal(t, model.ExperienceBeginner, parseExperience("BEGINNER"))
	assert.Equal(t, model.ExperienceIntermediate, parseExperience(""))
	assert.Equal(t, model.ExperienceIntermediate, parseExperience("veteran"))
}

func TestParseRoleKind_DefaultsToPrincipal(t *testing.T) {
	assert.Equal(t, model.RoleSupport, parseRoleKind("SUPPORT"))
	assert.Equal(t, model.RolePrincipal, parseRoleKind("PRINCIPAL"))
	assert.Equal(t, model.RolePrincipal, parseRoleKind(""))
}

func TestBuildVolunteers(t *testing.T) {
	records := []db.Volunteer{
		{ID: 1, Name: "Ana", MonthlyLimit: 3, Experience: "ADVANCED", GroupID: 7,
			RoleIDs: []int64{1, 2}, ServiceIDs: []int64{100}, BlockedEventIDs: []int64{10}},
		{ID: 2, Name: "Bruno", MonthlyLimit: 2},
	}

	volunteers := buildVolunteers(records)
	require.Len(t, volunteers, 2)

	ana := volunteers[0]
	assert.True(t, ana.HasGroup())
	assert.True(t, ana.RoleIDs[1])
	assert.True(t, ana.RoleIDs[2])
	assert.True(t, ana.ServiceIDs[100])
	assert.True(t, ana.BlockedEventIDs[10])

	bruno := volunteers[1]
	assert.False(t, bruno.HasGroup())
	assert.Empty(t, bruno.RoleIDs)
	assert.Equal(t, model.ExperienceIntermediate, bruno.Experience)
}

func TestBuildGroups_AttachesMembers(t *testing.T) {
	volunteers := buildVolunteers([]db.Volunteer{
		{ID: 1, Name: "Ana", GroupID: 7},
		{ID: 2, Name: "Bruno", GroupID: 7},
		{ID: 3, Name: "Clara"},
	})

	groups := buildGroups([]db.Group{
		{ID: 7, MonthlyLimit: 2},
		{ID: 8, MonthlyLimit: 1},
	}, volunteers)

	require.Len(t, groups, 2)
	require.Len(t, groups[0].Members, 2)
	assert.Same(t, volunteers[0], groups[0].Members[0])
	assert.Empty(t, groups[1].Members)
}
