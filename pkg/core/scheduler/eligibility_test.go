package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hernanbarrientos/escala-connect/pkg/core/model"
)

func eligibilityState(t *testing.T) (*state, *Slot) {
	s := newTestState(Input{
		Events: []model.Event{{ID: 10, ServiceID: 100, Date: date(t, "2026-03-01")}},
		Roles:  []model.Role{supportRole},
		Quotas: map[int64]map[int64]int{100: {supportRole.ID: 1}},
	}, 1)
	slot, ok := s.openSlots[SlotKey(10, supportRole.ID, 1)]
	require.True(t, ok)
	return s, slot
}

func TestCanServe_AllChecksPass(t *testing.T) {
	s, slot := eligibilityState(t)
	v := testVolunteer(1, 2, model.ExperienceIntermediate, 0, []int64{supportRole.ID}, []int64{100})

	ok, reason := s.CanServe(v, slot, true)
	assert.True(t, ok)
	assert.Equal(t, ReasonOK, reason)
}

func TestCanServe_DayConflict(t *testing.T) {
	s, slot := eligibilityState(t)
	v := testVolunteer(1, 2, model.ExperienceIntermediate, 0, []int64{supportRole.ID}, []int64{100})

	// Already serving another event that date
	s.daysAssigned[v.ID] = map[string]bool{"2026-03-01": true}

	ok, reason := s.CanServe(v, slot, true)
	assert.False(t, ok)
	assert.Equal(t, ReasonDayConflict, reason)
}

func TestCanServe_RoleMismatch(t *testing.T) {
	s, slot := eligibilityState(t)
	v := testVolunteer(1, 2, model.ExperienceIntermediate, 0, []int64{leaderRole.ID}, []int64{100})

	ok, reason := s.CanServe(v, slot, true)
	assert.False(t, ok)
	assert.Equal(t, ReasonRoleMismatch, reason)
}

func TestCanServe_ServiceUnavailable(t *testing.T) {
	s, slot := eligibilityState(t)
	v := testVolunteer(1, 2, model.ExperienceIntermediate, 0, []int64{supportRole.ID}, []int64{101})

	ok, reason := s.CanServe(v, slot, true)
	assert.False(t, ok)
	assert.Equal(t, ReasonServiceUnavailable, reason)
}

func TestCanServe_EventBlocked(t *testing.T) {
	s, slot := eligibilityState(t)
	v := testVolunteer(1, 2, model.ExperienceIntermediate, 0, []int64{supportRole.ID}, []int64{100})
	v.BlockedEventIDs[10] = true

	ok, reason := s.CanServe(v, slot, true)
	assert.False(t, ok)
	assert.Equal(t, ReasonEventBlocked, reason)
}

func TestCanServe_LimitReached(t *testing.T) {
	s, slot := eligibilityState(t)
	v := testVolunteer(1, 1, model.ExperienceIntermediate, 0, []int64{supportRole.ID}, []int64{100})
	s.assignedCount[v.ID] = 1

	ok, reason := s.CanServe(v, slot, true)
	assert.False(t, ok)
	assert.Equal(t, ReasonLimitReached, reason)
}

func TestCanServe_ForcedWaivesOnlyTheLimit(t *testing.T) {
	s, slot := eligibilityState(t)
	v := testVolunteer(1, 1, model.ExperienceIntermediate, 0, []int64{supportRole.ID}, []int64{100})
	s.assignedCount[v.ID] = 5

	ok, reason := s.CanServe(v, slot, false)
	assert.True(t, ok)
	assert.Equal(t, ReasonOK, reason)

	// The other checks still apply in forced tiers
	v.BlockedEventIDs[10] = true
	ok, reason = s.CanServe(v, slot, false)
	assert.False(t, ok)
	assert.Equal(t, ReasonEventBlocked, reason)
}

// The failing reason follows the documented check order: day conflict wins
// over everything else
func TestCanServe_FirstFailureWins(t *testing.T) {
	s, slot := eligibilityState(t)
	v := testVolunteer(1, 1, model.ExperienceIntermediate, 0, []int64{leaderRole.ID}, []int64{101})
	v.BlockedEventIDs[10] = true
	s.daysAssigned[v.ID] = map[string]bool{"2026-03-01": true}
	s.assignedCount[v.ID] = 9

	ok, reason := s.CanServe(v, slot, true)
	assert.False(t, ok)
	assert.Equal(t, ReasonDayConflict, reason)
}
