package scheduler

import (
	"github.com/hernanbarrientos/escala-connect/pkg/core/model"
)

// Reason explains why a volunteer cannot take a slot
type Reason string

const (
	ReasonOK Reason = ""

	// ReasonDayConflict: volunteer already works another event on this date
	ReasonDayConflict Reason = "already assigned on this date"

	// ReasonRoleMismatch: slot's role is not in the volunteer's role set
	ReasonRoleMismatch Reason = "not qualified for role"

	// ReasonServiceUnavailable: volunteer is not available for this weekly service
	ReasonServiceUnavailable Reason = "service not in availability"

	// ReasonEventBlocked: volunteer marked this specific event as unavailable
	ReasonEventBlocked Reason = "event blocked by one-off unavailability"

	// ReasonLimitReached: monthly assignment cap hit (waived in forced tiers)
	ReasonLimitReached Reason = "monthly limit reached"
)

// CanServe decides whether a volunteer may take a slot given the current run
// state. Checks run in a fixed order and the first failure wins, so the
// returned reason is stable for diagnostics. enforceLimit is false only
// during forced-fill tiers.
func (s *state) CanServe(v *model.Volunteer, slot *Slot, enforceLimit bool) (bool, Reason) {
	if s.daysAssigned[v.ID][dateKey(slot.Date)] {
		return false, ReasonDayConflict
	}

	if !v.RoleIDs[slot.RoleID] {
		return false, ReasonRoleMismatch
	}

	if !v.ServiceIDs[slot.ServiceID] {
		return false, ReasonServiceUnavailable
	}

	if v.BlockedEventIDs[slot.EventID] {
		return false, ReasonEventBlocked
	}

	if enforceLimit && s.assignedCount[v.ID] >= v.MonthlyLimit {
		return false, ReasonLimitReached
	}

	return true, ReasonOK
}
