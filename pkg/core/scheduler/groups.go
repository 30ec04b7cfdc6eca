package scheduler

import (
	"sort"

	"github.com/hernanbarrientos/escala-connect/pkg/core/model"
)

// memberSlot is a tentative member-to-slot match, committed only when the
// whole group fits
type memberSlot struct {
	member *model.Volunteer
	slot   *Slot
}

// allocateGroups runs the all-or-nothing group phase. Each pass shuffles the
// group order and tries to place every group under its monthly cap into one
// event; the phase stops when a full pass places nothing or the pool empties.
func (s *state) allocateGroups() {
	groups := make([]*model.Group, 0, len(s.in.Groups))
	for _, g := range s.in.Groups {
		// A group of one is not a unit. The member still carries a GroupID,
		// so only the final forced tier can reach them.
		if len(g.Members) < 2 {
			continue
		}
		if s.groupUnplaceable(g) {
			s.addDiagnostic("group %d skipped permanently: no eligible role for every member", g.ID)
			continue
		}
		groups = append(groups, g)
	}

	for {
		progress := false
		s.rng.Shuffle(len(groups), func(i, j int) {
			groups[i], groups[j] = groups[j], groups[i]
		})

		for _, g := range groups {
			if s.groupDeployments[g.ID] >= g.MonthlyLimit {
				continue
			}
			if s.placeGroupOnce(g) {
				progress = true
			}
		}

		if !progress || len(s.openSlots) == 0 {
			break
		}
	}
}

// groupUnplaceable reports whether some member can never take any slot
// because their qualified-role set is empty
func (s *state) groupUnplaceable(g *model.Group) bool {
	for _, m := range g.Members {
		eligible := false
		for roleID := range m.RoleIDs {
			if _, ok := s.roles[roleID]; ok {
				eligible = true
				break
			}
		}
		if !eligible {
			return true
		}
	}
	return false
}

// placeGroupOnce tries every candidate event, emptiest first, and commits the
// first event where all members match distinct slots. Returns whether a
// deployment happened.
func (s *state) placeGroupOnce(g *model.Group) bool {
	for _, eventID := range s.candidateEvents() {
		match := s.matchGroupToEvent(g, eventID)
		if match == nil {
			continue
		}

		// Commit atomically: every member or none, and the checks above
		// guarantee every claimed slot is still open.
		for _, ms := range match {
			s.assign(ms.member, ms.slot)
		}
		s.groupDeployments[g.ID]++
		return true
	}
	return false
}

// candidateEvents returns event ids ordered by ascending staffing load, ties
// broken randomly
func (s *state) candidateEvents() []int64 {
	ids := make([]int64, 0, len(s.in.Events))
	for _, ev := range s.in.Events {
		ids = append(ids, ev.ID)
	}
	s.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	sort.SliceStable(ids, func(i, j int) bool {
		return s.eventLoad[ids[i]] < s.eventLoad[ids[j]]
	})
	return ids
}

// matchGroupToEvent greedily matches every member to a distinct open slot in
// the event. Principal-capable members go first so they can take the
// event's principal openings; any member left without a slot fails the whole
// event. Nothing is committed here.
func (s *state) matchGroupToEvent(g *model.Group, eventID int64) []memberSlot {
	slots := s.openSlotsForEvent(eventID)
	if len(slots) < len(g.Members) {
		return nil
	}

	claimed := make(map[string]bool, len(g.Members))
	match := make([]memberSlot, 0, len(g.Members))

	for _, m := range s.membersPrincipalFirst(g) {
		var chosen *Slot
		for _, slot := range slots {
			if claimed[slot.Key] {
				continue
			}
			if ok, _ := s.CanServe(m, slot, true); ok {
				chosen = slot
				break
			}
		}
		if chosen == nil {
			return nil
		}
		claimed[chosen.Key] = true
		match = append(match, memberSlot{member: m, slot: chosen})
	}

	return match
}

// membersPrincipalFirst orders group members so principal-capable ones match
// before support-only ones, preserving group order within each part
func (s *state) membersPrincipalFirst(g *model.Group) []*model.Volunteer {
	ordered := make([]*model.Volunteer, 0, len(g.Members))
	for _, m := range g.Members {
		if s.isPrincipalCapable(m) {
			ordered = append(ordered, m)
		}
	}
	for _, m := range g.Members {
		if !s.isPrincipalCapable(m) {
			ordered = append(ordered, m)
		}
	}
	return ordered
}

func (s *state) isPrincipalCapable(v *model.Volunteer) bool {
	for roleID := range v.RoleIDs {
		if r, ok := s.roles[roleID]; ok && r.Kind == model.RolePrincipal {
			return true
		}
	}
	return false
}

// openSlotsForEvent lists the event's open slots with principal roles first
// (by allocation priority), so a member holding both a principal and the
// support role fills the leadership opening
func (s *state) openSlotsForEvent(eventID int64) []*Slot {
	slots := make([]*Slot, 0)
	for _, slot := range s.openSlots {
		if slot.EventID == eventID {
			slots = append(slots, slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool {
		ri, rj := s.roles[slots[i].RoleID], s.roles[slots[j].RoleID]
		if ri.Kind != rj.Kind {
			return ri.Kind == model.RolePrincipal
		}
		if ri.Priority != rj.Priority {
			return ri.Priority < rj.Priority
		}
		if slots[i].RoleID != slots[j].RoleID {
			return slots[i].RoleID < slots[j].RoleID
		}
		return slots[i].Instance < slots[j].Instance
	})
	return slots
}
