package scheduler

import (
	"sort"

	"github.com/hernanbarrientos/escala-connect/pkg/core/model"
)

// supportLevelOrder is the intentional support-tier ordering: advanced
// volunteers anchor the tier, beginners come before intermediates.
var supportLevelOrder = []model.ExperienceLevel{
	model.ExperienceAdvanced,
	model.ExperienceBeginner,
	model.ExperienceIntermediate,
}

// allocateIndividuals runs the tiered individual phase over free agents:
// principal roles in priority order, then the support role by experience
// level, then the forced fills that waive monthly caps.
func (s *state) allocateIndividuals() {
	freeAgents := make([]*model.Volunteer, 0, len(s.in.Volunteers))
	for _, v := range s.in.Volunteers {
		if !v.HasGroup() {
			freeAgents = append(freeAgents, v)
		}
	}

	// Tier 1: principal roles, most critical first
	for _, role := range s.principalRolesByPriority() {
		roleID := role.ID
		candidates := filterQualified(freeAgents, roleID)
		s.runTier(candidates, func(sl *Slot) bool { return sl.RoleID == roleID }, true)
	}

	// Tier 2: support role, one sub-tier per experience level
	if supportRole, ok := s.supportRole(); ok {
		roleID := supportRole.ID
		qualified := filterQualified(freeAgents, roleID)
		for _, level := range supportLevelOrder {
			candidates := make([]*model.Volunteer, 0, len(qualified))
			for _, v := range qualified {
				if v.Experience == level {
					candidates = append(candidates, v)
				}
			}
			s.runTier(candidates, func(sl *Slot) bool { return sl.RoleID == roleID }, true)
		}
	}

	// Tier 3: forced fill of still-open principal slots, caps waived
	principalIDs := make(map[int64]bool)
	for _, role := range s.principalRolesByPriority() {
		principalIDs[role.ID] = true
	}
	s.runTier(freeAgents, func(sl *Slot) bool { return principalIDs[sl.RoleID] }, false)

	// Tier 4: forced fill of everything left, every volunteer, caps waived
	if len(s.openSlots) > 0 {
		s.runTier(s.in.Volunteers, func(*Slot) bool { return true }, false)
	}
}

// runTier repeatedly scans candidates in random order, assigning each round's
// first eligible (candidate, slot) pair with the emptiest events preferred.
// A round with zero assignments ends the tier; a hard round cap bounds bad
// luck with the shuffles.
func (s *state) runTier(candidates []*model.Volunteer, slotFilter func(*Slot) bool, enforceLimit bool) {
	targets := make([]*Slot, 0)
	for _, slot := range s.openSlots {
		if slotFilter(slot) {
			targets = append(targets, slot)
		}
	}
	if len(targets) == 0 || len(candidates) == 0 {
		return
	}
	// Key order first so a seeded run is reproducible; shuffles below add
	// the random tie-breaks.
	sort.Slice(targets, func(i, j int) bool { return targets[i].Key < targets[j].Key })

	pool := make([]*model.Volunteer, len(candidates))
	copy(pool, candidates)

	for round := 0; round < s.maxRounds(len(pool), len(targets)); round++ {
		assigned := false
		s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })

		// Drop filled slots, then prefer slots on the least-staffed events,
		// ties broken randomly
		open := targets[:0]
		for _, slot := range targets {
			if s.isOpen(slot.Key) {
				open = append(open, slot)
			}
		}
		targets = open
		if len(targets) == 0 {
			return
		}
		s.rng.Shuffle(len(targets), func(i, j int) { targets[i], targets[j] = targets[j], targets[i] })
		sort.SliceStable(targets, func(i, j int) bool {
			return s.eventLoad[targets[i].EventID] < s.eventLoad[targets[j].EventID]
		})

		for _, v := range pool {
			if enforceLimit && s.assignedCount[v.ID] >= v.MonthlyLimit {
				continue
			}
			for _, slot := range targets {
				if ok, _ := s.CanServe(v, slot, enforceLimit); ok {
					s.assign(v, slot)
					assigned = true
					break
				}
			}
			if assigned {
				break
			}
		}

		if !assigned {
			return
		}
	}
}

// principalRolesByPriority returns principal roles sorted by ascending
// allocation priority
func (s *state) principalRolesByPriority() []model.Role {
	roles := make([]model.Role, 0, len(s.in.Roles))
	for _, r := range s.in.Roles {
		if r.Kind == model.RolePrincipal {
			roles = append(roles, r)
		}
	}
	sort.Slice(roles, func(i, j int) bool {
		if roles[i].Priority != roles[j].Priority {
			return roles[i].Priority < roles[j].Priority
		}
		return roles[i].ID < roles[j].ID
	})
	return roles
}

// supportRole returns the ministry's support role, if configured
func (s *state) supportRole() (model.Role, bool) {
	for _, r := range s.in.Roles {
		if r.Kind == model.RoleSupport {
			return r, true
		}
	}
	return model.Role{}, false
}

func filterQualified(volunteers []*model.Volunteer, roleID int64) []*model.Volunteer {
	out := make([]*model.Volunteer, 0, len(volunteers))
	for _, v := range volunteers {
		if v.RoleIDs[roleID] {
			out = append(out, v)
		}
	}
	return out
}
