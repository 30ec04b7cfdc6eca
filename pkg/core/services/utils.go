package services

import (
	"fmt"
	"time"

	"github.com/hernanbarrientos/escala-connect/pkg/core/model"
	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

// ParseMonth parses a "YYYY-MM" reference into its year and month
func ParseMonth(ref string) (int, time.Month, error) {
	t, err := time.Parse("2006-01", ref)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, expected YYYY-MM: %w", ref, err)
	}
	return t.Year(), t.Month(), nil
}

// monthRange returns the first day of the month and the first day of the
// following month, both at midnight UTC
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func parseRoleKind(kind string) model.RoleKind {
	if kind == string(model.RoleSupport) {
		return model.RoleSupport
	}
	return model.RolePrincipal
}

func parseExperience(level string) model.ExperienceLevel {
	switch level {
	case string(model.ExperienceBeginner):
		return model.ExperienceBeginner
	case string(model.ExperienceAdvanced):
		return model.ExperienceAdvanced
	default:
		return model.ExperienceIntermediate
	}
}

func buildRoles(records []db.Role) []model.Role {
	roles := make([]model.Role, 0, len(records))
	for _, r := range records {
		roles = append(roles, model.Role{
			ID:       r.ID,
			Name:     r.Name,
			Kind:     parseRoleKind(r.Kind),
			Priority: r.Priority,
		})
	}
	return roles
}

func buildEvents(records []db.Event) []model.Event {
	events := make([]model.Event, 0, len(records))
	for _, e := range records {
		events = append(events, model.Event{
			ID:        e.ID,
			ServiceID: e.ServiceID,
			Date:      e.Date,
		})
	}
	return events
}

func buildVolunteers(records []db.Volunteer) []*model.Volunteer {
	volunteers := make([]*model.Volunteer, 0, len(records))
	for _, rec := range records {
		v := &model.Volunteer{
			ID:              rec.ID,
			Name:            rec.Name,
			MonthlyLimit:    rec.MonthlyLimit,
			Experience:      parseExperience(rec.Experience),
			GroupID:         rec.GroupID,
			RoleIDs:         idSet(rec.RoleIDs),
			ServiceIDs:      idSet(rec.ServiceIDs),
			BlockedEventIDs: idSet(rec.BlockedEventIDs),
		}
		volunteers = append(volunteers, v)
	}
	return volunteers
}

// buildGroups attaches the already-built volunteer pointers to their group
// records so both phases of generation see the same counters
func buildGroups(records []db.Group, volunteers []*model.Volunteer) []*model.Group {
	members := make(map[int64][]*model.Volunteer)
	for _, v := range volunteers {
		if v.HasGroup() {
			members[v.GroupID] = append(members[v.GroupID], v)
		}
	}

	groups := make([]*model.Group, 0, len(records))
	for _, rec := range records {
		groups = append(groups, &model.Group{
			ID:           rec.ID,
			MonthlyLimit: rec.MonthlyLimit,
			Members:      members[rec.ID],
		})
	}
	return groups
}

func idSet(ids []int64) map[int64]bool {
	set := make(map[int64]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
