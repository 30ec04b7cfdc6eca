package postgres

import (
	"context"
	"fmt"

	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

// ListRoles retrieves every role for a ministry, principal priorities first
func (d *DB) ListRoles(ctx context.Context, ministryID int64) ([]db.Role, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, ministry_id, name, kind, priority
		FROM roles
		WHERE ministry_id = $1
		ORDER BY priority, id
	`, ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	var roles []db.Role
	for rows.Next() {
		var r db.Role
		if err := rows.Scan(&r.ID, &r.MinistryID, &r.Name, &r.Kind, &r.Priority); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roles: %w", err)
	}

	return roles, nil
}

// GetRoleQuotas retrieves the per-service role quantities as a nested map
// keyed by service ID then role ID
func (d *DB) GetRoleQuotas(ctx context.Context, ministryID int64) (map[int64]map[int64]int, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT q.service_id, q.role_id, q.quantity
		FROM role_quotas q
		JOIN service_templates s ON s.id = q.service_id
		WHERE s.ministry_id = $1
	`, ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query role quotas: %w", err)
	}
	defer rows.Close()

	quotas := make(map[int64]map[int64]int)
	for rows.Next() {
		var serviceID, roleID int64
		var quantity int
		if err := rows.Scan(&serviceID, &roleID, &quantity); err != nil {
			return nil, fmt.Errorf("failed to scan role quota: %w", err)
		}
		if quotas[serviceID] == nil {
			quotas[serviceID] = make(map[int64]int)
		}
		quotas[serviceID][roleID] = quantity
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role quotas: %w", err)
	}

	return quotas, nil
}

// ListVolunteers retrieves the ministry's active volunteers with their role
// qualifications, weekly availability and one-off unavailability attached
func (d *DB) ListVolunteers(ctx context.Context, ministryID int64) ([]db.Volunteer, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, ministry_id, name, monthly_limit, experience, COALESCE(group_id, 0)
		FROM volunteers
		WHERE ministry_id = $1 AND active
		ORDER BY id
	`, ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteers: %w", err)
	}
	defer rows.Close()

	var volunteers []db.Volunteer
	index := make(map[int64]int)
	for rows.Next() {
		var v db.Volunteer
		if err := rows.Scan(&v.ID, &v.MinistryID, &v.Name, &v.MonthlyLimit, &v.Experience, &v.GroupID); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer: %w", err)
		}
		index[v.ID] = len(volunteers)
		volunteers = append(volunteers, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteers: %w", err)
	}

	roleRows, err := d.relationPairs(ctx, `
		SELECT vr.volunteer_id, vr.role_id
		FROM volunteer_roles vr
		JOIN volunteers v ON v.id = vr.volunteer_id
		WHERE v.ministry_id = $1
	`, ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteer roles: %w", err)
	}
	for volunteerID, roleID := range roleRows {
		if i, ok := index[volunteerID]; ok {
			volunteers[i].RoleIDs = append(volunteers[i].RoleIDs, roleID...)
		}
	}

	availRows, err := d.relationPairs(ctx, `
		SELECT va.volunteer_id, va.service_id
		FROM volunteer_availability va
		JOIN volunteers v ON v.id = va.volunteer_id
		WHERE v.ministry_id = $1
	`, ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteer availability: %w", err)
	}
	for volunteerID, serviceID := range availRows {
		if i, ok := index[volunteerID]; ok {
			volunteers[i].ServiceIDs = append(volunteers[i].ServiceIDs, serviceID...)
		}
	}

	blockedRows, err := d.relationPairs(ctx, `
		SELECT vu.volunteer_id, vu.event_id
		FROM volunteer_unavailability vu
		JOIN volunteers v ON v.id = vu.volunteer_id
		WHERE v.ministry_id = $1
	`, ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteer unavailability: %w", err)
	}
	for volunteerID, eventID := range blockedRows {
		if i, ok := index[volunteerID]; ok {
			volunteers[i].BlockedEventIDs = append(volunteers[i].BlockedEventIDs, eventID...)
		}
	}

	return volunteers, nil
}

// ListGroups retrieves every volunteer group for a ministry
func (d *DB) ListGroups(ctx context.Context, ministryID int64) ([]db.Group, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, ministry_id, name, monthly_limit
		FROM volunteer_groups
		WHERE ministry_id = $1
		ORDER BY id
	`, ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query volunteer groups: %w", err)
	}
	defer rows.Close()

	var groups []db.Group
	for rows.Next() {
		var g db.Group
		if err := rows.Scan(&g.ID, &g.MinistryID, &g.Name, &g.MonthlyLimit); err != nil {
			return nil, fmt.Errorf("failed to scan volunteer group: %w", err)
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating volunteer groups: %w", err)
	}

	return groups, nil
}

// relationPairs runs a two-column (volunteer_id, related_id) query and folds
// the rows into a map from volunteer to related IDs
func (d *DB) relationPairs(ctx context.Context, query string, ministryID int64) (map[int64][]int64, error) {
	rows, err := d.pool.Query(ctx, query, ministryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pairs := make(map[int64][]int64)
	for rows.Next() {
		var volunteerID, relatedID int64
		if err := rows.Scan(&volunteerID, &relatedID); err != nil {
			return nil, err
		}
		pairs[volunteerID] = append(pairs[volunteerID], relatedID)
	}
	return pairs, rows.Err()
}
