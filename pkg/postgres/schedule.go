package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

// WipeAssignments deletes every schedule row for the ministry's events in the
// given month and returns how many rows were removed
func (d *DB) WipeAssignments(ctx context.Context, ministryID int64, year int, month time.Month) (int64, error) {
	start, end := monthRange(year, month)

	tag, err := d.pool.Exec(ctx, `
		DELETE FROM schedule
		WHERE event_id IN (
			SELECT e.id
			FROM events e
			JOIN service_templates s ON s.id = e.service_id
			WHERE s.ministry_id = $1 AND e.event_date >= $2 AND e.event_date < $3
		)
	`, ministryID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to wipe schedule: %w", err)
	}

	return tag.RowsAffected(), nil
}

// SaveAssignments inserts schedule rows in a single transaction
func (d *DB) SaveAssignments(ctx context.Context, assignments []db.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO schedule (event_id, role_id, instance, volunteer_id)
			VALUES ($1, $2, $3, $4)
		`, a.EventID, a.RoleID, a.Instance, a.VolunteerID)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSchedule retrieves the month's schedule expanded to every opening the
// quotas define, so unfilled slots come back as rows with a zero volunteer ID
func (d *DB) GetSchedule(ctx context.Context, ministryID int64, year int, month time.Month) ([]db.ScheduleEntry, error) {
	start, end := monthRange(year, month)

	rows, err := d.pool.Query(ctx, `
		SELECT e.id, e.event_date, s.name, r.id, r.name, gs.instance,
		       COALESCE(sc.volunteer_id, 0), COALESCE(v.name, '')
		FROM events e
		JOIN service_templates s ON s.id = e.service_id
		JOIN role_quotas q ON q.service_id = s.id AND q.quantity > 0
		JOIN roles r ON r.id = q.role_id
		CROSS JOIN LATERAL generate_series(1, q.quantity) AS gs(instance)
		LEFT JOIN schedule sc
		       ON sc.event_id = e.id AND sc.role_id = r.id AND sc.instance = gs.instance
		LEFT JOIN volunteers v ON v.id = sc.volunteer_id
		WHERE s.ministry_id = $1 AND e.event_date >= $2 AND e.event_date < $3
		ORDER BY e.event_date, e.id, r.priority, r.id, gs.instance
	`, ministryID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedule: %w", err)
	}
	defer rows.Close()

	var entries []db.ScheduleEntry
	for rows.Next() {
		var entry db.ScheduleEntry
		if err := rows.Scan(&entry.EventID, &entry.Date, &entry.ServiceName, &entry.RoleID,
			&entry.RoleName, &entry.Instance, &entry.VolunteerID, &entry.VolunteerName); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating schedule entries: %w", err)
	}

	return entries, nil
}
