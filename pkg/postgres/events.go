package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

// ListServiceTemplates retrieves the recurring weekly services of a ministry
func (d *DB) ListServiceTemplates(ctx context.Context, ministryID int64) ([]db.ServiceTemplate, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, ministry_id, name, weekday
		FROM service_templates
		WHERE ministry_id = $1
		ORDER BY weekday, id
	`, ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query service templates: %w", err)
	}
	defer rows.Close()

	var templates []db.ServiceTemplate
	for rows.Next() {
		var t db.ServiceTemplate
		if err := rows.Scan(&t.ID, &t.MinistryID, &t.Name, &t.Weekday); err != nil {
			return nil, fmt.Errorf("failed to scan service template: %w", err)
		}
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service templates: %w", err)
	}

	return templates, nil
}

// ListEventsForMonth retrieves the dated event occurrences of a ministry
// inside one calendar month, ordered by date
func (d *DB) ListEventsForMonth(ctx context.Context, ministryID int64, year int, month time.Month) ([]db.Event, error) {
	start, end := monthRange(year, month)

	rows, err := d.pool.Query(ctx, `
		SELECT e.id, e.service_id, e.event_date
		FROM events e
		JOIN service_templates s ON s.id = e.service_id
		WHERE s.ministry_id = $1 AND e.event_date >= $2 AND e.event_date < $3
		ORDER BY e.event_date, e.id
	`, ministryID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var events []db.Event
	for rows.Next() {
		var e db.Event
		if err := rows.Scan(&e.ID, &e.ServiceID, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// ReplaceEventsForMonth deletes the ministry's events inside the month and
// inserts the given occurrences in their place, all in one transaction.
// Cascades clear any schedule rows hanging off the deleted events. Returns
// the number of events inserted.
func (d *DB) ReplaceEventsForMonth(ctx context.Context, ministryID int64, year int, month time.Month, events []db.Event) (int, error) {
	start, end := monthRange(year, month)

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		DELETE FROM events
		WHERE service_id IN (SELECT id FROM service_templates WHERE ministry_id = $1)
		  AND event_date >= $2 AND event_date < $3
	`, ministryID, start, end)
	if err != nil {
		return 0, fmt.Errorf("failed to delete existing events: %w", err)
	}

	for _, e := range events {
		_, err := tx.Exec(ctx, `
			INSERT INTO events (service_id, event_date)
			VALUES ($1, $2)
		`, e.ServiceID, e.Date)
		if err != nil {
			return 0, fmt.Errorf("failed to insert event: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return len(events), nil
}
