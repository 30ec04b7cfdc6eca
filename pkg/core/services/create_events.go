package services

import (
	"context"
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

// CreateEventsStore defines the database operations needed to materialize a
// month of events
type CreateEventsStore interface {
	ListServiceTemplates(ctx context.Context, ministryID int64) ([]db.ServiceTemplate, error)
	ReplaceEventsForMonth(ctx context.Context, ministryID int64, year int, month time.Month, events []db.Event) (int, error)
}

// CreateEventsResult reports the outcome of materializing a month
type CreateEventsResult struct {
	TemplateCount int
	EventCount    int
}

// time.Weekday numbering to rrule weekdays (Sunday = 0)
var rruleWeekdays = [7]rrule.Weekday{rrule.SU, rrule.MO, rrule.TU, rrule.WE, rrule.TH, rrule.FR, rrule.SA}

// CreateEvents expands the ministry's weekly service templates into dated
// events for one month, replacing whatever the month already had. Replacing
// also clears any schedule saved against the old events.
func CreateEvents(ctx context.Context, database CreateEventsStore, logger *zap.Logger, ministryID int64, year int, month time.Month) (*CreateEventsResult, error) {
	logger.Debug("Materializing month",
		zap.Int64("ministry_id", ministryID),
		zap.Int("year", year),
		zap.String("month", month.String()))

	templates, err := database.ListServiceTemplates(ctx, ministryID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch service templates: %w", err)
	}
	if len(templates) == 0 {
		return nil, fmt.Errorf("no service templates configured for ministry %d", ministryID)
	}

	start, end := monthRange(year, month)

	var events []db.Event
	for _, tmpl := range templates {
		if tmpl.Weekday < 0 || tmpl.Weekday > 6 {
			return nil, fmt.Errorf("service template %d has invalid weekday %d", tmpl.ID, tmpl.Weekday)
		}

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:      rrule.WEEKLY,
			Dtstart:   start,
			Until:     end.Add(-time.Second),
			Byweekday: []rrule.Weekday{rruleWeekdays[tmpl.Weekday]},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build recurrence for template %d: %w", tmpl.ID, err)
		}

		occurrences := rule.All()
		for _, date := range occurrences {
			events = append(events, db.Event{ServiceID: tmpl.ID, Date: date})
		}

		logger.Debug("Template expanded",
			zap.Int64("template_id", tmpl.ID),
			zap.String("name", tmpl.Name),
			zap.Int("occurrences", len(occurrences)))
	}

	count, err := database.ReplaceEventsForMonth(ctx, ministryID, year, month, events)
	if err != nil {
		return nil, fmt.Errorf("failed to replace month's events: %w", err)
	}

	logger.Info("Month materialized",
		zap.Int("templates", len(templates)),
		zap.Int("events", count))

	return &CreateEventsResult{
		TemplateCount: len(templates),
		EventCount:    count,
	}, nil
}
