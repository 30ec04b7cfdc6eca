package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

// VacantLabel marks an opening nobody was assigned to
const VacantLabel = "**VAGO**"

// ViewScheduleStore defines the database operations needed to display a
// month's schedule
type ViewScheduleStore interface {
	GetSchedule(ctx context.Context, ministryID int64, year int, month time.Month) ([]db.ScheduleEntry, error)
}

// ScheduleSlot is one opening of an event, filled or vacant
type ScheduleSlot struct {
	RoleName      string
	Instance      int
	VolunteerName string
}

// Filled reports whether somebody holds the slot
func (s ScheduleSlot) Filled() bool {
	return s.VolunteerName != ""
}

// Display returns the volunteer's name or the vacancy marker
func (s ScheduleSlot) Display() string {
	if !s.Filled() {
		return VacantLabel
	}
	return s.VolunteerName
}

// ScheduleDay groups the slots of one event for display
type ScheduleDay struct {
	EventID     int64
	Date        time.Time
	ServiceName string
	Slots       []ScheduleSlot
}

// ViewScheduleResult contains the month's schedule grouped by event
type ViewScheduleResult struct {
	Days        []ScheduleDay
	FilledCount int
	VacantCount int
}

// ViewSchedule fetches the month's schedule with every quota opening
// represented, vacancies included
func ViewSchedule(ctx context.Context, database ViewScheduleStore, logger *zap.Logger, ministryID int64, year int, month time.Month) (*ViewScheduleResult, error) {
	logger.Debug("Fetching schedule",
		zap.Int64("ministry_id", ministryID),
		zap.Int("year", year),
		zap.String("month", month.String()))

	entries, err := database.GetSchedule(ctx, ministryID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule: %w", err)
	}

	result := &ViewScheduleResult{}
	var current *ScheduleDay
	for _, entry := range entries {
		// Entries arrive ordered by date and event, so a change of event ID
		// starts a new day block
		if current == nil || current.EventID != entry.EventID {
			result.Days = append(result.Days, ScheduleDay{
				EventID:     entry.EventID,
				Date:        entry.Date,
				ServiceName: entry.ServiceName,
			})
			current = &result.Days[len(result.Days)-1]
		}

		slot := ScheduleSlot{
			RoleName:      entry.RoleName,
			Instance:      entry.Instance,
			VolunteerName: entry.VolunteerName,
		}
		current.Slots = append(current.Slots, slot)

		if slot.Filled() {
			result.FilledCount++
		} else {
			result.VacantCount++
		}
	}

	logger.Debug("Schedule fetched",
		zap.Int("days", len(result.Days)),
		zap.Int("filled", result.FilledCount),
		zap.Int("vacant", result.VacantCount))

	return result, nil
}
