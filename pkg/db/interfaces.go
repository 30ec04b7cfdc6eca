package db

import (
	"context"
	"time"
)

// EventStore defines the interface for event calendar operations
type EventStore interface {
	ListServiceTemplates(ctx context.Context, ministryID int64) ([]ServiceTemplate, error)
	ListEventsForMonth(ctx context.Context, ministryID int64, year int, month time.Month) ([]Event, error)
	ReplaceEventsForMonth(ctx context.Context, ministryID int64, year int, month time.Month, events []Event) (int, error)
}

// RosterStore defines the interface for roster lookups used by schedule
// generation
type RosterStore interface {
	ListRoles(ctx context.Context, ministryID int64) ([]Role, error)
	GetRoleQuotas(ctx context.Context, ministryID int64) (map[int64]map[int64]int, error)
	ListVolunteers(ctx context.Context, ministryID int64) ([]Volunteer, error)
	ListGroups(ctx context.Context, ministryID int64) ([]Group, error)
}

// ScheduleStore defines the interface for reading and writing generated
// schedules
type ScheduleStore interface {
	WipeAssignments(ctx context.Context, ministryID int64, year int, month time.Month) (int64, error)
	SaveAssignments(ctx context.Context, assignments []Assignment) error
	GetSchedule(ctx context.Context, ministryID int64, year int, month time.Month) ([]ScheduleEntry, error)
}

// Database defines the interface for all database operations.
// postgres.DB implements this interface.
type Database interface {
	EventStore
	RosterStore
	ScheduleStore
}
