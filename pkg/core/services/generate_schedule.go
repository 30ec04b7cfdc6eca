package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hernanbarrientos/escala-connect/pkg/core/scheduler"
	"github.com/hernanbarrientos/escala-connect/pkg/db"
)

// Generation outcome statuses
const (
	StatusSuccess = "success"
	StatusInfo    = "info"
	StatusError   = "error"
)

// GenerateScheduleStore defines the database operations needed to generate a
// schedule
type GenerateScheduleStore interface {
	ListEventsForMonth(ctx context.Context, ministryID int64, year int, month time.Month) ([]db.Event, error)
	ListRoles(ctx context.Context, ministryID int64) ([]db.Role, error)
	GetRoleQuotas(ctx context.Context, ministryID int64) (map[int64]map[int64]int, error)
	ListVolunteers(ctx context.Context, ministryID int64) ([]db.Volunteer, error)
	ListGroups(ctx context.Context, ministryID int64) ([]db.Group, error)
	WipeAssignments(ctx context.Context, ministryID int64, year int, month time.Month) (int64, error)
	SaveAssignments(ctx context.Context, assignments []db.Assignment) error
}

// GenerateScheduleParams holds the inputs for one generation run. Seed, when
// set, makes the run reproducible. DryRun computes a schedule without
// touching stored assignments.
type GenerateScheduleParams struct {
	MinistryID int64
	Year       int
	Month      time.Month
	Seed       *int64
	DryRun     bool
	MaxRounds  int
}

// GenerateScheduleResult reports how a generation run went
type GenerateScheduleResult struct {
	Status          string
	Message         string
	RunID           string
	AssignmentCount int
	OpenSlotCount   int
	TotalSlots      int
	Diagnostics     []string
}

// GenerateSchedule wipes the month's stored schedule, loads the roster and
// event calendar, runs the allocator and saves the result. On a database
// failure the returned result carries StatusError alongside the error.
func GenerateSchedule(ctx context.Context, database GenerateScheduleStore, logger *zap.Logger, params GenerateScheduleParams) (*GenerateScheduleResult, error) {
	runID := uuid.New().String()
	logger = logger.With(zap.String("run_id", runID))

	logger.Info("Starting schedule generation",
		zap.Int64("ministry_id", params.MinistryID),
		zap.Int("year", params.Year),
		zap.String("month", params.Month.String()),
		zap.Bool("dry_run", params.DryRun))

	fail := func(err error) (*GenerateScheduleResult, error) {
		return &GenerateScheduleResult{Status: StatusError, Message: err.Error(), RunID: runID}, err
	}

	if !params.DryRun {
		wiped, err := database.WipeAssignments(ctx, params.MinistryID, params.Year, params.Month)
		if err != nil {
			return fail(fmt.Errorf("failed to wipe existing schedule: %w", err))
		}
		logger.Debug("Wiped existing schedule", zap.Int64("rows", wiped))
	}

	events, err := database.ListEventsForMonth(ctx, params.MinistryID, params.Year, params.Month)
	if err != nil {
		return fail(fmt.Errorf("failed to fetch events: %w", err))
	}
	if len(events) == 0 {
		logger.Info("No events in month, nothing to generate")
		return &GenerateScheduleResult{
			Status:  StatusInfo,
			Message: fmt.Sprintf("no events found for %04d-%02d, create the month's events first", params.Year, params.Month),
			RunID:   runID,
		}, nil
	}

	roles, err := database.ListRoles(ctx, params.MinistryID)
	if err != nil {
		return fail(fmt.Errorf("failed to fetch roles: %w", err))
	}
	quotas, err := database.GetRoleQuotas(ctx, params.MinistryID)
	if err != nil {
		return fail(fmt.Errorf("failed to fetch role quotas: %w", err))
	}
	volunteerRecords, err := database.ListVolunteers(ctx, params.MinistryID)
	if err != nil {
		return fail(fmt.Errorf("failed to fetch volunteers: %w", err))
	}
	groupRecords, err := database.ListGroups(ctx, params.MinistryID)
	if err != nil {
		return fail(fmt.Errorf("failed to fetch volunteer groups: %w", err))
	}
	if len(volunteerRecords) == 0 {
		logger.Info("No active volunteers, nothing to generate")
		return &GenerateScheduleResult{
			Status:  StatusInfo,
			Message: "no active volunteers registered for the ministry",
			RunID:   runID,
		}, nil
	}

	logger.Debug("Roster loaded",
		zap.Int("events", len(events)),
		zap.Int("roles", len(roles)),
		zap.Int("volunteers", len(volunteerRecords)),
		zap.Int("groups", len(groupRecords)))

	var rng *rand.Rand
	if params.Seed != nil {
		rng = rand.New(rand.NewSource(*params.Seed))
		logger.Debug("Using fixed random seed", zap.Int64("seed", *params.Seed))
	}

	volunteers := buildVolunteers(volunteerRecords)
	res := scheduler.Generate(scheduler.Input{
		Events:     buildEvents(events),
		Roles:      buildRoles(roles),
		Volunteers: volunteers,
		Groups:     buildGroups(groupRecords, volunteers),
		Quotas:     quotas,
		Rand:       rng,
		MaxRounds:  params.MaxRounds,
	})

	if res.TotalSlots == 0 {
		logger.Info("No openings to fill, check role quotas")
		return &GenerateScheduleResult{
			Status:  StatusInfo,
			Message: "the month's events have no role quotas configured",
			RunID:   runID,
		}, nil
	}

	if !params.DryRun {
		assignments := make([]db.Assignment, 0, len(res.Assignments))
		for _, a := range res.Assignments {
			assignments = append(assignments, db.Assignment{
				EventID:     a.EventID,
				RoleID:      a.RoleID,
				VolunteerID: a.VolunteerID,
				Instance:    a.Instance,
			})
		}
		if err := database.SaveAssignments(ctx, assignments); err != nil {
			return fail(fmt.Errorf("failed to save schedule: %w", err))
		}
	}

	filled := len(res.Assignments)
	logger.Info("Schedule generation finished",
		zap.Int("filled", filled),
		zap.Int("total_slots", res.TotalSlots),
		zap.Int("open_slots", len(res.OpenSlots)))

	message := fmt.Sprintf("schedule generated: %d of %d openings filled", filled, res.TotalSlots)
	if len(res.OpenSlots) > 0 {
		message += fmt.Sprintf(", %d left open", len(res.OpenSlots))
	}

	return &GenerateScheduleResult{
		Status:          StatusSuccess,
		Message:         message,
		RunID:           runID,
		AssignmentCount: filled,
		OpenSlotCount:   len(res.OpenSlots),
		TotalSlots:      res.TotalSlots,
		Diagnostics:     res.Diagnostics,
	}, nil
}
