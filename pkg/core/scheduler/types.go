package scheduler

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hernanbarrientos/escala-connect/pkg/core/model"
)

// Slot is a single opening: one role instance at one event
type Slot struct {
	// Key uniquely identifies the slot within a run
	Key string

	// EventID of the parent event
	EventID int64

	// ServiceID of the parent event's template, for availability matching
	ServiceID int64

	// Date of the parent event (date only)
	Date time.Time

	// RoleID required by this slot
	RoleID int64

	// Instance is the 1-based index distinguishing multiple openings of the
	// same role at the same event
	Instance int
}

// SlotKey builds the composite key for an (event, role, instance) opening
func SlotKey(eventID, roleID int64, instance int) string {
	return fmt.Sprintf("ev%d-role%d-inst%d", eventID, roleID, instance)
}

// Input is the snapshot the allocator works on. It is loaded once per run
// and never touches storage.
type Input struct {
	// Events for the target month
	Events []model.Event

	// Roles configured for the ministry
	Roles []model.Role

	// Volunteers eligible for this run (active only)
	Volunteers []*model.Volunteer

	// Groups of linked volunteers, placed all-or-nothing
	Groups []*model.Group

	// Quotas maps serviceID -> roleID -> required quantity
	Quotas map[int64]map[int64]int

	// Rand drives shuffles and tie-breaks. Nil means time-seeded.
	Rand *rand.Rand

	// MaxRounds caps each tier's fixed-point loop. Zero applies the
	// candidates x slots bound.
	MaxRounds int
}

// Result is the outcome of a generation run
type Result struct {
	// Assignments produced, in allocation order
	Assignments []model.Assignment

	// OpenSlots left unfilled after every tier, including forced fills.
	// Not an error; the administrative layer fills these by hand.
	OpenSlots []Slot

	// TotalSlots is the size of the expanded slot pool before allocation
	TotalSlots int

	// Diagnostics collects non-fatal notes, e.g. groups skipped permanently
	Diagnostics []string
}

// state is the shared mutable run state both phases operate on
type state struct {
	in  Input
	rng *rand.Rand

	roles  map[int64]model.Role
	events map[int64]model.Event

	// openSlots is the live pool; a slot is deleted the instant it is filled
	openSlots map[string]*Slot

	// eventLoad counts volunteers already assigned per event (fairness)
	eventLoad map[int64]int

	// assignedCount tracks per-volunteer assignments this run
	assignedCount map[int64]int

	// daysAssigned tracks per-volunteer calendar days already worked,
	// keyed by dateKey
	daysAssigned map[int64]map[string]bool

	// groupDeployments counts all-or-nothing placements per group
	groupDeployments map[int64]int

	result Result
}

func newState(in Input, rng *rand.Rand) *state {
	s := &state{
		in:               in,
		rng:              rng,
		roles:            make(map[int64]model.Role, len(in.Roles)),
		events:           make(map[int64]model.Event, len(in.Events)),
		eventLoad:        make(map[int64]int),
		assignedCount:    make(map[int64]int),
		daysAssigned:     make(map[int64]map[string]bool),
		groupDeployments: make(map[int64]int),
	}
	for _, r := range in.Roles {
		s.roles[r.ID] = r
	}
	for _, ev := range in.Events {
		s.events[ev.ID] = ev
	}
	return s
}

// dateKey normalizes a date for same-day conflict checks
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// assign commits one volunteer to one slot and updates every counter.
// The slot leaves the open pool here and only here.
func (s *state) assign(v *model.Volunteer, slot *Slot) {
	s.result.Assignments = append(s.result.Assignments, model.Assignment{
		EventID:     slot.EventID,
		RoleID:      slot.RoleID,
		VolunteerID: v.ID,
		Instance:    slot.Instance,
	})

	s.assignedCount[v.ID]++
	days := s.daysAssigned[v.ID]
	if days == nil {
		days = make(map[string]bool)
		s.daysAssigned[v.ID] = days
	}
	days[dateKey(slot.Date)] = true

	s.eventLoad[slot.EventID]++
	delete(s.openSlots, slot.Key)
}

func (s *state) isOpen(key string) bool {
	_, ok := s.openSlots[key]
	return ok
}

func (s *state) addDiagnostic(format string, args ...any) {
	s.result.Diagnostics = append(s.result.Diagnostics, fmt.Sprintf(format, args...))
}

// maxRounds returns the hard bound for a tier's fixed-point loop
func (s *state) maxRounds(candidates, slots int) int {
	if s.in.MaxRounds > 0 {
		return s.in.MaxRounds
	}
	return candidates*slots + 1
}
