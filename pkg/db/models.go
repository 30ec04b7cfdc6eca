package db

import "time"

// Ministry scopes every other record. All queries filter by ministry so
// several teams can share one database.
type Ministry struct {
	ID   int64
	Name string
}

// Role is a position volunteers can be scheduled into. Kind and Priority
// match pkg/core/model.Role.
type Role struct {
	ID         int64
	MinistryID int64
	Name       string
	Kind       string
	Priority   int
}

// ServiceTemplate is a recurring weekly service. Weekday uses time.Weekday
// numbering (Sunday = 0).
type ServiceTemplate struct {
	ID         int64
	MinistryID int64
	Name       string
	Weekday    int
}

// Event is one dated occurrence of a service template.
type Event struct {
	ID        int64
	ServiceID int64
	Date      time.Time
}

// Volunteer carries the roster record plus its relation rows flattened into
// ID slices. GroupID is zero for free agents.
type Volunteer struct {
	ID              int64
	MinistryID      int64
	Name            string
	MonthlyLimit    int
	Experience      string
	GroupID         int64
	RoleIDs         []int64
	ServiceIDs      []int64
	BlockedEventIDs []int64
}

// Group is a set of volunteers scheduled together or not at all.
type Group struct {
	ID           int64
	MinistryID   int64
	Name         string
	MonthlyLimit int
}

// Assignment is one filled schedule slot. Instance distinguishes repeated
// openings of the same role at the same event, counting from 1.
type Assignment struct {
	EventID     int64
	RoleID      int64
	VolunteerID int64
	Instance    int
}

// ScheduleEntry is a denormalized schedule row for display. VolunteerID is
// zero and VolunteerName empty when the slot went unfilled.
type ScheduleEntry struct {
	EventID       int64
	Date          time.Time
	ServiceName   string
	RoleID        int64
	RoleName      string
	Instance      int
	VolunteerID   int64
	VolunteerName string
}
