package model

import "time"

// RoleKind classifies roles for allocation ordering
type RoleKind string

const (
	// RolePrincipal roles are filled first, in ascending Priority order
	RolePrincipal RoleKind = "PRINCIPAL"
	// RoleSupport is the generic helper role groups lean on
	RoleSupport RoleKind = "SUPPORT"
)

func (k RoleKind) IsValid() bool {
	return k == RolePrincipal || k == RoleSupport
}

// ExperienceLevel orders volunteers within the support allocation tier
type ExperienceLevel string

const (
	ExperienceBeginner     ExperienceLevel = "BEGINNER"
	ExperienceIntermediate ExperienceLevel = "INTERMEDIATE"
	ExperienceAdvanced     ExperienceLevel = "ADVANCED"
)

func (e ExperienceLevel) IsValid() bool {
	return e == ExperienceBeginner || e == ExperienceIntermediate || e == ExperienceAdvanced
}

// Role is a ministry function a volunteer can be qualified for
type Role struct {
	ID       int64
	Name     string
	Kind     RoleKind
	Priority int // lower fills first among principal roles
}

// ServiceTemplate is a recurring weekly service (e.g. "Sunday evening")
type ServiceTemplate struct {
	ID      int64
	Name    string
	Weekday time.Weekday
}

// Event is one dated occurrence of a service template
type Event struct {
	ID        int64
	ServiceID int64
	Date      time.Time // date only, midnight UTC
}

// Volunteer represents a volunteer with qualifications and constraints
type Volunteer struct {
	ID           int64
	Name         string
	MonthlyLimit int
	Experience   ExperienceLevel
	GroupID      int64 // 0 means free agent

	// RoleIDs the volunteer is qualified for
	RoleIDs map[int64]bool

	// ServiceIDs the volunteer is available for on a weekly basis
	ServiceIDs map[int64]bool

	// BlockedEventIDs are one-off unavailability overrides for the month
	BlockedEventIDs map[int64]bool
}

// HasGroup reports whether the volunteer belongs to a linked group
func (v *Volunteer) HasGroup() bool {
	return v.GroupID != 0
}

// Group is a set of linked volunteers placed all-or-nothing
type Group struct {
	ID           int64
	MonthlyLimit int // deployments per month for the group as a unit
	Members      []*Volunteer
}

// Assignment binds a volunteer to one slot of the month's schedule
type Assignment struct {
	EventID     int64
	RoleID      int64
	VolunteerID int64
	Instance    int // 1-based, distinguishes multiple openings of a role
}
