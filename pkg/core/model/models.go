package model

import (
	"fmt"
	"time"
)

// Role is a schedulable duty role
type Role string

const (
	RoleDutyOfficer          Role = "duty_officer"
	RoleAssistantDutyOfficer Role = "assistant_duty_officer"
	RoleInstructor           Role = "instructor"
	RoleTowPilot             Role = "tow_pilot"
)

// AllRoles returns every schedulable role in display order
func AllRoles() []Role {
	return []Role{RoleDutyOfficer, RoleAssistantDutyOfficer, RoleInstructor, RoleTowPilot}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleDutyOfficer, RoleAssistantDutyOfficer, RoleInstructor, RoleTowPilot:
		return true
	}
	return false
}

// ParseRole converts a role name into a Role, failing on unknown names
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Member represents a club member with per-role schedulability flags.
// A member may hold several role flags at once.
type Member struct {
	ID                   string
	FirstName            string
	LastName             string
	Active               bool
	JoinedOn             time.Time
	Instructor           bool
	DutyOfficer          bool
	AssistantDutyOfficer bool
	TowPilot             bool
}

// HasRole returns true if the member holds the flag for the given role
func (m Member) HasRole(r Role) bool {
	switch r {
	case RoleInstructor:
		return m.Instructor
	case RoleDutyOfficer:
		return m.DutyOfficer
	case RoleAssistantDutyOfficer:
		return m.AssistantDutyOfficer
	case RoleTowPilot:
		return m.TowPilot
	}
	return false
}

// Roles returns every role the member holds a flag for
func (m Member) Roles() []Role {
	roles := make([]Role, 0, 4)
	for _, r := range AllRoles() {
		if m.HasRole(r) {
			roles = append(roles, r)
		}
	}
	return roles
}

// RoleCount returns how many role flags the member holds
func (m Member) RoleCount() int {
	return len(m.Roles())
}

const (
	// DefaultMonthlyCap is applied when a preference record is missing or
	// leaves MaxAssignmentsPerMonth unset. Zero never means unlimited.
	DefaultMonthlyCap = 4

	// UnlimitedMonthlyCap is the explicit sentinel for "no monthly cap"
	UnlimitedMonthlyCap = -1
)

// DutyPreference holds a member's scheduling preferences. Zero or one record
// per member; a member without a record is schedulable with defaults.
type DutyPreference struct {
	MemberID string

	// PreferredDay restricts scheduling to one weekend day. Nil means no
	// preference.
	PreferredDay *time.Weekday

	// DontSchedule is a permanent opt-out; a reason is required
	DontSchedule       bool
	DontScheduleReason string

	// SchedulingSuspended is a temporary opt-out; a reason is required
	SchedulingSuspended bool
	SuspendedReason     string

	// Role affinity percentages. Either all zero (no signal) or they sum
	// to exactly 100. Validated at the edge, not re-checked by the engine.
	InstructorPercent           int
	DutyOfficerPercent          int
	AssistantDutyOfficerPercent int
	TowPilotPercent             int

	// MaxAssignmentsPerMonth caps duty days per calendar month.
	// 0 falls back to DefaultMonthlyCap; UnlimitedMonthlyCap disables the cap.
	MaxAssignmentsPerMonth int

	// AllowWeekendDouble relaxes the no-same-role-on-consecutive-duty-days rule
	AllowWeekendDouble bool
}

// Percent returns the stored affinity percentage for a role
func (p *DutyPreference) Percent(r Role) int {
	switch r {
	case RoleInstructor:
		return p.InstructorPercent
	case RoleDutyOfficer:
		return p.DutyOfficerPercent
	case RoleAssistantDutyOfficer:
		return p.AssistantDutyOfficerPercent
	case RoleTowPilot:
		return p.TowPilotPercent
	}
	return 0
}

// HasAffinity reports whether the member has set any role percentages.
// All-zero percentages mean "no signal", which is distinct from an actively
// chosen 0% for one role.
func (p *DutyPreference) HasAffinity() bool {
	return p.InstructorPercent != 0 ||
		p.DutyOfficerPercent != 0 ||
		p.AssistantDutyOfficerPercent != 0 ||
		p.TowPilotPercent != 0
}

// MonthlyCap resolves the effective monthly assignment cap
func (p *DutyPreference) MonthlyCap() int {
	if p.MaxAssignmentsPerMonth == UnlimitedMonthlyCap {
		return UnlimitedMonthlyCap
	}
	if p.MaxAssignmentsPerMonth <= 0 {
		return DefaultMonthlyCap
	}
	return p.MaxAssignmentsPerMonth
}

// MemberBlackout excludes a member from duty on a single date
type MemberBlackout struct {
	MemberID string
	Date     time.Time
}

// DutyPairing is an advisory edge: the member prefers to serve on days where
// the partner is also assigned. It only biases candidate scoring upward.
type DutyPairing struct {
	MemberID  string
	PartnerID string
}

// DutyAvoidance is a hard edge: neither member may be assigned on a date
// where the other already holds a role. Enforced in both directions.
type DutyAvoidance struct {
	MemberID string
	AvoidID  string
}

// SeasonBounds describes the part of the year during which duty days occur.
// Absence of a record for a year means every weekend date qualifies.
type SeasonBounds struct {
	Year  int
	Start time.Time
	End   time.Time
}
