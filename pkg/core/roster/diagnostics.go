package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// ReasonCategory names one constraint that excluded members from a slot
type ReasonCategory string

const (
	ReasonDontSchedule         ReasonCategory = "dont_schedule"
	ReasonSchedulingSuspended  ReasonCategory = "scheduling_suspended"
	ReasonBlackout             ReasonCategory = "blackout"
	ReasonAssignedYesterday    ReasonCategory = "assigned_yesterday"
	ReasonAlreadyAssignedToday ReasonCategory = "already_assigned_today"
	ReasonAvoidanceConflict    ReasonCategory = "avoidance_conflict"
	ReasonMonthlyCapReached    ReasonCategory = "monthly_cap_reached"
	ReasonPreferredDayMismatch ReasonCategory = "preferred_day_mismatch"
)

// reasonOrder fixes the category order in summaries
var reasonOrder = []ReasonCategory{
	ReasonDontSchedule,
	ReasonSchedulingSuspended,
	ReasonBlackout,
	ReasonAssignedYesterday,
	ReasonAlreadyAssignedToday,
	ReasonAvoidanceConflict,
	ReasonMonthlyCapReached,
	ReasonPreferredDayMismatch,
}

// ReasonOrder returns the category display order used in summaries
func ReasonOrder() []ReasonCategory {
	return append([]ReasonCategory(nil), reasonOrder...)
}

var reasonLabels = map[ReasonCategory]string{
	ReasonDontSchedule:         "opted out",
	ReasonSchedulingSuspended:  "suspended",
	ReasonBlackout:             "blacked out",
	ReasonAssignedYesterday:    "assigned yesterday",
	ReasonAlreadyAssignedToday: "already on duty today",
	ReasonAvoidanceConflict:    "avoidance conflict",
	ReasonMonthlyCapReached:    "over monthly cap",
	ReasonPreferredDayMismatch: "wrong weekend day",
}

// SlotDiagnosis explains why a slot could not be filled
type SlotDiagnosis struct {
	// Reasons buckets excluded member IDs by failing constraint. A member
	// can appear under several categories.
	Reasons map[ReasonCategory][]string

	// Summary is a short human-readable rollup for the roster editor
	Summary string
}

// SlotState carries the per-date engine state a diagnosis needs
type SlotState struct {
	// AssignedToday maps member ID to their role on the date in question
	AssignedToday map[string]model.Role

	// LastAssigned maps role to the member who held it on the immediately
	// preceding operational date; nil when unknown
	LastAssigned map[model.Role]string

	// MonthlyCounts is the running per-member assignment count for the
	// month, including prior published runs
	MonthlyCounts map[string]int

	// Policy controls whether preferred-day mismatches exclude or merely
	// get reported
	Policy PreferredDayPolicy
}

// DiagnoseEmptySlot re-examines the full pool of active flag-holders for a
// (role, date) pair and buckets every excluded member by the constraints
// they fail. Unlike the eligibility filter it never short-circuits: one
// member can land in several buckets. The output is informational; the
// assignment decision has already been made by the time this runs.
func DiagnoseEmptySlot(snap *Snapshot, role model.Role, date time.Time, st SlotState) *SlotDiagnosis {
	d := &SlotDiagnosis{Reasons: make(map[ReasonCategory][]string)}

	poolSize := 0
	eligibleCount := 0

	for _, m := range snap.Members {
		if !m.Active || !m.HasRole(role) {
			continue
		}
		poolSize++

		failed := diagnoseMember(snap, m, role, date, st)
		if len(failed) == 0 {
			eligibleCount++
			continue
		}
		for _, cat := range failed {
			d.Reasons[cat] = append(d.Reasons[cat], m.ID)
		}
	}

	d.Summary = buildSummary(role, poolSize, eligibleCount, d.Reasons)
	return d
}

// diagnoseMember returns every category the member fails for the slot
func diagnoseMember(snap *Snapshot, m model.Member, role model.Role, date time.Time, st SlotState) []ReasonCategory {
	var failed []ReasonCategory
	pref := snap.Preference(m.ID)

	if pref != nil && pref.DontSchedule {
		failed = append(failed, ReasonDontSchedule)
	}
	if pref != nil && pref.SchedulingSuspended {
		failed = append(failed, ReasonSchedulingSuspended)
	}
	if snap.IsBlackedOut(m.ID, date) {
		failed = append(failed, ReasonBlackout)
	}

	if st.LastAssigned != nil && st.LastAssigned[role] == m.ID {
		if pref == nil || !pref.AllowWeekendDouble {
			failed = append(failed, ReasonAssignedYesterday)
		}
	}

	if _, taken := st.AssignedToday[m.ID]; taken {
		failed = append(failed, ReasonAlreadyAssignedToday)
	}

	for otherID := range st.AssignedToday {
		if snap.Avoids(m.ID, otherID) {
			failed = append(failed, ReasonAvoidanceConflict)
			break
		}
	}

	cap := model.DefaultMonthlyCap
	if pref != nil {
		cap = pref.MonthlyCap()
	}
	if cap != model.UnlimitedMonthlyCap && st.MonthlyCounts[m.ID] >= cap {
		failed = append(failed, ReasonMonthlyCapReached)
	}

	// Reported under both policies so a manager can see who was filtered
	// or deprioritized for being on the wrong weekend day
	if pref != nil && pref.PreferredDay != nil && date.Weekday() != *pref.PreferredDay {
		failed = append(failed, ReasonPreferredDayMismatch)
	}

	return failed
}

func buildSummary(role model.Role, poolSize, eligibleCount int, reasons map[ReasonCategory][]string) string {
	head := fmt.Sprintf("%d of %d %s candidates eligible", eligibleCount, poolSize, role)
	if poolSize == 0 {
		return fmt.Sprintf("no active members hold the %s role", role)
	}

	parts := make([]string, 0, len(reasons))
	for _, cat := range reasonOrder {
		if ids := reasons[cat]; len(ids) > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", len(ids), reasonLabels[cat]))
		}
	}
	if len(parts) == 0 {
		return head
	}
	return head + ": " + strings.Join(parts, ", ")
}
