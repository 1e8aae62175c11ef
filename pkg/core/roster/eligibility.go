package roster

import (
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// eligible runs every hard constraint for one (role, date, member) triple.
// It is the hot-path filter: it answers pass/fail only and records nothing.
// DiagnoseEmptySlot re-derives the failing constraints when a slot stays
// open, so this function stays free of string-building.
func (e *Engine) eligible(role model.Role, date time.Time, m model.Member) bool {
	// 1. Role flag and active membership
	if !m.Active || !m.HasRole(role) {
		return false
	}

	// 2. Blackout for the date
	if e.snap.IsBlackedOut(m.ID, date) {
		return false
	}

	pref := e.snap.Preference(m.ID)

	// A member with no preference record is schedulable by default; only
	// the blackout and role-flag checks above apply from here on, plus the
	// shared-state checks below that don't depend on a record.
	if pref != nil {
		// 3. Hard opt-outs
		if pref.DontSchedule || pref.SchedulingSuspended {
			return false
		}

		// 4. Preferred weekend day, when the policy treats it as hard
		if e.policy == PreferredDayHard && pref.PreferredDay != nil && date.Weekday() != *pref.PreferredDay {
			return false
		}
	}

	// 5. No dual role on the same date
	if _, taken := e.assignedToday[m.ID]; taken {
		return false
	}

	// 6. Adjacency: no same role on consecutive operational dates unless
	// the member allows weekend doubles
	if e.lastAssigned[role] == m.ID {
		if pref == nil || !pref.AllowWeekendDouble {
			return false
		}
	}

	// 7. Monthly cap, counting assignments committed by prior runs
	cap := model.DefaultMonthlyCap
	if pref != nil {
		cap = pref.MonthlyCap()
	}
	if cap != model.UnlimitedMonthlyCap && e.monthlyCounts[m.ID] >= cap {
		return false
	}

	// 8. Avoidance conflict with anyone already assigned today
	for otherID := range e.assignedToday {
		if e.snap.Avoids(m.ID, otherID) {
			return false
		}
	}

	return true
}
