package roster

import (
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// RoleScarcity measures how thin the supply is for one role across a window
type RoleScarcity struct {
	// Score grows as supply shrinks relative to the slots that need filling
	Score float64

	// TotalMembers is the count of active flag-holders who are not hard
	// opted out for the whole window
	TotalMembers int
}

// CalculateRoleScarcity scores a role's staffing risk over the given
// operational dates. One slot per role per date. A role nobody can ever
// fill sorts above every staffed role.
func CalculateRoleScarcity(snap *Snapshot, role model.Role, operationalDates []time.Time) RoleScarcity {
	total := 0
	for _, m := range snap.Members {
		if !m.Active || !m.HasRole(role) {
			continue
		}
		if pref := snap.Preference(m.ID); pref != nil {
			if pref.DontSchedule || pref.SchedulingSuspended {
				continue
			}
		}
		total++
	}

	slots := len(operationalDates)
	s := RoleScarcity{TotalMembers: total}
	if total == 0 {
		s.Score = float64(slots + 1)
	} else {
		s.Score = float64(slots) / float64(total)
	}
	return s
}
