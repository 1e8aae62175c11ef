package roster

import (
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// Test fixtures. July 2025 weekends: Sat 5, Sun 6, 12, 13, 19, 20, 26, 27.

func testMember(id string, roles ...model.Role) model.Member {
	m := model.Member{
		ID:        id,
		FirstName: "Test",
		LastName:  id,
		Active:    true,
		JoinedOn:  time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, r := range roles {
		switch r {
		case model.RoleInstructor:
			m.Instructor = true
		case model.RoleDutyOfficer:
			m.DutyOfficer = true
		case model.RoleAssistantDutyOfficer:
			m.AssistantDutyOfficer = true
		case model.RoleTowPilot:
			m.TowPilot = true
		}
	}
	return m
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func weekday(d time.Weekday) *time.Weekday {
	return &d
}

// singleWeekendSeason bounds July 2025 to the first weekend only
func singleWeekendSeason() []model.SeasonBounds {
	return []model.SeasonBounds{{
		Year:  2025,
		Start: date(2025, time.July, 5),
		End:   date(2025, time.July, 6),
	}}
}

// saturdayOnlySeason bounds July 2025 to a single Saturday
func saturdayOnlySeason() []model.SeasonBounds {
	return []model.SeasonBounds{{
		Year:  2025,
		Start: date(2025, time.July, 5),
		End:   date(2025, time.July, 5),
	}}
}

func snapshotOf(members []model.Member, prefs []model.DutyPreference) *Snapshot {
	return NewSnapshot(members, prefs, nil, nil, nil, nil)
}
