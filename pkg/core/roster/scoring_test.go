package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

func TestEffectivePercent_SingleRoleAlwaysFull(t *testing.T) {
	m := testMember("solo", model.RoleInstructor)

	// Even a stored 0% cannot penalize a single-role member
	pref := &model.DutyPreference{
		MemberID:           "solo",
		DutyOfficerPercent: 100,
	}
	assert.Equal(t, 100, effectivePercent(m, pref, model.RoleInstructor))
	assert.Equal(t, 100, effectivePercent(m, nil, model.RoleInstructor))
}

func TestEffectivePercent_NoSignalSplitsEvenly(t *testing.T) {
	m := testMember("both", model.RoleInstructor, model.RoleTowPilot)

	assert.Equal(t, 50, effectivePercent(m, nil, model.RoleInstructor))

	// All-zero percentages mean "no signal", same as a missing record
	zeroPref := &model.DutyPreference{MemberID: "both"}
	assert.Equal(t, 50, effectivePercent(m, zeroPref, model.RoleTowPilot))
}

func TestEffectivePercent_StoredAffinityUsed(t *testing.T) {
	m := testMember("weighted", model.RoleInstructor, model.RoleTowPilot)
	pref := &model.DutyPreference{
		MemberID:          "weighted",
		InstructorPercent: 80,
		TowPilotPercent:   20,
	}

	assert.Equal(t, 80, effectivePercent(m, pref, model.RoleInstructor))
	assert.Equal(t, 20, effectivePercent(m, pref, model.RoleTowPilot))
}

func TestScoreCandidate_AffinityOutranksFairness(t *testing.T) {
	members := []model.Member{
		testMember("eager", model.RoleInstructor, model.RoleTowPilot),
		testMember("meh", model.RoleInstructor, model.RoleTowPilot),
	}
	prefs := []model.DutyPreference{
		{MemberID: "eager", InstructorPercent: 90, TowPilotPercent: 10},
		{MemberID: "meh", InstructorPercent: 10, TowPilotPercent: 90},
	}

	snap := snapshotOf(members, prefs)
	e := NewEngine(snap, NewCalendar(nil), Options{Seed: 1})

	d := date(2025, time.July, 5)
	eagerScore := e.scoreCandidate(members[0], model.RoleInstructor, d)
	mehScore := e.scoreCandidate(members[1], model.RoleInstructor, d)
	assert.Greater(t, eagerScore, mehScore)
}

func TestScoreCandidate_LeastAssignedPreferred(t *testing.T) {
	members := []model.Member{
		testMember("busy", model.RoleTowPilot),
		testMember("fresh", model.RoleTowPilot),
	}

	snap := snapshotOf(members, nil)
	e := NewEngine(snap, NewCalendar(nil), Options{Seed: 1})
	e.runCounts["busy"] = 3

	d := date(2025, time.July, 5)
	busyScore := e.scoreCandidate(members[0], model.RoleTowPilot, d)
	freshScore := e.scoreCandidate(members[1], model.RoleTowPilot, d)
	assert.Greater(t, freshScore, busyScore)
}

func TestScoreCandidate_PairingBonusApplied(t *testing.T) {
	members := []model.Member{
		testMember("pilot", model.RoleTowPilot),
	}
	pairings := []model.DutyPairing{{MemberID: "pilot", PartnerID: "chief"}}

	snap := NewSnapshot(members, nil, nil, nil, pairings, nil)
	d := date(2025, time.July, 5)

	without := NewEngine(snap, NewCalendar(nil), Options{Seed: 1})
	without.assignedToday = map[string]model.Role{}
	baseline := without.scoreCandidate(members[0], model.RoleTowPilot, d)

	with := NewEngine(snap, NewCalendar(nil), Options{Seed: 1})
	with.assignedToday = map[string]model.Role{"chief": model.RoleDutyOfficer}
	boosted := with.scoreCandidate(members[0], model.RoleTowPilot, d)

	assert.InDelta(t, PairingBonus, boosted-baseline, TieBreakJitter)
}
