package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

func TestDiagnoseEmptySlot_BucketsEveryExcludedMember(t *testing.T) {
	members := []model.Member{
		testMember("optout", model.RoleInstructor),
		testMember("blocked", model.RoleInstructor),
		testMember("tired", model.RoleInstructor),
		testMember("busy", model.RoleInstructor, model.RoleDutyOfficer),
	}
	prefs := []model.DutyPreference{
		{MemberID: "optout", DontSchedule: true, DontScheduleReason: "retired from duty"},
	}
	blackouts := []model.MemberBlackout{{MemberID: "blocked", Date: date(2025, time.July, 6)}}

	snap := NewSnapshot(members, prefs, blackouts, nil, nil, nil)

	diag := DiagnoseEmptySlot(snap, model.RoleInstructor, date(2025, time.July, 6), SlotState{
		AssignedToday: map[string]model.Role{"busy": model.RoleDutyOfficer},
		LastAssigned:  map[model.Role]string{model.RoleInstructor: "tired"},
		MonthlyCounts: map[string]int{"tired": 1},
	})

	require.NotNil(t, diag)
	assert.Equal(t, []string{"optout"}, diag.Reasons[ReasonDontSchedule])
	assert.Equal(t, []string{"blocked"}, diag.Reasons[ReasonBlackout])
	assert.Equal(t, []string{"tired"}, diag.Reasons[ReasonAssignedYesterday])
	assert.Equal(t, []string{"busy"}, diag.Reasons[ReasonAlreadyAssignedToday])
	assert.NotEmpty(t, diag.Summary)
	assert.Contains(t, diag.Summary, "0 of 4")
}

func TestDiagnoseEmptySlot_MemberCanFailSeveralConstraints(t *testing.T) {
	members := []model.Member{testMember("unlucky", model.RoleTowPilot)}
	prefs := []model.DutyPreference{{
		MemberID:            "unlucky",
		SchedulingSuspended: true,
		SuspendedReason:     "medical",
		PreferredDay:        weekday(time.Saturday),
	}}
	blackouts := []model.MemberBlackout{{MemberID: "unlucky", Date: date(2025, time.July, 6)}}

	snap := NewSnapshot(members, prefs, blackouts, nil, nil, nil)

	diag := DiagnoseEmptySlot(snap, model.RoleTowPilot, date(2025, time.July, 6), SlotState{})

	assert.Contains(t, diag.Reasons[ReasonSchedulingSuspended], "unlucky")
	assert.Contains(t, diag.Reasons[ReasonBlackout], "unlucky")
	assert.Contains(t, diag.Reasons[ReasonPreferredDayMismatch], "unlucky")
}

func TestDiagnoseEmptySlot_AvoidanceConflict(t *testing.T) {
	members := []model.Member{testMember("second", model.RoleTowPilot)}
	avoidances := []model.DutyAvoidance{{MemberID: "first", AvoidID: "second"}}

	snap := NewSnapshot(members, nil, nil, avoidances, nil, nil)

	diag := DiagnoseEmptySlot(snap, model.RoleTowPilot, date(2025, time.July, 5), SlotState{
		AssignedToday: map[string]model.Role{"first": model.RoleDutyOfficer},
	})

	assert.Contains(t, diag.Reasons[ReasonAvoidanceConflict], "second")
}

func TestDiagnoseEmptySlot_EmptyPool(t *testing.T) {
	snap := snapshotOf([]model.Member{testMember("officer", model.RoleDutyOfficer)}, nil)

	diag := DiagnoseEmptySlot(snap, model.RoleInstructor, date(2025, time.July, 5), SlotState{})

	assert.Empty(t, diag.Reasons)
	assert.Contains(t, diag.Summary, "no active members")
}

func TestDiagnoseEmptySlot_MonthlyCapCategory(t *testing.T) {
	members := []model.Member{testMember("maxed", model.RoleDutyOfficer)}
	snap := snapshotOf(members, nil)

	diag := DiagnoseEmptySlot(snap, model.RoleDutyOfficer, date(2025, time.July, 5), SlotState{
		MonthlyCounts: map[string]int{"maxed": model.DefaultMonthlyCap},
	})

	assert.Contains(t, diag.Reasons[ReasonMonthlyCapReached], "maxed")
	assert.Contains(t, diag.Summary, "over monthly cap")
}
