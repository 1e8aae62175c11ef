package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

func TestStaffingReport_OrdersByScarcity(t *testing.T) {
	// Four duty officers, two instructors, one tow pilot, no assistants
	store := &mockRosterStore{
		members: []model.Member{
			testMember("a", model.RoleDutyOfficer),
			testMember("b", model.RoleDutyOfficer),
			testMember("c", model.RoleDutyOfficer),
			testMember("d", model.RoleDutyOfficer),
			testMember("e", model.RoleInstructor),
			testMember("f", model.RoleInstructor),
			testMember("g", model.RoleTowPilot),
		},
		seasons: julySeason(),
	}

	report, err := StaffingReport(
		context.Background(), store, zap.NewNop(),
		2025, time.July, nil,
	)
	require.NoError(t, err)
	require.Len(t, report, 4)

	// Zero-supply roles sort above everything else
	assert.Equal(t, model.RoleAssistantDutyOfficer, report[0].Role)
	assert.Equal(t, 0, report[0].AvailableMembers)

	assert.Equal(t, model.RoleTowPilot, report[1].Role)
	assert.Equal(t, 1, report[1].AvailableMembers)
	assert.InDelta(t, 8.0, report[1].Scarcity, 0.001)

	assert.Equal(t, model.RoleInstructor, report[2].Role)
	assert.InDelta(t, 4.0, report[2].Scarcity, 0.001)

	assert.Equal(t, model.RoleDutyOfficer, report[3].Role)
	assert.InDelta(t, 2.0, report[3].Scarcity, 0.001)

	for _, rs := range report {
		assert.Equal(t, 8, rs.OperationalDays)
	}
}

func TestStaffingReport_ExcludesOptedOutMembers(t *testing.T) {
	store := &mockRosterStore{
		members: []model.Member{
			testMember("a", model.RoleTowPilot),
			testMember("b", model.RoleTowPilot),
		},
		preferences: []model.DutyPreference{
			{MemberID: "b", DontSchedule: true, DontScheduleReason: "medical"},
		},
		seasons: julySeason(),
	}

	report, err := StaffingReport(
		context.Background(), store, zap.NewNop(),
		2025, time.July, []model.Role{model.RoleTowPilot},
	)
	require.NoError(t, err)
	require.Len(t, report, 1)
	assert.Equal(t, 1, report[0].AvailableMembers)
	assert.InDelta(t, 8.0, report[0].Scarcity, 0.001)
}

func TestStaffingReport_StoreError(t *testing.T) {
	store := &mockRosterStore{
		getSeasonsErr: errors.New("connection refused"),
	}

	report, err := StaffingReport(
		context.Background(), store, zap.NewNop(),
		2025, time.July, nil,
	)
	assert.Error(t, err)
	assert.Nil(t, report)
}
