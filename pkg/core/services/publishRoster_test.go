package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
	"github.com/pietbarber/soar-duty-roster/pkg/core/roster"
	"github.com/pietbarber/soar-duty-roster/pkg/db"
)

func draftResult() *GenerateRosterResult {
	return &GenerateRosterResult{
		Year:  2025,
		Month: time.July,
		Roles: []model.Role{model.RoleDutyOfficer, model.RoleTowPilot},
		Entries: []roster.RosterEntry{
			{
				Date: time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
				Slots: map[model.Role]string{
					model.RoleDutyOfficer: "alice",
					model.RoleTowPilot:    "dave",
				},
			},
			{
				Date: time.Date(2025, time.July, 6, 0, 0, 0, 0, time.UTC),
				Slots: map[model.Role]string{
					model.RoleDutyOfficer: "bob",
					model.RoleTowPilot:    "", // open slot, no record expected
				},
			},
		},
		FilledSlots: 3,
		OpenSlots:   1,
	}
}

func TestPublishRoster_SavesFilledSlots(t *testing.T) {
	store := &mockRosterStore{}

	saved, err := PublishRoster(context.Background(), store, zap.NewNop(), draftResult(), false)
	require.NoError(t, err)

	require.Len(t, saved, 3)
	assert.Len(t, store.insertedAssignments, 3)

	byDate := make(map[string][]db.Assignment)
	for _, a := range store.insertedAssignments {
		assert.NotEmpty(t, a.ID)
		byDate[a.DutyDate] = append(byDate[a.DutyDate], a)
	}
	assert.Len(t, byDate["2025-07-05"], 2)
	assert.Len(t, byDate["2025-07-06"], 1)
	assert.Equal(t, "bob", byDate["2025-07-06"][0].MemberID)
	assert.Equal(t, string(model.RoleDutyOfficer), byDate["2025-07-06"][0].Role)
}

func TestPublishRoster_RefusesPublishedMonth(t *testing.T) {
	store := &mockRosterStore{
		assignments: []db.Assignment{
			{ID: "a1", MemberID: "carol", Role: "instructor", DutyDate: "2025-07-12"},
		},
	}

	saved, err := PublishRoster(context.Background(), store, zap.NewNop(), draftResult(), false)
	assert.Error(t, err)
	assert.Nil(t, saved)
	assert.Contains(t, err.Error(), "already published")
	assert.Empty(t, store.insertedAssignments)
}

func TestPublishRoster_ForceAddsToPublishedMonth(t *testing.T) {
	store := &mockRosterStore{
		assignments: []db.Assignment{
			{ID: "a1", MemberID: "carol", Role: "instructor", DutyDate: "2025-07-12"},
		},
	}

	saved, err := PublishRoster(context.Background(), store, zap.NewNop(), draftResult(), true)
	require.NoError(t, err)
	assert.Len(t, saved, 3)
	assert.Len(t, store.insertedAssignments, 3)
}

func TestPublishRoster_NothingToPublish(t *testing.T) {
	store := &mockRosterStore{}

	_, err := PublishRoster(context.Background(), store, zap.NewNop(), nil, false)
	assert.Error(t, err)

	empty := &GenerateRosterResult{
		Year:  2025,
		Month: time.July,
		Entries: []roster.RosterEntry{
			{
				Date:  time.Date(2025, time.July, 5, 0, 0, 0, 0, time.UTC),
				Slots: map[model.Role]string{model.RoleTowPilot: ""},
			},
		},
	}
	_, err = PublishRoster(context.Background(), store, zap.NewNop(), empty, false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no filled slots")
}
