package services

import (
	"context"
	"fmt"
	"time"

	"github.com/pietbarber/soar-duty-roster/internal/config"
	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
	"github.com/pietbarber/soar-duty-roster/pkg/db"
)

// mockRosterStore implements the store interfaces of every service for
// testing
type mockRosterStore struct {
	members             []model.Member
	preferences         []model.DutyPreference
	blackouts           []model.MemberBlackout
	avoidances          []model.DutyAvoidance
	pairings            []model.DutyPairing
	seasons             []model.SeasonBounds
	assignments         []db.Assignment
	insertedAssignments []db.Assignment

	getMembersErr        error
	getPreferencesErr    error
	getBlackoutsErr      error
	getAvoidancesErr     error
	getPairingsErr       error
	getSeasonsErr        error
	getAssignmentsErr    error
	insertAssignmentsErr error
}

func (m *mockRosterStore) GetMembers(ctx context.Context) ([]model.Member, error) {
	if m.getMembersErr != nil {
		return nil, m.getMembersErr
	}
	return m.members, nil
}

func (m *mockRosterStore) GetPreferences(ctx context.Context) ([]model.DutyPreference, error) {
	if m.getPreferencesErr != nil {
		return nil, m.getPreferencesErr
	}
	return m.preferences, nil
}

func (m *mockRosterStore) GetBlackoutsForMonth(ctx context.Context, year int, month time.Month) ([]model.MemberBlackout, error) {
	if m.getBlackoutsErr != nil {
		return nil, m.getBlackoutsErr
	}
	var out []model.MemberBlackout
	for _, b := range m.blackouts {
		if b.Date.Year() == year && b.Date.Month() == month {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockRosterStore) GetAvoidances(ctx context.Context) ([]model.DutyAvoidance, error) {
	if m.getAvoidancesErr != nil {
		return nil, m.getAvoidancesErr
	}
	return m.avoidances, nil
}

func (m *mockRosterStore) GetPairings(ctx context.Context) ([]model.DutyPairing, error) {
	if m.getPairingsErr != nil {
		return nil, m.getPairingsErr
	}
	return m.pairings, nil
}

func (m *mockRosterStore) GetSeasonBounds(ctx context.Context) ([]model.SeasonBounds, error) {
	if m.getSeasonsErr != nil {
		return nil, m.getSeasonsErr
	}
	return m.seasons, nil
}

func (m *mockRosterStore) GetAssignmentsForMonth(ctx context.Context, year int, month time.Month) ([]db.Assignment, error) {
	if m.getAssignmentsErr != nil {
		return nil, m.getAssignmentsErr
	}
	prefix := fmt.Sprintf("%04d-%02d", year, int(month))
	var out []db.Assignment
	for _, a := range m.assignments {
		if len(a.DutyDate) >= 7 && a.DutyDate[:7] == prefix {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockRosterStore) InsertAssignments(ctx context.Context, assignments []db.Assignment) error {
	if m.insertAssignmentsErr != nil {
		return m.insertAssignmentsErr
	}
	m.insertedAssignments = append(m.insertedAssignments, assignments...)
	return nil
}

// julySeason bounds the 2025 season to July, giving eight weekend duty days
func julySeason() []model.SeasonBounds {
	return []model.SeasonBounds{
		{
			Year:  2025,
			Start: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(2025, time.July, 31, 0, 0, 0, 0, time.UTC),
		},
	}
}

func testMember(id string, roles ...model.Role) model.Member {
	m := model.Member{
		ID:        id,
		FirstName: id,
		LastName:  "Test",
		Active:    true,
		JoinedOn:  time.Date(2020, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, r := range roles {
		switch r {
		case model.RoleDutyOfficer:
			m.DutyOfficer = true
		case model.RoleAssistantDutyOfficer:
			m.AssistantDutyOfficer = true
		case model.RoleInstructor:
			m.Instructor = true
		case model.RoleTowPilot:
			m.TowPilot = true
		}
	}
	return m
}

func testConfig() *config.Config {
	return &config.Config{
		DatabaseURL: "postgres://localhost/test",
	}
}
