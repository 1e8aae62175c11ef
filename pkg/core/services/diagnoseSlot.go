package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
	"github.com/pietbarber/soar-duty-roster/pkg/core/roster"
	"github.com/pietbarber/soar-duty-roster/pkg/db"
)

// DiagnoseSlotStore defines the database operations needed to explain an
// unfilled slot on a published roster
type DiagnoseSlotStore interface {
	GetMembers(ctx context.Context) ([]model.Member, error)
	GetPreferences(ctx context.Context) ([]model.DutyPreference, error)
	GetBlackoutsForMonth(ctx context.Context, year int, month time.Month) ([]model.MemberBlackout, error)
	GetAvoidances(ctx context.Context) ([]model.DutyAvoidance, error)
	GetSeasonBounds(ctx context.Context) ([]model.SeasonBounds, error)
	GetAssignmentsForMonth(ctx context.Context, year int, month time.Month) ([]db.Assignment, error)
}

// DiagnoseSlot reconstructs the engine state around one (role, date) pair
// from published assignments and reports why each active flag-holder was
// out of reach. It works against the stored roster rather than a fresh
// generation run, so the answer reflects what actually got published.
func DiagnoseSlot(
	ctx context.Context,
	store DiagnoseSlotStore,
	logger *zap.Logger,
	role model.Role,
	date time.Time,
	policy roster.PreferredDayPolicy,
) (*roster.SlotDiagnosis, error) {
	if !role.IsValid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	logger.Debug("Fetching members")
	members, err := store.GetMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	logger.Debug("Fetching preferences")
	preferences, err := store.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	logger.Debug("Fetching blackouts")
	blackouts, err := store.GetBlackoutsForMonth(ctx, date.Year(), date.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to get blackouts: %w", err)
	}

	logger.Debug("Fetching avoidances")
	avoidances, err := store.GetAvoidances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get avoidances: %w", err)
	}

	logger.Debug("Fetching season bounds")
	seasons, err := store.GetSeasonBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get season bounds: %w", err)
	}

	logger.Debug("Fetching published assignments")
	assignments, err := store.GetAssignmentsForMonth(ctx, date.Year(), date.Month())
	if err != nil {
		return nil, fmt.Errorf("failed to get assignments: %w", err)
	}

	snap := roster.NewSnapshot(members, preferences, blackouts, avoidances, nil, nil)
	cal := roster.NewCalendar(seasons)

	if !cal.IsOperational(date) {
		return nil, fmt.Errorf("%s is not an operational date", date.Format("2006-01-02"))
	}

	st := roster.SlotState{
		AssignedToday: make(map[string]model.Role),
		LastAssigned:  make(map[model.Role]string),
		MonthlyCounts: make(map[string]int),
		Policy:        policy,
	}

	dateKey := roster.DateKey(date)
	prevKey := ""
	if prev, ok := previousOperationalDate(cal, date); ok {
		prevKey = roster.DateKey(prev)
		if prev.Month() != date.Month() || prev.Year() != date.Year() {
			prevAssignments, err := store.GetAssignmentsForMonth(ctx, prev.Year(), prev.Month())
			if err != nil {
				return nil, fmt.Errorf("failed to get prior month assignments: %w", err)
			}
			for _, a := range prevAssignments {
				if a.DutyDate == prevKey {
					st.LastAssigned[model.Role(a.Role)] = a.MemberID
				}
			}
		}
	}

	for _, a := range assignments {
		st.MonthlyCounts[a.MemberID]++
		switch a.DutyDate {
		case dateKey:
			st.AssignedToday[a.MemberID] = model.Role(a.Role)
		case prevKey:
			st.LastAssigned[model.Role(a.Role)] = a.MemberID
		}
	}

	diag := roster.DiagnoseEmptySlot(snap, role, date, st)

	logger.Info("Slot diagnosed",
		zap.String("role", string(role)),
		zap.String("date", dateKey),
		zap.String("summary", diag.Summary))

	return diag, nil
}

// previousOperationalDate finds the operational date immediately before the
// given one, looking back into the prior month when needed.
func previousOperationalDate(cal *roster.Calendar, date time.Time) (time.Time, bool) {
	months := []time.Time{date, date.AddDate(0, -1, 0)}
	var best time.Time
	found := false
	for _, m := range months {
		dates, err := cal.OperationalDates(m.Year(), m.Month())
		if err != nil {
			continue
		}
		for _, d := range dates {
			if d.Before(date) && (!found || d.After(best)) {
				best = d
				found = true
			}
		}
		if found {
			return best, true
		}
	}
	return time.Time{}, false
}
