package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
	"github.com/pietbarber/soar-duty-roster/pkg/core/roster"
)

// StaffingReportStore defines the database operations needed to compute a
// staffing report
type StaffingReportStore interface {
	GetMembers(ctx context.Context) ([]model.Member, error)
	GetPreferences(ctx context.Context) ([]model.DutyPreference, error)
	GetSeasonBounds(ctx context.Context) ([]model.SeasonBounds, error)
}

// RoleStaffing describes how thinly stretched one role's pool is for a
// month. Higher scores mean fewer hands per slot.
type RoleStaffing struct {
	Role             model.Role
	Scarcity         float64
	AvailableMembers int
	OperationalDays  int
}

// StaffingReport computes per-role scarcity for a month, ordered from the
// most constrained role to the least.
func StaffingReport(
	ctx context.Context,
	store StaffingReportStore,
	logger *zap.Logger,
	year int,
	month time.Month,
	roles []model.Role,
) ([]RoleStaffing, error) {
	if roles == nil {
		roles = model.AllRoles()
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

	logger.Debug("Fetching season bounds")
	seasons, err := store.GetSeasonBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get season bounds: %w", err)
	}

	snap := roster.NewSnapshot(members, preferences, nil, nil, nil, nil)
	cal := roster.NewCalendar(seasons)
	dates, err := cal.OperationalDates(year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to expand operational dates: %w", err)
	}

	report := make([]RoleStaffing, 0, len(roles))
	for _, role := range roles {
		scarcity := roster.CalculateRoleScarcity(snap, role, dates)
		report = append(report, RoleStaffing{
			Role:             role,
			Scarcity:         scarcity.Score,
			AvailableMembers: scarcity.TotalMembers,
			OperationalDays:  len(dates),
		})
	}
	sort.SliceStable(report, func(i, j int) bool {
		return report[i].Scarcity > report[j].Scarcity
	})

	logger.Info("Staffing report computed",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Int("operationalDays", len(dates)),
		zap.Int("roles", len(report)))

	return report, nil
}
