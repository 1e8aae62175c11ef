package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/internal/config"
	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
	"github.com/pietbarber/soar-duty-roster/pkg/core/roster"
	"github.com/pietbarber/soar-duty-roster/pkg/db"
)

// GenerateRosterStore defines the database operations needed to generate a
// roster
type GenerateRosterStore interface {
	GetMembers(ctx context.Context) ([]model.Member, error)
	GetPreferences(ctx context.Context) ([]model.DutyPreference, error)
	GetBlackoutsForMonth(ctx context.Context, year int, month time.Month) ([]model.MemberBlackout, error)
	GetAvoidances(ctx context.Context) ([]model.DutyAvoidance, error)
	GetPairings(ctx context.Context) ([]model.DutyPairing, error)
	GetSeasonBounds(ctx context.Context) ([]model.SeasonBounds, error)
	GetAssignmentsForMonth(ctx context.Context, year int, month time.Month) ([]db.Assignment, error)
}

// GenerateRosterResult contains the generated roster and its run metadata
type GenerateRosterResult struct {
	Year        int
	Month       time.Month
	Roles       []model.Role
	Seed        int64
	Entries     []roster.RosterEntry
	FilledSlots int
	OpenSlots   int
}

// GenerateRoster fetches one consistent snapshot, runs the assignment
// engine for the month, and returns the draft roster. Nothing is persisted;
// PublishRoster turns an accepted draft into durable assignment records.
func GenerateRoster(
	ctx context.Context,
	store GenerateRosterStore,
	cfg *config.Config,
	logger *zap.Logger,
	year int,
	month time.Month,
	roles []model.Role,
	seed int64,
) (*GenerateRosterResult, error) {
	if len(roles) == 0 {
		roles = cfg.ScheduledRoles()
	}

	logger.Info("Generating duty roster",
		zap.Int("year", year),
		zap.Int("month", int(month)),
		zap.Any("roles", roles),
		zap.Int64("seed", seed))

	logger.Debug("Fetching members")
	members, err := store.GetMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}
	logger.Debug("Found members", zap.Int("count", len(members)))

	logger.Debug("Fetching duty preferences")
	preferences, err := store.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preferences: %w", err)
	}

	logger.Debug("Fetching blackouts")
	blackouts, err := store.GetBlackoutsForMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blackouts: %w", err)
	}

	logger.Debug("Fetching avoidances")
	avoidances, err := store.GetAvoidances(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch avoidances: %w", err)
	}

	logger.Debug("Fetching pairings")
	pairings, err := store.GetPairings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pairings: %w", err)
	}

	logger.Debug("Fetching season bounds")
	seasons, err := store.GetSeasonBounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch season bounds: %w", err)
	}

	// Assignments already published for this month count toward each
	// member's monthly cap
	logger.Debug("Fetching published assignments for monthly caps")
	existing, err := store.GetAssignmentsForMonth(ctx, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing assignments: %w", err)
	}
	priorCounts := make(map[string]int)
	for _, a := range existing {
		priorCounts[a.MemberID]++
	}

	snapshot := roster.NewSnapshot(members, preferences, blackouts, avoidances, pairings, priorCounts)
	calendar := roster.NewCalendar(seasons)

	engine := roster.NewEngine(snapshot, calendar, roster.Options{
		Seed:               seed,
		PreferredDayPolicy: cfg.PreferredDayPolicy(),
	})

	logger.Info("Running assignment engine")
	entries, err := engine.Generate(year, month, roles)
	if err != nil {
		return nil, fmt.Errorf("roster generation failed: %w", err)
	}

	result := &GenerateRosterResult{
		Year:    year,
		Month:   month,
		Roles:   roles,
		Seed:    seed,
		Entries: entries,
	}

	for _, entry := range result.Entries {
		for role, memberID := range entry.Slots {
			if memberID != "" {
				result.FilledSlots++
				continue
			}
			result.OpenSlots++
			if diag := entry.Diagnostics[role]; diag != nil {
				logger.Warn("Slot left open",
					zap.String("date", entry.Date.Format("2006-01-02")),
					zap.String("role", string(role)),
					zap.String("summary", diag.Summary))
			}
		}
	}

	logger.Info("Roster generated",
		zap.Int("duty_days", len(result.Entries)),
		zap.Int("filled_slots", result.FilledSlots),
		zap.Int("open_slots", result.OpenSlots))

	return result, nil
}
