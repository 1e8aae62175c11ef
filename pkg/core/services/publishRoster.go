package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/pkg/db"
)

// PublishRosterStore defines the database operations needed to publish a
// generated roster
type PublishRosterStore interface {
	GetAssignmentsForMonth(ctx context.Context, year int, month time.Month) ([]db.Assignment, error)
	InsertAssignments(ctx context.Context, assignments []db.Assignment) error
}

// PublishRoster converts the filled slots of a generated roster into
// durable assignment records. A month that already has published
// assignments is refused unless force is set; open slots are simply
// skipped, they carry no record.
func PublishRoster(
	ctx context.Context,
	store PublishRosterStore,
	logger *zap.Logger,
	result *GenerateRosterResult,
	force bool,
) ([]db.Assignment, error) {
	if result == nil || len(result.Entries) == 0 {
		return nil, fmt.Errorf("nothing to publish")
	}

	existing, err := store.GetAssignmentsForMonth(ctx, result.Year, result.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing assignments: %w", err)
	}
	if len(existing) > 0 && !force {
		return nil, fmt.Errorf("%d assignments already published for %d-%02d (use force to add anyway)",
			len(existing), result.Year, int(result.Month))
	}

	assignments := make([]db.Assignment, 0, result.FilledSlots)
	for _, entry := range result.Entries {
		for role, memberID := range entry.Slots {
			if memberID == "" {
				continue
			}
			assignments = append(assignments, db.Assignment{
				ID:       uuid.New().String(),
				MemberID: memberID,
				Role:     string(role),
				DutyDate: entry.Date.Format("2006-01-02"),
			})
		}
	}

	if len(assignments) == 0 {
		return nil, fmt.Errorf("roster has no filled slots to publish")
	}

	logger.Info("Publishing roster",
		zap.Int("year", result.Year),
		zap.Int("month", int(result.Month)),
		zap.Int("assignments", len(assignments)),
		zap.Bool("forced", force && len(existing) > 0))

	if err := store.InsertAssignments(ctx, assignments); err != nil {
		return nil, fmt.Errorf("failed to save assignments: %w", err)
	}

	logger.Info("Roster published", zap.Int("count", len(assignments)))
	return assignments, nil
}
