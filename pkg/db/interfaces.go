package db

import (
	"context"
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// MemberStore defines member record operations
type MemberStore interface {
	GetMembers(ctx context.Context) ([]model.Member, error)
}

// PreferenceStore defines duty preference record operations
type PreferenceStore interface {
	GetPreferences(ctx context.Context) ([]model.DutyPreference, error)
}

// BlackoutStore defines member blackout record operations
type BlackoutStore interface {
	GetBlackoutsForMonth(ctx context.Context, year int, month time.Month) ([]model.MemberBlackout, error)
}

// RelationshipStore defines pairing and avoidance edge operations
type RelationshipStore interface {
	GetAvoidances(ctx context.Context) ([]model.DutyAvoidance, error)
	GetPairings(ctx context.Context) ([]model.DutyPairing, error)
}

// SeasonStore defines operational season bound operations
type SeasonStore interface {
	GetSeasonBounds(ctx context.Context) ([]model.SeasonBounds, error)
}

// AssignmentStore defines durable assignment record operations
type AssignmentStore interface {
	GetAssignmentsForMonth(ctx context.Context, year int, month time.Month) ([]Assignment, error)
	InsertAssignments(ctx context.Context, assignments []Assignment) error
}

// Database bundles every store; the postgres implementation satisfies it
type Database interface {
	MemberStore
	PreferenceStore
	BlackoutStore
	RelationshipStore
	SeasonStore
	AssignmentStore
}
