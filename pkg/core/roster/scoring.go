package roster

import (
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// Scoring weights, in descending order of influence. The jitter is kept
// well below any meaningful score delta so it only ever breaks exact ties.
const (
	// WeightFairness scales the least-assigned-first term
	WeightFairness = 25.0

	// PairingBonus is added when the member's preferred partner is already
	// assigned to any role on the date
	PairingBonus = 15.0

	// SoftMismatchPenalty deprioritizes preferred-day mismatches when the
	// policy is PreferredDaySoft
	SoftMismatchPenalty = 40.0

	// TieBreakJitter bounds the seeded random tie-break term
	TieBreakJitter = 0.01
)

// scoreCandidate ranks a member who already passed the eligibility filter
// for a (role, date) slot. Higher is better.
func (e *Engine) scoreCandidate(m model.Member, role model.Role, date time.Time) float64 {
	pref := e.snap.Preference(m.ID)

	score := float64(effectivePercent(m, pref, role))

	// Least-assigned-first within this run
	score += WeightFairness / float64(1+e.runCounts[m.ID])

	// Advisory pairing: bias toward days the preferred partner already works
	if partnerID, ok := e.snap.Pairings[m.ID]; ok {
		if _, assigned := e.assignedToday[partnerID]; assigned {
			score += PairingBonus
		}
	}

	// Under the soft policy a preferred-day mismatch survives filtering but
	// loses to any on-day candidate
	if e.policy == PreferredDaySoft && pref != nil && pref.PreferredDay != nil && date.Weekday() != *pref.PreferredDay {
		score -= SoftMismatchPenalty
	}

	// Seeded random tie-break, never member ID, so low IDs gain no
	// systematic advantage
	score += e.rng.Float64() * TieBreakJitter

	return score
}

// effectivePercent resolves the member's affinity percentage for a role.
// Single-role members always count as 100%; a missing record or an all-zero
// percentage set scores an even split across the roles held, so an unset
// preference never penalizes anyone.
func effectivePercent(m model.Member, pref *model.DutyPreference, role model.Role) int {
	roleCount := m.RoleCount()
	if roleCount <= 1 {
		return 100
	}
	if pref == nil || !pref.HasAffinity() {
		return 100 / roleCount
	}
	return pref.Percent(role)
}
