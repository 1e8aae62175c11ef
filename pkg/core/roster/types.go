package roster

import (
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// DateKey formats a date the way snapshot lookup maps are keyed
func DateKey(date time.Time) string {
	return date.Format("2006-01-02")
}

// Snapshot bundles the read-only inputs for one generation run. It is built
// once before the run starts; the engine never touches external storage.
type Snapshot struct {
	// Members is the full member pool, including inactive members
	Members []model.Member

	// Preferences keyed by member ID; members without a record are absent
	Preferences map[string]*model.DutyPreference

	// blackouts keyed by member ID, then by DateKey
	blackouts map[string]map[string]bool

	// avoidances keyed by member ID in both directions
	avoidances map[string]map[string]bool

	// Pairings maps member ID to their preferred partner's ID
	Pairings map[string]string

	// PriorMonthlyCounts holds assignments already committed in previous
	// runs for the month being generated, keyed by member ID
	PriorMonthlyCounts map[string]int
}

// NewSnapshot prepares lookup structures from raw records
func NewSnapshot(
	members []model.Member,
	preferences []model.DutyPreference,
	blackouts []model.MemberBlackout,
	avoidances []model.DutyAvoidance,
	pairings []model.DutyPairing,
	priorMonthlyCounts map[string]int,
) *Snapshot {
	s := &Snapshot{
		Members:            members,
		Preferences:        make(map[string]*model.DutyPreference, len(preferences)),
		blackouts:          make(map[string]map[string]bool),
		avoidances:         make(map[string]map[string]bool),
		Pairings:           make(map[string]string, len(pairings)),
		PriorMonthlyCounts: make(map[string]int, len(priorMonthlyCounts)),
	}

	for i := range preferences {
		s.Preferences[preferences[i].MemberID] = &preferences[i]
	}

	for _, b := range blackouts {
		if s.blackouts[b.MemberID] == nil {
			s.blackouts[b.MemberID] = make(map[string]bool)
		}
		s.blackouts[b.MemberID][DateKey(b.Date)] = true
	}

	// Avoidance edges are directed in storage but absolute in both
	// directions at evaluation time
	for _, a := range avoidances {
		addAvoidance(s.avoidances, a.MemberID, a.AvoidID)
		addAvoidance(s.avoidances, a.AvoidID, a.MemberID)
	}

	for _, p := range pairings {
		s.Pairings[p.MemberID] = p.PartnerID
	}

	for id, count := range priorMonthlyCounts {
		s.PriorMonthlyCounts[id] = count
	}

	return s
}

func addAvoidance(m map[string]map[string]bool, from, to string) {
	if m[from] == nil {
		m[from] = make(map[string]bool)
	}
	m[from][to] = true
}

// Preference returns the member's preference record, or nil if none exists
func (s *Snapshot) Preference(memberID string) *model.DutyPreference {
	return s.Preferences[memberID]
}

// IsBlackedOut reports whether the member has a blackout on the date
func (s *Snapshot) IsBlackedOut(memberID string, date time.Time) bool {
	return s.blackouts[memberID][DateKey(date)]
}

// Avoids reports whether an avoidance edge exists between two members,
// in either direction
func (s *Snapshot) Avoids(memberID, otherID string) bool {
	return s.avoidances[memberID][otherID]
}

// RosterEntry is the engine's output for one operational date
type RosterEntry struct {
	// Date of the duty day
	Date time.Time

	// Slots maps every requested role to the assigned member ID, or the
	// empty string for slots that could not be filled
	Slots map[model.Role]string

	// Diagnostics explains unfilled slots; present only for empty slots
	Diagnostics map[model.Role]*SlotDiagnosis
}

// FilledCount returns how many slots of the entry are filled
func (e *RosterEntry) FilledCount() int {
	count := 0
	for _, memberID := range e.Slots {
		if memberID != "" {
			count++
		}
	}
	return count
}
