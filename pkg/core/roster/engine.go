package roster

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// PreferredDayPolicy controls how a member's preferred weekend day is applied
type PreferredDayPolicy string

const (
	// PreferredDayHard filters members off dates that don't match their
	// preferred day. May leave slots open on the "wrong" weekend day.
	PreferredDayHard PreferredDayPolicy = "hard"

	// PreferredDaySoft keeps mismatched members eligible but deprioritizes
	// them during scoring
	PreferredDaySoft PreferredDayPolicy = "soft"
)

const (
	// MinYear and MaxYear bound the representable generation range
	MinYear = 1990
	MaxYear = 2100
)

// Options configures a generation run
type Options struct {
	// Seed drives the tie-break term; the same seed over the same snapshot
	// reproduces the same roster
	Seed int64

	// PreferredDayPolicy defaults to PreferredDayHard
	PreferredDayPolicy PreferredDayPolicy
}

// Engine runs the day-by-day, role-by-role assignment loop for one month.
// An Engine is single-use and not safe for concurrent calls; independent
// runs should each construct their own Engine over their own Snapshot.
type Engine struct {
	snap   *Snapshot
	cal    *Calendar
	policy PreferredDayPolicy
	rng    *rand.Rand

	// monthlyCounts includes assignments committed by prior published runs
	// for the same month; used for the monthly-cap check
	monthlyCounts map[string]int

	// runCounts covers this run only; used for least-assigned-first fairness
	runCounts map[string]int

	// assignedToday maps member ID to the role they hold on the date being
	// processed; reset per date
	assignedToday map[string]model.Role

	// lastAssigned maps role to the member who held it on the immediately
	// preceding operational date; reset per date
	lastAssigned map[model.Role]string
}

// NewEngine creates an engine over a snapshot and calendar
func NewEngine(snap *Snapshot, cal *Calendar, opts Options) *Engine {
	policy := opts.PreferredDayPolicy
	if policy == "" {
		policy = PreferredDayHard
	}

	e := &Engine{
		snap:          snap,
		cal:           cal,
		policy:        policy,
		rng:           rand.New(rand.NewSource(opts.Seed)),
		monthlyCounts: make(map[string]int),
		runCounts:     make(map[string]int),
	}
	for id, count := range snap.PriorMonthlyCounts {
		e.monthlyCounts[id] = count
	}
	return e
}

// Generate produces one RosterEntry per operational date in the month, in
// ascending date order. A nil or empty roles list requests all four roles.
// Unknown roles or an out-of-range year/month fail before any date is
// processed; an unfilled slot is a normal outcome, never an error.
func (e *Engine) Generate(year int, month time.Month, roles []model.Role) ([]RosterEntry, error) {
	if year < MinYear || year > MaxYear {
		return nil, fmt.Errorf("year %d out of range [%d, %d]", year, MinYear, MaxYear)
	}
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("invalid month %d", int(month))
	}

	if len(roles) == 0 {
		roles = model.AllRoles()
	}
	seen := make(map[model.Role]bool, len(roles))
	for _, r := range roles {
		if !r.IsValid() {
			return nil, fmt.Errorf("unknown role %q", r)
		}
		if seen[r] {
			return nil, fmt.Errorf("duplicate role %q", r)
		}
		seen[r] = true
	}

	dates, err := e.cal.OperationalDates(year, month)
	if err != nil {
		return nil, err
	}

	// Attempt scarce roles first each day so abundant roles yield their
	// candidates to roles with fewer options. Computed once per run.
	orderedRoles := e.rolesByScarcity(roles, dates)

	entries := make([]RosterEntry, 0, len(dates))
	for _, date := range dates {
		entries = append(entries, e.processDate(date, orderedRoles))
	}

	return entries, nil
}

// rolesByScarcity sorts the requested roles by descending scarcity score.
// Ties keep the caller's order.
func (e *Engine) rolesByScarcity(roles []model.Role, dates []time.Time) []model.Role {
	scores := make(map[model.Role]float64, len(roles))
	for _, r := range roles {
		scores[r] = CalculateRoleScarcity(e.snap, r, dates).Score
	}

	ordered := make([]model.Role, len(roles))
	copy(ordered, roles)
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})
	return ordered
}

// processDate attempts every requested role for one operational date
func (e *Engine) processDate(date time.Time, orderedRoles []model.Role) RosterEntry {
	e.assignedToday = make(map[string]model.Role)

	entry := RosterEntry{
		Date:  date,
		Slots: make(map[model.Role]string, len(orderedRoles)),
	}

	for _, role := range orderedRoles {
		memberID := e.fillSlot(role, date)
		entry.Slots[role] = memberID

		if memberID == "" {
			if entry.Diagnostics == nil {
				entry.Diagnostics = make(map[model.Role]*SlotDiagnosis)
			}
			entry.Diagnostics[role] = DiagnoseEmptySlot(e.snap, role, date, SlotState{
				AssignedToday: e.assignedToday,
				LastAssigned:  e.lastAssigned,
				MonthlyCounts: e.monthlyCounts,
				Policy:        e.policy,
			})
		}
	}

	// Carry today's assignments into the adjacency check for the next
	// operational date
	e.lastAssigned = make(map[model.Role]string, len(entry.Slots))
	for role, memberID := range entry.Slots {
		if memberID != "" {
			e.lastAssigned[role] = memberID
		}
	}

	return entry
}

// fillSlot picks the best eligible member for one (role, date) slot and
// updates the running counters. Returns "" when no member is eligible.
func (e *Engine) fillSlot(role model.Role, date time.Time) string {
	var best *model.Member
	var bestScore float64

	for i := range e.snap.Members {
		m := &e.snap.Members[i]
		if !e.eligible(role, date, *m) {
			continue
		}

		score := e.scoreCandidate(*m, role, date)
		if best == nil || score > bestScore {
			best = m
			bestScore = score
		}
	}

	if best == nil {
		return ""
	}

	e.assignedToday[best.ID] = role
	e.monthlyCounts[best.ID]++
	e.runCounts[best.ID]++
	return best.ID
}
