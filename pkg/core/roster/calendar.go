package roster

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// Calendar decides which calendar dates are operational duty days.
// Weekend dates qualify; when season bounds are configured for a year,
// only weekend dates inside [Start, End] inclusive do.
type Calendar struct {
	// seasons keyed by year; years without an entry have no bounds
	seasons map[int]model.SeasonBounds
}

// NewCalendar creates a calendar with the given season bounds
func NewCalendar(seasons []model.SeasonBounds) *Calendar {
	c := &Calendar{seasons: make(map[int]model.SeasonBounds, len(seasons))}
	for _, s := range seasons {
		c.seasons[s.Year] = s
	}
	return c
}

// IsOperational reports whether the date is a duty day
func (c *Calendar) IsOperational(date time.Time) bool {
	wd := date.Weekday()
	if wd != time.Saturday && wd != time.Sunday {
		return false
	}
	return c.inSeason(date)
}

func (c *Calendar) inSeason(date time.Time) bool {
	season, ok := c.seasons[date.Year()]
	if !ok {
		return true
	}
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(season.Start) && !day.After(season.End)
}

// OperationalDates returns every duty day in the month in ascending order
func (c *Calendar) OperationalDates(year int, month time.Month) ([]time.Time, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Byweekday: []rrule.Weekday{rrule.SA, rrule.SU},
		Dtstart:   first,
		Until:     last,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build weekend rule for %d-%02d: %w", year, int(month), err)
	}

	weekends := rule.All()
	dates := make([]time.Time, 0, len(weekends))
	for _, d := range weekends {
		if c.inSeason(d) {
			dates = append(dates, d)
		}
	}

	return dates, nil
}
