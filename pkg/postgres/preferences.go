package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// GetPreferences retrieves all duty preference records
func (d *DB) GetPreferences(ctx context.Context) ([]model.DutyPreference, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT member_id, preferred_day,
		       dont_schedule, dont_schedule_reason,
		       scheduling_suspended, suspended_reason,
		       instructor_percent, duty_officer_percent,
		       assistant_duty_officer_percent, tow_pilot_percent,
		       max_assignments_per_month, allow_weekend_double
		FROM duty_preference
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query duty preferences: %w", err)
	}
	defer rows.Close()

	var prefs []model.DutyPreference
	for rows.Next() {
		var p model.DutyPreference
		var preferredDay *int16
		if err := rows.Scan(
			&p.MemberID, &preferredDay,
			&p.DontSchedule, &p.DontScheduleReason,
			&p.SchedulingSuspended, &p.SuspendedReason,
			&p.InstructorPercent, &p.DutyOfficerPercent,
			&p.AssistantDutyOfficerPercent, &p.TowPilotPercent,
			&p.MaxAssignmentsPerMonth, &p.AllowWeekendDouble,
		); err != nil {
			return nil, fmt.Errorf("failed to scan duty preference: %w", err)
		}
		if preferredDay != nil {
			wd := time.Weekday(*preferredDay)
			p.PreferredDay = &wd
		}
		prefs = append(prefs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating duty preferences: %w", err)
	}

	return prefs, nil
}
