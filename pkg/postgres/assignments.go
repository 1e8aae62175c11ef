package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/db"
)

// GetAssignmentsForMonth retrieves published assignments inside the month
func (d *DB) GetAssignmentsForMonth(ctx context.Context, year int, month time.Month) ([]db.Assignment, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	rows, err := d.pool.Query(ctx, `
		SELECT id, member_id, role, duty_date
		FROM assignment
		WHERE duty_date >= $1 AND duty_date < $2
		ORDER BY duty_date, role
	`, first, next)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer rows.Close()

	var assignments []db.Assignment
	for rows.Next() {
		var a db.Assignment
		var dutyDate time.Time
		if err := rows.Scan(&a.ID, &a.MemberID, &a.Role, &dutyDate); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		a.DutyDate = dutyDate.Format("2006-01-02")
		assignments = append(assignments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}

	return assignments, nil
}

// InsertAssignments inserts assignment records in one transaction
func (d *DB) InsertAssignments(ctx context.Context, assignments []db.Assignment) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, a := range assignments {
		_, err := tx.Exec(ctx, `
			INSERT INTO assignment (id, member_id, role, duty_date)
			VALUES ($1, $2, $3, $4)
		`, a.ID, a.MemberID, a.Role, a.DutyDate)
		if err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
