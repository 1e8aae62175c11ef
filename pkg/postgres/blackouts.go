package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// GetBlackoutsForMonth retrieves blackout records falling inside the month
func (d *DB) GetBlackoutsForMonth(ctx context.Context, year int, month time.Month) ([]model.MemberBlackout, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	rows, err := d.pool.Query(ctx, `
		SELECT member_id, blackout_date
		FROM member_blackout
		WHERE blackout_date >= $1 AND blackout_date < $2
	`, first, next)
	if err != nil {
		return nil, fmt.Errorf("failed to query blackouts: %w", err)
	}
	defer rows.Close()

	var blackouts []model.MemberBlackout
	for rows.Next() {
		var b model.MemberBlackout
		if err := rows.Scan(&b.MemberID, &b.Date); err != nil {
			return nil, fmt.Errorf("failed to scan blackout: %w", err)
		}
		blackouts = append(blackouts, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blackouts: %w", err)
	}

	return blackouts, nil
}
