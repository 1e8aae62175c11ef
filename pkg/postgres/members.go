package postgres

import (
	"context"
	"fmt"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// GetMembers retrieves all member records, including inactive members
func (d *DB) GetMembers(ctx context.Context) ([]model.Member, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT id, first_name, last_name, active, joined_on,
		       instructor, duty_officer, assistant_duty_officer, tow_pilot
		FROM member
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query members: %w", err)
	}
	defer rows.Close()

	var members []model.Member
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(
			&m.ID, &m.FirstName, &m.LastName, &m.Active, &m.JoinedOn,
			&m.Instructor, &m.DutyOfficer, &m.AssistantDutyOfficer, &m.TowPilot,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating members: %w", err)
	}

	return members, nil
}
