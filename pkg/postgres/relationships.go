package postgres

import (
	"context"
	"fmt"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// GetAvoidances retrieves all avoidance edges
func (d *DB) GetAvoidances(ctx context.Context) ([]model.DutyAvoidance, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT member_id, avoid_id
		FROM duty_avoidance
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query avoidances: %w", err)
	}
	defer rows.Close()

	var avoidances []model.DutyAvoidance
	for rows.Next() {
		var a model.DutyAvoidance
		if err := rows.Scan(&a.MemberID, &a.AvoidID); err != nil {
			return nil, fmt.Errorf("failed to scan avoidance: %w", err)
		}
		avoidances = append(avoidances, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating avoidances: %w", err)
	}

	return avoidances, nil
}

// GetPairings retrieves all pairing edges
func (d *DB) GetPairings(ctx context.Context) ([]model.DutyPairing, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT member_id, partner_id
		FROM duty_pairing
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pairings: %w", err)
	}
	defer rows.Close()

	var pairings []model.DutyPairing
	for rows.Next() {
		var p model.DutyPairing
		if err := rows.Scan(&p.MemberID, &p.PartnerID); err != nil {
			return nil, fmt.Errorf("failed to scan pairing: %w", err)
		}
		pairings = append(pairings, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pairings: %w", err)
	}

	return pairings, nil
}
