package postgres

import (
	"context"
	"fmt"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// GetSeasonBounds retrieves every configured season window
func (d *DB) GetSeasonBounds(ctx context.Context) ([]model.SeasonBounds, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT year, season_start, season_end
		FROM season_bounds
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query season bounds: %w", err)
	}
	defer rows.Close()

	var seasons []model.SeasonBounds
	for rows.Next() {
		var s model.SeasonBounds
		if err := rows.Scan(&s.Year, &s.Start, &s.End); err != nil {
			return nil, fmt.Errorf("failed to scan season bounds: %w", err)
		}
		seasons = append(seasons, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating season bounds: %w", err)
	}

	return seasons, nil
}
