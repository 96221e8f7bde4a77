package postgres

import (
	"context"
	"fmt"
)

// InsertSimulationRun records a completed schedule simulation
func (db *DB) InsertSimulationRun(ctx context.Context, run SimulationRunRow) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO simulation_run (id, staff_name, day_count, night_count, unassigned_count)
		VALUES ($1, $2, $3, $4, $5)
	`, run.ID, run.StaffName, run.DayCount, run.NightCount, run.UnassignedCount)
	if err != nil {
		return fmt.Errorf("failed to insert simulation run: %w", err)
	}

	return nil
}

// GetSimulationRuns retrieves recent simulation runs, newest first
func (db *DB) GetSimulationRuns(ctx context.Context, limit int) ([]SimulationRunRow, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, staff_name, day_count, night_count, unassigned_count, created_at
		FROM simulation_run
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query simulation runs: %w", err)
	}
	defer rows.Close()

	var runs []SimulationRunRow
	for rows.Next() {
		var r SimulationRunRow
		if err := rows.Scan(&r.ID, &r.StaffName, &r.DayCount, &r.NightCount, &r.UnassignedCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan simulation run: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating simulation runs: %w", err)
	}

	return runs, nil
}
