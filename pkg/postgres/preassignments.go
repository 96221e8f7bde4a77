package postgres

import (
	"context"
	"fmt"
)

// GetPreassignments retrieves the preassignment rows for one staff member
func (db *DB) GetPreassignments(ctx context.Context, staffName string) ([]PreassignmentRow, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, staff_name, slot_label, value
		FROM preassignment
		WHERE staff_name = $1
	`, staffName)
	if err != nil {
		return nil, fmt.Errorf("failed to query preassignments for %s: %w", staffName, err)
	}
	defer rows.Close()

	return scanPreassignmentRows(rows)
}

// GetAllPreassignments retrieves preassignment rows for all staff
func (db *DB) GetAllPreassignments(ctx context.Context) ([]PreassignmentRow, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, staff_name, slot_label, value
		FROM preassignment
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query preassignments: %w", err)
	}
	defer rows.Close()

	return scanPreassignmentRows(rows)
}

func scanPreassignmentRows(rows pgxRows) ([]PreassignmentRow, error) {
	var preassignments []PreassignmentRow
	for rows.Next() {
		var p PreassignmentRow
		if err := rows.Scan(&p.ID, &p.StaffName, &p.SlotLabel, &p.Value); err != nil {
			return nil, fmt.Errorf("failed to scan preassignment row: %w", err)
		}
		preassignments = append(preassignments, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating preassignments: %w", err)
	}

	return preassignments, nil
}
