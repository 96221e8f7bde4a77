package postgres

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetStaff retrieves all staff records ordered by seniority
func (db *DB) GetStaff(ctx context.Context) ([]StaffRow, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT name, role, seniority_rank, day_preferences, night_preferences,
		       shifts_per_pay_period, night_minimum, weekend_minimum, weekend_group
		FROM staff
		ORDER BY seniority_rank, name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff: %w", err)
	}
	defer rows.Close()

	var staff []StaffRow
	for rows.Next() {
		var s StaffRow
		var dayPrefs, nightPrefs []byte
		if err := rows.Scan(&s.Name, &s.Role, &s.SeniorityRank, &dayPrefs, &nightPrefs,
			&s.ShiftsPerPayPeriod, &s.NightMinimum, &s.WeekendMinimum, &s.WeekendGroup); err != nil {
			return nil, fmt.Errorf("failed to scan staff row: %w", err)
		}
		if err := json.Unmarshal(dayPrefs, &s.DayPreferences); err != nil {
			return nil, fmt.Errorf("failed to parse day preferences for %s: %w", s.Name, err)
		}
		if err := json.Unmarshal(nightPrefs, &s.NightPreferences); err != nil {
			return nil, fmt.Errorf("failed to parse night preferences for %s: %w", s.Name, err)
		}
		staff = append(staff, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating staff: %w", err)
	}

	return staff, nil
}

// InsertStaff inserts a staff record
func (db *DB) InsertStaff(ctx context.Context, s StaffRow) error {
	dayPrefs, err := json.Marshal(s.DayPreferences)
	if err != nil {
		return fmt.Errorf("failed to encode day preferences: %w", err)
	}
	nightPrefs, err := json.Marshal(s.NightPreferences)
	if err != nil {
		return fmt.Errorf("failed to encode night preferences: %w", err)
	}

	_, err = db.pool.Exec(ctx, `
		INSERT INTO staff (name, role, seniority_rank, day_preferences, night_preferences,
		                   shifts_per_pay_period, night_minimum, weekend_minimum, weekend_group)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, s.Name, s.Role, s.SeniorityRank, dayPrefs, nightPrefs,
		s.ShiftsPerPayPeriod, s.NightMinimum, s.WeekendMinimum, s.WeekendGroup)
	if err != nil {
		return fmt.Errorf("failed to insert staff %s: %w", s.Name, err)
	}

	return nil
}
