package postgres

import (
	"context"
	"fmt"
)

// GetActiveTrack retrieves the active track rows for one staff member
func (db *DB) GetActiveTrack(ctx context.Context, staffName string) ([]TrackRow, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, staff_name, slot_label, value, active
		FROM track
		WHERE staff_name = $1 AND active
	`, staffName)
	if err != nil {
		return nil, fmt.Errorf("failed to query track for %s: %w", staffName, err)
	}
	defer rows.Close()

	return scanTrackRows(rows)
}

// GetActiveTracks retrieves the active track rows for all staff
func (db *DB) GetActiveTracks(ctx context.Context) ([]TrackRow, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT id, staff_name, slot_label, value, active
		FROM track
		WHERE active
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	return scanTrackRows(rows)
}

type pgxRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanTrackRows(rows pgxRows) ([]TrackRow, error) {
	var tracks []TrackRow
	for rows.Next() {
		var t TrackRow
		if err := rows.Scan(&t.ID, &t.StaffName, &t.SlotLabel, &t.Value, &t.Active); err != nil {
			return nil, fmt.Errorf("failed to scan track row: %w", err)
		}
		tracks = append(tracks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tracks: %w", err)
	}

	return tracks, nil
}

// InsertTrack inserts track rows inside a single transaction
func (db *DB) InsertTrack(ctx context.Context, tracks []TrackRow) error {
	if len(tracks) == 0 {
		return nil
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, t := range tracks {
		_, err := tx.Exec(ctx, `
			INSERT INTO track (id, staff_name, slot_label, value, active)
			VALUES ($1, $2, $3, $4, $5)
		`, t.ID, t.StaffName, t.SlotLabel, t.Value, t.Active)
		if err != nil {
			return fmt.Errorf("failed to insert track row: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
