package postgres

import "time"

// StaffRow is one staff record as stored
type StaffRow struct {
	Name               string
	Role               string
	SeniorityRank      int
	DayPreferences     map[string]int
	NightPreferences   map[string]int
	ShiftsPerPayPeriod int
	NightMinimum       int
	WeekendMinimum     int
	WeekendGroup       string
}

// TrackRow is one day of a staff member's track
type TrackRow struct {
	ID        string
	StaffName string
	SlotLabel string
	Value     string
	Active    bool
}

// PreassignmentRow is one fixed assignment outside the track
type PreassignmentRow struct {
	ID        string
	StaffName string
	SlotLabel string
	Value     string
}

// SimulationRunRow records one completed schedule simulation
type SimulationRunRow struct {
	ID              string
	StaffName       string
	DayCount        int
	NightCount      int
	UnassignedCount int
	CreatedAt       time.Time
}
