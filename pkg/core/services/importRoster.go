package services

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/catalog"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/postgres"
)

// rosterFile is the on-disk roster format accepted by ImportRoster
type rosterFile struct {
	Staff []rosterMember `yaml:"staff"`
}

type rosterMember struct {
	Name               string            `yaml:"name"`
	Role               string            `yaml:"role"`
	SeniorityRank      int               `yaml:"seniorityRank"`
	DayPreferences     map[string]int    `yaml:"dayPreferences"`
	NightPreferences   map[string]int    `yaml:"nightPreferences"`
	ShiftsPerPayPeriod int               `yaml:"shiftsPerPayPeriod"`
	NightMinimum       int               `yaml:"nightMinimum"`
	WeekendMinimum     int               `yaml:"weekendMinimum"`
	WeekendGroup       string            `yaml:"weekendGroup"`
	Track              map[string]string `yaml:"track"`
}

// ImportRosterResult summarises a completed roster import
type ImportRosterResult struct {
	StaffCount    int
	TrackRowCount int
}

// ImportRosterStore defines the database operations needed to import a
// roster
type ImportRosterStore interface {
	InsertStaff(ctx context.Context, s postgres.StaffRow) error
	InsertTrack(ctx context.Context, tracks []postgres.TrackRow) error
}

// ImportRoster loads a roster YAML file and saves its staff members and
// their tracks. The whole file is validated before anything is written:
// an unknown role, shift code, cycle day or track value rejects the
// import.
func ImportRoster(ctx context.Context, store ImportRosterStore, logger *zap.Logger, path string) (*ImportRosterResult, error) {
	logger.Debug("Starting importRoster", zap.String("path", path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}

	var file rosterFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse roster file: %w", err)
	}
	if len(file.Staff) == 0 {
		return nil, fmt.Errorf("roster file %s contains no staff", path)
	}

	staffRows, trackRows, err := buildRosterRows(file)
	if err != nil {
		return nil, err
	}

	for _, row := range staffRows {
		if err := store.InsertStaff(ctx, row); err != nil {
			return nil, fmt.Errorf("failed to save staff %s: %w", row.Name, err)
		}
	}
	if err := store.InsertTrack(ctx, trackRows); err != nil {
		return nil, fmt.Errorf("failed to save tracks: %w", err)
	}

	logger.Info("Roster imported",
		zap.Int("staff", len(staffRows)),
		zap.Int("track_rows", len(trackRows)))

	return &ImportRosterResult{
		StaffCount:    len(staffRows),
		TrackRowCount: len(trackRows),
	}, nil
}

// buildRosterRows validates the parsed roster and converts it to
// storage rows
func buildRosterRows(file rosterFile) ([]postgres.StaffRow, []postgres.TrackRow, error) {
	cal := schedule.New()
	seen := make(map[string]bool, len(file.Staff))

	var staffRows []postgres.StaffRow
	var trackRows []postgres.TrackRow
	for _, member := range file.Staff {
		if member.Name == "" {
			return nil, nil, fmt.Errorf("roster entry with empty name")
		}
		if seen[member.Name] {
			return nil, nil, fmt.Errorf("duplicate staff member %q", member.Name)
		}
		seen[member.Name] = true

		if !model.Role(member.Role).IsValid() {
			return nil, nil, fmt.Errorf("staff member %q has unknown role %q", member.Name, member.Role)
		}
		if member.SeniorityRank < 1 {
			return nil, nil, fmt.Errorf("staff member %q has invalid seniority rank %d", member.Name, member.SeniorityRank)
		}
		for code := range member.DayPreferences {
			if !catalog.Contains(code, model.CategoryDay) {
				return nil, nil, fmt.Errorf("staff member %q day preference %q: %w", member.Name, code, catalog.ErrUnknownShiftCode)
			}
		}
		for code := range member.NightPreferences {
			if !catalog.Contains(code, model.CategoryNight) {
				return nil, nil, fmt.Errorf("staff member %q night preference %q: %w", member.Name, code, catalog.ErrUnknownShiftCode)
			}
		}

		staffRows = append(staffRows, postgres.StaffRow{
			Name:               member.Name,
			Role:               member.Role,
			SeniorityRank:      member.SeniorityRank,
			DayPreferences:     member.DayPreferences,
			NightPreferences:   member.NightPreferences,
			ShiftsPerPayPeriod: member.ShiftsPerPayPeriod,
			NightMinimum:       member.NightMinimum,
			WeekendMinimum:     member.WeekendMinimum,
			WeekendGroup:       member.WeekendGroup,
		})

		for label, value := range member.Track {
			if _, ok := cal.ByLabel(label); !ok {
				return nil, nil, fmt.Errorf("staff member %q track day %q is not a cycle day", member.Name, label)
			}
			if _, err := model.ParseAssignment(value); err != nil {
				return nil, nil, fmt.Errorf("staff member %q track day %s: %w", member.Name, label, err)
			}
			trackRows = append(trackRows, postgres.TrackRow{
				ID:        uuid.New().String(),
				StaffName: member.Name,
				SlotLabel: label,
				Value:     value,
				Active:    true,
			})
		}
	}

	return staffRows, trackRows, nil
}
