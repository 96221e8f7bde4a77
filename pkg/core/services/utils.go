package services

import (
	"fmt"

	"github.com/AlphaBravo227/CrewOps360-sub001/internal/config"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/simulator"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/validator"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/postgres"
)

// buildStaff converts a stored staff row to the core model
func buildStaff(row postgres.StaffRow) (model.Staff, error) {
	role := model.Role(row.Role)
	if !role.IsValid() {
		return model.Staff{}, fmt.Errorf("staff member %q has unknown role %q", row.Name, row.Role)
	}

	return model.Staff{
		Name:             row.Name,
		Role:             role,
		SeniorityRank:    row.SeniorityRank,
		DayPreferences:   row.DayPreferences,
		NightPreferences: row.NightPreferences,
		Requirements: model.Requirements{
			ShiftsPerPayPeriod: row.ShiftsPerPayPeriod,
			NightMinimum:       row.NightMinimum,
			WeekendMinimum:     row.WeekendMinimum,
			WeekendGroup:       row.WeekendGroup,
		},
	}, nil
}

// buildRoster converts all stored staff rows to the core model
func buildRoster(rows []postgres.StaffRow) ([]model.Staff, error) {
	roster := make([]model.Staff, 0, len(rows))
	for _, row := range rows {
		staff, err := buildStaff(row)
		if err != nil {
			return nil, err
		}
		roster = append(roster, staff)
	}
	return roster, nil
}

// buildTrack parses stored track rows into a Track
func buildTrack(rows []postgres.TrackRow) (model.Track, error) {
	raw := make(map[string]string, len(rows))
	for _, row := range rows {
		raw[row.SlotLabel] = row.Value
	}
	return model.ParseTrack(raw)
}

// buildPreassignments parses stored preassignment rows
func buildPreassignments(rows []postgres.PreassignmentRow) (model.Preassignments, error) {
	raw := make(map[string]string, len(rows))
	for _, row := range rows {
		raw[row.SlotLabel] = row.Value
	}
	return model.ParsePreassignments(raw)
}

// buildCommitted derives the committed schedule from everyone's active
// track and preassignments: the effective value per staff member and
// day decides which category, if any, they occupy. Admin time does not
// occupy a flight shift.
func buildCommitted(tracks []postgres.TrackRow, preassignments []postgres.PreassignmentRow) (simulator.CommittedSchedule, error) {
	trackRowsByStaff := make(map[string][]postgres.TrackRow)
	for _, row := range tracks {
		trackRowsByStaff[row.StaffName] = append(trackRowsByStaff[row.StaffName], row)
	}
	preRowsByStaff := make(map[string][]postgres.PreassignmentRow)
	for _, row := range preassignments {
		preRowsByStaff[row.StaffName] = append(preRowsByStaff[row.StaffName], row)
	}

	names := make(map[string]bool)
	for name := range trackRowsByStaff {
		names[name] = true
	}
	for name := range preRowsByStaff {
		names[name] = true
	}

	committed := make(simulator.CommittedSchedule)
	for name := range names {
		track, err := buildTrack(trackRowsByStaff[name])
		if err != nil {
			return nil, fmt.Errorf("track for %s: %w", name, err)
		}
		pre, err := buildPreassignments(preRowsByStaff[name])
		if err != nil {
			return nil, fmt.Errorf("preassignments for %s: %w", name, err)
		}

		labels := make(map[string]bool, len(track)+len(pre))
		for label := range track {
			labels[label] = true
		}
		for label := range pre {
			labels[label] = true
		}

		for label := range labels {
			var cat model.Category
			switch model.Effective(label, track, pre) {
			case model.Day:
				cat = model.CategoryDay
			case model.Night:
				cat = model.CategoryNight
			default:
				continue
			}
			if committed[label] == nil {
				committed[label] = make(map[model.Category][]string, 2)
			}
			committed[label][cat] = append(committed[label][cat], name)
		}
	}

	return committed, nil
}

// capacityFromConfig converts configured staffing levels
func capacityFromConfig(cfg *config.Config) simulator.CapacityConfig {
	return simulator.CapacityConfig{
		DayNurse:   cfg.Capacity.DayNurse,
		DayMedic:   cfg.Capacity.DayMedic,
		NightNurse: cfg.Capacity.NightNurse,
		NightMedic: cfg.Capacity.NightMedic,
	}
}

// weekendPolicyFromConfig overlays configured weekend groups on the
// built-in rotation table
func weekendPolicyFromConfig(cfg *config.Config) validator.WeekendGroupPolicy {
	policy := validator.DefaultWeekendGroupPolicy()
	if len(cfg.WeekendGroups) > 0 {
		policy.Groups = cfg.WeekendGroups
	}
	if cfg.WeekendGroupMinimum > 0 {
		policy.MinimumPerPeriod = cfg.WeekendGroupMinimum
	}
	return policy
}
