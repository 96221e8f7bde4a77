package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/internal/config"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/simulator"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/postgres"
)

// SlotStaffing is the committed staffing picture for one day and category
type SlotStaffing struct {
	Day       string
	Category  model.Category
	Occupants []string
	Headroom  map[model.Role]simulator.Headroom
}

// StaffingReportStore defines the database operations needed for the
// staffing report
type StaffingReportStore interface {
	GetStaff(ctx context.Context) ([]postgres.StaffRow, error)
	GetActiveTracks(ctx context.Context) ([]postgres.TrackRow, error)
	GetAllPreassignments(ctx context.Context) ([]postgres.PreassignmentRow, error)
}

// StaffingReport reports committed occupancy and remaining capacity for
// every day and category across the cycle
func StaffingReport(
	ctx context.Context,
	store StaffingReportStore,
	cfg *config.Config,
	logger *zap.Logger,
) ([]SlotStaffing, error) {
	logger.Debug("Starting staffingReport")

	staffRows, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	roster, err := buildRoster(staffRows)
	if err != nil {
		return nil, err
	}

	trackRows, err := store.GetActiveTracks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tracks: %w", err)
	}
	preRows, err := store.GetAllPreassignments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preassignments: %w", err)
	}
	committed, err := buildCommitted(trackRows, preRows)
	if err != nil {
		return nil, err
	}

	snap, err := simulator.NewSnapshot(roster, committed)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}

	capacity := capacityFromConfig(cfg)
	cal := schedule.New()

	report := make([]SlotStaffing, 0, schedule.SlotCount*2)
	for _, slot := range cal.Slots() {
		for _, cat := range []model.Category{model.CategoryDay, model.CategoryNight} {
			report = append(report, SlotStaffing{
				Day:       slot.Label,
				Category:  cat,
				Occupants: snap.Occupancy(slot.Label, cat),
				Headroom:  simulator.HeadroomFor(snap, slot.Label, cat, capacity),
			})
		}
	}

	logger.Info("Staffing report built", zap.Int("slots", len(report)))
	return report, nil
}
