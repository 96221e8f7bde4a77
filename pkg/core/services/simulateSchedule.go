package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/internal/config"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/simulator"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/postgres"
)

// SimulateScheduleResult contains one candidate's simulated schedule
type SimulateScheduleResult struct {
	RunID    string // empty on dry runs
	Schedule *simulator.ScheduleResult
}

// SimulateScheduleStore defines the database operations needed to
// simulate a schedule
type SimulateScheduleStore interface {
	GetStaff(ctx context.Context) ([]postgres.StaffRow, error)
	GetActiveTracks(ctx context.Context) ([]postgres.TrackRow, error)
	GetAllPreassignments(ctx context.Context) ([]postgres.PreassignmentRow, error)
	InsertSimulationRun(ctx context.Context, run postgres.SimulationRunRow) error
}

// SimulateSchedule runs the full-cycle allocation simulation for one
// candidate. The roster and committed schedule are loaded once and
// frozen into a snapshot before any slot is simulated.
// If dryRun is true, no simulation run record is saved.
func SimulateSchedule(
	ctx context.Context,
	store SimulateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	staffName string,
	dryRun bool,
) (*SimulateScheduleResult, error) {
	logger.Debug("Starting simulateSchedule",
		zap.String("staff", staffName),
		zap.Bool("dry_run", dryRun))

	snap, err := loadSnapshot(ctx, store, logger)
	if err != nil {
		return nil, err
	}

	return simulateFromSnapshot(ctx, store, cfg, logger, snap, staffName, dryRun)
}

// loadSnapshot builds the immutable simulation snapshot from the store
func loadSnapshot(ctx context.Context, store SimulateScheduleStore, logger *zap.Logger) (*simulator.Snapshot, error) {
	staffRows, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}
	roster, err := buildRoster(staffRows)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded roster", zap.Int("count", len(roster)))

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
	logger.Debug("Built committed schedule", zap.Int("days", len(committed)))

	snap, err := simulator.NewSnapshot(roster, committed)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot: %w", err)
	}
	return snap, nil
}

// simulateFromSnapshot runs the orchestrator against an existing
// snapshot and optionally records the run
func simulateFromSnapshot(
	ctx context.Context,
	store SimulateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	snap *simulator.Snapshot,
	staffName string,
	dryRun bool,
) (*SimulateScheduleResult, error) {
	scheduleResult, err := simulator.SimulateSchedule(schedule.New(), snap, staffName, capacityFromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("simulation failed for %s: %w", staffName, err)
	}

	unassigned := 0
	for _, rationale := range scheduleResult.Rationale {
		if rationale.Outcome.Reason != simulator.ReasonAssigned {
			unassigned++
		}
	}

	logger.Info("Simulation completed",
		zap.String("staff", staffName),
		zap.Int("day_assignments", len(scheduleResult.DayAssignments)),
		zap.Int("night_assignments", len(scheduleResult.NightAssignments)),
		zap.Int("unassigned_slots", unassigned))

	result := &SimulateScheduleResult{Schedule: scheduleResult}

	if dryRun {
		logger.Info("Dry run mode - simulation run not saved")
		return result, nil
	}

	run := postgres.SimulationRunRow{
		ID:              uuid.New().String(),
		StaffName:       staffName,
		DayCount:        len(scheduleResult.DayAssignments),
		NightCount:      len(scheduleResult.NightAssignments),
		UnassignedCount: unassigned,
	}
	if err := store.InsertSimulationRun(ctx, run); err != nil {
		return nil, fmt.Errorf("failed to save simulation run: %w", err)
	}
	result.RunID = run.ID
	logger.Info("Simulation run saved", zap.String("run_id", run.ID))

	return result, nil
}
