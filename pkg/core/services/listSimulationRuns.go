package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/postgres"
)

// ListSimulationRunsStore defines the database operations needed to
// view simulation history
type ListSimulationRunsStore interface {
	GetSimulationRuns(ctx context.Context, limit int) ([]postgres.SimulationRunRow, error)
}

// ListSimulationRuns returns the most recent saved simulation runs,
// newest first
func ListSimulationRuns(ctx context.Context, store ListSimulationRunsStore, logger *zap.Logger, limit int) ([]postgres.SimulationRunRow, error) {
	if limit < 1 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	runs, err := store.GetSimulationRuns(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch simulation runs: %w", err)
	}

	logger.Info("Simulation runs fetched", zap.Int("count", len(runs)))
	return runs, nil
}
