package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/AlphaBravo227/CrewOps360-sub001/internal/config"
)

// SimulateAll runs the schedule simulation for every roster member.
// One snapshot is taken up front and shared by every worker, so all
// candidates are simulated against the same committed state. Within a
// candidate the slot order stays sequential; only candidates run
// concurrently. Results are returned in roster (seniority) order.
func SimulateAll(
	ctx context.Context,
	store SimulateScheduleStore,
	cfg *config.Config,
	logger *zap.Logger,
	workers int,
	dryRun bool,
) ([]*SimulateScheduleResult, error) {
	if workers < 1 {
		workers = 1
	}
	logger.Debug("Starting simulateAll",
		zap.Int("workers", workers),
		zap.Bool("dry_run", dryRun))

	snap, err := loadSnapshot(ctx, store, logger)
	if err != nil {
		return nil, err
	}

	roster := snap.Roster()
	results := make([]*SimulateScheduleResult, len(roster))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	for i, member := range roster {
		i, member := i, member
		group.Go(func() error {
			result, err := simulateFromSnapshot(groupCtx, store, cfg, logger, snap, member.Name, dryRun)
			if err != nil {
				return fmt.Errorf("simulating %s: %w", member.Name, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	logger.Info("All simulations completed", zap.Int("count", len(results)))
	return results, nil
}
