package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/postgres"
)

// ListStaffStore defines the database operations needed to list staff
type ListStaffStore interface {
	GetStaff(ctx context.Context) ([]postgres.StaffRow, error)
}

// ListStaff returns the roster in seniority order
func ListStaff(ctx context.Context, store ListStaffStore, logger *zap.Logger) ([]model.Staff, error) {
	rows, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	roster, err := buildRoster(rows)
	if err != nil {
		return nil, err
	}

	sort.Slice(roster, func(i, j int) bool {
		if roster[i].SeniorityRank != roster[j].SeniorityRank {
			return roster[i].SeniorityRank < roster[j].SeniorityRank
		}
		return roster[i].Name < roster[j].Name
	})

	logger.Info("Staff fetched", zap.Int("count", len(roster)))
	return roster, nil
}
