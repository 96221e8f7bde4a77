package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/internal/config"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/validator"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/postgres"
)

// ValidateTrackResult contains the validation report for one staff member
type ValidateTrackResult struct {
	StaffName    string
	Role         model.Role
	Requirements model.Requirements
	Result       validator.Result
}

// ValidateTrackStore defines the database operations needed to validate a track
type ValidateTrackStore interface {
	GetStaff(ctx context.Context) ([]postgres.StaffRow, error)
	GetActiveTrack(ctx context.Context, staffName string) ([]postgres.TrackRow, error)
	GetPreassignments(ctx context.Context, staffName string) ([]postgres.PreassignmentRow, error)
}

// ValidateTrack loads a staff member's active track and preassignments
// and runs the full rule validation against their requirements
func ValidateTrack(
	ctx context.Context,
	store ValidateTrackStore,
	cfg *config.Config,
	logger *zap.Logger,
	staffName string,
) (*ValidateTrackResult, error) {
	logger.Debug("Starting validateTrack", zap.String("staff", staffName))

	staffRows, err := store.GetStaff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff: %w", err)
	}

	var staff model.Staff
	found := false
	for _, row := range staffRows {
		if row.Name != staffName {
			continue
		}
		staff, err = buildStaff(row)
		if err != nil {
			return nil, err
		}
		found = true
		break
	}
	if !found {
		return nil, fmt.Errorf("%q: %w", staffName, model.ErrStaffNotFound)
	}

	trackRows, err := store.GetActiveTrack(ctx, staffName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch track: %w", err)
	}
	track, err := buildTrack(trackRows)
	if err != nil {
		return nil, fmt.Errorf("track for %s: %w", staffName, err)
	}
	logger.Debug("Loaded active track", zap.Int("worked_days", len(track)))

	preRows, err := store.GetPreassignments(ctx, staffName)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preassignments: %w", err)
	}
	pre, err := buildPreassignments(preRows)
	if err != nil {
		return nil, fmt.Errorf("preassignments for %s: %w", staffName, err)
	}
	logger.Debug("Loaded preassignments", zap.Int("count", len(pre)))

	input := validator.Input{
		Track:              track,
		Preassignments:     pre,
		ShiftsPerPayPeriod: staff.Requirements.ShiftsPerPayPeriod,
		NightMinimum:       staff.Requirements.NightMinimum,
		WeekendMinimum:     staff.Requirements.WeekendMinimum,
		WeeklyCapEnabled:   cfg.WeeklyCapEnabled,
		WeekendGroup:       staff.Requirements.WeekendGroup,
		WeekendGroupPolicy: weekendPolicyFromConfig(cfg),
	}

	result := validator.Validate(schedule.New(), input)

	logger.Info("Track validated",
		zap.String("staff", staffName),
		zap.Bool("valid", result.Valid()),
		zap.Int("rest_violations", len(result.RestViolations)))

	return &ValidateTrackResult{
		StaffName:    staffName,
		Role:         staff.Role,
		Requirements: staff.Requirements,
		Result:       result,
	}, nil
}
