package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
)

func TestValidate_EmptyTrackWithNoThresholds(t *testing.T) {
	result := Validate(schedule.New(), Input{})

	assert.True(t, result.Valid())
	assert.True(t, result.PayPeriod.Passed)
	assert.True(t, result.NightMinimum.Passed)
	assert.True(t, result.WeekendMinimum.Passed)
	assert.True(t, result.WeeklyCap.Passed)
	assert.True(t, result.Consecutive.Passed)
	assert.True(t, result.Rest.Passed)
	assert.True(t, result.Preassignment.Passed)
	assert.True(t, result.WeekendGroup.Passed)
}

func TestValidate_Idempotent(t *testing.T) {
	in := Input{
		Track: model.Track{
			"Sun A 1": model.Day,
			"Tue A 1": model.Night,
			"Sat A 1": model.Day,
		},
		NightMinimum:   1,
		WeekendMinimum: 1,
	}

	first := Validate(schedule.New(), in)
	second := Validate(schedule.New(), in)

	assert.Equal(t, first, second)
}

func TestValidate_PayPeriodExactCount(t *testing.T) {
	// Two worked days in each 14-day period
	in := Input{
		Track: model.Track{
			"Sun A 1": model.Day, "Wed A 1": model.Day, // period 1
			"Sun B 3": model.Day, "Wed B 3": model.Day, // period 2
			"Sun C 5": model.Day, "Wed C 5": model.Day, // period 3
		},
		ShiftsPerPayPeriod: 2,
	}

	result := Validate(schedule.New(), in)
	assert.True(t, result.PayPeriod.Passed)
}

func TestValidate_PayPeriodPerturbationFlipsOneBlock(t *testing.T) {
	in := Input{
		Track: model.Track{
			"Sun A 1": model.Day, "Wed A 1": model.Day,
			"Sun B 3": model.Day, "Wed B 3": model.Day,
			"Sun C 5": model.Day, "Wed C 5": model.Day,
		},
		ShiftsPerPayPeriod: 2,
	}

	// Adding one shift to period 2 flips only that block
	in.Track["Fri B 3"] = model.Day

	result := Validate(schedule.New(), in)
	assert.False(t, result.PayPeriod.Passed)
	require.Len(t, result.PayPeriod.Issues, 1)
	assert.Contains(t, result.PayPeriod.Issues[0], "pay period 2")

	// Both undercounts and overcounts fail: the count is exact
	assert.Contains(t, result.PayPeriod.Issues[0], "3 shifts")
}

func TestValidate_PayPeriodUsesPreassignments(t *testing.T) {
	in := Input{
		Track: model.Track{
			"Sun A 1": model.Day,
			"Sun B 3": model.Day, "Wed B 3": model.Day,
			"Sun C 5": model.Day, "Wed C 5": model.Day,
		},
		// Admin time preassignment completes period 1
		Preassignments:     model.Preassignments{"Wed A 1": model.AdminTime},
		ShiftsPerPayPeriod: 2,
	}

	result := Validate(schedule.New(), in)
	assert.True(t, result.PayPeriod.Passed)
}

func TestValidate_NightMinimum(t *testing.T) {
	in := Input{
		Track: model.Track{
			"Sun A 1": model.Night,
			"Tue A 1": model.Night,
		},
		NightMinimum: 3,
	}

	result := Validate(schedule.New(), in)
	assert.False(t, result.NightMinimum.Passed)

	in.Track["Thu A 1"] = model.Night
	result = Validate(schedule.New(), in)
	assert.True(t, result.NightMinimum.Passed)
}

func TestValidate_WeekendMinimum_FridayNightAndPreassignedSaturday(t *testing.T) {
	in := Input{
		Track: model.Track{
			"Fri A 1": model.Night,
		},
		// Admin time on Saturday comes from a preassignment and still counts
		Preassignments: model.Preassignments{"Sat A 1": model.AdminTime},
		WeekendMinimum: 2,
	}

	result := Validate(schedule.New(), in)
	assert.True(t, result.WeekendMinimum.Passed)

	in.WeekendMinimum = 3
	result = Validate(schedule.New(), in)
	assert.False(t, result.WeekendMinimum.Passed)
}

func TestValidate_WeekendMinimum_FridayDayDoesNotCount(t *testing.T) {
	in := Input{
		Track: model.Track{
			"Fri A 1": model.Day,
			"Fri B 3": model.Day,
		},
		WeekendMinimum: 1,
	}

	result := Validate(schedule.New(), in)
	assert.False(t, result.WeekendMinimum.Passed)
}

func TestValidate_WeeklyCap(t *testing.T) {
	in := Input{
		Track: model.Track{
			"Sun A 1": model.Day,
			"Tue A 1": model.Day,
			"Thu A 1": model.Day,
			"Sat A 1": model.Day,
		},
		WeeklyCapEnabled: true,
	}

	result := Validate(schedule.New(), in)
	assert.False(t, result.WeeklyCap.Passed)
	require.Len(t, result.WeeklyCap.Issues, 1)
	assert.Contains(t, result.WeeklyCap.Issues[0], "week 1")

	// Disabled cap always passes
	in.WeeklyCapEnabled = false
	result = Validate(schedule.New(), in)
	assert.True(t, result.WeeklyCap.Passed)
}

func TestValidate_PreassignmentConflict(t *testing.T) {
	in := Input{
		Track:          model.Track{"Mon A 1": model.Day},
		Preassignments: model.Preassignments{"Mon A 1": model.Night},
	}

	result := Validate(schedule.New(), in)
	assert.False(t, result.Preassignment.Passed)
	require.Len(t, result.Preassignment.Issues, 1)
	assert.Contains(t, result.Preassignment.Issues[0], "Mon A 1")

	// Matching values do not conflict
	in.Track["Mon A 1"] = model.Night
	result = Validate(schedule.New(), in)
	assert.True(t, result.Preassignment.Passed)
}

func TestValidate_NeverShortCircuits(t *testing.T) {
	// A track that breaks several rules still yields a full report
	in := Input{
		Track: model.Track{
			"Sun A 1": model.Day,
			"Mon A 1": model.Night, // rest violation after the day shift
			"Tue A 1": model.Day,   // rest violation after the night shift
			"Wed A 1": model.Day,
			"Thu A 1": model.Day,
			"Fri A 1": model.Day,
		},
		NightMinimum: 5,
	}

	result := Validate(schedule.New(), in)
	assert.False(t, result.Valid())
	assert.False(t, result.NightMinimum.Passed)
	assert.False(t, result.Rest.Passed)
	assert.False(t, result.Consecutive.Passed)
	// Unrelated categories still report
	assert.True(t, result.PayPeriod.Passed)
	assert.True(t, result.WeekendGroup.Passed)
}
