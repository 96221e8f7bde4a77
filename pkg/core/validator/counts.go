package validator

import (
	"fmt"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
)

const (
	// weeklyShiftCap is the maximum worked days per calendar week when
	// the weekly cap is enabled
	weeklyShiftCap = 3

	// maxConsecutive is the longest permitted run of worked days
	maxConsecutive = 4

	// maxConsecutiveWithNight extends the run limit when the run
	// contains at least one night shift
	maxConsecutiveWithNight = 5

	// minRestMinutes is the required gap between the end of one shift
	// and the nominal start of the next
	minRestMinutes = 720

	// Nominal clock times in minutes from midnight. Day shifts (and
	// admin time) run 0700-1900; night shifts run 1900-0700.
	dayStartMinutes   = 7 * 60
	nightStartMinutes = 19 * 60
	minutesPerDay     = 24 * 60
)

func validateConsecutive(cal *schedule.Calendar, in Input) RuleResult {
	result := RuleResult{Passed: true}

	slots := cal.Slots()
	runStart := -1
	runHasNight := false

	flush := func(end int) {
		if runStart < 0 {
			return
		}
		length := end - runStart
		limit := maxConsecutive
		if runHasNight {
			limit = maxConsecutiveWithNight
		}
		if length > limit {
			result.Passed = false
			result.Issues = append(result.Issues,
				fmt.Sprintf("%s through %s: %d consecutive shifts (maximum %d)",
					slots[runStart].Label, slots[end-1].Label, length, limit))
		}
		runStart = -1
		runHasNight = false
	}

	for i, slot := range slots {
		a := effective(slot.Label, in)
		if a.Worked() {
			if runStart < 0 {
				runStart = i
			}
			if a == model.Night {
				runHasNight = true
			}
			continue
		}
		flush(i)
	}
	flush(len(slots))

	if result.Passed {
		result.Detail = "no consecutive-shift run exceeds the limit"
	} else {
		result.Detail = fmt.Sprintf("%d run(s) exceed the consecutive limit", len(result.Issues))
	}
	return result
}

// shiftClockTimes returns the nominal start and end minutes for an
// assignment. Admin time keeps day-shift hours.
func shiftClockTimes(a model.Assignment) (start, end int) {
	if a == model.Night {
		return nightStartMinutes, dayStartMinutes
	}
	return dayStartMinutes, nightStartMinutes
}

// restBetween computes the rest available between the end of the
// earlier shift and the start of the next day's shift, wrapping the
// clock where the earlier shift ends after the next one starts
func restBetween(prev, next model.Assignment) int {
	_, prevEnd := shiftClockTimes(prev)
	nextStart, _ := shiftClockTimes(next)
	rest := nextStart - prevEnd
	if rest < 0 {
		rest += minutesPerDay
	}
	return rest
}

func validateRest(cal *schedule.Calendar, in Input) (RuleResult, []RestViolation) {
	result := RuleResult{Passed: true}
	var violations []RestViolation

	slots := cal.Slots()
	for i := 0; i < len(slots)-1; i++ {
		prev := effective(slots[i].Label, in)
		next := effective(slots[i+1].Label, in)
		if !prev.Worked() || !next.Worked() {
			continue
		}
		// Admin time after a night shift carries no rest requirement
		if prev == model.Night && next == model.AdminTime {
			continue
		}
		rest := restBetween(prev, next)
		if rest < minRestMinutes {
			result.Passed = false
			violations = append(violations, RestViolation{
				From:    slots[i].Label,
				To:      slots[i+1].Label,
				Minutes: rest,
			})
			result.Issues = append(result.Issues,
				fmt.Sprintf("%s (%s) to %s (%s): %d minutes rest (%d required)",
					slots[i].Label, prev, slots[i+1].Label, next, rest, minRestMinutes))
		}
	}

	if result.Passed {
		result.Detail = "all adjacent shifts have sufficient rest"
	} else {
		result.Detail = fmt.Sprintf("%d rest violation(s)", len(violations))
	}
	return result, violations
}
