package validator

import (
	"fmt"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
)

// Input carries everything one validation run needs. Zero thresholds
// disable their rule.
type Input struct {
	Track          model.Track
	Preassignments model.Preassignments

	ShiftsPerPayPeriod int
	NightMinimum       int
	WeekendMinimum     int

	WeeklyCapEnabled bool

	WeekendGroup       string
	WeekendGroupPolicy WeekendGroupPolicy
}

// RuleResult is the outcome of one rule category
type RuleResult struct {
	Passed bool
	Detail string
	Issues []string
}

// RestViolation identifies an adjacent pair of worked days with less
// than the required rest between them
type RestViolation struct {
	From    string // earlier slot label
	To      string // later slot label
	Minutes int    // rest actually available
}

// Result is the full validation report. Every category is always
// populated; validation never stops at the first failure.
type Result struct {
	PayPeriod      RuleResult
	NightMinimum   RuleResult
	WeekendMinimum RuleResult
	WeeklyCap      RuleResult
	Consecutive    RuleResult
	Rest           RuleResult
	Preassignment  RuleResult
	WeekendGroup   RuleResult

	RestViolations []RestViolation
}

// Valid reports whether every rule category passed
func (r Result) Valid() bool {
	return r.PayPeriod.Passed &&
		r.NightMinimum.Passed &&
		r.WeekendMinimum.Passed &&
		r.WeeklyCap.Passed &&
		r.Consecutive.Passed &&
		r.Rest.Passed &&
		r.Preassignment.Passed &&
		r.WeekendGroup.Passed
}

// Validate runs every rule category against the track and returns the
// full report. The function is stateless: identical input yields an
// identical Result.
func Validate(cal *schedule.Calendar, in Input) Result {
	var result Result
	result.PayPeriod = validatePayPeriods(cal, in)
	result.NightMinimum = validateNightMinimum(cal, in)
	result.WeekendMinimum = validateWeekendMinimum(cal, in)
	result.WeeklyCap = validateWeeklyCap(cal, in)
	result.Consecutive = validateConsecutive(cal, in)
	result.Rest, result.RestViolations = validateRest(cal, in)
	result.Preassignment = validatePreassignments(cal, in)
	result.WeekendGroup = validateWeekendGroup(cal, in)
	return result
}

// effective returns the governing assignment for a slot label
func effective(label string, in Input) model.Assignment {
	return model.Effective(label, in.Track, in.Preassignments)
}

func validatePayPeriods(cal *schedule.Calendar, in Input) RuleResult {
	if in.ShiftsPerPayPeriod == 0 {
		return RuleResult{Passed: true, Detail: "no pay period requirement set"}
	}

	result := RuleResult{Passed: true}
	for period := 1; period <= schedule.PayPeriodCount; period++ {
		count := 0
		for _, slot := range cal.PayPeriod(period) {
			if effective(slot.Label, in).Worked() {
				count++
			}
		}
		if count != in.ShiftsPerPayPeriod {
			result.Passed = false
			result.Issues = append(result.Issues,
				fmt.Sprintf("pay period %d: %d shifts (exactly %d required)", period, count, in.ShiftsPerPayPeriod))
		}
	}

	if result.Passed {
		result.Detail = fmt.Sprintf("all %d pay periods have exactly %d shifts", schedule.PayPeriodCount, in.ShiftsPerPayPeriod)
	} else {
		result.Detail = fmt.Sprintf("%d pay period(s) off target", len(result.Issues))
	}
	return result
}

func validateNightMinimum(cal *schedule.Calendar, in Input) RuleResult {
	if in.NightMinimum == 0 {
		return RuleResult{Passed: true, Detail: "no night minimum set"}
	}

	nights := 0
	for _, slot := range cal.Slots() {
		if effective(slot.Label, in) == model.Night {
			nights++
		}
	}

	if nights < in.NightMinimum {
		return RuleResult{
			Passed: false,
			Detail: fmt.Sprintf("%d night shifts (minimum %d required)", nights, in.NightMinimum),
			Issues: []string{fmt.Sprintf("%d night shifts scheduled, %d required", nights, in.NightMinimum)},
		}
	}
	return RuleResult{Passed: true, Detail: fmt.Sprintf("%d night shifts meet minimum of %d", nights, in.NightMinimum)}
}

// countsAsWeekendShift applies the weekend counting rule: Friday nights
// count, and any worked Saturday or Sunday counts
func countsAsWeekendShift(slot schedule.DaySlot, a model.Assignment) bool {
	if slot.Weekday == "Fri" {
		return a == model.Night
	}
	if slot.IsWeekend() {
		return a.Worked()
	}
	return false
}

func validateWeekendMinimum(cal *schedule.Calendar, in Input) RuleResult {
	if in.WeekendMinimum == 0 {
		return RuleResult{Passed: true, Detail: "no weekend minimum set"}
	}

	count := 0
	for _, slot := range cal.Slots() {
		if countsAsWeekendShift(slot, effective(slot.Label, in)) {
			count++
		}
	}

	if count < in.WeekendMinimum {
		return RuleResult{
			Passed: false,
			Detail: fmt.Sprintf("%d weekend shifts (minimum %d required)", count, in.WeekendMinimum),
			Issues: []string{fmt.Sprintf("%d weekend shifts scheduled, %d required", count, in.WeekendMinimum)},
		}
	}
	return RuleResult{Passed: true, Detail: fmt.Sprintf("%d weekend shifts meet minimum of %d", count, in.WeekendMinimum)}
}

func validateWeeklyCap(cal *schedule.Calendar, in Input) RuleResult {
	if !in.WeeklyCapEnabled {
		return RuleResult{Passed: true, Detail: "weekly cap disabled"}
	}

	result := RuleResult{Passed: true}
	for week := 1; week <= schedule.WeekCount; week++ {
		count := 0
		for _, slot := range cal.Week(week) {
			if effective(slot.Label, in).Worked() {
				count++
			}
		}
		if count > weeklyShiftCap {
			result.Passed = false
			result.Issues = append(result.Issues,
				fmt.Sprintf("week %d: %d shifts (maximum %d allowed)", week, count, weeklyShiftCap))
		}
	}

	if result.Passed {
		result.Detail = fmt.Sprintf("no week exceeds %d shifts", weeklyShiftCap)
	} else {
		result.Detail = fmt.Sprintf("%d week(s) over the cap", len(result.Issues))
	}
	return result
}

// validatePreassignments flags track days whose worked value contradicts
// a preassignment for the same day
func validatePreassignments(cal *schedule.Calendar, in Input) RuleResult {
	result := RuleResult{Passed: true, Detail: "track agrees with preassignments"}
	for _, slot := range cal.Slots() {
		pre, ok := in.Preassignments[slot.Label]
		if !ok || !pre.Worked() {
			continue
		}
		tracked, ok := in.Track[slot.Label]
		if !ok || !tracked.Worked() {
			continue
		}
		if tracked != pre {
			result.Passed = false
			result.Issues = append(result.Issues,
				fmt.Sprintf("%s: track has %s but preassignment is %s", slot.Label, tracked, pre))
		}
	}
	if !result.Passed {
		result.Detail = fmt.Sprintf("%d day(s) contradict preassignments", len(result.Issues))
	}
	return result
}
