package validator

import (
	"fmt"
	"strings"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
)

// WeekendGroupPolicy maps weekend group letters to their scheduled
// periods. Each period is a set of slot labels; a staff member in the
// group must work at least MinimumPerPeriod weekend shifts per period.
type WeekendGroupPolicy struct {
	Groups           map[string][][]string
	MinimumPerPeriod int
}

// DefaultWeekendGroupPolicy returns the standard A-E weekend rotation.
// Groups A and B work every other weekend (three periods per cycle);
// C, D and E work every third weekend (two periods per cycle).
func DefaultWeekendGroupPolicy() WeekendGroupPolicy {
	return WeekendGroupPolicy{
		MinimumPerPeriod: 2,
		Groups: map[string][][]string{
			"A": {
				{"Fri C 6", "Sat C 6", "Sun A 1"},
				{"Fri A 2", "Sat A 2", "Sun B 3"},
				{"Fri B 4", "Sat B 4", "Sun C 5"},
			},
			"B": {
				{"Fri A 1", "Sat A 1", "Sun A 2"},
				{"Fri B 3", "Sat B 3", "Sun B 4"},
				{"Fri C 5", "Sat C 5", "Sun C 6"},
			},
			"C": {
				{"Fri C 6", "Sat C 6", "Sun A 1"},
				{"Fri B 3", "Sat B 3", "Sun B 4"},
			},
			"D": {
				{"Fri A 1", "Sat A 1", "Sun A 2"},
				{"Fri B 4", "Sat B 4", "Sun C 5"},
			},
			"E": {
				{"Fri A 2", "Sat A 2", "Sun B 3"},
				{"Fri C 5", "Sat C 5", "Sun C 6"},
			},
		},
	}
}

func validateWeekendGroup(cal *schedule.Calendar, in Input) RuleResult {
	group := strings.TrimSpace(in.WeekendGroup)
	if group == "" {
		return RuleResult{Passed: true, Detail: "no weekend group assigned"}
	}
	if in.WeekendGroupPolicy.MinimumPerPeriod <= 0 {
		return RuleResult{Passed: true, Detail: "weekend group rule disabled"}
	}

	periods, ok := in.WeekendGroupPolicy.Groups[group]
	if !ok {
		return RuleResult{
			Passed: false,
			Detail: fmt.Sprintf("unknown weekend group %q", group),
			Issues: []string{fmt.Sprintf("weekend group %q is not defined", group)},
		}
	}

	result := RuleResult{Passed: true}
	minimum := in.WeekendGroupPolicy.MinimumPerPeriod

	for i, period := range periods {
		count := 0
		for _, label := range period {
			slot, ok := cal.ByLabel(label)
			if !ok {
				continue
			}
			if countsAsWeekendShift(slot, effective(label, in)) {
				count++
			}
		}
		if count < minimum {
			result.Passed = false
			result.Issues = append(result.Issues,
				fmt.Sprintf("group %s period %d (%s): %d shifts (minimum %d required)",
					group, i+1, strings.Join(period, ", "), count, minimum))
		}
	}

	if result.Passed {
		result.Detail = fmt.Sprintf("group %s: all %d periods meet the minimum of %d", group, len(periods), minimum)
	} else {
		result.Detail = fmt.Sprintf("group %s: %d period(s) below the minimum", group, len(result.Issues))
	}
	return result
}
