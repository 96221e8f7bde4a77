package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"
)

const (
	// SlotCount is the number of days in one rotation cycle
	SlotCount = 42

	// WeekCount is the number of calendar weeks in one cycle
	WeekCount = 6

	// PayPeriodCount is the number of 14-day pay periods in one cycle
	PayPeriodCount = 3

	// PayPeriodLength is the number of days per pay period
	PayPeriodLength = 14
)

var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// DaySlot is one day of the 42-day rotation cycle
type DaySlot struct {
	Index   int    // 0-based position in the cycle
	Weekday string // "Sun" .. "Sat"
	Block   string // "A" (weeks 1-2), "B" (weeks 3-4), "C" (weeks 5-6)
	Week    int    // 1..6
	Label   string // e.g. "Sun A 1"
}

// IsWeekend reports whether the slot falls on Saturday or Sunday
func (d DaySlot) IsWeekend() bool {
	return d.Weekday == "Sat" || d.Weekday == "Sun"
}

// DatedSlot is a DaySlot pinned to a real calendar date
type DatedSlot struct {
	DaySlot
	Date time.Time
}

// Calendar is the fixed 42-slot cycle, Sunday of week 1 through
// Saturday of week 6
type Calendar struct {
	slots   []DaySlot
	byLabel map[string]int
}

// New builds the cycle calendar
func New() *Calendar {
	cal := &Calendar{
		slots:   make([]DaySlot, 0, SlotCount),
		byLabel: make(map[string]int, SlotCount),
	}
	for i := 0; i < SlotCount; i++ {
		week := i/7 + 1
		block := string(rune('A' + (week-1)/2))
		weekday := weekdayNames[i%7]
		slot := DaySlot{
			Index:   i,
			Weekday: weekday,
			Block:   block,
			Week:    week,
			Label:   fmt.Sprintf("%s %s %d", weekday, block, week),
		}
		cal.slots = append(cal.slots, slot)
		cal.byLabel[slot.Label] = i
	}
	return cal
}

// Slots returns all 42 slots in cycle order
func (c *Calendar) Slots() []DaySlot {
	return c.slots
}

// ByLabel looks up a slot by its label
func (c *Calendar) ByLabel(label string) (DaySlot, bool) {
	i, ok := c.byLabel[label]
	if !ok {
		return DaySlot{}, false
	}
	return c.slots[i], true
}

// PayPeriod returns the 14 slots of pay period n (1..3)
func (c *Calendar) PayPeriod(n int) []DaySlot {
	if n < 1 || n > PayPeriodCount {
		return nil
	}
	start := (n - 1) * PayPeriodLength
	return c.slots[start : start+PayPeriodLength]
}

// Week returns the 7 slots of calendar week n (1..6)
func (c *Calendar) Week(n int) []DaySlot {
	if n < 1 || n > WeekCount {
		return nil
	}
	start := (n - 1) * 7
	return c.slots[start : start+7]
}

// DatedSlots attaches real dates to the cycle using a daily recurrence
// from the given cycle start. The start must fall on a Sunday, matching
// the first slot of the cycle.
func (c *Calendar) DatedSlots(start time.Time) ([]DatedSlot, error) {
	if start.Weekday() != time.Sunday {
		return nil, fmt.Errorf("cycle start %s is not a Sunday", start.Format("2006-01-02"))
	}
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   SlotCount,
		Dtstart: start,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build cycle recurrence: %w", err)
	}
	dates := rule.All()
	if len(dates) != SlotCount {
		return nil, fmt.Errorf("cycle recurrence produced %d dates, expected %d", len(dates), SlotCount)
	}
	dated := make([]DatedSlot, SlotCount)
	for i, slot := range c.slots {
		dated[i] = DatedSlot{DaySlot: slot, Date: dates[i]}
	}
	return dated, nil
}

// CycleStarts returns the first n cycle start dates produced by the
// given recurrence rule, anchored at from
func CycleStarts(ruleStr string, from time.Time, n int) ([]time.Time, error) {
	rule, err := rrule.StrToRRule(ruleStr)
	if err != nil {
		return nil, fmt.Errorf("invalid cycle rule: %w", err)
	}
	rule.DTStart(from)
	var starts []time.Time
	iter := rule.Iterator()
	for len(starts) < n {
		next, ok := iter()
		if !ok {
			break
		}
		starts = append(starts, next)
	}
	return starts, nil
}
