package simulator

import (
	"fmt"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
)

// Headroom is the remaining committed-staffing room for one effective
// role on one day and category
type Headroom struct {
	Capacity  int
	Occupied  int
	Remaining int
}

// SlotRationale carries the per-slot simulation detail: the candidate's
// outcome plus staffing headroom for both effective roles
type SlotRationale struct {
	Day      string
	Category model.Category
	Outcome  *Outcome
	Headroom map[model.Role]Headroom
}

// ScheduleResult is a full-cycle simulation for one candidate
type ScheduleResult struct {
	Candidate        string
	DayAssignments   map[string]string // slot label -> shift code
	NightAssignments map[string]string
	Rationale        []SlotRationale
	Ranking          RoleRanking
}

// SimulateSchedule runs the allocation simulation for one candidate
// across all 42 days and both shift categories. Every slot is simulated
// from the same snapshot; the committed schedule never shifts under the
// run.
func SimulateSchedule(cal *schedule.Calendar, snap *Snapshot, candidate string, capacity CapacityConfig) (*ScheduleResult, error) {
	ranking, err := snap.RoleRanking(candidate)
	if err != nil {
		return nil, err
	}

	result := &ScheduleResult{
		Candidate:        candidate,
		DayAssignments:   make(map[string]string),
		NightAssignments: make(map[string]string),
		Ranking:          ranking,
	}

	categories := []model.Category{model.CategoryDay, model.CategoryNight}
	for _, slot := range cal.Slots() {
		for _, cat := range categories {
			outcome, err := SimulateSlot(snap, candidate, slot.Label, cat, capacity)
			if err != nil {
				return nil, fmt.Errorf("simulating %s %s: %w", slot.Label, cat, err)
			}

			if outcome.Reason == ReasonAssigned {
				if cat == model.CategoryNight {
					result.NightAssignments[slot.Label] = outcome.ShiftCode
				} else {
					result.DayAssignments[slot.Label] = outcome.ShiftCode
				}
			}

			result.Rationale = append(result.Rationale, SlotRationale{
				Day:      slot.Label,
				Category: cat,
				Outcome:  outcome,
				Headroom: HeadroomFor(snap, slot.Label, cat, capacity),
			})
		}
	}

	return result, nil
}

// HeadroomFor reports committed staffing against capacity for both
// effective roles on one slot
func HeadroomFor(snap *Snapshot, day string, cat model.Category, capacity CapacityConfig) map[model.Role]Headroom {
	headroom := make(map[model.Role]Headroom, 2)
	for _, role := range []model.Role{model.RoleNurse, model.RoleMedic} {
		limit := capacity.For(cat, role)
		occupied := snap.OccupancyByRole(day, cat, role)
		headroom[role] = Headroom{
			Capacity:  limit,
			Occupied:  occupied,
			Remaining: limit - occupied,
		}
	}
	return headroom
}
