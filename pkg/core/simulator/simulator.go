package simulator

import (
	"fmt"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/catalog"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
)

// Reason explains a simulated allocation verdict
type Reason string

const (
	ReasonAssigned          Reason = "assigned"
	ReasonNoCapacity        Reason = "no-capacity"
	ReasonNoShiftsRemaining Reason = "no-shifts-remaining"
)

// PoolAssignment is one pool member's result in the allocation pass
type PoolAssignment struct {
	Name          string
	SeniorityRank int
	ShiftCode     string
	Preference    *int // nil when the member had no preference for the code
	Reason        Reason
}

// Outcome is the full verdict for one candidate on one day and category
type Outcome struct {
	Candidate      string
	Day            string
	Category       model.Category
	ShiftCode      string
	Preference     *int
	CompetitorRank int // candidate's 1-based position in the seniority-ordered pool
	PoolSize       int
	Reason         Reason
	Pool           []PoolAssignment
}

// SimulateSlot runs the seniority allocation for a single day and
// category. The pool is the committed occupants plus the candidate,
// restricted to the candidate's effective role and ordered by
// seniority. Shifts are claimed greedily in that order; the pass always
// runs over the whole pool so the rationale is complete even when the
// candidate is squeezed out.
func SimulateSlot(snap *Snapshot, candidate string, day string, cat model.Category, capacity CapacityConfig) (*Outcome, error) {
	member, ok := snap.Staff(candidate)
	if !ok {
		return nil, fmt.Errorf("%q: %w", candidate, model.ErrStaffNotFound)
	}
	eff := member.Role.Effective()

	// Pool: committed occupants with the same effective role, plus the
	// candidate if not already committed
	pool := make([]model.Staff, 0, 8)
	candidateInPool := false
	for _, name := range snap.Occupancy(day, cat) {
		occupant, ok := snap.Staff(name)
		if !ok || occupant.Role.Effective() != eff {
			continue
		}
		if occupant.Name == candidate {
			candidateInPool = true
		}
		pool = append(pool, occupant)
	}
	if !candidateInPool {
		pool = append(pool, member)
	}
	sortBySeniority(pool)

	candidatePos := 0
	for i, p := range pool {
		if p.Name == candidate {
			candidatePos = i
			break
		}
	}

	outcome := &Outcome{
		Candidate:      candidate,
		Day:            day,
		Category:       cat,
		CompetitorRank: candidatePos + 1,
		PoolSize:       len(pool),
	}

	// Greedy pass: each member, in seniority order, claims their
	// highest-scored remaining shift. Ties and missing preferences fall
	// back to catalog rank order.
	remaining := catalog.Codes(cat)
	for _, p := range pool {
		assignment := claimShift(p.Preferences(cat), &remaining)
		assignment.Name = p.Name
		assignment.SeniorityRank = p.SeniorityRank
		outcome.Pool = append(outcome.Pool, assignment)

		if p.Name == candidate {
			outcome.ShiftCode = assignment.ShiftCode
			outcome.Preference = assignment.Preference
			outcome.Reason = assignment.Reason
		}
	}

	// Capacity is a verdict on the candidate, not a filter on the pool:
	// with more bidders than positions, a candidate seated at or beyond
	// the cap does not get a shift regardless of code availability
	limit := capacity.For(cat, eff)
	if len(pool) > limit && candidatePos >= limit {
		outcome.ShiftCode = ""
		outcome.Preference = nil
		outcome.Reason = ReasonNoCapacity
	}

	return outcome, nil
}

// claimShift picks the best remaining shift for one member and removes
// it from the remaining set
func claimShift(prefs map[string]int, remaining *[]string) PoolAssignment {
	if len(*remaining) == 0 {
		return PoolAssignment{Reason: ReasonNoShiftsRemaining}
	}

	bestIdx := -1
	bestScore := 0
	for i, code := range *remaining {
		score, ok := prefs[code]
		if !ok {
			continue
		}
		// Strictly greater keeps the earlier catalog rank on ties
		if bestIdx < 0 || score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}

	if bestIdx < 0 {
		// No preference overlaps the remaining shifts: take the first
		// remaining code in catalog order
		code := (*remaining)[0]
		*remaining = (*remaining)[1:]
		return PoolAssignment{ShiftCode: code, Reason: ReasonAssigned}
	}

	code := (*remaining)[bestIdx]
	*remaining = append((*remaining)[:bestIdx], (*remaining)[bestIdx+1:]...)
	score := bestScore
	return PoolAssignment{ShiftCode: code, Preference: &score, Reason: ReasonAssigned}
}
