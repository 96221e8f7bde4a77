package simulator

import (
	"fmt"
	"sort"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/catalog"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
)

// CommittedSchedule maps slot labels to the staff already committed to
// each shift category on that day
type CommittedSchedule map[string]map[model.Category][]string

// Snapshot is an immutable view of the roster and committed schedule a
// simulation run works from. A run takes exactly one snapshot; every
// slot it simulates sees the same state.
type Snapshot struct {
	roster    []model.Staff
	staff     map[string]model.Staff
	committed CommittedSchedule
}

// RoleRanking summarises where a staff member sits in the seniority
// order, overall and within their effective role
type RoleRanking struct {
	OverallRank  int
	RoleRank     int
	RosterSize   int
	RolePoolSize int
}

// NewSnapshot builds a snapshot from the roster and committed schedule.
// Construction fails on duplicate names, missing seniority, preference
// codes not in the catalog, and committed staff not on the roster —
// these are configuration errors, not rule violations.
func NewSnapshot(roster []model.Staff, committed CommittedSchedule) (*Snapshot, error) {
	staff := make(map[string]model.Staff, len(roster))
	for _, member := range roster {
		if _, exists := staff[member.Name]; exists {
			return nil, fmt.Errorf("duplicate staff member %q", member.Name)
		}
		if member.SeniorityRank <= 0 {
			return nil, fmt.Errorf("staff member %q has no seniority rank", member.Name)
		}
		if err := checkPreferenceCodes(member.Name, member.DayPreferences, model.CategoryDay); err != nil {
			return nil, err
		}
		if err := checkPreferenceCodes(member.Name, member.NightPreferences, model.CategoryNight); err != nil {
			return nil, err
		}
		staff[member.Name] = member
	}

	for day, byCategory := range committed {
		for cat, names := range byCategory {
			for _, name := range names {
				if _, ok := staff[name]; !ok {
					return nil, fmt.Errorf("committed schedule %s/%s: %q: %w", day, cat, name, model.ErrStaffNotFound)
				}
			}
		}
	}

	ordered := make([]model.Staff, len(roster))
	copy(ordered, roster)
	sortBySeniority(ordered)

	return &Snapshot{
		roster:    ordered,
		staff:     staff,
		committed: committed,
	}, nil
}

func checkPreferenceCodes(name string, prefs map[string]int, cat model.Category) error {
	for code := range prefs {
		if !catalog.Contains(code, cat) {
			return fmt.Errorf("staff member %q %s preference %q: %w", name, cat, code, catalog.ErrUnknownShiftCode)
		}
	}
	return nil
}

// sortBySeniority orders staff by rank ascending, names breaking ties
func sortBySeniority(staff []model.Staff) {
	sort.Slice(staff, func(i, j int) bool {
		if staff[i].SeniorityRank != staff[j].SeniorityRank {
			return staff[i].SeniorityRank < staff[j].SeniorityRank
		}
		return staff[i].Name < staff[j].Name
	})
}

// Staff looks up a roster member by name
func (s *Snapshot) Staff(name string) (model.Staff, bool) {
	member, ok := s.staff[name]
	return member, ok
}

// Roster returns the full roster in seniority order
func (s *Snapshot) Roster() []model.Staff {
	return s.roster
}

// Occupancy returns the staff committed to a day and category. This is
// the only accessor for committed staffing; capacity and headroom
// calculations all go through it.
func (s *Snapshot) Occupancy(day string, cat model.Category) []string {
	byCategory, ok := s.committed[day]
	if !ok {
		return nil
	}
	return byCategory[cat]
}

// OccupancyByRole counts the committed staff on a day and category
// whose effective role matches
func (s *Snapshot) OccupancyByRole(day string, cat model.Category, role model.Role) int {
	count := 0
	for _, name := range s.Occupancy(day, cat) {
		if member, ok := s.staff[name]; ok && member.Role.Effective() == role.Effective() {
			count++
		}
	}
	return count
}

// RoleRanking computes the seniority standing of a staff member
func (s *Snapshot) RoleRanking(name string) (RoleRanking, error) {
	member, ok := s.staff[name]
	if !ok {
		return RoleRanking{}, fmt.Errorf("%q: %w", name, model.ErrStaffNotFound)
	}

	ranking := RoleRanking{RosterSize: len(s.roster)}
	eff := member.Role.Effective()
	for _, other := range s.roster {
		if other.Role.Effective() == eff {
			ranking.RolePoolSize++
		}
		if other.Name == name {
			ranking.OverallRank = indexOf(s.roster, name) + 1
			ranking.RoleRank = ranking.RolePoolSize
		}
	}
	return ranking, nil
}

func indexOf(staff []model.Staff, name string) int {
	for i, member := range staff {
		if member.Name == name {
			return i
		}
	}
	return -1
}
