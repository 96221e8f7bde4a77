package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
)

func TestSimulateSlot_UnknownCandidate(t *testing.T) {
	snap, err := NewSnapshot(testRoster(), nil)
	require.NoError(t, err)

	_, err = SimulateSlot(snap, "Ghost", "Sun A 1", model.CategoryDay, DefaultCapacity())
	assert.ErrorIs(t, err, model.ErrStaffNotFound)
}

func TestSimulateSlot_EmptyPoolGetsTopPreference(t *testing.T) {
	snap, err := NewSnapshot(testRoster(), nil)
	require.NoError(t, err)

	outcome, err := SimulateSlot(snap, "Bob", "Sun A 1", model.CategoryDay, DefaultCapacity())
	require.NoError(t, err)

	assert.Equal(t, ReasonAssigned, outcome.Reason)
	assert.Equal(t, "D7B", outcome.ShiftCode)
	require.NotNil(t, outcome.Preference)
	assert.Equal(t, 9, *outcome.Preference)
	assert.Equal(t, 1, outcome.CompetitorRank)
	assert.Equal(t, 1, outcome.PoolSize)
}

func TestSimulateSlot_SeniorityClaimsFirst(t *testing.T) {
	// Alice (rank 1) and Bob (rank 2) both want D7B; Alice is committed
	committed := CommittedSchedule{
		"Sun A 1": {model.CategoryDay: {"Alice"}},
	}
	snap, err := NewSnapshot(testRoster(), committed)
	require.NoError(t, err)

	outcome, err := SimulateSlot(snap, "Bob", "Sun A 1", model.CategoryDay, DefaultCapacity())
	require.NoError(t, err)

	assert.Equal(t, ReasonAssigned, outcome.Reason)
	assert.Equal(t, "D7P", outcome.ShiftCode, "Bob falls to his second preference")
	require.NotNil(t, outcome.Preference)
	assert.Equal(t, 8, *outcome.Preference)
	assert.Equal(t, 2, outcome.CompetitorRank)
	assert.Equal(t, 2, outcome.PoolSize)

	// Rationale covers the whole pool
	require.Len(t, outcome.Pool, 2)
	assert.Equal(t, "Alice", outcome.Pool[0].Name)
	assert.Equal(t, "D7B", outcome.Pool[0].ShiftCode)
}

func TestSimulateSlot_RoleFilter(t *testing.T) {
	// Dan is a medic; committed nurses do not compete with him
	committed := CommittedSchedule{
		"Sun A 1": {model.CategoryDay: {"Alice", "Bob", "Carol"}},
	}
	snap, err := NewSnapshot(testRoster(), committed)
	require.NoError(t, err)

	outcome, err := SimulateSlot(snap, "Dan", "Sun A 1", model.CategoryDay, DefaultCapacity())
	require.NoError(t, err)

	assert.Equal(t, 1, outcome.PoolSize)
	assert.Equal(t, "D7B", outcome.ShiftCode)
}

func TestSimulateSlot_PreferenceTieTakesLowerCatalogRank(t *testing.T) {
	roster := []model.Staff{
		{Name: "Eve", Role: model.RoleNurse, SeniorityRank: 1,
			DayPreferences: map[string]int{"D9L": 5, "D7P": 5}},
	}
	snap, err := NewSnapshot(roster, nil)
	require.NoError(t, err)

	outcome, err := SimulateSlot(snap, "Eve", "Sun A 1", model.CategoryDay, DefaultCapacity())
	require.NoError(t, err)

	assert.Equal(t, "D7P", outcome.ShiftCode, "equal scores resolve to the earlier catalog rank")
}

func TestSimulateSlot_NoOverlapFallsBackToCatalogOrder(t *testing.T) {
	// Frank's only preferred shift is taken by Alice
	roster := []model.Staff{
		{Name: "Alice", Role: model.RoleNurse, SeniorityRank: 1, DayPreferences: map[string]int{"D7B": 10}},
		{Name: "Frank", Role: model.RoleNurse, SeniorityRank: 2, DayPreferences: map[string]int{"D7B": 4}},
	}
	committed := CommittedSchedule{
		"Sun A 1": {model.CategoryDay: {"Alice"}},
	}
	snap, err := NewSnapshot(roster, committed)
	require.NoError(t, err)

	outcome, err := SimulateSlot(snap, "Frank", "Sun A 1", model.CategoryDay, DefaultCapacity())
	require.NoError(t, err)

	assert.Equal(t, ReasonAssigned, outcome.Reason)
	assert.Equal(t, "D7P", outcome.ShiftCode, "first remaining catalog code")
	assert.Nil(t, outcome.Preference, "fallback assignment has no preference score")
}

func TestSimulateSlot_NightCodesExhausted(t *testing.T) {
	// Six night nurses, five night codes: the most junior runs out of
	// shifts before running out of capacity
	roster := make([]model.Staff, 0, 6)
	names := []string{"N1", "N2", "N3", "N4", "N5", "N6"}
	committedNames := make([]string, 0, 5)
	for i, name := range names {
		roster = append(roster, model.Staff{Name: name, Role: model.RoleNurse, SeniorityRank: i + 1})
		if i < 5 {
			committedNames = append(committedNames, name)
		}
	}
	committed := CommittedSchedule{
		"Sun A 1": {model.CategoryNight: committedNames},
	}
	snap, err := NewSnapshot(roster, committed)
	require.NoError(t, err)

	outcome, err := SimulateSlot(snap, "N6", "Sun A 1", model.CategoryNight, DefaultCapacity())
	require.NoError(t, err)

	assert.Equal(t, ReasonNoShiftsRemaining, outcome.Reason)
	assert.Empty(t, outcome.ShiftCode)
	assert.Equal(t, 6, outcome.PoolSize)
}

func TestSimulateSlot_NoCapacity(t *testing.T) {
	roster := []model.Staff{
		{Name: "Alice", Role: model.RoleNurse, SeniorityRank: 1},
		{Name: "Bob", Role: model.RoleNurse, SeniorityRank: 2},
		{Name: "Carol", Role: model.RoleNurse, SeniorityRank: 3},
	}
	committed := CommittedSchedule{
		"Sun A 1": {model.CategoryNight: {"Alice", "Bob"}},
	}
	snap, err := NewSnapshot(roster, committed)
	require.NoError(t, err)

	capacity := DefaultCapacity()
	capacity.NightNurse = 2

	outcome, err := SimulateSlot(snap, "Carol", "Sun A 1", model.CategoryNight, capacity)
	require.NoError(t, err)

	assert.Equal(t, ReasonNoCapacity, outcome.Reason)
	assert.Empty(t, outcome.ShiftCode)
	assert.Nil(t, outcome.Preference)
	assert.Equal(t, 3, outcome.CompetitorRank)

	// The rationale still shows what the seniors claimed
	require.Len(t, outcome.Pool, 3)
	assert.Equal(t, "N7B", outcome.Pool[0].ShiftCode)
	assert.Equal(t, "N7P", outcome.Pool[1].ShiftCode)
}

func TestSimulateSlot_SeniorityTieBreaksByName(t *testing.T) {
	roster := []model.Staff{
		{Name: "Zed", Role: model.RoleNurse, SeniorityRank: 1, DayPreferences: map[string]int{"D7B": 10}},
		{Name: "Amy", Role: model.RoleNurse, SeniorityRank: 1, DayPreferences: map[string]int{"D7B": 10}},
	}
	committed := CommittedSchedule{
		"Sun A 1": {model.CategoryDay: {"Zed"}},
	}
	snap, err := NewSnapshot(roster, committed)
	require.NoError(t, err)

	outcome, err := SimulateSlot(snap, "Amy", "Sun A 1", model.CategoryDay, DefaultCapacity())
	require.NoError(t, err)

	// Amy sorts before Zed on equal rank and claims the contested code
	assert.Equal(t, "D7B", outcome.ShiftCode)
	assert.Equal(t, 1, outcome.CompetitorRank)
}

func TestSimulateSlot_MonotonicUnderSenioritySqueeze(t *testing.T) {
	// Bob's preference score never improves as more senior staff join
	// the pool
	prefs := map[string]int{"D7B": 9, "D7P": 8, "D9L": 7}

	scoreWithPool := func(committedNames []string) *int {
		roster := []model.Staff{
			{Name: "Bob", Role: model.RoleNurse, SeniorityRank: 50, DayPreferences: prefs},
		}
		for i, name := range committedNames {
			roster = append(roster, model.Staff{
				Name: name, Role: model.RoleNurse, SeniorityRank: i + 1,
				DayPreferences: map[string]int{"D7B": 10, "D7P": 9, "D9L": 8},
			})
		}
		committed := CommittedSchedule{}
		if len(committedNames) > 0 {
			committed["Sun A 1"] = map[model.Category][]string{model.CategoryDay: committedNames}
		}
		snap, err := NewSnapshot(roster, committed)
		require.NoError(t, err)

		outcome, err := SimulateSlot(snap, "Bob", "Sun A 1", model.CategoryDay, DefaultCapacity())
		require.NoError(t, err)
		return outcome.Preference
	}

	alone := scoreWithPool(nil)
	oneSenior := scoreWithPool([]string{"S1"})
	twoSeniors := scoreWithPool([]string{"S1", "S2"})

	require.NotNil(t, alone)
	require.NotNil(t, oneSenior)
	require.NotNil(t, twoSeniors)
	assert.GreaterOrEqual(t, *alone, *oneSenior)
	assert.GreaterOrEqual(t, *oneSenior, *twoSeniors)
}
