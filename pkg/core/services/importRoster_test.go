package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/catalog"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
)

func writeRosterFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportRoster_SavesStaffAndTracks(t *testing.T) {
	store := &fakeStore{}
	path := writeRosterFile(t, `
staff:
  - name: Alice
    role: nurse
    seniorityRank: 1
    dayPreferences:
      D7B: 10
    shiftsPerPayPeriod: 6
    weekendGroup: A
    track:
      "Sun A 1": D
      "Mon A 1": N
  - name: Dan
    role: medic
    seniorityRank: 2
    nightPreferences:
      N7B: 5
`)

	result, err := ImportRoster(context.Background(), store, zap.NewNop(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, result.StaffCount)
	assert.Equal(t, 2, result.TrackRowCount)

	require.Len(t, store.insertedStaff, 2)
	assert.Equal(t, "Alice", store.insertedStaff[0].Name)
	assert.Equal(t, "A", store.insertedStaff[0].WeekendGroup)
	assert.Equal(t, 10, store.insertedStaff[0].DayPreferences["D7B"])

	require.Len(t, store.insertedTracks, 2)
	labels := make([]string, 0, 2)
	for _, row := range store.insertedTracks {
		assert.Equal(t, "Alice", row.StaffName)
		assert.True(t, row.Active)
		assert.NotEmpty(t, row.ID)
		labels = append(labels, row.SlotLabel)
	}
	assert.ElementsMatch(t, []string{"Sun A 1", "Mon A 1"}, labels)
}

func TestImportRoster_RejectsUnknownRole(t *testing.T) {
	store := &fakeStore{}
	path := writeRosterFile(t, `
staff:
  - name: Alice
    role: pilot
    seniorityRank: 1
`)

	_, err := ImportRoster(context.Background(), store, zap.NewNop(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown role")
	assert.Empty(t, store.insertedStaff, "nothing is saved when validation fails")
}

func TestImportRoster_RejectsUnknownShiftCode(t *testing.T) {
	store := &fakeStore{}
	path := writeRosterFile(t, `
staff:
  - name: Alice
    role: nurse
    seniorityRank: 1
    dayPreferences:
      N7B: 10
`)

	_, err := ImportRoster(context.Background(), store, zap.NewNop(), path)
	assert.ErrorIs(t, err, catalog.ErrUnknownShiftCode, "night codes are not day preferences")
}

func TestImportRoster_RejectsUnknownCycleDay(t *testing.T) {
	store := &fakeStore{}
	path := writeRosterFile(t, `
staff:
  - name: Alice
    role: nurse
    seniorityRank: 1
    track:
      "Sun D 7": D
`)

	_, err := ImportRoster(context.Background(), store, zap.NewNop(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a cycle day")
}

func TestImportRoster_RejectsIllFormedTrackValue(t *testing.T) {
	store := &fakeStore{}
	path := writeRosterFile(t, `
staff:
  - name: Alice
    role: nurse
    seniorityRank: 1
    track:
      "Sun A 1": DAY
`)

	_, err := ImportRoster(context.Background(), store, zap.NewNop(), path)
	assert.ErrorIs(t, err, model.ErrInvalidAssignment)
}

func TestImportRoster_RejectsDuplicateNames(t *testing.T) {
	store := &fakeStore{}
	path := writeRosterFile(t, `
staff:
  - name: Alice
    role: nurse
    seniorityRank: 1
  - name: Alice
    role: medic
    seniorityRank: 2
`)

	_, err := ImportRoster(context.Background(), store, zap.NewNop(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate staff member")
}

func TestImportRoster_MissingFile(t *testing.T) {
	store := &fakeStore{}

	_, err := ImportRoster(context.Background(), store, zap.NewNop(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read roster file")
}
