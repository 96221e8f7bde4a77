package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crewops_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromPath_Valid(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/crewops
cycleRule: FREQ=WEEKLY;INTERVAL=6
cycleStart: "2025-01-05"
weeklyCapEnabled: true
weekendGroupMinimum: 2
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/crewops", cfg.DatabaseURL)
	assert.True(t, cfg.WeeklyCapEnabled)
	assert.Equal(t, 2, cfg.WeekendGroupMinimum)
}

func TestLoadFromPath_AppliesCapacityDefaults(t *testing.T) {
	path := writeConfig(t, `databaseURL: postgres://localhost:5432/crewops`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Capacity.DayNurse)
	assert.Equal(t, 10, cfg.Capacity.DayMedic)
	assert.Equal(t, 6, cfg.Capacity.NightNurse)
	assert.Equal(t, 5, cfg.Capacity.NightMedic)
}

func TestLoadFromPath_MissingDatabaseURL(t *testing.T) {
	path := writeConfig(t, `weeklyCapEnabled: true`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestLoadFromPath_InvalidCycleRule(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/crewops
cycleRule: FREQ=NONSENSE
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cycleRule")
}

func TestLoadFromPath_CycleStartMustBeSunday(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/crewops
cycleStart: "2025-01-06"
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sunday")
}

func TestLoadFromPath_UnknownWeekendGroupLabel(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/crewops
weekendGroups:
  A:
    - ["Fri C 6", "Sat Z 9"]
`)

	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown slot label")
}

func TestLoadFromPath_ValidWeekendGroups(t *testing.T) {
	path := writeConfig(t, `
databaseURL: postgres://localhost:5432/crewops
weekendGroups:
  A:
    - ["Fri C 6", "Sat C 6", "Sun A 1"]
    - ["Fri A 2", "Sat A 2", "Sun B 3"]
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	require.Len(t, cfg.WeekendGroups["A"], 2)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
