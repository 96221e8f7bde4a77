package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
)

// CapacityConfig holds staffed positions per shift category and role
type CapacityConfig struct {
	DayNurse   int `yaml:"dayNurse" validate:"min=0"`
	DayMedic   int `yaml:"dayMedic" validate:"min=0"`
	NightNurse int `yaml:"nightNurse" validate:"min=0"`
	NightMedic int `yaml:"nightMedic" validate:"min=0"`
}

// Config represents the application configuration
type Config struct {
	DatabaseURL string `yaml:"databaseURL" validate:"required"`

	// CycleRule is an optional recurrence rule producing rotation cycle
	// start dates (e.g. "FREQ=WEEKLY;INTERVAL=6;BYDAY=SU")
	CycleRule string `yaml:"cycleRule,omitempty"`

	// CycleStart anchors the current cycle (YYYY-MM-DD, a Sunday)
	CycleStart string `yaml:"cycleStart,omitempty"`

	Capacity CapacityConfig `yaml:"capacity"`

	WeeklyCapEnabled bool `yaml:"weeklyCapEnabled"`

	// WeekendGroupMinimum is the shifts required per weekend-group
	// period; 0 disables the rule
	WeekendGroupMinimum int `yaml:"weekendGroupMinimum" validate:"min=0"`

	// WeekendGroups overrides the built-in group -> periods table.
	// Each period is a list of schedule slot labels such as "Fri C 6".
	WeekendGroups map[string][][]string `yaml:"weekendGroups,omitempty"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from crewops_config.yaml.
// It looks for the config file in the current directory first, then in
// the user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile("crewops_config.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadWithEnv loads the configuration for a named environment, e.g.
// crewops_config_test.yaml
func LoadWithEnv(env string) (*Config, error) {
	configPath, err := findConfigFile(fmt.Sprintf("crewops_config_%s.yaml", env))
	if err != nil {
		return nil, fmt.Errorf("failed to find config file for env %q: %w", env, err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in standard staffing levels where unset
func applyDefaults(cfg *Config) {
	if cfg.Capacity.DayNurse == 0 {
		cfg.Capacity.DayNurse = 10
	}
	if cfg.Capacity.DayMedic == 0 {
		cfg.Capacity.DayMedic = 10
	}
	if cfg.Capacity.NightNurse == 0 {
		cfg.Capacity.NightNurse = 6
	}
	if cfg.Capacity.NightMedic == 0 {
		cfg.Capacity.NightMedic = 5
	}
}

// Validate validates the configuration struct, the cycle recurrence,
// and any weekend-group slot labels
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.CycleRule != "" {
		if _, err := rrule.StrToRRule(cfg.CycleRule); err != nil {
			return fmt.Errorf("invalid cycleRule: %w", err)
		}
	}

	if cfg.CycleStart != "" {
		start, err := time.Parse("2006-01-02", cfg.CycleStart)
		if err != nil {
			return fmt.Errorf("invalid cycleStart: %w", err)
		}
		if start.Weekday() != time.Sunday {
			return fmt.Errorf("cycleStart %s must be a Sunday", cfg.CycleStart)
		}
	}

	cal := schedule.New()
	for group, periods := range cfg.WeekendGroups {
		for i, period := range periods {
			for _, label := range period {
				if _, ok := cal.ByLabel(label); !ok {
					return fmt.Errorf("weekendGroups[%s] period %d: unknown slot label %q", group, i+1, label)
				}
			}
		}
	}

	return nil
}

// findConfigFile searches for the named file in the current directory
// and then the home directory
func findConfigFile(configFileName string) (string, error) {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file %s not found in current directory or home directory", configFileName)
}
