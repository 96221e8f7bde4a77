package model

import (
	"errors"
	"fmt"
)

// ErrStaffNotFound is returned when a named staff member is not in the roster
var ErrStaffNotFound = errors.New("staff member not found")

// ErrInvalidAssignment is returned when a track or preassignment value is not
// one of the recognised codes ("", "D", "N", "AT")
var ErrInvalidAssignment = errors.New("invalid assignment value")

// Role is a staff member's credential role
type Role string

const (
	RoleNurse Role = "nurse"
	RoleMedic Role = "medic"
	RoleDual  Role = "dual"
)

func (r Role) IsValid() bool {
	return r == RoleNurse || r == RoleMedic || r == RoleDual
}

// Effective resolves the role used for staffing and pooling.
// Dual-credentialed staff count as nurses; anything unrecognised
// defaults to nurse.
func (r Role) Effective() Role {
	if r == RoleMedic {
		return RoleMedic
	}
	return RoleNurse
}

// Category distinguishes the two shift categories of each schedule day
type Category string

const (
	CategoryDay   Category = "day"
	CategoryNight Category = "night"
)

// Assignment is the value a track holds for one schedule day
type Assignment int

const (
	Off Assignment = iota
	Day
	Night
	AdminTime
)

// ParseAssignment parses a raw track value. The empty string means Off.
// Any other unrecognised value is rejected, never coerced.
func ParseAssignment(s string) (Assignment, error) {
	switch s {
	case "":
		return Off, nil
	case "D":
		return Day, nil
	case "N":
		return Night, nil
	case "AT":
		return AdminTime, nil
	default:
		return Off, fmt.Errorf("%w: %q", ErrInvalidAssignment, s)
	}
}

func (a Assignment) String() string {
	switch a {
	case Day:
		return "D"
	case Night:
		return "N"
	case AdminTime:
		return "AT"
	default:
		return ""
	}
}

// Worked reports whether the assignment occupies the day (D, N or AT)
func (a Assignment) Worked() bool {
	return a != Off
}

// Track maps schedule day labels (e.g. "Sun A 1") to assignments.
// Days absent from the map are Off.
type Track map[string]Assignment

// Preassignments maps schedule day labels to fixed assignments that
// exist outside the track (education days, admin days, etc.)
type Preassignments map[string]Assignment

// ParseTrack parses raw day -> value pairs into a Track
func ParseTrack(raw map[string]string) (Track, error) {
	track := make(Track, len(raw))
	for day, value := range raw {
		a, err := ParseAssignment(value)
		if err != nil {
			return nil, fmt.Errorf("track value for %s: %w", day, err)
		}
		if a.Worked() {
			track[day] = a
		}
	}
	return track, nil
}

// ParsePreassignments parses raw day -> value pairs into Preassignments
func ParsePreassignments(raw map[string]string) (Preassignments, error) {
	pre := make(Preassignments, len(raw))
	for day, value := range raw {
		a, err := ParseAssignment(value)
		if err != nil {
			return nil, fmt.Errorf("preassignment value for %s: %w", day, err)
		}
		if a.Worked() {
			pre[day] = a
		}
	}
	return pre, nil
}

// Effective returns the value that governs a schedule day: the track
// value if the day is worked on the track, otherwise the preassignment.
func Effective(day string, track Track, pre Preassignments) Assignment {
	if a, ok := track[day]; ok && a.Worked() {
		return a
	}
	if a, ok := pre[day]; ok {
		return a
	}
	return Off
}

// Requirements holds the per-staff thresholds the validator enforces.
// A zero threshold disables its rule.
type Requirements struct {
	ShiftsPerPayPeriod int
	NightMinimum       int
	WeekendMinimum     int
	WeekendGroup       string
}

// Staff represents one roster member
type Staff struct {
	Name             string
	Role             Role
	SeniorityRank    int
	DayPreferences   map[string]int
	NightPreferences map[string]int
	Requirements     Requirements
}

// Preferences returns the preference map for the given shift category
func (s Staff) Preferences(cat Category) map[string]int {
	if cat == CategoryNight {
		return s.NightPreferences
	}
	return s.DayPreferences
}
