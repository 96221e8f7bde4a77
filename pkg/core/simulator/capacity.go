package simulator

import "github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"

// CapacityConfig holds the staffed positions per shift category and
// effective role
type CapacityConfig struct {
	DayNurse   int
	DayMedic   int
	NightNurse int
	NightMedic int
}

// DefaultCapacity returns the standard staffing levels
func DefaultCapacity() CapacityConfig {
	return CapacityConfig{
		DayNurse:   10,
		DayMedic:   10,
		NightNurse: 6,
		NightMedic: 5,
	}
}

// For returns the capacity for a category and effective role
func (c CapacityConfig) For(cat model.Category, role model.Role) int {
	if cat == model.CategoryNight {
		if role.Effective() == model.RoleMedic {
			return c.NightMedic
		}
		return c.NightNurse
	}
	if role.Effective() == model.RoleMedic {
		return c.DayMedic
	}
	return c.DayNurse
}
