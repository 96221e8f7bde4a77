package catalog

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
)

// ErrUnknownShiftCode is returned when a shift code is not in the catalog
var ErrUnknownShiftCode = errors.New("unknown shift code")

// Shift is one catalog entry: a shift code with its preference rank slot
// and nominal start time in HHMM form. All shifts run 12 hours.
type Shift struct {
	Code     string
	Category model.Category
	Rank     int
	Start    string
}

// The static shift catalog. Rank order is the order preference scores are
// keyed by and the tie-break order during allocation.
var dayShifts = []Shift{
	{Code: "D7B", Category: model.CategoryDay, Rank: 1, Start: "0700"},
	{Code: "D7P", Category: model.CategoryDay, Rank: 2, Start: "0700"},
	{Code: "D9L", Category: model.CategoryDay, Rank: 3, Start: "0900"},
	{Code: "D11M", Category: model.CategoryDay, Rank: 4, Start: "1100"},
	{Code: "D11B", Category: model.CategoryDay, Rank: 5, Start: "1100"},
	{Code: "FW", Category: model.CategoryDay, Rank: 6, Start: "1100"},
	{Code: "MG", Category: model.CategoryDay, Rank: 7, Start: "1100"},
	{Code: "GR", Category: model.CategoryDay, Rank: 8, Start: "0700"},
	{Code: "LG", Category: model.CategoryDay, Rank: 9, Start: "0900"},
	{Code: "PG", Category: model.CategoryDay, Rank: 10, Start: "0700"},
}

var nightShifts = []Shift{
	{Code: "N7B", Category: model.CategoryNight, Rank: 1, Start: "1900"},
	{Code: "N7P", Category: model.CategoryNight, Rank: 2, Start: "1900"},
	{Code: "N9L", Category: model.CategoryNight, Rank: 3, Start: "2100"},
	{Code: "NG", Category: model.CategoryNight, Rank: 4, Start: "1900"},
	{Code: "NP", Category: model.CategoryNight, Rank: 5, Start: "1900"},
}

// All returns the catalog entries for a category in rank order
func All(cat model.Category) []Shift {
	if cat == model.CategoryNight {
		return nightShifts
	}
	return dayShifts
}

// Codes returns the shift codes for a category in rank order
func Codes(cat model.Category) []string {
	shifts := All(cat)
	codes := make([]string, len(shifts))
	for i, s := range shifts {
		codes[i] = s.Code
	}
	return codes
}

// Lookup finds a catalog entry by code within a category
func Lookup(code string, cat model.Category) (Shift, bool) {
	for _, s := range All(cat) {
		if s.Code == code {
			return s, true
		}
	}
	return Shift{}, false
}

// Contains reports whether the code exists in the given category
func Contains(code string, cat model.Category) bool {
	_, ok := Lookup(code, cat)
	return ok
}

// ShiftEnd returns the nominal end time of a shift in HHMM form:
// the start time plus twelve hours, wrapping past midnight.
func ShiftEnd(code string, cat model.Category) (string, bool) {
	s, ok := Lookup(code, cat)
	if !ok {
		return "", false
	}
	start, err := strconv.Atoi(s.Start)
	if err != nil {
		return "", false
	}
	endHour := (start/100 + 12) % 24
	return fmt.Sprintf("%02d%02d", endHour, start%100), true
}
