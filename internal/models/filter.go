package models

import (
	"errors"
	"fmt"
)

const (
	// AllMonths disables the month constraint.
	AllMonths = 0
	// AllDays disables the weekday constraint.
	AllDays = -1

	// MaxMonth is the last month covered by the datasets (June).
	MaxMonth = 6
)

// Filter narrows a dataset by derived calendar fields.
type Filter struct {
	Month   int // AllMonths or 1..MaxMonth
	Weekday int // AllDays or 0=Monday ... 6=Sunday
}

// NoFilter keeps every trip.
var NoFilter = Filter{Month: AllMonths, Weekday: AllDays}

// Validate checks that the filter selectors are in range.
func (f Filter) Validate() error {
	if f.Month != AllMonths && (f.Month < 1 || f.Month > MaxMonth) {
		return fmt.Errorf("month must be %d (all) or between 1 and %d", AllMonths, MaxMonth)
	}
	if f.Weekday != AllDays && (f.Weekday < 0 || f.Weekday > 6) {
		return errors.New("weekday must be -1 (all) or between 0 and 6")
	}
	return nil
}

// IsAll reports whether the filter applies no constraint.
func (f Filter) IsAll() bool {
	return f.Month == AllMonths && f.Weekday == AllDays
}

// Match reports whether t satisfies both constraints.
func (f Filter) Match(t *Trip) bool {
	if f.Month != AllMonths && t.Month != f.Month {
		return false
	}
	if f.Weekday != AllDays && t.Weekday != f.Weekday {
		return false
	}
	return true
}

// Apply returns a new dataset holding the trips of d that match f, in their
// original order. d is never modified. An empty result is not an error.
func (f Filter) Apply(d *Dataset) *Dataset {
	trips := make([]Trip, 0, len(d.Trips))
	for i := range d.Trips {
		if f.Match(&d.Trips[i]) {
			trips = append(trips, d.Trips[i])
		}
	}
	return d.withTrips(trips)
}

func (f Filter) String() string {
	month := "all months"
	if f.Month != AllMonths {
		month = MonthName(f.Month)
	}
	day := "all days"
	if f.Weekday != AllDays {
		day = WeekdayName(f.Weekday) + "s"
	}
	return month + ", " + day
}
