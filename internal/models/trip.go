// Package models defines the core domain entities for the bikeshare application.
// These models represent individual trips, the per-city dataset they are loaded
// into, and the calendar filter narrowing a dataset before aggregation.
//
// Terminology:
//   - Trip: one row of a city's trip file.
//   - Dataset: every trip of one city for one session iteration.
//   - Capabilities: the optional demographic columns a dataset carries.
package models

import (
	"errors"
	"time"
)

// Trip represents a single bikeshare trip.
// Month, Weekday, and Hour are derived from Start once at load time.
type Trip struct {
	Row          int       `json:"row"` // Zero-based position in the source file
	Start        time.Time `json:"start"`
	StartStation string    `json:"start_station"`
	EndStation   string    `json:"end_station"`
	Duration     float64   `json:"duration"` // Seconds
	UserType     string    `json:"user_type"`
	Gender       string    `json:"gender,omitempty"`     // Empty when not recorded
	BirthYear    int       `json:"birth_year,omitempty"` // Zero when not recorded
	Month        int       `json:"month"`                // 1-12
	Weekday      int       `json:"weekday"`              // 0=Monday ... 6=Sunday
	Hour         int       `json:"hour"`                 // 0-23
}

// NewTrip builds a Trip and derives its calendar fields from start.
func NewTrip(row int, start time.Time, startStation, endStation string, duration float64, userType string) Trip {
	t := Trip{
		Row:          row,
		Start:        start,
		StartStation: startStation,
		EndStation:   endStation,
		Duration:     duration,
		UserType:     userType,
	}
	t.Derive()
	return t
}

// Derive recomputes Month, Weekday, and Hour from Start.
func (t *Trip) Derive() {
	t.Month = int(t.Start.Month())
	t.Weekday = MondayFirst(t.Start.Weekday())
	t.Hour = t.Start.Hour()
}

// Validate checks that all trip fields are valid.
func (t *Trip) Validate() error {
	if t.Start.IsZero() {
		return errors.New("start time must not be empty")
	}
	if t.Duration < 0 {
		return errors.New("trip duration must not be negative")
	}
	if t.Month < 1 || t.Month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	if t.Weekday < 0 || t.Weekday > 6 {
		return errors.New("weekday must be between 0 and 6")
	}
	if t.Hour < 0 || t.Hour > 23 {
		return errors.New("hour must be between 0 and 23")
	}
	if t.BirthYear < 0 {
		return errors.New("birth year must not be negative")
	}
	return nil
}

// StationPair is the start and end station joined with " AND ".
func (t *Trip) StationPair() string {
	return t.StartStation + " AND " + t.EndStation
}

// MondayFirst converts a time.Weekday (Sunday=0) to the Monday=0 convention.
func MondayFirst(d time.Weekday) int {
	return (int(d) + 6) % 7
}

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// WeekdayName returns the English name of a Monday-first weekday index.
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return "Unknown"
	}
	return weekdayNames[weekday]
}

// MonthName returns the English name of a month number.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return "Unknown"
	}
	return time.Month(month).String()
}
