package models

import (
	"testing"
	"time"
)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02 15:04:05", s)
	if err != nil {
		panic(err)
	}
	return t
}

func testDataset() *Dataset {
	return &Dataset{
		City:         "chicago",
		Capabilities: Demographics,
		Trips: []Trip{
			NewTrip(0, at("2017-01-02 08:15:00"), "A", "B", 100, "Subscriber"), // Monday, January
			NewTrip(1, at("2017-01-03 09:00:00"), "B", "C", 200, "Customer"),   // Tuesday, January
			NewTrip(2, at("2017-03-06 17:30:00"), "A", "C", 300, "Subscriber"), // Monday, March
			NewTrip(3, at("2017-03-12 23:59:59"), "C", "A", 400, "Subscriber"), // Sunday, March
			NewTrip(4, at("2017-06-05 00:00:00"), "A", "B", 500, "Customer"),   // Monday, June
		},
	}
}

func TestNewTripDerivesCalendarFields(t *testing.T) {
	trip := NewTrip(0, at("2017-06-25 13:07:45"), "A", "B", 60, "Subscriber")

	if trip.Month != 6 {
		t.Errorf("Month = %d, expected 6", trip.Month)
	}
	// 2017-06-25 was a Sunday
	if trip.Weekday != 6 {
		t.Errorf("Weekday = %d, expected 6 (Sunday)", trip.Weekday)
	}
	if trip.Hour != 13 {
		t.Errorf("Hour = %d, expected 13", trip.Hour)
	}
}

func TestMondayFirst(t *testing.T) {
	tests := []struct {
		in   time.Weekday
		want int
	}{
		{time.Monday, 0},
		{time.Wednesday, 2},
		{time.Saturday, 5},
		{time.Sunday, 6},
	}

	for _, tt := range tests {
		if got := MondayFirst(tt.in); got != tt.want {
			t.Errorf("MondayFirst(%v) = %d, expected %d", tt.in, got, tt.want)
		}
		if got := WeekdayName(tt.want); got != tt.in.String() {
			t.Errorf("WeekdayName(%d) = %s, expected %s", tt.want, got, tt.in)
		}
	}
}

func TestTripValidate(t *testing.T) {
	tests := []struct {
		name    string
		trip    Trip
		wantErr bool
	}{
		{
			name:    "valid trip",
			trip:    NewTrip(0, at("2017-01-02 08:15:00"), "A", "B", 100, "Subscriber"),
			wantErr: false,
		},
		{
			name:    "zero start",
			trip:    Trip{StartStation: "A", EndStation: "B", Duration: 10},
			wantErr: true,
		},
		{
			name:    "negative duration",
			trip:    NewTrip(0, at("2017-01-02 08:15:00"), "A", "B", -1, "Subscriber"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trip.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Trip.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFilterApply(t *testing.T) {
	tests := []struct {
		name     string
		filter   Filter
		wantRows []int
	}{
		{"all months all days", NoFilter, []int{0, 1, 2, 3, 4}},
		{"january", Filter{Month: 1, Weekday: AllDays}, []int{0, 1}},
		{"mondays", Filter{Month: AllMonths, Weekday: 0}, []int{0, 2, 4}},
		{"march mondays", Filter{Month: 3, Weekday: 0}, []int{2}},
		{"sundays", Filter{Month: AllMonths, Weekday: 6}, []int{3}},
		{"no april trips", Filter{Month: 4, Weekday: AllDays}, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := testDataset()
			got := tt.filter.Apply(ds)

			rows := got.Rows()
			if len(rows) != len(tt.wantRows) {
				t.Fatalf("Apply() rows = %v, expected %v", rows, tt.wantRows)
			}
			for i := range rows {
				if rows[i] != tt.wantRows[i] {
					t.Fatalf("Apply() rows = %v, expected %v", rows, tt.wantRows)
				}
			}
			if got.Empty() != (len(tt.wantRows) == 0) {
				t.Errorf("Empty() = %v for %d rows", got.Empty(), len(rows))
			}
			if got.City != ds.City || got.Capabilities != ds.Capabilities {
				t.Errorf("Apply() lost dataset metadata: %+v", got)
			}
		})
	}
}

func TestFilterIsAll(t *testing.T) {
	if !NoFilter.IsAll() {
		t.Errorf("NoFilter.IsAll() = false")
	}
	for _, f := range []Filter{{Month: 1, Weekday: AllDays}, {Month: AllMonths, Weekday: 0}} {
		if f.IsAll() {
			t.Errorf("%v.IsAll() = true", f)
		}
	}
}

func TestFilterDoesNotMutateSource(t *testing.T) {
	ds := testDataset()
	before := ds.Rows()

	_ = Filter{Month: 3, Weekday: AllDays}.Apply(ds)

	after := ds.Rows()
	if len(after) != len(before) {
		t.Fatalf("source dataset changed size: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("source dataset reordered: %v -> %v", before, after)
		}
	}
}

func TestFilterIsSubsetAndIdempotent(t *testing.T) {
	ds := testDataset()
	for month := AllMonths; month <= MaxMonth; month++ {
		for day := AllDays; day <= 6; day++ {
			f := Filter{Month: month, Weekday: day}
			once := f.Apply(ds)
			twice := f.Apply(once)

			if once.Len() > ds.Len() {
				t.Fatalf("%v: filtered %d > source %d", f, once.Len(), ds.Len())
			}

			// Subset with preserved relative order
			prev := -1
			for _, row := range once.Rows() {
				if row <= prev {
					t.Fatalf("%v: order not preserved: %v", f, once.Rows())
				}
				prev = row
			}

			if twice.Len() != once.Len() {
				t.Fatalf("%v: not idempotent: %d then %d", f, once.Len(), twice.Len())
			}
			for i := range once.Trips {
				if once.Trips[i].Row != twice.Trips[i].Row {
					t.Fatalf("%v: not idempotent at %d", f, i)
				}
			}
		}
	}
}

func TestFilterValidate(t *testing.T) {
	tests := []struct {
		name    string
		filter  Filter
		wantErr bool
	}{
		{"no filter", NoFilter, false},
		{"june sunday", Filter{Month: 6, Weekday: 6}, false},
		{"july", Filter{Month: 7, Weekday: AllDays}, true},
		{"weekday 7", Filter{Month: AllMonths, Weekday: 7}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Filter.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCapabilities(t *testing.T) {
	if !Demographics.Has(CapGender) || !Demographics.Has(CapBirthYear) {
		t.Error("Demographics should include gender and birth year")
	}
	var basic Capabilities
	if basic.Has(CapGender) {
		t.Error("basic dataset should not have gender")
	}
	if basic.String() != "basic" {
		t.Errorf("String() = %s, expected basic", basic.String())
	}
	if Demographics.String() != "gender+birth_year" {
		t.Errorf("String() = %s, expected gender+birth_year", Demographics.String())
	}
}
