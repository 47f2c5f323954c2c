package models

import (
	"strings"

	"github.com/go-gota/gota/dataframe"
)

// Capabilities records which optional columns a dataset carries.
// It is decided once at load time.
type Capabilities uint8

const (
	// CapGender marks datasets with a Gender column.
	CapGender Capabilities = 1 << iota
	// CapBirthYear marks datasets with a Birth Year column.
	CapBirthYear
)

// Demographics is the capability set of a "trip record with demographics" dataset.
const Demographics = CapGender | CapBirthYear

// Has reports whether every capability in c is present.
func (caps Capabilities) Has(c Capabilities) bool {
	return caps&c == c
}

func (caps Capabilities) String() string {
	if caps == 0 {
		return "basic"
	}
	var parts []string
	if caps.Has(CapGender) {
		parts = append(parts, "gender")
	}
	if caps.Has(CapBirthYear) {
		parts = append(parts, "birth_year")
	}
	return strings.Join(parts, "+")
}

// Dataset holds every trip loaded for one city.
type Dataset struct {
	City         string
	Capabilities Capabilities
	Trips        []Trip

	// Frame is the source table, indexed by Trip.Row. It is shared
	// read-only between a dataset and the subsets filtered from it.
	Frame dataframe.DataFrame
}

// Len returns the number of trips.
func (d *Dataset) Len() int {
	return len(d.Trips)
}

// Empty reports whether the dataset has no trips.
func (d *Dataset) Empty() bool {
	return len(d.Trips) == 0
}

// Rows returns the source row index of every trip, in order.
func (d *Dataset) Rows() []int {
	rows := make([]int, len(d.Trips))
	for i := range d.Trips {
		rows[i] = d.Trips[i].Row
	}
	return rows
}

// withTrips returns a dataset sharing d's metadata with a different trip slice.
func (d *Dataset) withTrips(trips []Trip) *Dataset {
	return &Dataset{
		City:         d.City,
		Capabilities: d.Capabilities,
		Trips:        trips,
		Frame:        d.Frame,
	}
}
