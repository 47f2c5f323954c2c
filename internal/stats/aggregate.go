package stats

import (
	"slices"

	"github.com/rewired-gh/bikeshare/internal/models"
)

// TimeStats holds the most frequent times of travel
type TimeStats struct {
	Month   int // 1-12
	Weekday int // 0=Monday ... 6=Sunday
	Hour    int // 0-23
}

// StationStats holds the most popular stations and trip
type StationStats struct {
	StartStation string
	EndStation   string
	Trip         string // "<start> AND <end>"
}

// DurationStats holds total and mean trip duration in seconds
type DurationStats struct {
	Trips int
	Total float64
	Mean  float64
}

// BirthYearStats holds earliest, most recent, and most common birth year
type BirthYearStats struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserStats holds user breakdowns. Genders is nil when the dataset has no
// gender column; BirthYears is nil when it has no birth year column or no
// trip recorded one.
type UserStats struct {
	UserTypes  []Count
	Genders    []Count
	BirthYears *BirthYearStats
}

// TravelTimes returns the most common month, weekday, and start hour.
func TravelTimes(ds *models.Dataset) (TimeStats, error) {
	if ds.Empty() {
		return TimeStats{}, ErrEmptyDataset
	}

	months := make([]int, len(ds.Trips))
	weekdays := make([]int, len(ds.Trips))
	hours := make([]int, len(ds.Trips))
	for i := range ds.Trips {
		months[i] = ds.Trips[i].Month
		weekdays[i] = ds.Trips[i].Weekday
		hours[i] = ds.Trips[i].Hour
	}

	var ts TimeStats
	ts.Month, _ = Mode(months)
	ts.Weekday, _ = Mode(weekdays)
	ts.Hour, _ = Mode(hours)
	return ts, nil
}

// Stations returns the most common start station, end station, and trip.
// Blank station names are not counted; a trip with either end blank is not
// counted as a combination.
func Stations(ds *models.Dataset) (StationStats, error) {
	if ds.Empty() {
		return StationStats{}, ErrEmptyDataset
	}

	starts := make([]string, 0, len(ds.Trips))
	ends := make([]string, 0, len(ds.Trips))
	pairs := make([]string, 0, len(ds.Trips))
	for i := range ds.Trips {
		t := &ds.Trips[i]
		if t.StartStation != "" {
			starts = append(starts, t.StartStation)
		}
		if t.EndStation != "" {
			ends = append(ends, t.EndStation)
		}
		if t.StartStation != "" && t.EndStation != "" {
			pairs = append(pairs, t.StationPair())
		}
	}

	var ss StationStats
	ss.StartStation, _ = Mode(starts)
	ss.EndStation, _ = Mode(ends)
	ss.Trip, _ = Mode(pairs)
	return ss, nil
}

// Durations returns the total and mean trip duration.
func Durations(ds *models.Dataset) (DurationStats, error) {
	if ds.Empty() {
		return DurationStats{}, ErrEmptyDataset
	}

	var total float64
	for i := range ds.Trips {
		total += ds.Trips[i].Duration
	}
	return DurationStats{
		Trips: len(ds.Trips),
		Total: total,
		Mean:  total / float64(len(ds.Trips)),
	}, nil
}

// Users returns user type counts and, when the dataset carries them, gender
// counts and birth year statistics.
func Users(ds *models.Dataset) (UserStats, error) {
	if ds.Empty() {
		return UserStats{}, ErrEmptyDataset
	}

	types := make([]string, len(ds.Trips))
	for i := range ds.Trips {
		types[i] = ds.Trips[i].UserType
	}
	us := UserStats{UserTypes: ValueCounts(types)}

	if ds.Capabilities.Has(models.CapGender) {
		genders := make([]string, len(ds.Trips))
		for i := range ds.Trips {
			genders[i] = ds.Trips[i].Gender
		}
		us.Genders = ValueCounts(genders)
	}

	if ds.Capabilities.Has(models.CapBirthYear) {
		us.BirthYears = birthYears(ds.Trips)
	}

	return us, nil
}

func birthYears(trips []models.Trip) *BirthYearStats {
	years := make([]int, 0, len(trips))
	for i := range trips {
		// zero means not recorded
		if trips[i].BirthYear > 0 {
			years = append(years, trips[i].BirthYear)
		}
	}
	if len(years) == 0 {
		return nil
	}

	mode, _ := Mode(years)
	return &BirthYearStats{
		Earliest:   slices.Min(years),
		MostRecent: slices.Max(years),
		MostCommon: mode,
	}
}
