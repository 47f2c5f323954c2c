// Package storage loads city trip datasets from their CSV files.
//
// A dataset is read fully into memory once per session iteration. The whole
// table is kept as a dataframe for raw-row display, and every row is also
// parsed into a models.Trip with its calendar fields derived eagerly.
// Any problem with the backing file is reported as a *DataSourceError; the
// loader never returns a partially parsed dataset.
package storage

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/rewired-gh/bikeshare/internal/config"
	"github.com/rewired-gh/bikeshare/internal/logger"
	"github.com/rewired-gh/bikeshare/internal/models"
)

// Column names of the trip files.
const (
	ColStartTime    = "Start Time"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColDuration     = "Trip Duration"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

var requiredColumns = []string{ColStartTime, ColStartStation, ColEndStation, ColDuration, ColUserType}

// DataSourceError reports a missing, unreadable, or malformed dataset.
type DataSourceError struct {
	City string
	Path string
	Err  error
}

func (e *DataSourceError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("data source error for %s: %v", e.City, e.Err)
	}
	return fmt.Sprintf("data source error for %s (%s): %v", e.City, e.Path, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// ErrUnknownCity is wrapped by DataSourceError when a city has no configured file.
var ErrUnknownCity = errors.New("unknown city")

// Loader reads city datasets using an explicit configuration.
type Loader struct {
	cfg config.Config
}

// NewLoader creates a Loader from the data and city configuration.
func NewLoader(data config.DataConfig, cities []config.City) *Loader {
	return &Loader{
		cfg: config.Config{Data: data, Cities: cities},
	}
}

// Path resolves a city name to its backing file.
func (l *Loader) Path(city string) (string, error) {
	c, ok := l.cfg.City(city)
	if !ok {
		return "", &DataSourceError{City: city, Err: ErrUnknownCity}
	}
	if filepath.IsAbs(c.File) {
		return c.File, nil
	}
	return filepath.Join(l.cfg.Data.Dir, c.File), nil
}

// Load reads and parses every trip of city.
func (l *Loader) Load(city string) (*models.Dataset, error) {
	path, err := l.Path(city)
	if err != nil {
		return nil, err
	}
	fail := func(err error) error {
		return &DataSourceError{City: city, Path: path, Err: err}
	}

	start := time.Now()
	f, err := os.Open(path)
	if err != nil {
		return nil, fail(fmt.Errorf("failed to open file: %w", err))
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fail(fmt.Errorf("failed to parse csv: %w", df.Err))
	}

	ds, err := l.parse(city, df)
	if err != nil {
		return nil, fail(err)
	}

	logger.Info("Loaded %d trips for %s from %s (%s columns) in %v",
		ds.Len(), city, path, ds.Capabilities, time.Since(start))
	return ds, nil
}

// parse converts the string-typed frame into trips.
func (l *Loader) parse(city string, df dataframe.DataFrame) (*models.Dataset, error) {
	names := make(map[string]bool)
	for _, name := range df.Names() {
		names[name] = true
	}
	for _, col := range requiredColumns {
		if !names[col] {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	var caps models.Capabilities
	if names[ColGender] {
		caps |= models.CapGender
	}
	if names[ColBirthYear] {
		caps |= models.CapBirthYear
	}

	startTimes := df.Col(ColStartTime).Records()
	startStations := df.Col(ColStartStation).Records()
	endStations := df.Col(ColEndStation).Records()
	durations := df.Col(ColDuration).Records()
	userTypes := df.Col(ColUserType).Records()

	var genders, birthYears []string
	if caps.Has(models.CapGender) {
		genders = df.Col(ColGender).Records()
	}
	if caps.Has(models.CapBirthYear) {
		birthYears = df.Col(ColBirthYear).Records()
	}

	trips := make([]models.Trip, len(startTimes))
	for i := range startTimes {
		start, err := time.Parse(l.cfg.Data.TimestampLayout, strings.TrimSpace(startTimes[i]))
		if err != nil {
			return nil, fmt.Errorf("row %d: unparseable %s %q: %w", i+1, ColStartTime, startTimes[i], err)
		}
		duration, err := parseDuration(durations[i])
		if err != nil {
			return nil, fmt.Errorf("row %d: unparseable %s %q: %w", i+1, ColDuration, durations[i], err)
		}

		trip := models.NewTrip(i, start, clean(startStations[i]), clean(endStations[i]), duration, clean(userTypes[i]))
		if genders != nil {
			trip.Gender = clean(genders[i])
		}
		if birthYears != nil {
			year, err := parseYear(birthYears[i])
			if err != nil {
				return nil, fmt.Errorf("row %d: unparseable %s %q: %w", i+1, ColBirthYear, birthYears[i], err)
			}
			trip.BirthYear = year
		}
		if err := trip.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: invalid trip: %w", i+1, err)
		}
		trips[i] = trip
	}

	return &models.Dataset{
		City:         city,
		Capabilities: caps,
		Trips:        trips,
		Frame:        df,
	}, nil
}

// clean trims a cell and maps the frame's missing-value markers to "".
func clean(s string) string {
	s = strings.TrimSpace(s)
	switch s {
	case "NaN", "NA", "<nil>":
		return ""
	}
	return s
}

// errMissingValue is wrapped when a required numeric cell is blank or a missing-value marker.
var errMissingValue = errors.New("missing value")

// parseDuration parses a trip duration in seconds. Missing and non-finite values are errors.
func parseDuration(s string) (float64, error) {
	s = clean(s)
	if s == "" {
		return 0, errMissingValue
	}
	d, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, fmt.Errorf("non-finite duration %v", d)
	}
	return d, nil
}

// parseYear accepts "1985" as well as the float form "1985.0"; missing values yield 0.
func parseYear(s string) (int, error) {
	s = clean(s)
	if s == "" {
		return 0, nil
	}
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("non-finite year %v", y)
	}
	return int(y), nil
}
