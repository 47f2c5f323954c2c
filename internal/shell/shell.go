// Package shell drives the interactive bikeshare session: it prompts for a
// city and calendar filters, prints every statistics block, offers paged
// raw rows, and loops until the user declines to restart.
//
// Prompts accept only their listed tokens and re-ask on anything else. A
// filter selection that matches no trips is reported and the filters are
// asked for again; the loaded dataset is reused.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/rewired-gh/bikeshare/internal/config"
	"github.com/rewired-gh/bikeshare/internal/logger"
	"github.com/rewired-gh/bikeshare/internal/models"
	"github.com/rewired-gh/bikeshare/internal/stats"
)

// DatasetLoader loads every trip of a city.
type DatasetLoader interface {
	Load(city string) (*models.Dataset, error)
}

// Shell is a single-user interactive session over one input and one output.
type Shell struct {
	in       *bufio.Scanner
	out      io.Writer
	loader   DatasetLoader
	cfg      *config.Config
	pageSize int

	since func(time.Time) time.Duration
}

// New creates a Shell reading answers from in and writing to out.
func New(in io.Reader, out io.Writer, loader DatasetLoader, cfg *config.Config) *Shell {
	return &Shell{
		in:       bufio.NewScanner(in),
		out:      out,
		loader:   loader,
		cfg:      cfg,
		pageSize: cfg.Shell.RawPageSize,
		since:    time.Since,
	}
}

// Run loops over session iterations until the user declines to restart or
// input ends. Data source errors end the run and are returned.
func (s *Shell) Run(ctx context.Context) error {
	s.printBanner()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		sessionID := uuid.New().String()
		logger.Debug("Starting session %s", sessionID)

		restart, err := s.session(sessionID)
		if errors.Is(err, ErrInputClosed) {
			logger.Info("Input closed, ending session %s", sessionID)
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
		if !restart {
			logger.Debug("Session %s finished", sessionID)
			return nil
		}
	}
}

// session runs one iteration and reports whether the user asked to restart.
func (s *Shell) session(sessionID string) (bool, error) {
	city, err := s.promptCity()
	if err != nil {
		return false, err
	}

	ds, err := s.loader.Load(city.Name)
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", city.Name, err)
	}
	logger.Info("Session %s: loaded %d trips for %s", sessionID, ds.Len(), city.Name)

	filter, filtered, err := s.selectTrips(ds)
	if err != nil {
		return false, err
	}
	logger.Info("Session %s: %d of %d trips match %s", sessionID, filtered.Len(), ds.Len(), filter)

	s.printSelection(filtered, filter)
	if err := s.printStats(filtered); err != nil {
		return false, err
	}

	if err := s.rawData(filtered); err != nil {
		return false, err
	}

	return s.confirm("Would you like to restart? Enter y for yes or n for no.\n:")
}

// selectTrips asks for filters until they match at least one trip.
func (s *Shell) selectTrips(ds *models.Dataset) (models.Filter, *models.Dataset, error) {
	for {
		filter, err := s.promptFilter()
		if err != nil {
			return models.Filter{}, nil, err
		}

		// No constraint: the loaded dataset already is the selection
		selected := ds
		if !filter.IsAll() {
			selected = filter.Apply(ds)
		}
		if !selected.Empty() {
			return filter, selected, nil
		}

		logger.Debug("Filter %s matched no %s trips", filter, ds.City)
		s.printNoData()
	}
}

// printStats computes and prints every statistics block in order.
func (s *Shell) printStats(ds *models.Dataset) error {
	fmt.Fprintln(s.out, "\nThe Most Frequent Times of Travel:")
	fmt.Fprintln(s.out)
	start := time.Now()
	ts, err := stats.TravelTimes(ds)
	if err != nil {
		return fmt.Errorf("failed to compute travel times: %w", err)
	}
	s.printTimeStats(ts)
	s.printElapsed(start)

	fmt.Fprintln(s.out, "\nThe Most Popular Stations and Trip:")
	fmt.Fprintln(s.out)
	start = time.Now()
	ss, err := stats.Stations(ds)
	if err != nil {
		return fmt.Errorf("failed to compute station stats: %w", err)
	}
	s.printStationStats(ss)
	s.printElapsed(start)

	fmt.Fprintln(s.out, "\nTrip Duration Statistics:")
	fmt.Fprintln(s.out)
	start = time.Now()
	dur, err := stats.Durations(ds)
	if err != nil {
		return fmt.Errorf("failed to compute trip durations: %w", err)
	}
	s.printDurationStats(dur)
	s.printElapsed(start)

	fmt.Fprintln(s.out, "\nUser Statistics:")
	fmt.Fprintln(s.out)
	start = time.Now()
	us, err := stats.Users(ds)
	if err != nil {
		return fmt.Errorf("failed to compute user stats: %w", err)
	}
	s.printUserStats(us)
	s.printElapsed(start)

	return nil
}

// rawData pages through the trips pageSize rows at a time while the user asks for more.
func (s *Shell) rawData(ds *models.Dataset) error {
	start := time.Now()

	more, err := s.confirm("Would you like to see the raw data? Enter y for yes and n for no.\n:")
	if err != nil {
		return err
	}

	rows := ds.Rows()
	for n := 0; more; n += s.pageSize {
		end := min(n+s.pageSize, len(rows))
		if err := s.printRows(ds, rows[n:end]); err != nil {
			return fmt.Errorf("failed to display raw data: %w", err)
		}

		if end == len(rows) {
			fmt.Fprintln(s.out, "\nNo more raw data to display.")
			break
		}

		more, err = s.confirm("Would you like to see more raw data? Enter y for yes and n for no.\n:")
		if err != nil {
			return err
		}
	}

	s.printElapsed(start)
	return nil
}
