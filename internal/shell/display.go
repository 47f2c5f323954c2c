package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/rewired-gh/bikeshare/internal/models"
	"github.com/rewired-gh/bikeshare/internal/stats"
)

var errNoSourceTable = errors.New("dataset has no source table")

func (s *Shell) printBanner() {
	fmt.Fprintln(s.out, strings.Repeat("*", 50))
	fmt.Fprintln(s.out, "Hello! Welcome to the US bikeshare data center!")
	fmt.Fprintln(s.out, "Let's look at some interesting statistics!")
	fmt.Fprintln(s.out, strings.Repeat("*", 50))
}

func (s *Shell) printNoData() {
	fmt.Fprintln(s.out, strings.Repeat("! ", 30))
	fmt.Fprintln(s.out, "There is no data for the selected, month and day, filters.")
	fmt.Fprintln(s.out, "Please select different filters.")
	fmt.Fprintln(s.out, strings.Repeat("! ", 30))
	fmt.Fprintln(s.out)
}

func (s *Shell) printSelection(ds *models.Dataset, f models.Filter) {
	fmt.Fprintf(s.out, "\nAnalyzing %s trips in %s (%s).\n",
		humanize.Comma(int64(ds.Len())), titleCase(ds.City), f)
}

// printElapsed closes a statistics block with its computation time.
func (s *Shell) printElapsed(start time.Time) {
	fmt.Fprintf(s.out, "\nThis took %v.\n", s.since(start))
	fmt.Fprintln(s.out, strings.Repeat("-", 40))
}

// printTimeStats displays the most frequent times of travel
func (s *Shell) printTimeStats(ts stats.TimeStats) {
	fmt.Fprintf(s.out, "The most common month is: %d (%s)\n", ts.Month, models.MonthName(ts.Month))
	fmt.Fprintf(s.out, "The most common day of week is: %s\n", models.WeekdayName(ts.Weekday))
	fmt.Fprintf(s.out, "The most common hour is: %d\n", ts.Hour)
}

// printStationStats displays the most popular stations and trip
func (s *Shell) printStationStats(ss stats.StationStats) {
	fmt.Fprintf(s.out, "The most commonly used starting station is:\n %s\n", ss.StartStation)
	fmt.Fprintf(s.out, "The most commonly used ending station is:\n %s\n", ss.EndStation)
	fmt.Fprintf(s.out, "The most frequent combination of start station and end station is:\n %s\n", ss.Trip)
}

// printDurationStats displays total and mean trip duration
func (s *Shell) printDurationStats(ds stats.DurationStats) {
	total := time.Duration(ds.Total * float64(time.Second))
	mean := time.Duration(ds.Mean * float64(time.Second))
	fmt.Fprintf(s.out, "The total travel time in seconds is: %s (%v)\n",
		humanize.Commaf(ds.Total), total.Round(time.Second))
	fmt.Fprintf(s.out, "The mean travel time in seconds is: %s (%v)\n",
		humanize.FormatFloat("#,###.##", ds.Mean), mean.Round(time.Second))
}

// printUserStats displays user type, gender, and birth year statistics
func (s *Shell) printUserStats(us stats.UserStats) {
	fmt.Fprintln(s.out, "The user types and their count is:")
	s.printCounts(us.UserTypes)

	// Only datasets with a gender column have this
	if us.Genders != nil {
		fmt.Fprintln(s.out, "\nThe gender split is:")
		s.printCounts(us.Genders)
	}

	if us.BirthYears != nil {
		fmt.Fprintf(s.out, "\nThe earliest year of birth of users is: %d\n", us.BirthYears.Earliest)
		fmt.Fprintf(s.out, "The latest year of birth of users is: %d\n", us.BirthYears.MostRecent)
		fmt.Fprintf(s.out, "The most common year of birth of users is: %d\n", us.BirthYears.MostCommon)
	}
}

func (s *Shell) printCounts(counts []stats.Count) {
	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(w, " %s\t%s\n", c.Value, humanize.Comma(int64(c.Count)))
	}
	_ = w.Flush()
}

// printRows renders the given source rows of ds as a table.
func (s *Shell) printRows(ds *models.Dataset, rows []int) error {
	if ds.Frame.Ncol() == 0 {
		return errNoSourceTable
	}
	sub := ds.Frame.Subset(rows)
	if sub.Err != nil {
		return sub.Err
	}

	w := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', 0)
	for i, rec := range sub.Records() {
		label := ""
		if i > 0 {
			label = strconv.Itoa(rows[i-1])
		}
		fmt.Fprintln(w, label+"\t"+strings.Join(rec, "\t"))
	}
	return w.Flush()
}
