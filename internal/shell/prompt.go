package shell

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/rewired-gh/bikeshare/internal/config"
	"github.com/rewired-gh/bikeshare/internal/logger"
	"github.com/rewired-gh/bikeshare/internal/models"
)

// ErrInputClosed is returned when input ends while a prompt is waiting.
var ErrInputClosed = errors.New("input closed")

var (
	monthTokens = []string{"0", "1", "2", "3", "4", "5", "6"}
	dayTokens   = []string{"0", "1", "2", "3", "4", "5", "6", "7"}
	yesNoTokens = []string{"y", "n"}
)

const (
	monthPrompt = "Enter a digit from 0 to 6 corresponding to:\n" +
		"0-include all months\n1-January\n2-February\n3-March\n4-April\n5-May\n6-June\n:"
	dayPrompt = "Enter a digit from 0 to 7 corresponding to:\n" +
		"0-include all days\n1-Monday\n2-Tuesday\n3-Wednesday\n4-Thursday\n5-Friday\n6-Saturday\n7-Sunday\n:"
)

// choose prints prompt and reads lines until one matches an accepted token.
// Matching ignores case and surrounding whitespace.
func (s *Shell) choose(prompt string, accepted []string) (string, error) {
	for {
		fmt.Fprint(s.out, prompt)
		if !s.in.Scan() {
			if err := s.in.Err(); err != nil {
				return "", fmt.Errorf("failed to read input: %w", err)
			}
			return "", ErrInputClosed
		}

		token := strings.ToLower(strings.TrimSpace(s.in.Text()))
		if slices.Contains(accepted, token) {
			return token, nil
		}

		logger.Debug("Rejected input %q (accepted: %v)", token, accepted)
		fmt.Fprintln(s.out, "\nInvalid Entry!")
		fmt.Fprintln(s.out, strings.Repeat("-", 14))
	}
}

// confirm asks a y/n question.
func (s *Shell) confirm(prompt string) (bool, error) {
	answer, err := s.choose(prompt, yesNoTokens)
	if err != nil {
		return false, err
	}
	return answer == "y", nil
}

func (s *Shell) promptCity() (config.City, error) {
	cities := s.cfg.Cities
	keys := make([]string, len(cities))
	options := make([]string, len(cities))
	for i, c := range cities {
		keys[i] = strings.ToLower(c.Key)
		options[i] = fmt.Sprintf("%s for %s", keys[i], titleCase(c.Name))
	}

	fmt.Fprintln(s.out, "\nWhich city's statistics would you like to see?")
	token, err := s.choose("Choose a city by entering a letter.\n"+strings.Join(options, " or ")+":", keys)
	if err != nil {
		return config.City{}, err
	}
	fmt.Fprintln(s.out, strings.Repeat("*", 40))

	city, ok := s.cfg.CityByKey(token)
	if !ok {
		return config.City{}, fmt.Errorf("no city for key %q", token)
	}
	return city, nil
}

func (s *Shell) promptFilter() (models.Filter, error) {
	fmt.Fprintln(s.out, "\nWould you like to include all months or filter data for one specific month?")
	month, err := s.choose(monthPrompt, monthTokens)
	if err != nil {
		return models.Filter{}, err
	}
	fmt.Fprintln(s.out, strings.Repeat("*", 40))

	fmt.Fprintln(s.out, "\nWould you like to include all days of week or filter for one specific day?")
	day, err := s.choose(dayPrompt, dayTokens)
	if err != nil {
		return models.Filter{}, err
	}
	fmt.Fprintln(s.out, strings.Repeat("*", 50))

	return parseFilter(month, day)
}

// parseFilter converts validated prompt tokens to a Filter.
// Day tokens are 1=Monday ... 7=Sunday, with 0 meaning all days.
func parseFilter(monthToken, dayToken string) (models.Filter, error) {
	month, err := strconv.Atoi(monthToken)
	if err != nil {
		return models.Filter{}, fmt.Errorf("invalid month %q: %w", monthToken, err)
	}
	day, err := strconv.Atoi(dayToken)
	if err != nil {
		return models.Filter{}, fmt.Errorf("invalid day %q: %w", dayToken, err)
	}

	f := models.Filter{Month: month, Weekday: models.AllDays}
	if day != 0 {
		f.Weekday = day - 1
	}
	if err := f.Validate(); err != nil {
		return models.Filter{}, err
	}
	return f, nil
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
