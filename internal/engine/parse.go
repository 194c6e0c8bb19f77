package engine

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/tartampluch/go-preemie/internal/config"
)

// ErrDateParse reports malformed or impossible calendar dates at the input
// boundary (e.g. "31-02-2024" or "not a date").
var ErrDateParse = errors.New(config.ErrDateParse)

// ParseDate normalizes free-form user input into a date-only UTC time.
// It accepts day-first (DD-MM-YYYY) and year-first (YYYY-MM-DD) orders with
// any non-digit separator, and rejects values that do not round-trip
// through the Gregorian calendar (no Feb 30).
func ParseDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, ErrDateParse
	}

	parts := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r < '0' || r > '9'
	})
	if len(parts) != config.DatePartsCount {
		return time.Time{}, ErrDateParse
	}

	numbers := make([]int, config.DatePartsCount)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return time.Time{}, ErrDateParse
		}
		numbers[i] = n
	}

	var year, month, day int
	switch {
	case len(parts[0]) == config.YearDigits:
		year, month, day = numbers[0], numbers[1], numbers[2]
	case len(parts[2]) == config.YearDigits:
		day, month, year = numbers[0], numbers[1], numbers[2]
	default:
		return time.Time{}, ErrDateParse
	}

	parsed := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 -> Mar 2); a round-trip
	// mismatch means the components were not a real calendar date.
	if parsed.Year() != year || int(parsed.Month()) != month || parsed.Day() != day {
		return time.Time{}, ErrDateParse
	}

	return parsed, nil
}
