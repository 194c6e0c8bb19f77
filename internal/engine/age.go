package engine

import (
	"errors"
	"time"

	"github.com/tartampluch/go-preemie/internal/config"
)

// Sentinel errors returned by the age computations.
// The UI maps these to localized inline messages.
var (
	ErrInvalidDateRange = errors.New(config.ErrDateRange)
	ErrCorrectedFuture  = errors.New(config.ErrCorrectedFuture)
	ErrOffsetRange      = errors.New(config.ErrOffsetRange)
)

// Breakdown is the decomposition of the elapsed time between two calendar
// dates. All fields are non-negative for a valid (birth <= reference) pair.
type Breakdown struct {
	// Years, Months and Days form the calendar decomposition: whole years,
	// then whole months within the partial year, then days within the
	// partial month.
	Years  int
	Months int
	Days   int

	// TotalDays is the exact number of elapsed days.
	TotalDays int

	// TotalWeeks is TotalDays / 7; WeekDays the remainder.
	TotalWeeks int
	WeekDays   int

	// TotalMonths is Years*12 + Months, ignoring the leftover days.
	TotalMonths int
}

// DateOnly normalizes a timestamp to midnight UTC so that date arithmetic
// is unaffected by the wall-clock time or timezone of the input.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ComputeAge returns the chronological age breakdown between a birth date
// and a reference date. It fails with ErrInvalidDateRange when the birth
// date is after the reference date.
func ComputeAge(birthDate, referenceDate time.Time) (Breakdown, error) {
	birth, ref := DateOnly(birthDate), DateOnly(referenceDate)
	if birth.After(ref) {
		return Breakdown{}, ErrInvalidDateRange
	}
	return decompose(birth, ref), nil
}

// ComputeCorrectedAge returns the gestational-age-corrected breakdown:
// the age the infant would have if born prematurityWeeks later (closer to
// the 40-week term). A zero offset yields the chronological age unchanged.
// It fails with ErrCorrectedFuture when the shifted birth date lands after
// the reference date.
func ComputeCorrectedAge(birthDate, referenceDate time.Time, prematurityWeeks int) (Breakdown, error) {
	if prematurityWeeks < 0 || prematurityWeeks > config.FullTermWeeks {
		return Breakdown{}, ErrOffsetRange
	}
	return computeShifted(DateOnly(birthDate), DateOnly(referenceDate), prematurityWeeks*config.DaysPerWeek)
}

// PrematurityOffsetDays converts a gestational age at birth (weeks plus
// additional days) into the number of days the birth fell short of the
// 280-day term. Gestations at or beyond term yield 0.
func PrematurityOffsetDays(gestWeeks, gestDays int) int {
	offset := config.FullTermDays - (gestWeeks*config.DaysPerWeek + gestDays)
	if offset < 0 {
		return 0
	}
	return offset
}

// computeShifted ages the infant from a birth date moved offsetDays toward
// the reference date. Inputs must already be date-only values.
func computeShifted(birth, ref time.Time, offsetDays int) (Breakdown, error) {
	if birth.After(ref) {
		return Breakdown{}, ErrInvalidDateRange
	}
	shifted := birth.AddDate(0, 0, offsetDays)
	if shifted.After(ref) {
		return Breakdown{}, ErrCorrectedFuture
	}
	return decompose(shifted, ref), nil
}

// decompose performs the calendar-aware subtraction to - from.
//
// Canonical borrow rule: a negative day count borrows the length of the
// calendar month immediately preceding the reference month. When the birth
// day exceeds that month's length (e.g. born on the 31st, previous month
// has 30 days) the monthly anniversary clamps to the end of that month,
// so the day remainder is simply the reference day-of-month.
func decompose(from, to time.Time) Breakdown {
	years := to.Year() - from.Year()
	months := int(to.Month()) - int(from.Month())
	days := to.Day() - from.Day()

	if days < 0 {
		months--
		// Day zero resolves to the last day of the previous month.
		prevMonthEnd := time.Date(to.Year(), to.Month(), 0, 0, 0, 0, 0, time.UTC)
		days += prevMonthEnd.Day()
		if days < 0 {
			days = to.Day()
		}
	}
	if months < 0 {
		years--
		months += config.MonthsPerYear
	}

	totalDays := int(to.Sub(from) / (24 * time.Hour))

	return Breakdown{
		Years:       years,
		Months:      months,
		Days:        days,
		TotalDays:   totalDays,
		TotalWeeks:  totalDays / config.DaysPerWeek,
		WeekDays:    totalDays % config.DaysPerWeek,
		TotalMonths: years*config.MonthsPerYear + months,
	}
}
