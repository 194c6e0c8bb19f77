package engine

import (
	"log/slog"
	"time"

	"github.com/tartampluch/go-preemie/internal/config"
)

// Input is an immutable snapshot of the form values at the moment the user
// asks for a calculation. All parsing happens before an Input is built;
// the calculator never sees raw text.
type Input struct {
	// BirthDate is the infant's actual date of birth.
	BirthDate time.Time

	// ReferenceDate is the "as of" date. The zero value means "today"
	// as reported by the calculator's clock.
	ReferenceDate time.Time

	// GestationalWeeks and GestationalDays describe the gestational age
	// at birth (e.g. 32 weeks + 4 days). GestationalWeeks == 0 means the
	// field was left empty: the infant is treated as born at term.
	GestationalWeeks int
	GestationalDays  int
}

// Assessment bundles both age readings for one calculation.
type Assessment struct {
	Chronological Breakdown
	Corrected     Breakdown

	// Premature reports whether a prematurity correction applied.
	// When false, Corrected equals Chronological.
	Premature bool

	// OffsetDays is the number of days the birth fell short of term.
	OffsetDays int
}

// Calculator evaluates age assessments. The Clock supplies "today" when the
// input carries no explicit reference date; tests inject a fixed clock.
type Calculator struct {
	Clock Clock
}

// Evaluate validates the input ranges and computes both breakdowns.
// Range violations surface as the engine's sentinel errors so the UI can
// localize them without string matching.
func (c *Calculator) Evaluate(in Input) (Assessment, error) {
	ref := in.ReferenceDate
	if ref.IsZero() {
		ref = c.now()
	}
	birth := DateOnly(in.BirthDate)
	ref = DateOnly(ref)

	if in.GestationalDays < 0 || in.GestationalDays > config.MaxGestExtraDays {
		return Assessment{}, ErrOffsetRange
	}
	if in.GestationalWeeks != 0 &&
		(in.GestationalWeeks < config.MinGestWeeks || in.GestationalWeeks > config.MaxGestWeeks) {
		return Assessment{}, ErrOffsetRange
	}

	chrono, err := ComputeAge(birth, ref)
	if err != nil {
		return Assessment{}, err
	}

	offset := 0
	if in.GestationalWeeks != 0 {
		offset = PrematurityOffsetDays(in.GestationalWeeks, in.GestationalDays)
	}
	if offset == 0 {
		return Assessment{
			Chronological: chrono,
			Corrected:     chrono,
		}, nil
	}

	corrected, err := computeShifted(birth, ref, offset)
	if err != nil {
		return Assessment{}, err
	}

	slog.Debug(config.MsgCalcDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyOffsetDays, offset,
		config.LogKeyPremature, true,
	)

	return Assessment{
		Chronological: chrono,
		Corrected:     corrected,
		Premature:     true,
		OffsetDays:    offset,
	}, nil
}

func (c *Calculator) now() time.Time {
	if c.Clock == nil {
		return time.Now()
	}
	return c.Clock.Now()
}
