package ui

import (
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// NumericalEntry is a custom Entry widget that only accepts numeric input.
// It embeds widget.Entry to inherit all standard behavior and is used for
// the gestational weeks/days fields.
type NumericalEntry struct {
	widget.Entry
}

// NewNumericalEntry creates a new instance of NumericalEntry.
func NewNumericalEntry() *NumericalEntry {
	entry := &NumericalEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune intercepts text input events.
// It filters characters to allow only digits (0-9).
func (e *NumericalEntry) TypedRune(r rune) {
	if r >= '0' && r <= '9' {
		e.Entry.TypedRune(r)
	}
	// Ignore non-numeric characters.
	// Note: Ctrl+V (Paste) bypasses TypedRune; the Validator catches that.
}

// Keyboard overrides the default keyboard type.
// This ensures that on mobile devices, a numeric keypad is shown.
func (e *NumericalEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}

// DateEntry is an Entry restricted to the characters a calendar date can
// contain: digits plus the common field separators. Full validation (real
// calendar date, accepted field order) is left to the attached Validator.
type DateEntry struct {
	widget.Entry
}

// NewDateEntry creates a new instance of DateEntry.
func NewDateEntry() *DateEntry {
	entry := &DateEntry{}
	entry.ExtendBaseWidget(entry)
	return entry
}

// TypedRune allows digits and date separators only.
func (e *DateEntry) TypedRune(r rune) {
	if (r >= '0' && r <= '9') || r == '-' || r == '/' || r == '.' || r == ' ' {
		e.Entry.TypedRune(r)
	}
}

// Keyboard requests the numeric keypad on mobile devices; separators are
// available on number layouts.
func (e *DateEntry) Keyboard() mobile.KeyboardType {
	return mobile.NumberKeyboard
}
