package ui

import (
	"context"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-preemie/internal/config"
	"github.com/tartampluch/go-preemie/internal/engine"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

// setupTestApp initializes a headless Fyne app with a fixed clock.
// "Today" is pinned to 2025-06-01 for every test.
func setupTestApp(t *testing.T) *PreemieApp {
	t.Helper()

	a := test.NewApp()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	calc := &engine.Calculator{
		Clock: MockClock{CurrentTime: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)},
	}

	app := NewPreemieApp(a, ctx, calc)

	// Manually load I18n and widgets as Run() is skipped.
	app.SetupI18n()
	app.buildWidgets()

	return app
}

// -----------------------------------------------------------------------------
// Localization Tests
// -----------------------------------------------------------------------------

func TestLocalization_Switching(t *testing.T) {
	app := setupTestApp(t)

	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()
	assert.Equal(t, "Calculate", app.GetMsg(config.TKeyBtnCalculate))

	app.Preferences.SetString(config.PrefLanguage, "fr")
	app.UpdateLocalizer()
	assert.Equal(t, "Calculer", app.GetMsg(config.TKeyBtnCalculate))

	app.Preferences.SetString(config.PrefLanguage, "pt")
	app.UpdateLocalizer()
	assert.Equal(t, "Calcular", app.GetMsg(config.TKeyBtnCalculate))
}

func TestLocalization_MissingKeyFallsBackToKey(t *testing.T) {
	app := setupTestApp(t)
	assert.Equal(t, "no_such_key", app.GetMsg("no_such_key"))
}

// -----------------------------------------------------------------------------
// Calculation Flow Tests
// -----------------------------------------------------------------------------

func TestCalculate_TermBirth(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	// Born Jan 1st 2025, evaluated against the fixed "today" (June 1st).
	app.birthEntry.SetText("01-01-2025")
	app.onCalculate()

	result := app.resultBox.Text
	require.NotEmpty(t, result)

	// 151 elapsed days: 21 whole weeks, exactly 5 calendar months.
	assert.Contains(t, result, "21 weeks")
	assert.Contains(t, result, "(5 months)")
	assert.Contains(t, result, "0 years, 5 months, 0 days")
	assert.Contains(t, result, "Born at term")

	assert.Empty(t, app.statusLbl.Text, "no error expected")
}

func TestCalculate_PrematureBirth(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	// Born 2025-01-01 at 32+4 (52 days short of term), explicit reference.
	app.birthEntry.SetText("01-01-2025")
	app.refEntry.SetText("01-06-2025")
	app.weeksEntry.SetText("32")
	app.daysEntry.SetText("4")
	app.onCalculate()

	result := app.resultBox.Text
	require.NotEmpty(t, result)

	assert.Contains(t, result, "Chronological age: 21 weeks (5 months)")
	assert.Contains(t, result, "Corrected age: 14 weeks (3 months) and 1 days")
	assert.Contains(t, result, "Corrected age: 0 years, 3 months, 10 days")
	assert.NotContains(t, result, "Born at term")
}

func TestCalculate_YearFirstInput(t *testing.T) {
	app := setupTestApp(t)

	app.birthEntry.SetText("2025/01/01")
	app.refEntry.SetText("2025-06-01")
	app.onCalculate()

	assert.Contains(t, app.resultBox.Text, "21")
}

func TestCalculate_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		birth      string
		ref        string
		weeks      string
		days       string
		wantStatus string // translation key of the expected inline error
	}{
		{
			name:       "Missing birth date",
			wantStatus: config.TKeyErrBirthReq,
		},
		{
			name:       "Malformed birth date",
			birth:      "99-99-2024",
			wantStatus: config.TKeyErrDateParse,
		},
		{
			name:       "Birth after reference",
			birth:      "01-05-2024",
			ref:        "01-01-2024",
			wantStatus: config.TKeyErrDateRange,
		},
		{
			name:       "Corrected birth in the future",
			birth:      "20-05-2025",
			weeks:      "30",
			wantStatus: config.TKeyErrCorrFuture,
		},
		{
			name:       "Gestational weeks out of range",
			birth:      "01-01-2025",
			weeks:      "12",
			wantStatus: config.TKeyErrWeeksRange,
		},
		{
			name:       "Additional days out of range",
			birth:      "01-01-2025",
			weeks:      "32",
			days:       "9",
			wantStatus: config.TKeyErrDaysRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupTestApp(t)
			app.Preferences.SetString(config.PrefLanguage, "en")
			app.UpdateLocalizer()

			app.birthEntry.SetText(tt.birth)
			app.refEntry.SetText(tt.ref)
			app.weeksEntry.SetText(tt.weeks)
			app.daysEntry.SetText(tt.days)
			app.onCalculate()

			assert.Equal(t, app.GetMsg(tt.wantStatus), app.statusLbl.Text)
			assert.Empty(t, app.resultBox.Text, "no partial result on error")
		})
	}
}

// -----------------------------------------------------------------------------
// Clipboard Tests
// -----------------------------------------------------------------------------

func TestCopy_PlacesResultOnClipboard(t *testing.T) {
	app := setupTestApp(t)
	app.Preferences.SetString(config.PrefLanguage, "en")
	app.UpdateLocalizer()

	app.birthEntry.SetText("01-01-2025")
	app.onCalculate()
	require.NotEmpty(t, app.resultBox.Text)

	app.onCopy()

	assert.Equal(t, app.resultBox.Text, app.App.Clipboard().Content())
	assert.Equal(t, app.GetMsg(config.TKeyMsgCopied), app.statusLbl.Text)
}

func TestCopy_WithoutResultIsNoOp(t *testing.T) {
	app := setupTestApp(t)

	app.onCopy()

	assert.Empty(t, app.App.Clipboard().Content())
	assert.Empty(t, app.statusLbl.Text)
}

// -----------------------------------------------------------------------------
// Preference Tests
// -----------------------------------------------------------------------------

func TestDateOrder_Preference(t *testing.T) {
	app := setupTestApp(t)

	placeholder, layout := app.dateOrder()
	assert.Equal(t, config.PlaceholderDMY, placeholder, "day-first is the default")
	assert.Equal(t, config.DateLayoutDMY, layout)

	app.Preferences.SetString(config.PrefDateOrder, config.DateOrderYMD)
	placeholder, layout = app.dateOrder()
	assert.Equal(t, config.PlaceholderYMD, placeholder)
	assert.Equal(t, config.DateLayoutYMD, layout)
}

func TestTodayString_UsesInjectedClock(t *testing.T) {
	app := setupTestApp(t)
	assert.Equal(t, "01-06-2025", app.todayString(config.DateLayoutDMY))
}
