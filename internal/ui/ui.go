package ui

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/tartampluch/go-preemie/internal/config"
	"github.com/tartampluch/go-preemie/internal/engine"
)

//go:embed Icon.png
var appIconData []byte

// PreemieApp encapsulates the UI state, preferences, and the calculator.
type PreemieApp struct {
	App         fyne.App
	Window      fyne.Window
	Preferences fyne.Preferences
	I18nBundle  *i18n.Bundle
	Localizer   *i18n.Localizer
	Ctx         context.Context

	Calc *engine.Calculator

	SupportedLanguages []string

	// Form widgets are created once so their contents survive language
	// or date-order changes, which rebuild the surrounding layout.
	birthEntry *DateEntry
	refEntry   *DateEntry
	weeksEntry *NumericalEntry
	daysEntry  *NumericalEntry
	resultBox  *widget.Entry
	statusLbl  *widget.Label
	copyBtn    *widget.Button

	settingsWindow fyne.Window
}

// NewPreemieApp constructs the application and wires dependencies.
func NewPreemieApp(a fyne.App, ctx context.Context, calc *engine.Calculator) *PreemieApp {
	a.SetIcon(fyne.NewStaticResource(config.IconFile, appIconData))

	return &PreemieApp{
		App:                a,
		Preferences:        a.Preferences(),
		Ctx:                ctx,
		Calc:               calc,
		SupportedLanguages: config.SupportedLanguages,
	}
}

// Run launches the main window and blocks until the application exits.
func (app *PreemieApp) Run() {
	app.SetupI18n()
	app.buildWidgets()

	app.Window = app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	app.Window.SetMaster()
	app.renderMain()
	app.Window.Resize(fyne.NewSize(config.MainWinWidth, config.MainWinHeight))
	app.Window.Show()

	app.App.Run()
}

// buildWidgets creates the long-lived form widgets and wires the
// Enter-key focus chain: birth -> reference -> weeks -> days -> calculate.
func (app *PreemieApp) buildWidgets() {
	app.birthEntry = NewDateEntry()
	app.refEntry = NewDateEntry()
	app.weeksEntry = NewNumericalEntry()
	app.daysEntry = NewNumericalEntry()

	app.birthEntry.Validator = app.dateValidator(true)
	app.refEntry.Validator = app.dateValidator(false)

	app.birthEntry.OnSubmitted = func(string) { app.focus(app.refEntry) }
	app.refEntry.OnSubmitted = func(string) { app.focus(app.weeksEntry) }
	app.weeksEntry.OnSubmitted = func(string) { app.focus(app.daysEntry) }
	app.daysEntry.OnSubmitted = func(string) { app.onCalculate() }

	app.resultBox = widget.NewMultiLineEntry()
	app.resultBox.Wrapping = fyne.TextWrapWord
	app.resultBox.SetMinRowsVisible(config.ResultRowsVisible)
	app.resultBox.Disable()

	app.statusLbl = widget.NewLabel("")
	app.statusLbl.Wrapping = fyne.TextWrapWord

	app.copyBtn = widget.NewButtonWithIcon("", theme.ContentCopyIcon(), app.onCopy)
	app.copyBtn.Disable()
}

// renderMain (re)builds the window content with the current locale and
// date-order preference. Entry contents are preserved across rebuilds.
func (app *PreemieApp) renderMain() {
	app.Window.SetTitle(app.GetMsg(config.TKeyWinTitle))

	placeholder, layout := app.dateOrder()
	app.birthEntry.SetPlaceHolder(placeholder)
	app.refEntry.SetPlaceHolder(app.todayString(layout))
	app.weeksEntry.SetPlaceHolder(strconv.Itoa(config.FullTermWeeks))
	app.daysEntry.SetPlaceHolder("0")

	itemBirth := widget.NewFormItem(app.GetMsg(config.TKeyLblBirthDate), app.birthEntry)
	itemBirth.HintText = app.GetMsg(config.TKeyHelpBirth)

	itemRef := widget.NewFormItem(app.GetMsg(config.TKeyLblRefDate), app.refEntry)
	itemRef.HintText = app.GetMsg(config.TKeyHelpRef)

	itemWeeks := widget.NewFormItem(app.GetMsg(config.TKeyLblGestWeeks), app.weeksEntry)
	itemWeeks.HintText = app.GetMsg(config.TKeyHelpWeeks)

	itemDays := widget.NewFormItem(app.GetMsg(config.TKeyLblGestDays), app.daysEntry)
	itemDays.HintText = app.GetMsg(config.TKeyHelpDays)

	form := widget.NewForm(itemBirth, itemRef, itemWeeks, itemDays)

	btnCalc := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCalculate), theme.ConfirmIcon(), app.onCalculate)
	btnCalc.Importance = widget.HighImportance

	app.copyBtn.SetText(app.GetMsg(config.TKeyBtnCopy))

	toolbar := widget.NewToolbar(
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), app.ShowSettingsWindow),
	)

	resultCard := widget.NewCard(app.GetMsg(config.TKeyLblResults), "",
		container.NewVBox(app.resultBox, app.copyBtn))

	footerLabel := widget.NewLabel(fmt.Sprintf(app.GetMsg(config.TKeyLblFooter), config.Version))
	footerLabel.Alignment = fyne.TextAlignCenter
	footerLabel.TextStyle = fyne.TextStyle{Italic: true}

	content := container.NewPadded(container.NewVBox(
		toolbar,
		form,
		btnCalc,
		app.statusLbl,
		resultCard,
		footerLabel,
	))

	app.Window.SetContent(content)
}

// onCalculate validates the form, runs the calculator, and renders the
// result or an inline error. It never aborts the application.
func (app *PreemieApp) onCalculate() {
	app.setStatus("", widget.MediumImportance)
	slog.Info(config.MsgCalcRequested, config.LogKeyComponent, config.CompUI)

	in, ok := app.readInput()
	if !ok {
		app.clearResult()
		return
	}

	assessment, err := app.Calc.Evaluate(in)
	if err != nil {
		slog.Warn(config.MsgCalcRejected,
			config.LogKeyComponent, config.CompUI,
			config.LogKeyError, err,
		)
		app.setStatus(app.localizeEngineErr(err), widget.DangerImportance)
		app.clearResult()
		return
	}

	app.resultBox.SetText(app.formatAssessment(assessment))
	app.copyBtn.Enable()

	slog.Info(config.MsgCalcDone,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyPremature, assessment.Premature,
		config.LogKeyOffsetDays, assessment.OffsetDays,
	)
}

// onCopy places the current result on the system clipboard.
// Clipboard failure is a non-fatal, user-visible notice.
func (app *PreemieApp) onCopy() {
	text := app.resultBox.Text
	if text == "" {
		return
	}

	clipboard := app.App.Clipboard()
	if clipboard == nil {
		slog.Warn(config.ErrNoClipboard, config.LogKeyComponent, config.CompUI)
		app.setStatus(app.GetMsg(config.TKeyErrClipboard), widget.DangerImportance)
		return
	}

	clipboard.SetContent(text)
	app.setStatus(app.GetMsg(config.TKeyMsgCopied), widget.SuccessImportance)
	slog.Info(config.MsgResultCopied, config.LogKeyComponent, config.CompUI)
}

// readInput parses and validates the raw form values. On failure it sets a
// localized status message and reports false; the calculator never sees
// malformed input.
func (app *PreemieApp) readInput() (engine.Input, bool) {
	var in engine.Input

	birthText := strings.TrimSpace(app.birthEntry.Text)
	if birthText == "" {
		app.setStatus(app.GetMsg(config.TKeyErrBirthReq), widget.DangerImportance)
		return in, false
	}
	birth, err := engine.ParseDate(birthText)
	if err != nil {
		app.setStatus(app.GetMsg(config.TKeyErrDateParse), widget.DangerImportance)
		return in, false
	}
	in.BirthDate = birth

	if refText := strings.TrimSpace(app.refEntry.Text); refText != "" {
		ref, err := engine.ParseDate(refText)
		if err != nil {
			app.setStatus(app.GetMsg(config.TKeyErrDateParse), widget.DangerImportance)
			return in, false
		}
		in.ReferenceDate = ref
	}

	if weeksText := strings.TrimSpace(app.weeksEntry.Text); weeksText != "" {
		weeks, err := strconv.Atoi(weeksText)
		if err != nil {
			app.setStatus(app.GetMsg(config.TKeyErrWeeksNumber), widget.DangerImportance)
			return in, false
		}
		if weeks < config.MinGestWeeks || weeks > config.MaxGestWeeks {
			app.setStatus(app.GetMsg(config.TKeyErrWeeksRange), widget.DangerImportance)
			return in, false
		}
		in.GestationalWeeks = weeks
	}

	if daysText := strings.TrimSpace(app.daysEntry.Text); daysText != "" {
		days, err := strconv.Atoi(daysText)
		if err != nil {
			app.setStatus(app.GetMsg(config.TKeyErrDaysNumber), widget.DangerImportance)
			return in, false
		}
		if days > config.MaxGestExtraDays {
			app.setStatus(app.GetMsg(config.TKeyErrDaysRange), widget.DangerImportance)
			return in, false
		}
		in.GestationalDays = days
	}

	return in, true
}

// formatAssessment renders the localized multi-line result text.
func (app *PreemieApp) formatAssessment(a engine.Assessment) string {
	c := a.Chronological
	lines := []string{
		app.GetMsgData(config.TKeyResChronoTotals,
			map[string]interface{}{"Weeks": c.TotalWeeks, "TotalMonths": c.TotalMonths},
			func() string { return fmt.Sprintf(config.FallbackResChrono, c.TotalWeeks, c.TotalMonths) }),
		app.GetMsgData(config.TKeyResChronoYMD,
			map[string]interface{}{"Years": c.Years, "Months": c.Months, "Days": c.Days},
			func() string { return fmt.Sprintf(config.FallbackResChronoYMD, c.Years, c.Months, c.Days) }),
	}

	if !a.Premature {
		lines = append(lines, app.GetMsgData(config.TKeyResFullTerm, nil,
			func() string { return config.FallbackResFullTerm }))
		return strings.Join(lines, "\n")
	}

	k := a.Corrected
	lines = append(lines,
		app.GetMsgData(config.TKeyResCorrTotals,
			map[string]interface{}{"Weeks": k.TotalWeeks, "TotalMonths": k.TotalMonths, "Days": k.WeekDays},
			func() string { return fmt.Sprintf(config.FallbackResCorr, k.TotalWeeks, k.TotalMonths, k.WeekDays) }),
		app.GetMsgData(config.TKeyResCorrYMD,
			map[string]interface{}{"Years": k.Years, "Months": k.Months, "Days": k.Days},
			func() string { return fmt.Sprintf(config.FallbackResCorrYMD, k.Years, k.Months, k.Days) }),
	)
	return strings.Join(lines, "\n")
}

// localizeEngineErr maps the engine's sentinel errors to translation keys.
func (app *PreemieApp) localizeEngineErr(err error) string {
	switch {
	case errors.Is(err, engine.ErrInvalidDateRange):
		return app.GetMsg(config.TKeyErrDateRange)
	case errors.Is(err, engine.ErrCorrectedFuture):
		return app.GetMsg(config.TKeyErrCorrFuture)
	case errors.Is(err, engine.ErrOffsetRange):
		return app.GetMsg(config.TKeyErrWeeksRange)
	default:
		return app.GetMsg(config.TKeyErrDateParse)
	}
}

// dateValidator builds an entry validator for the date fields.
func (app *PreemieApp) dateValidator(required bool) fyne.StringValidator {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			if required {
				return errors.New(app.GetMsg(config.TKeyErrBirthReq))
			}
			return nil
		}
		if _, err := engine.ParseDate(s); err != nil {
			return errors.New(app.GetMsg(config.TKeyErrDateParse))
		}
		return nil
	}
}

func (app *PreemieApp) setStatus(text string, importance widget.Importance) {
	app.statusLbl.Importance = importance
	app.statusLbl.SetText(text)
}

func (app *PreemieApp) clearResult() {
	app.resultBox.SetText("")
	app.copyBtn.Disable()
}

func (app *PreemieApp) focus(w fyne.Focusable) {
	if app.Window != nil {
		app.Window.Canvas().Focus(w)
	}
}

// dateOrder resolves the preferred input order to a placeholder string and
// a time layout for formatting the "today" hint.
func (app *PreemieApp) dateOrder() (placeholder, layout string) {
	if app.Preferences.StringWithFallback(config.PrefDateOrder, config.DateOrderDMY) == config.DateOrderYMD {
		return config.PlaceholderYMD, config.DateLayoutYMD
	}
	return config.PlaceholderDMY, config.DateLayoutDMY
}

func (app *PreemieApp) todayString(layout string) string {
	now := time.Now()
	if app.Calc != nil && app.Calc.Clock != nil {
		now = app.Calc.Clock.Now()
	}
	return now.Format(layout)
}
