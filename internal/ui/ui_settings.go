package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-preemie/internal/config"
)

// settingsWidgets holds references to UI elements to simplify data retrieval during save.
type settingsWidgets struct {
	langSelect  *widget.Select
	orderSelect *widget.Select
}

// ShowSettingsWindow displays the configuration dialog (language and date
// input order). It implements a singleton pattern: if the window is already
// open, it requests focus.
func (app *PreemieApp) ShowSettingsWindow() {
	if app.settingsWindow != nil {
		app.settingsWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenSettings, config.LogKeyComponent, config.CompUISet)
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinSettings))
	app.settingsWindow = w

	sw := &settingsWidgets{}

	// --- Language ---
	sw.langSelect = widget.NewSelect(app.SupportedLanguages, nil)
	sw.langSelect.SetSelected(app.Preferences.StringWithFallback(config.PrefLanguage, config.DefaultLanguage))

	// --- Date Input Order ---
	sw.orderSelect = widget.NewSelect([]string{
		app.GetMsg(config.TKeyFmtDMY),
		app.GetMsg(config.TKeyFmtYMD),
	}, nil)
	if app.Preferences.StringWithFallback(config.PrefDateOrder, config.DateOrderDMY) == config.DateOrderYMD {
		sw.orderSelect.SetSelected(app.GetMsg(config.TKeyFmtYMD))
	} else {
		sw.orderSelect.SetSelected(app.GetMsg(config.TKeyFmtDMY))
	}

	itemLang := widget.NewFormItem(app.GetMsg(config.TKeyLblLanguage), sw.langSelect)
	itemLang.HintText = app.GetMsg(config.TKeyHelpLanguage)

	itemOrder := widget.NewFormItem(app.GetMsg(config.TKeyLblDateOrder), sw.orderSelect)
	itemOrder.HintText = app.GetMsg(config.TKeyHelpDateOrd)

	generalForm := widget.NewForm(itemLang, itemOrder)
	generalCard := widget.NewCard(app.GetMsg(config.TKeyLblGeneral), "", generalForm)

	// --- Actions ---
	btnSave := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnSave), theme.DocumentSaveIcon(), func() {
		app.saveSettings(sw, w)
	})
	btnSave.Importance = widget.HighImportance
	btnCancel := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() { w.Close() })

	paddedContent := container.NewPadded(container.NewVBox(
		generalCard,
		container.NewGridWithColumns(config.LayoutColumnsDouble, btnCancel, btnSave),
	))

	w.SetContent(paddedContent)
	w.Resize(fyne.NewSize(config.SettingsWindowWidth, paddedContent.MinSize().Height))
	w.SetFixedSize(true)
	w.SetOnClosed(func() { app.settingsWindow = nil })
	w.Show()
}

// saveSettings persists the selections and re-renders the main window so
// labels, hints and placeholders pick up the new locale and date order.
func (app *PreemieApp) saveSettings(sw *settingsWidgets, w fyne.Window) {
	slog.Info(config.MsgSavingPrefs,
		config.LogKeyComponent, config.CompUISet,
		config.LogKeyLang, sw.langSelect.Selected,
	)

	app.Preferences.SetString(config.PrefLanguage, sw.langSelect.Selected)

	order := config.DateOrderDMY
	if sw.orderSelect.Selected == app.GetMsg(config.TKeyFmtYMD) {
		order = config.DateOrderYMD
	}
	app.Preferences.SetString(config.PrefDateOrder, order)

	app.UpdateLocalizer()
	if app.Window != nil {
		app.renderMain()
	}

	w.Close()
}
