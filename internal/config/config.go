package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName     = "Go Preemie"
	AppID       = "com.github.tartampluch.go-preemie"
	LogFileName = "app.log"
	IconFile    = "Icon.png"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stdout"
	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// UI Constants & Preferences
// -----------------------------------------------------------------------------

const (
	MainWinWidth        = 520
	MainWinHeight       = 480
	SettingsWindowWidth = 460
	ResultRowsVisible   = 6
	LayoutColumnsDouble = 2

	// Preference Keys
	PrefLanguage  = "language"
	PrefDateOrder = "date_order"
	PrefLastRun   = "last_run_version"
)

// SupportedLanguages defines the list of available UI languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr", "pt"}

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWinTitle     = "win_title"
	TKeyWinSettings  = "win_settings_title"
	TKeyLblBirthDate = "lbl_birth_date"
	TKeyHelpBirth    = "help_birth_date"
	TKeyLblRefDate   = "lbl_ref_date"
	TKeyHelpRef      = "help_ref_date"
	TKeyLblGestWeeks = "lbl_gest_weeks"
	TKeyHelpWeeks    = "help_gest_weeks"
	TKeyLblGestDays  = "lbl_gest_days"
	TKeyHelpDays     = "help_gest_days"
	TKeyBtnCalculate = "btn_calculate"
	TKeyBtnCopy      = "btn_copy"
	TKeyBtnSave      = "btn_save"
	TKeyBtnCancel    = "btn_cancel"
	TKeyLblResults   = "lbl_results"
	TKeyLblLanguage  = "lbl_language"
	TKeyHelpLanguage = "help_language"
	TKeyLblDateOrder = "lbl_date_format"
	TKeyHelpDateOrd  = "help_date_format"
	TKeyLblGeneral   = "lbl_general"
	TKeyLblFooter    = "lbl_footer"
	TKeyFmtDMY       = "fmt_dmy"
	TKeyFmtYMD       = "fmt_ymd"

	// Result lines (templated)
	TKeyResChronoTotals = "res_chrono_totals"
	TKeyResChronoYMD    = "res_chrono_ymd"
	TKeyResCorrTotals   = "res_corrected_totals"
	TKeyResCorrYMD      = "res_corrected_ymd"
	TKeyResFullTerm     = "res_full_term"

	TKeyMsgCopied = "msg_copied"

	// Validation errors (UI)
	TKeyErrBirthReq    = "err_birth_required"
	TKeyErrDateParse   = "err_date_parse"
	TKeyErrDateRange   = "err_date_range"
	TKeyErrCorrFuture  = "err_corrected_future"
	TKeyErrWeeksNumber = "err_weeks_number"
	TKeyErrWeeksRange  = "err_weeks_range"
	TKeyErrDaysNumber  = "err_days_number"
	TKeyErrDaysRange   = "err_days_range"
	TKeyErrClipboard   = "err_clipboard"
)

// -----------------------------------------------------------------------------
// Default Values & Clinical Constants
// -----------------------------------------------------------------------------

const (
	DefaultLanguage = "en"

	// Gestation at term is defined as 40 weeks (280 days).
	FullTermWeeks = 40
	DaysPerWeek   = 7
	FullTermDays  = FullTermWeeks * DaysPerWeek

	// Clinically plausible gestational-age-at-birth window, in whole weeks.
	// Entries outside this window are treated as input errors, not data.
	MinGestWeeks = 20
	MaxGestWeeks = 44

	MaxGestExtraDays = DaysPerWeek - 1
	MonthsPerYear    = 12
)

// -----------------------------------------------------------------------------
// Date Orders & Layouts
// -----------------------------------------------------------------------------

const (
	DateOrderDMY = "dmy"
	DateOrderYMD = "ymd"

	DateLayoutDMY = "02-01-2006"
	DateLayoutYMD = "2006-01-02"

	PlaceholderDMY = "DD-MM-YYYY"
	PlaceholderYMD = "YYYY-MM-DD"

	// Number of fields in a complete calendar date.
	DatePartsCount = 3
	YearDigits     = 4
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDateParse       = "unable to parse date"
	ErrDateRange       = "birth date is after the reference date"
	ErrCorrectedFuture = "corrected birth date is in the future"
	ErrOffsetRange     = "gestational age is out of the supported range"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrLocNotInit      = "localizer not initialized"
	ErrNoClipboard     = "system clipboard unavailable"
)

// -----------------------------------------------------------------------------
// Fallbacks & Defaults
// -----------------------------------------------------------------------------

const (
	// Fallback result lines used when the localizer cannot serve a key.
	FallbackResChrono    = "Chronological age: %d weeks (%d months)"
	FallbackResChronoYMD = "Chronological age: %d years, %d months, %d days"
	FallbackResCorr      = "Corrected age: %d weeks (%d months) and %d days"
	FallbackResCorrYMD   = "Corrected age: %d years, %d months, %d days"
	FallbackResFullTerm  = "Born at term: corrected age equals chronological age."

	MsgLogWarning    = "Warning: %s at %s: %v\n"
	MsgAppStop       = "Application stopped gracefully"
	MsgCtxCancel     = "Context cancelled, shutting down UI"
	MsgAppStarting   = "Starting application"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgCalcRequested = "Calculation requested"
	MsgCalcRejected  = "Calculation rejected at input boundary"
	MsgCalcDone      = "Calculation completed"
	MsgResultCopied  = "Result copied to clipboard"
	MsgSavingPrefs   = "Saving preferences"
	MsgOpenSettings  = "Opening settings window"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent  = "component"
	LogKeyError      = "error"
	LogKeyFile       = "file"
	LogKeyLang       = "lang"
	LogKeyKey        = "key"
	LogKeyValue      = "value"
	LogKeyBirth      = "birth_date"
	LogKeyReference  = "reference_date"
	LogKeyGestWeeks  = "gestational_weeks"
	LogKeyGestDays   = "gestational_days"
	LogKeyOffsetDays = "offset_days"
	LogKeyPremature  = "premature"
	LogKeyDateOrder  = "date_order"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompUI     = "ui"
	CompUISet  = "ui_settings"
	CompEngine = "engine"
	CompMain   = "main"
	CompI18n   = "i18n"
)
