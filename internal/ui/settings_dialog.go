package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/alcohol-calculator/internal/config"
)

// languageOrder fixes the order of language options in menus and selects
var languageOrder = []string{"system", "en", "ru", "pt"}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	compactCheck   *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// preferences have been written.
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	labels := sd.settings.GetLanguageOptions()
	languageOptions := make([]string, 0, len(languageOrder))
	for _, code := range languageOrder {
		languageOptions = append(languageOptions, labels[code])
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = sd.localization.GetText(KeySelectLanguage)

	sd.compactCheck = widget.NewCheck(sd.localization.GetText(KeyCompactTheme), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyInterface)),
		widget.NewSeparator(),

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		sd.compactCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.compactCheck.SetChecked(sd.settings.GetCompactTheme())
}

// selectedLanguage maps the selected display name back to its code
func (sd *SettingsDialog) selectedLanguage() string {
	for code, label := range sd.settings.GetLanguageOptions() {
		if label == sd.languageSelect.Selected {
			return code
		}
	}
	return ""
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code := sd.selectedLanguage(); code != "" {
		sd.settings.SetLanguage(code)
	}
	sd.settings.SetCompactTheme(sd.compactCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
