package ui

import (
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/alcohol-calculator/internal/config"
	"github.com/ytget/alcohol-calculator/internal/model"
)

// allFields is passed to render when no entry should be skipped
const allFields model.Field = -1

// RootUI represents the main UI structure. It owns the only Mixture of the
// application; every handler runs on the Fyne main goroutine.
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	logger       *slog.Logger

	mixture *model.Mixture

	entries [model.FieldCount]*widget.Entry
	labels  [model.FieldCount]*widget.Label
	units   [model.FieldCount]*widget.Label

	resetBtn    *widget.Button
	settingsBtn *widget.Button

	// set while entries are being filled from the model so that
	// the resulting OnChanged callbacks are ignored
	rendering bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, logger *slog.Logger) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		logger:       logger,
		mixture:      model.NewMixture(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.render(allFields)

	logger.Info("calculator ready", "language", localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.resetBtn = widget.NewButton(IconReset, ui.onReset)
	ui.resetBtn.Importance = widget.LowImportance
	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance
	toolbar := container.NewHBox(ui.settingsBtn, ui.resetBtn)

	rows := []fyne.CanvasObject{toolbar}
	for _, f := range model.Fields() {
		field := f // Capture for closure

		entry := widget.NewEntry()
		entry.SetPlaceHolder(ui.localization.FieldPlaceholder(field))
		entry.Validator = ui.validatorFor(field)
		entry.OnChanged = func(text string) {
			ui.onEdit(field, text)
		}
		// Enter replaces whatever was typed with the formatted value
		entry.OnSubmitted = func(string) {
			ui.render(allFields)
		}

		ui.entries[field] = entry
		ui.labels[field] = widget.NewLabel(ui.localization.FieldLabel(field))
		ui.units[field] = widget.NewLabel(field.Unit())

		rows = append(rows,
			ui.labels[field],
			container.NewBorder(nil, nil, nil, ui.units[field], entry),
		)
	}

	ui.window.SetContent(container.NewPadded(container.NewVBox(rows...)))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)
	resetItem := fyne.NewMenuItem(ui.localization.GetText(KeyReset), ui.onReset)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	for _, code := range languageOrder {
		if code == "system" {
			continue
		}
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(ui.localization.GetAvailableLanguages()[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem, resetItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onEdit feeds the text of one entry into the mixture and refreshes the others
func (ui *RootUI) onEdit(field model.Field, text string) {
	if ui.rendering {
		return
	}

	accepted := ui.mixture.Update(model.NewEdit(field, text))
	ui.logger.Debug("edit",
		"field", field.String(),
		"text", text,
		"accepted", accepted,
		"mass", ui.mixture.PureAlcoholMass,
		"weight_fraction", ui.mixture.WeightFraction,
	)
	if !accepted {
		return
	}

	// The edited entry keeps the user's text so the cursor does not jump
	ui.render(field)
}

// render fills every entry except skip from the current mixture
func (ui *RootUI) render(skip model.Field) {
	display := model.Render(*ui.mixture)

	ui.rendering = true
	defer func() { ui.rendering = false }()

	for _, f := range model.Fields() {
		if f == skip {
			continue
		}
		ui.entries[f].SetText(display.Text(f))
	}
}

// validatorFor marks entry text that the mixture would reject
func (ui *RootUI) validatorFor(field model.Field) fyne.StringValidator {
	return func(input string) error {
		if _, ok := model.Apply(*ui.mixture, model.NewEdit(field, input)); !ok {
			return errors.New(ui.localization.GetText(KeyInvalidNumber))
		}
		return nil
	}
}

// onReset restores the default mixture
func (ui *RootUI) onReset() {
	ui.mixture.Reset()
	ui.logger.Debug("mixture reset")
	ui.render(allFields)
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies stored preferences to the running app
func (ui *RootUI) onSettingsSaved() {
	ui.app.Settings().SetTheme(ThemeFor(ui.settings.GetCompactTheme()))
	ui.UseLanguage(ui.settings.GetLanguage())
}

// onLanguageChange switches and stores the language
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.SetLanguage(langCode)
	ui.UseLanguage(langCode)
}

// UseLanguage switches the interface language without storing it
func (ui *RootUI) UseLanguage(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	for _, f := range model.Fields() {
		ui.labels[f].SetText(ui.localization.FieldLabel(f))
		ui.entries[f].SetPlaceHolder(ui.localization.FieldPlaceholder(f))
	}
}

// Mixture returns a copy of the current state
func (ui *RootUI) Mixture() model.Mixture {
	return *ui.mixture
}
