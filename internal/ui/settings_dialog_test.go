package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/alcohol-calculator/internal/config"
)

func TestSettingsDialog_Save(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := config.NewSettings(app)
	window := test.NewWindow(nil)

	saved := false
	sd := NewSettingsDialog(settings, NewLocalization(), window, func() { saved = true })
	sd.loadCurrentSettings()

	if sd.languageSelect.Selected != "System Default" {
		t.Errorf("Expected 'System Default' selected, got %q", sd.languageSelect.Selected)
	}
	if !sd.compactCheck.Checked {
		t.Error("Expected compact theme checked by default")
	}

	sd.languageSelect.SetSelected("Português")
	sd.compactCheck.SetChecked(false)
	sd.onSave(true)

	if !saved {
		t.Error("Expected onSaved callback to run")
	}
	if settings.GetLanguage() != "pt" {
		t.Errorf("Expected stored language 'pt', got %s", settings.GetLanguage())
	}
	if settings.GetCompactTheme() {
		t.Error("Expected compact theme to be disabled")
	}
}

func TestSettingsDialog_Cancel(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	settings := config.NewSettings(app)
	settings.SetLanguage("en")

	sd := NewSettingsDialog(settings, NewLocalization(), test.NewWindow(nil), nil)
	sd.loadCurrentSettings()
	sd.languageSelect.SetSelected("Русский")
	sd.onSave(false)

	if settings.GetLanguage() != "en" {
		t.Errorf("Cancel should not store settings, got %s", settings.GetLanguage())
	}
}
