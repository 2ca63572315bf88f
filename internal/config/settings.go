package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage     = "app_language"
	KeyCompactTheme = "compact_theme"
)

// Default values
const (
	DefaultLanguage     = "system"
	DefaultCompactTheme = true
)

// Settings manages user interface preferences. The mixture itself is never stored.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if lang == "" {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetCompactTheme returns whether the compact theme is enabled
func (s *Settings) GetCompactTheme() bool {
	return s.app.Preferences().BoolWithFallback(KeyCompactTheme, DefaultCompactTheme)
}

// SetCompactTheme enables or disables the compact theme
func (s *Settings) SetCompactTheme(compact bool) {
	s.app.Preferences().SetBool(KeyCompactTheme, compact)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
