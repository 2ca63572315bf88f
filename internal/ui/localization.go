package ui

import (
	"fyne.io/fyne/v2/lang"
	"golang.org/x/text/language"

	"github.com/ytget/alcohol-calculator/internal/model"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeySettings       = "settings"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeyReset          = "reset"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeyCompactTheme   = "compact_theme"
	KeyInterface      = "interface_settings"
	KeySettingsSaved  = "settings_saved"
	KeyInvalidNumber  = "invalid_number"
	KeySelectLanguage = "select_language"
)

// Field label and placeholder keys are derived from model.Field names
const (
	labelKeySuffix       = "_label"
	placeholderKeySuffix = "_placeholder"
)

// supportedLanguages lists the translations in matcher preference order
var supportedLanguages = []language.Tag{
	language.English,
	language.Russian,
	language.Portuguese,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = matchLanguage(lang.SystemLocale().LanguageString())
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
	}
}

// matchLanguage resolves a BCP 47 tag such as "pt-BR" to one of the translations
func matchLanguage(tag string) string {
	t, err := language.Parse(tag)
	if err != nil {
		return "en"
	}
	_, index, confidence := languageMatcher.Match(t)
	if confidence == language.No {
		return "en"
	}
	base, _ := supportedLanguages[index].Base()
	return base.String()
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// FieldLabel returns the caption shown above a field
func (l *Localization) FieldLabel(f model.Field) string {
	return l.GetText(f.String() + labelKeySuffix)
}

// FieldPlaceholder returns the entry placeholder of a field
func (l *Localization) FieldPlaceholder(f model.Field) string {
	return l.GetText(f.String() + placeholderKeySuffix)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Alcohol calculator",
		KeySettings:       "Settings",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeyReset:          "Reset",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeyCompactTheme:   "Compact layout",
		KeyInterface:      "Interface Settings",
		KeySettingsSaved:  "Settings saved successfully!",
		KeyInvalidNumber:  "Not a number",
		KeySelectLanguage: "Select language",

		"pure_alcohol_mass_label":       "Pure alcohol in grams:",
		"pure_alcohol_mass_placeholder": "Pure alcohol in grams",
		"weight_percent_label":          "Alcohol percent by weight:",
		"weight_percent_placeholder":    "Alcohol percent by weight",
		"total_mass_label":              "Total liquid amount in grams:",
		"total_mass_placeholder":        "Total amount by weight",
		"volume_percent_label":          "Alcohol percent by volume:",
		"volume_percent_placeholder":    "Alcohol percent by volume",
		"total_volume_label":            "Total liquid amount in milliliters:",
		"total_volume_placeholder":      "Total amount by volume",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "Калькулятор алкоголя",
		KeySettings:       "Настройки",
		KeyFile:           "Файл",
		KeyLanguage:       "Язык",
		KeyReset:          "Сбросить",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeyCompactTheme:   "Компактный вид",
		KeyInterface:      "Настройки интерфейса",
		KeySettingsSaved:  "Настройки успешно сохранены!",
		KeyInvalidNumber:  "Не число",
		KeySelectLanguage: "Выберите язык",

		"pure_alcohol_mass_label":       "Чистый спирт в граммах:",
		"pure_alcohol_mass_placeholder": "Чистый спирт в граммах",
		"weight_percent_label":          "Процент спирта по массе:",
		"weight_percent_placeholder":    "Процент спирта по массе",
		"total_mass_label":              "Всего жидкости в граммах:",
		"total_mass_placeholder":        "Общая масса",
		"volume_percent_label":          "Процент спирта по объёму:",
		"volume_percent_placeholder":    "Процент спирта по объёму",
		"total_volume_label":            "Всего жидкости в миллилитрах:",
		"total_volume_placeholder":      "Общий объём",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:       "Calculadora de álcool",
		KeySettings:       "Configurações",
		KeyFile:           "Arquivo",
		KeyLanguage:       "Idioma",
		KeyReset:          "Redefinir",
		KeySave:           "Salvar",
		KeyCancel:         "Cancelar",
		KeyCompactTheme:   "Layout compacto",
		KeyInterface:      "Configurações de Interface",
		KeySettingsSaved:  "Configurações salvas com sucesso!",
		KeyInvalidNumber:  "Não é um número",
		KeySelectLanguage: "Selecione o idioma",

		"pure_alcohol_mass_label":       "Álcool puro em gramas:",
		"pure_alcohol_mass_placeholder": "Álcool puro em gramas",
		"weight_percent_label":          "Teor alcoólico em massa:",
		"weight_percent_placeholder":    "Teor alcoólico em massa",
		"total_mass_label":              "Quantidade total em gramas:",
		"total_mass_placeholder":        "Massa total",
		"volume_percent_label":          "Teor alcoólico em volume:",
		"volume_percent_placeholder":    "Teor alcoólico em volume",
		"total_volume_label":            "Quantidade total em mililitros:",
		"total_volume_placeholder":      "Volume total",
	}
}
