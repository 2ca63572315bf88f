package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconReset    = "↺"
)

// Layout sizing
const (
	SettingsDialogWidth  float32 = 360
	SettingsDialogHeight float32 = 220
)
