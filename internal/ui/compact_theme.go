package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme tightens paddings so the five rows fit a small window
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// ThemeFor returns the compact theme or the Fyne default
func ThemeFor(compact bool) fyne.Theme {
	if compact {
		return NewCompactTheme()
	}
	return theme.DefaultTheme()
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // invalid entry text
	case theme.ColorNamePrimary:
		return color.RGBA{R: 191, G: 120, B: 20, A: 255} // amber focus ring
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // default 4
	case theme.SizeNameInnerPadding:
		return 6 // default 8
	case theme.SizeNameLineSpacing:
		return 2 // default 4
	case theme.SizeNameText:
		return 13 // default 14
	case theme.SizeNameInputRadius:
		return 3 // default 5
	}

	return theme.DefaultTheme().Size(name)
}
