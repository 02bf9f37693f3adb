package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	// feedback line colors
	linkColor   = color.NRGBA{R: 25, G: 118, B: 210, A: 255}
	linkDark    = color.NRGBA{R: 100, G: 181, B: 246, A: 255}
	errorColor  = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	errorDark   = color.NRGBA{R: 239, G: 83, B: 80, A: 255}
	buttonColor = color.NRGBA{R: 46, G: 125, B: 50, A: 255}
)

// AppTheme tints the feedback line and variant buttons and tightens the
// form spacing. Everything else comes from the base theme.
type AppTheme struct {
	base fyne.Theme
}

var _ fyne.Theme = (*AppTheme)(nil)

// NewAppTheme wraps the default theme
func NewAppTheme() fyne.Theme {
	return &AppTheme{base: theme.DefaultTheme()}
}

// Color maps HighImportance text (saved path) to a link color and
// DangerImportance text (errors) to red.
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameHyperlink:
		if dark {
			return linkDark
		}
		return linkColor
	case theme.ColorNameError:
		if dark {
			return errorDark
		}
		return errorColor
	case theme.ColorNameSuccess:
		return buttonColor
	}
	return t.base.Color(name, variant)
}

func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size shrinks padding so the info panel fits the fixed window.
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameInputRadius:
		return 3
	}
	return t.base.Size(name)
}
