package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ColorNameTerminalBackground is the background behind child output
const ColorNameTerminalBackground fyne.ThemeColorName = "terminalBackground"

// ShellTheme keeps the window dense enough for a row of argument fields and
// gives the embedded terminal its own palette
type ShellTheme struct{}

// NewShellTheme creates the application theme
func NewShellTheme() fyne.Theme {
	return &ShellTheme{}
}

// Color returns theme colors
func (t *ShellTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case ColorNameTerminalBackground:
		if dark {
			return color.RGBA{R: 10, G: 10, B: 10, A: 255} // darker than the window
		}
		return color.RGBA{R: 236, G: 236, B: 236, A: 255} // lighter gray than the window
	case theme.ColorNameDisabled:
		if dark {
			return color.RGBA{R: 150, G: 150, B: 150, A: 255}
		}
		return color.RGBA{R: 110, G: 110, B: 110, A: 255} // locked arguments must stay readable
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // failed screen and error dialogs
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Run button
	case theme.ColorNameBackground:
		if dark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts. Argument fields and the terminal are monospace;
// no italic or bold variant of it is bundled, so those styles fall back to
// the regular monospace face.
func (t *ShellTheme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Monospace {
		return theme.DefaultTheme().Font(fyne.TextStyle{Monospace: true})
	}
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *ShellTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *ShellTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // argument fields sit close together
	case theme.SizeNameInnerPadding:
		return 5 // keeps an entry one text line tall
	case theme.SizeNameLineSpacing:
		return 1 // terminal rows and help lines
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
