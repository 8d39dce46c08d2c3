// Package theme defines dirscan's colors and UI metrics.
//
// Palettes follow the conventions of the OS they run on; the dark/light
// choice follows the platform preference unless the config pins a mode.
package theme

import (
	"image/color"
	"runtime"
)

// Palette defines the system colors.
type Palette struct {
	Background color.NRGBA
	Surface    color.NRGBA
	Panel      color.NRGBA
	Primary    color.NRGBA
	Text       color.NRGBA
	TextMuted  color.NRGBA
	Border     color.NRGBA
	Success    color.NRGBA
	Error      color.NRGBA
	Warning    color.NRGBA
}

// Config defines the system metrics, in logical pixels.
type Config struct {
	CornerRadius float32
	Spacing      float32
	Padding      float32
	FontTitle    float32
	FontBody     float32
	FontCaption  float32
}

// Theme bundles a palette with metrics.
type Theme struct {
	Palette Palette
	Config  Config
	Dark    bool
}

// New creates a theme for the requested mode: "light", "dark", or
// "auto" to follow the platform preference.
func New(mode string) *Theme {
	dark := false
	switch mode {
	case "dark":
		dark = true
	case "light":
	default:
		dark = darkPreferred()
	}

	t := &Theme{Dark: dark}
	if runtime.GOOS == "darwin" {
		setupMacOSTheme(t)
	} else {
		setupDefaultTheme(t)
	}
	return t
}

func setupDefaultTheme(t *Theme) {
	t.Config = Config{
		CornerRadius: 4,
		Spacing:      8,
		Padding:      16,
		FontTitle:    20,
		FontBody:     14,
		FontCaption:  12,
	}
	if t.Dark {
		t.Palette = Palette{
			Background: color.NRGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF},
			Surface:    color.NRGBA{R: 0x2C, G: 0x2C, B: 0x2C, A: 0xFF},
			Panel:      color.NRGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xFF},
			Primary:    color.NRGBA{R: 0x00, G: 0x78, B: 0xD4, A: 0xFF},
			Text:       color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
			TextMuted:  color.NRGBA{R: 0xA0, G: 0xA0, B: 0xA0, A: 0xFF},
			Border:     color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xFF},
			Success:    color.NRGBA{R: 0x6B, G: 0xBC, B: 0x0F, A: 0xFF},
			Error:      color.NRGBA{R: 0xE8, G: 0x11, B: 0x23, A: 0xFF},
			Warning:    color.NRGBA{R: 0xFF, G: 0xB9, B: 0x00, A: 0xFF},
		}
		return
	}
	t.Palette = Palette{
		Background: color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xFF},
		Surface:    color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Panel:      color.NRGBA{R: 0xEB, G: 0xEB, B: 0xEB, A: 0xFF},
		Primary:    color.NRGBA{R: 0x00, G: 0x67, B: 0xC0, A: 0xFF},
		Text:       color.NRGBA{R: 0x1A, G: 0x1A, B: 0x1A, A: 0xFF},
		TextMuted:  color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF},
		Border:     color.NRGBA{R: 0xD0, G: 0xD0, B: 0xD0, A: 0xFF},
		Success:    color.NRGBA{R: 0x3A, G: 0x8E, B: 0x00, A: 0xFF},
		Error:      color.NRGBA{R: 0xC4, G: 0x0E, B: 0x1D, A: 0xFF},
		Warning:    color.NRGBA{R: 0xB8, G: 0x86, B: 0x00, A: 0xFF},
	}
}

func setupMacOSTheme(t *Theme) {
	t.Config = Config{
		CornerRadius: 10,
		Spacing:      10,
		Padding:      20,
		FontTitle:    22,
		FontBody:     13,
		FontCaption:  11,
	}
	if t.Dark {
		t.Palette = Palette{
			Background: color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF},
			Surface:    color.NRGBA{R: 0x26, G: 0x26, B: 0x26, A: 0xFF},
			Panel:      color.NRGBA{R: 0x32, G: 0x32, B: 0x32, A: 0xFF},
			Primary:    color.NRGBA{R: 0x0A, G: 0x84, B: 0xFF, A: 0xFF},
			Text:       color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF7, A: 0xFF},
			TextMuted:  color.NRGBA{R: 0x86, G: 0x86, B: 0x8B, A: 0xFF},
			Border:     color.NRGBA{R: 0x3A, G: 0x3A, B: 0x3C, A: 0xFF},
			Success:    color.NRGBA{R: 0x30, G: 0xD1, B: 0x58, A: 0xFF},
			Error:      color.NRGBA{R: 0xFF, G: 0x45, B: 0x3A, A: 0xFF},
			Warning:    color.NRGBA{R: 0xFF, G: 0x9F, B: 0x0A, A: 0xFF},
		}
		return
	}
	t.Palette = Palette{
		Background: color.NRGBA{R: 0xF2, G: 0xF2, B: 0xF7, A: 0xFF},
		Surface:    color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Panel:      color.NRGBA{R: 0xE5, G: 0xE5, B: 0xEA, A: 0xFF},
		Primary:    color.NRGBA{R: 0x00, G: 0x7A, B: 0xFF, A: 0xFF},
		Text:       color.NRGBA{R: 0x1C, G: 0x1C, B: 0x1E, A: 0xFF},
		TextMuted:  color.NRGBA{R: 0x8E, G: 0x8E, B: 0x93, A: 0xFF},
		Border:     color.NRGBA{R: 0xC6, G: 0xC6, B: 0xC8, A: 0xFF},
		Success:    color.NRGBA{R: 0x28, G: 0xA7, B: 0x45, A: 0xFF},
		Error:      color.NRGBA{R: 0xD7, G: 0x00, B: 0x15, A: 0xFF},
		Warning:    color.NRGBA{R: 0xC9, G: 0x3B, B: 0x00, A: 0xFF},
	}
}
