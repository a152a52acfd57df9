package rollball

import "github.com/vovakirdan/rollball/internal/core"

// Theme selects the floor palette. The core only tracks which theme is active;
// turning a palette into pixels is the view layer's job.
type Theme int

const (
	ThemeDefault Theme = iota
	ThemeDark
	ThemeDesert
	ThemeIce
	ThemeSpace
	ThemeLava
	ThemeForest
	ThemeNeon
	ThemeSunset
	ThemeOcean
	themeCount
)

var themeNames = [themeCount]string{
	"default", "dark", "desert", "ice", "space", "lava", "forest", "neon", "sunset", "ocean",
}

// String returns the theme identifier.
func (t Theme) String() string {
	if t < 0 || t >= themeCount {
		return "unknown"
	}
	return themeNames[t]
}

// Next returns the following theme, wrapping around.
func (t Theme) Next() Theme {
	return (t + 1) % themeCount
}

// ParseTheme looks a theme up by identifier.
func ParseTheme(name string) (Theme, bool) {
	for i, n := range themeNames {
		if n == name {
			return Theme(i), true
		}
	}
	return ThemeDefault, false
}

// Palette holds the colors a theme assigns to the floor.
type Palette struct {
	Floor1 core.Color
	Floor2 core.Color
	Wall   core.Color
	Hole   core.Color
	Sky    core.Color
}

var palettes = [themeCount]Palette{
	ThemeDefault: {core.RGBF(0.302, 0.471, 0.388), core.RGBF(0.8, 0.8, 0.8), core.RGBF(0.2, 0.2, 0.8), core.RGBF(0, 0, 0), core.RGBF(0.5, 0.8, 1.0)},
	ThemeDark:    {core.RGBF(0.1, 0.1, 0.1), core.RGBF(0.3, 0.3, 0.3), core.RGBF(0.2, 0.2, 0.8), core.RGBF(0.5, 0, 0), core.RGBF(0.5, 0.8, 1.0)},
	ThemeDesert:  {core.RGBF(0.761, 0.698, 0.502), core.RGBF(0.9, 0.8, 0.6), core.RGBF(0.8, 0.7, 0.5), core.RGBF(0.4, 0.3, 0.1), core.RGBF(0.5, 0.8, 1.0)},
	ThemeIce:     {core.RGBF(0.8, 0.9, 1.0), core.RGBF(0.9, 0.95, 1.0), core.RGBF(0.7, 0.8, 1.0), core.RGBF(0.2, 0.5, 0.8), core.RGBF(0.5, 0.8, 1.0)},
	ThemeSpace:   {core.RGBF(0.1, 0.1, 0.2), core.RGBF(0.2, 0.2, 0.3), core.RGBF(0.1, 0.1, 0.3), core.RGBF(0, 0, 0.3), core.RGBF(0, 0, 0.1)},
	ThemeLava:    {core.RGBF(0.8, 0.2, 0.1), core.RGBF(0.9, 0.4, 0.2), core.RGBF(0.8, 0.3, 0.1), core.RGBF(0.5, 0, 0), core.RGBF(0.5, 0.2, 0.1)},
	ThemeForest:  {core.RGBF(0.2, 0.5, 0.2), core.RGBF(0.3, 0.6, 0.3), core.RGBF(0.3, 0.6, 0.3), core.RGBF(0.1, 0.3, 0.1), core.RGBF(0.5, 0.8, 1.0)},
	ThemeNeon:    {core.RGBF(0.1, 0.8, 0.8), core.RGBF(0.8, 0.1, 0.8), core.RGBF(0.1, 0.8, 0.8), core.RGBF(0.8, 0.1, 0.8), core.RGBF(0.5, 0.8, 1.0)},
	ThemeSunset:  {core.RGBF(0.9, 0.5, 0.2), core.RGBF(0.8, 0.4, 0.1), core.RGBF(0.8, 0.4, 0.1), core.RGBF(0.4, 0.2, 0.1), core.RGBF(0.8, 0.5, 0.2)},
	ThemeOcean:   {core.RGBF(0.2, 0.4, 0.8), core.RGBF(0.3, 0.5, 0.9), core.RGBF(0.2, 0.4, 0.8), core.RGBF(0.1, 0.2, 0.4), core.RGBF(0.2, 0.4, 0.8)},
}

// Palette returns the theme's colors. Unknown themes fall back to the default palette.
func (t Theme) Palette() Palette {
	if t < 0 || t >= themeCount {
		return palettes[ThemeDefault]
	}
	return palettes[t]
}

// CameraMode is the view the renderer should use.
type CameraMode int

const (
	CameraFollow CameraMode = iota
	CameraOverhead
	CameraFirstPerson
	cameraCount
)

// String returns the camera mode identifier.
func (c CameraMode) String() string {
	switch c {
	case CameraFollow:
		return "follow"
	case CameraOverhead:
		return "overhead"
	case CameraFirstPerson:
		return "first_person"
	default:
		return "unknown"
	}
}

// Next returns the following camera mode, wrapping around.
func (c CameraMode) Next() CameraMode {
	return (c + 1) % cameraCount
}
