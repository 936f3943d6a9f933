package domain

// Theme selects the overall color scheme.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// AccentColor selects the highlight color used by the renderer and effects.
type AccentColor string

const (
	AccentTeal  AccentColor = "teal"
	AccentBlue  AccentColor = "blue"
	AccentRose  AccentColor = "rose"
	AccentAmber AccentColor = "amber"
)

// Effect selects the ambient background animation shown while generating.
type Effect string

const (
	EffectWaves Effect = "waves"
	EffectBirds Effect = "birds"
	EffectNet   Effect = "net"
	EffectHalo  Effect = "halo"
	EffectRings Effect = "rings"
	EffectNone  Effect = "none"
)

// Settings is the persisted user preference record. Unknown values survive a
// round trip unchanged; validation happens at the point of use.
type Settings struct {
	Theme  Theme       `json:"theme"`
	Accent AccentColor `json:"accentColor"`
	Effect Effect      `json:"backgroundEffect"`
}

// DefaultSettings returns the factory preference record used when no settings
// file exists or the stored one cannot be read.
func DefaultSettings() Settings {
	return Settings{
		Theme:  ThemeDark,
		Accent: AccentBlue,
		Effect: EffectWaves,
	}
}

// accentHex maps theme and accent to the concrete color rendered in the
// terminal. Light themes use darker shades for contrast on bright backgrounds.
var accentHex = map[Theme]map[AccentColor]string{
	ThemeDark: {
		AccentTeal:  "#0d9488",
		AccentBlue:  "#4f46e5",
		AccentRose:  "#e11d48",
		AccentAmber: "#d97706",
	},
	ThemeLight: {
		AccentTeal:  "#0f766e",
		AccentBlue:  "#4338ca",
		AccentRose:  "#be123c",
		AccentAmber: "#b45309",
	},
}

// AccentHex resolves the display color for a theme/accent pair, falling back
// to the defaults for unrecognized values.
func AccentHex(theme Theme, accent AccentColor) string {
	shades, ok := accentHex[theme]
	if !ok {
		shades = accentHex[ThemeDark]
	}
	if hex, ok := shades[accent]; ok {
		return hex
	}
	return shades[AccentBlue]
}

// ValidTheme reports whether t names a known theme.
func ValidTheme(t Theme) bool {
	return t == ThemeDark || t == ThemeLight
}

// ValidAccent reports whether a names a known accent color.
func ValidAccent(a AccentColor) bool {
	switch a {
	case AccentTeal, AccentBlue, AccentRose, AccentAmber:
		return true
	}
	return false
}

// ValidEffect reports whether e names a known background effect.
func ValidEffect(e Effect) bool {
	switch e {
	case EffectWaves, EffectBirds, EffectNet, EffectHalo, EffectRings, EffectNone:
		return true
	}
	return false
}
