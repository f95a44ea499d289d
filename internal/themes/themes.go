// Package themes defines the closed set of visual presets for rendered CV
// documents.
package themes

// Brand palette shared across presets. Body text always uses the neutral
// text color regardless of theme.
const (
	brandPrimary   = "#0066cc"
	brandSecondary = "#00d4ff"
	brandDark      = "#1a1a2e"
	brandAccent    = "#ff6b6b"

	// TextColor is the fixed neutral body text color.
	TextColor = "#2d3748"
)

// Theme is a named visual preset selector.
type Theme string

// The four supported themes.
const (
	Modern    Theme = "modern"
	Classic   Theme = "classic"
	Executive Theme = "executive"
	Creative  Theme = "creative"
)

// Preset defines the visual treatment a theme applies: header background and
// text color, one accent color, one border color, and the section-divider
// style.
type Preset struct {
	HeaderBackground string
	HeaderColor      string
	AccentColor      string
	BorderColor      string
	SectionBorder    string
}

var presets = map[Theme]Preset{
	Modern: {
		HeaderBackground: "linear-gradient(135deg, " + brandDark + " 0%, " + brandPrimary + " 100%)",
		HeaderColor:      "white",
		AccentColor:      brandPrimary,
		BorderColor:      brandSecondary,
		SectionBorder:    "3px solid " + brandSecondary,
	},
	Classic: {
		HeaderBackground: "white",
		HeaderColor:      brandDark,
		AccentColor:      brandDark,
		BorderColor:      "#000",
		SectionBorder:    "2px solid #000",
	},
	Executive: {
		HeaderBackground: "linear-gradient(135deg, " + brandDark + " 0%, #1a3a52 100%)",
		HeaderColor:      "white",
		AccentColor:      "#d4af37",
		BorderColor:      "#d4af37",
		SectionBorder:    "3px solid #d4af37",
	},
	Creative: {
		HeaderBackground: "linear-gradient(135deg, " + brandSecondary + " 0%, " + brandAccent + " 100%)",
		HeaderColor:      "white",
		AccentColor:      brandAccent,
		BorderColor:      brandSecondary,
		SectionBorder:    "3px dashed " + brandSecondary,
	},
}

// Resolve maps a theme name to its preset. Resolution is total: any
// unrecognized or empty name falls back to the modern preset, and the
// returned Theme reports which preset was actually chosen.
func Resolve(name string) (Theme, Preset) {
	theme := Theme(name)
	if preset, ok := presets[theme]; ok {
		return theme, preset
	}
	return Modern, presets[Modern]
}

// Names returns the supported theme names.
func Names() []Theme {
	return []Theme{Modern, Classic, Executive, Creative}
}
