// Package theme derives the complete color/typography palette for a
// generated app from the Configuration plus fixed defaults.
package theme

import "github.com/JamesHardey/create-expo-jmobile/internal/config"

// Default values for the user-overridable color slots.
const (
	DefaultPrimary   = "#3B82F6"
	DefaultSecondary = "#6B7280"
)

// Colors holds the named color slots of a resolved theme. Only Primary
// and Secondary take user overrides; every other slot is fixed.
type Colors struct {
	Primary       string
	Secondary     string
	Success       string
	Warning       string
	Error         string
	Background    string
	Surface       string
	Text          string
	TextSecondary string
	Border        string
}

// Spacing is the fixed spacing scale, in density-independent pixels.
type Spacing struct {
	XS  int
	SM  int
	MD  int
	LG  int
	XL  int
	XXL int
}

// Radius is the fixed border-radius scale.
type Radius struct {
	SM int
	MD int
	LG int
	XL int
}

// Theme is the fully resolved palette for a generated app.
// It is immutable once resolved.
type Theme struct {
	Colors     Colors
	Spacing    Spacing
	Radius     Radius
	FontFamily string
}

// fixedColors are the slots that never take user input.
var fixedColors = Colors{
	Primary:       DefaultPrimary,
	Secondary:     DefaultSecondary,
	Success:       "#10B981",
	Warning:       "#F59E0B",
	Error:         "#EF4444",
	Background:    "#FFFFFF",
	Surface:       "#F9FAFB",
	Text:          "#111827",
	TextSecondary: "#6B7280",
	Border:        "#E5E7EB",
}

// defaultSpacing follows a 4px base grid.
var defaultSpacing = Spacing{XS: 4, SM: 8, MD: 16, LG: 24, XL: 32, XXL: 48}

var defaultRadius = Radius{SM: 8, MD: 12, LG: 16, XL: 24}

// Resolve derives a Theme from the Configuration. It is pure and total:
// the same Configuration always yields the same Theme, and it never fails.
// A color override applies only when non-empty; no format validation is
// performed on user-supplied hex values.
func Resolve(cfg *config.Configuration) Theme {
	colors := fixedColors
	if cfg.PrimaryColor != "" {
		colors.Primary = cfg.PrimaryColor
	}
	if cfg.SecondaryColor != "" {
		colors.Secondary = cfg.SecondaryColor
	}

	return Theme{
		Colors:     colors,
		Spacing:    defaultSpacing,
		Radius:     defaultRadius,
		FontFamily: string(cfg.Font),
	}
}
