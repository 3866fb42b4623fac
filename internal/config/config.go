package config

import (
	"regexp"
	"strings"
)

// Font is one of the supported Google Fonts for the generated app.
type Font string

// Supported fonts. The lowercased name doubles as the suffix of the
// @expo-google-fonts package that ships the font.
const (
	FontInter      Font = "Inter"
	FontPoppins    Font = "Poppins"
	FontMontserrat Font = "Montserrat"
	FontRoboto     Font = "Roboto"
	FontLato       Font = "Lato"
)

// DefaultFont is used when no font (or an unrecognized one) is supplied.
const DefaultFont = FontInter

// Fonts lists the supported fonts in display order.
var Fonts = []Font{FontInter, FontPoppins, FontMontserrat, FontRoboto, FontLato}

// appNamePattern is the allowed character set for app names. Names are
// interpolated into generated source and npm tool arguments, so nothing
// outside this set is accepted.
var appNamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// RawAnswers holds the unvalidated answers from the wizard or CLI flags.
// Empty color strings mean "not provided". TabsAnswered distinguishes an
// explicit tabs choice from the question never having been asked (the
// wizard only surfaces it when auth is requested).
type RawAnswers struct {
	AppName        string
	Font           string
	PrimaryColor   string
	SecondaryColor string
	NeedsAuth      bool
	NeedsTabs      bool
	TabsAnswered   bool
}

// Configuration is the canonical, validated record of user choices.
// It is immutable once built.
type Configuration struct {
	AppName         string
	Font            Font
	PrimaryColor    string // hex color, "" = absent
	SecondaryColor  string // hex color, "" = absent
	NeedsAuth       bool
	NeedsBottomTabs bool
}

// ValidateAppName checks a candidate app name against the allowed
// character set. It is exported so the wizard can re-prompt on the same
// rule Build enforces.
func ValidateAppName(name string) error {
	if name == "" {
		return &ValidationError{
			Field:   "appName",
			Message: "must not be empty",
			Wrapped: ErrInvalidAppName,
		}
	}
	if strings.ContainsAny(name, " \t\n") {
		return &ValidationError{
			Field:   "appName",
			Message: "must not contain whitespace",
			Value:   name,
			Wrapped: ErrInvalidAppName,
		}
	}
	if !appNamePattern.MatchString(name) {
		return &ValidationError{
			Field:   "appName",
			Message: "may only contain letters, digits, hyphens, and underscores",
			Value:   name,
			Wrapped: ErrInvalidAppName,
		}
	}
	return nil
}

// ParseFont maps a user-supplied font name to a supported Font.
// Matching is case-insensitive. Unknown names fall back to DefaultFont;
// fonts never fail validation.
func ParseFont(name string) Font {
	for _, f := range Fonts {
		if strings.EqualFold(name, string(f)) {
			return f
		}
	}
	return DefaultFont
}

// Build validates raw answers and produces a Configuration.
// The app name is validated before anything else; no downstream step runs
// for an invalid name. Every other field has a safe default.
func Build(raw RawAnswers) (*Configuration, error) {
	name := strings.TrimSpace(raw.AppName)
	if err := ValidateAppName(name); err != nil {
		return nil, err
	}

	tabs := raw.NeedsTabs
	if !raw.TabsAnswered && !raw.NeedsAuth {
		// The tabs question is only surfaced when auth is requested.
		// Keep the resolved record fully populated regardless.
		tabs = true
	}

	return &Configuration{
		AppName:         name,
		Font:            ParseFont(raw.Font),
		PrimaryColor:    strings.TrimSpace(raw.PrimaryColor),
		SecondaryColor:  strings.TrimSpace(raw.SecondaryColor),
		NeedsAuth:       raw.NeedsAuth,
		NeedsBottomTabs: tabs,
	}, nil
}

// Scheme derives the deep-link scheme for app.json: the app name
// lowercased with every non-alphanumeric character stripped.
func (c *Configuration) Scheme() string {
	var b strings.Builder
	for _, r := range strings.ToLower(c.AppName) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FontPackage returns the @expo-google-fonts package that provides the
// chosen font. The ecosystem names these packages after the lowercased
// font name.
func (c *Configuration) FontPackage() string {
	return "@expo-google-fonts/" + strings.ToLower(string(c.Font))
}
