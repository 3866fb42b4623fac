package template

import (
	"github.com/JamesHardey/create-expo-jmobile/internal/theme"
)

// Context provides data for template rendering. All fields are exported
// for use with Go's text/template package. A Context is built once per
// run and shared by every planned file.
type Context struct {
	// Project
	AppName string
	Scheme  string

	// Typography
	FontFamily  string // e.g. "Inter", used verbatim as the typography key
	FontPackage string // e.g. "@expo-google-fonts/inter"

	// Navigation shape
	NeedsAuth bool
	HasTabs   bool // true only when NeedsAuth is also true

	// Resolved palette
	Theme theme.Theme

	// Screen
	Title string // per-screen title for templates shared across screens

	// Meta
	Version   string // generator version
	CreatedAt string // ISO 8601 timestamp
}

// ForScreen returns a copy of the context carrying a screen title.
// The receiver is not modified; the shared per-run context stays intact.
func (c *Context) ForScreen(title string) *Context {
	cp := *c
	cp.Title = title
	return &cp
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// NewContext creates a Context with defaults, then applies options.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		FontFamily:  "Inter",
		FontPackage: "@expo-google-fonts/inter",
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithApp sets the app name and deep-link scheme.
func WithApp(name, scheme string) ContextOption {
	return func(c *Context) {
		c.AppName = name
		c.Scheme = scheme
	}
}

// WithFont sets the font family and its provider package.
func WithFont(family, pkg string) ContextOption {
	return func(c *Context) {
		c.FontFamily = family
		c.FontPackage = pkg
	}
}

// WithNavigation sets the navigation shape. Tabs are only honored
// together with auth; the planner enforces the same rule.
func WithNavigation(needsAuth, needsTabs bool) ContextOption {
	return func(c *Context) {
		c.NeedsAuth = needsAuth
		c.HasTabs = needsAuth && needsTabs
	}
}

// WithTheme sets the resolved theme.
func WithTheme(t theme.Theme) ContextOption {
	return func(c *Context) {
		c.Theme = t
	}
}

// WithVersion sets the generator version.
func WithVersion(version string) ContextOption {
	return func(c *Context) {
		c.Version = version
	}
}

// WithCreatedAt sets the generation timestamp.
func WithCreatedAt(timestamp string) ContextOption {
	return func(c *Context) {
		c.CreatedAt = timestamp
	}
}
