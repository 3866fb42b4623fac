// Package plan computes the deterministic set of files to materialize for
// a given Configuration. Planning is pure: no filesystem access, no side
// effects, and the same inputs always yield the same ordered plan.
package plan

import (
	"path"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JamesHardey/create-expo-jmobile/internal/config"
	"github.com/JamesHardey/create-expo-jmobile/internal/theme"
)

// Entry is one planned file: its destination relative to the project
// root, the template that produces it, and the per-entry title for
// templates shared across screens.
type Entry struct {
	RelPath  string // destination path, slash-separated
	Template string // template name in the embedded FS
	Title    string // screen title, empty for single-use templates
}

// Plan is the ordered sequence of files to generate. Ordering is stable
// for display purposes only; entries are independent of each other.
type Plan []Entry

// tabsGroup is the expo-router route group holding the tab screens.
const tabsGroup = "app/(tabs)"

// tabRoutes lists the tab screens in display order. The home tab is the
// group's index route.
var tabRoutes = []string{"home", "explore", "notifications", "profile"}

var titleCaser = cases.Title(language.English)

// baseEntries are planned for every configuration.
var baseEntries = []Entry{
	{RelPath: "constants/theme.ts", Template: "constants/theme.ts.tmpl"},
	{RelPath: "components/ui/Button.tsx", Template: "components/ui/Button.tsx.tmpl"},
	{RelPath: "components/ui/Input.tsx", Template: "components/ui/Input.tsx.tmpl"},
	{RelPath: "components/ui/Card.tsx", Template: "components/ui/Card.tsx.tmpl"},
	{RelPath: "components/ui/Badge.tsx", Template: "components/ui/Badge.tsx.tmpl"},
	{RelPath: "components/ui/Spinner.tsx", Template: "components/ui/Spinner.tsx.tmpl"},
	{RelPath: "components/ui/index.ts", Template: "components/ui/index.ts.tmpl"},
	{RelPath: "components/layout/Screen.tsx", Template: "components/layout/Screen.tsx.tmpl"},
	{RelPath: "components/layout/Header.tsx", Template: "components/layout/Header.tsx.tmpl"},
	{RelPath: "components/layout/index.ts", Template: "components/layout/index.ts.tmpl"},
	{RelPath: "global.css", Template: "global.css.tmpl"},
	{RelPath: "metro.config.js", Template: "metro.config.js.tmpl"},
	{RelPath: "tailwind.config.js", Template: "tailwind.config.js.tmpl"},
	{RelPath: "babel.config.js", Template: "babel.config.js.tmpl"},
	{RelPath: "utils/validation.ts", Template: "utils/validation.ts.tmpl"},
	{RelPath: "hooks/useTheme.ts", Template: "hooks/useTheme.ts.tmpl"},
	{RelPath: "app/_layout.tsx", Template: "app/_layout.tsx.tmpl"},
}

// Build computes the plan for the given configuration and resolved theme.
// The branch table is total over (NeedsAuth, NeedsBottomTabs); tabs
// without auth is not a supported configuration, so NeedsAuth=false
// ignores NeedsBottomTabs and always plans the bare home screen.
func Build(cfg *config.Configuration, _ theme.Theme) Plan {
	entries := make(Plan, 0, len(baseEntries)+8)
	entries = append(entries, baseEntries...)

	if cfg.NeedsAuth {
		entries = append(entries,
			Entry{RelPath: "app/login.tsx", Template: "app/login.tsx.tmpl"},
			Entry{RelPath: "app/signup.tsx", Template: "app/signup.tsx.tmpl"},
		)
	}

	if cfg.NeedsAuth && cfg.NeedsBottomTabs {
		entries = append(entries, Entry{
			RelPath:  path.Join(tabsGroup, "_layout.tsx"),
			Template: "app/tabs/_layout.tsx.tmpl",
		})
		for _, route := range tabRoutes {
			file := route + ".tsx"
			if route == "home" {
				file = "index.tsx"
			}
			entries = append(entries, Entry{
				RelPath:  path.Join(tabsGroup, file),
				Template: "app/tabs/screen.tsx.tmpl",
				Title:    titleCaser.String(route),
			})
		}
	} else {
		entries = append(entries, Entry{
			RelPath:  "app/index.tsx",
			Template: "app/index.tsx.tmpl",
		})
	}

	return entries
}

// Paths returns the destination paths of every entry, in plan order.
func (p Plan) Paths() []string {
	out := make([]string, len(p))
	for i, e := range p {
		out[i] = e.RelPath
	}
	return out
}

// Contains reports whether the plan includes the given destination path.
func (p Plan) Contains(relPath string) bool {
	for _, e := range p {
		if e.RelPath == relPath {
			return true
		}
	}
	return false
}
