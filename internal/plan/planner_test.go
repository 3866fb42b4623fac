package plan

import (
	"reflect"
	"strings"
	"testing"

	"github.com/JamesHardey/create-expo-jmobile/internal/config"
	"github.com/JamesHardey/create-expo-jmobile/internal/theme"
)

func buildPlan(t *testing.T, needsAuth, needsTabs bool) Plan {
	t.Helper()
	cfg := &config.Configuration{
		AppName:         "demo",
		Font:            config.FontInter,
		NeedsAuth:       needsAuth,
		NeedsBottomTabs: needsTabs,
	}
	return Build(cfg, theme.Resolve(cfg))
}

func TestBuildAlwaysIncludesBaseFiles(t *testing.T) {
	p := buildPlan(t, false, false)

	always := []string{
		"constants/theme.ts",
		"components/ui/Button.tsx",
		"components/ui/Input.tsx",
		"components/ui/Card.tsx",
		"components/ui/Badge.tsx",
		"components/ui/Spinner.tsx",
		"components/ui/index.ts",
		"components/layout/Screen.tsx",
		"components/layout/Header.tsx",
		"components/layout/index.ts",
		"global.css",
		"metro.config.js",
		"tailwind.config.js",
		"babel.config.js",
		"utils/validation.ts",
		"hooks/useTheme.ts",
		"app/_layout.tsx",
	}
	for _, want := range always {
		if !p.Contains(want) {
			t.Errorf("plan missing %s", want)
		}
	}
}

func TestBuildNoAuth(t *testing.T) {
	// Scenario A: no auth excludes login/signup and any tab directory,
	// regardless of the tabs flag.
	for _, tabs := range []bool{false, true} {
		p := buildPlan(t, false, tabs)

		if p.Contains("app/login.tsx") || p.Contains("app/signup.tsx") {
			t.Errorf("tabs=%v: no-auth plan includes auth screens", tabs)
		}
		for _, rel := range p.Paths() {
			if strings.Contains(rel, "(tabs)") {
				t.Errorf("tabs=%v: no-auth plan includes tab file %s", tabs, rel)
			}
		}
		if !p.Contains("app/index.tsx") {
			t.Errorf("tabs=%v: no-auth plan missing root index screen", tabs)
		}
	}
}

func TestBuildAuthWithTabs(t *testing.T) {
	// Scenario B.
	p := buildPlan(t, true, true)

	wanted := []string{
		"app/login.tsx",
		"app/signup.tsx",
		"app/(tabs)/_layout.tsx",
		"app/(tabs)/index.tsx",
		"app/(tabs)/explore.tsx",
		"app/(tabs)/notifications.tsx",
		"app/(tabs)/profile.tsx",
	}
	for _, want := range wanted {
		if !p.Contains(want) {
			t.Errorf("plan missing %s", want)
		}
	}
	// The route group replaces the bare index screen.
	if p.Contains("app/index.tsx") {
		t.Error("tabbed plan should not include a bare root index screen")
	}
}

func TestBuildAuthWithoutTabs(t *testing.T) {
	// Scenario C.
	p := buildPlan(t, true, false)

	if !p.Contains("app/login.tsx") || !p.Contains("app/signup.tsx") {
		t.Error("auth plan missing login/signup")
	}
	for _, rel := range p.Paths() {
		if strings.Contains(rel, "(tabs)") {
			t.Errorf("tab file %s planned without tabs", rel)
		}
	}
	if !p.Contains("app/index.tsx") {
		t.Error("auth-without-tabs plan missing fallback entry screen")
	}
}

func TestBuildDeterministic(t *testing.T) {
	first := buildPlan(t, true, true)
	second := buildPlan(t, true, true)
	if !reflect.DeepEqual(first, second) {
		t.Error("plans differ across runs for identical input")
	}
}

func TestTabTitles(t *testing.T) {
	p := buildPlan(t, true, true)

	titles := map[string]string{
		"app/(tabs)/index.tsx":         "Home",
		"app/(tabs)/explore.tsx":       "Explore",
		"app/(tabs)/notifications.tsx": "Notifications",
		"app/(tabs)/profile.tsx":       "Profile",
	}
	for _, e := range p {
		want, ok := titles[e.RelPath]
		if !ok {
			continue
		}
		if e.Title != want {
			t.Errorf("%s: Title = %q, want %q", e.RelPath, e.Title, want)
		}
		delete(titles, e.RelPath)
	}
	if len(titles) > 0 {
		t.Errorf("tab screens missing from plan: %v", titles)
	}
}
