package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// seedScaffoldedApp writes the manifest files create-expo-app would have
// produced, so generation can run without the real tool.
func seedScaffoldedApp(t *testing.T, parent, name string) string {
	t.Helper()
	root := filepath.Join(parent, name)
	if err := os.MkdirAll(root, 0o755); err != nil {
		t.Fatal(err)
	}
	appJSON := `{"expo": {"name": "` + name + `", "slug": "` + name + `"}}`
	if err := os.WriteFile(filepath.Join(root, "app.json"), []byte(appJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	pkgJSON := `{"name": "` + name + `", "main": "index.js"}`
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(pkgJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	return root
}

func TestValidateCreateFlagsFont(t *testing.T) {
	if err := rootCmd.Flags().Set("font", "ComicSans"); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = rootCmd.Flags().Set("font", "") }()

	if err := validateCreateFlags(rootCmd, nil); err == nil {
		t.Error("expected error for unknown font")
	}

	if err := rootCmd.Flags().Set("font", "poppins"); err != nil {
		t.Fatal(err)
	}
	if err := validateCreateFlags(rootCmd, nil); err != nil {
		t.Errorf("case-insensitive font match should pass, got %v", err)
	}
}

func TestRunCreateNonInteractive(t *testing.T) {
	parent := t.TempDir()
	root := seedScaffoldedApp(t, parent, "demoapp")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{
		"demoapp",
		"--non-interactive",
		"--skip-scaffold",
		"--skip-install",
		"--auth",
		"--tabs",
		"--font", "Poppins",
		"--primary-color", "#FF0000",
		"--root", parent,
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error: %v\noutput:\n%s", err, out.String())
	}

	for _, rel := range []string{
		"constants/theme.ts",
		"app/_layout.tsx",
		"app/login.tsx",
		filepath.Join("app", "(tabs)", "index.tsx"),
		".jmobile.yaml",
	} {
		if _, err := os.Stat(filepath.Join(root, rel)); err != nil {
			t.Errorf("expected %s to exist: %v", rel, err)
		}
	}

	theme, err := os.ReadFile(filepath.Join(root, "constants", "theme.ts"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(theme, []byte("#FF0000")) {
		t.Error("primary color override not applied to generated theme")
	}
	if !bytes.Contains(theme, []byte("Poppins")) {
		t.Error("font family not applied to generated theme")
	}
}

func TestRenderHelpers(t *testing.T) {
	card := renderSuccessCard("Project created", "detail line")
	if card == "" {
		t.Error("renderSuccessCard returned empty string")
	}

	kv := renderKeyValueLines([]kvPair{{"App", "demo"}, {"Font", "Inter"}})
	if kv == "" {
		t.Error("renderKeyValueLines returned empty string")
	}

	steps := renderNextSteps("demo")
	if !bytes.Contains([]byte(steps), []byte("demo")) {
		t.Error("next steps should mention the app name")
	}
}
