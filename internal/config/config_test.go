package config

import (
	"errors"
	"testing"
)

func TestBuildValidNames(t *testing.T) {
	names := []string{"demo", "MyApp", "my-app", "my_app", "App2", "a", "A-1_b"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			cfg, err := Build(RawAnswers{AppName: name})
			if err != nil {
				t.Fatalf("Build(%q) error: %v", name, err)
			}
			if cfg.AppName != name {
				t.Errorf("AppName = %q, want %q", cfg.AppName, name)
			}
		})
	}
}

func TestBuildInvalidNames(t *testing.T) {
	names := map[string]string{
		"empty":       "",
		"space":       "my app",
		"tab":         "my\tapp",
		"dot":         "my.app",
		"slash":       "my/app",
		"unicode":     "앱이름",
		"exclamation": "app!",
	}
	for label, name := range names {
		t.Run(label, func(t *testing.T) {
			_, err := Build(RawAnswers{AppName: name})
			if err == nil {
				t.Fatalf("Build(%q) succeeded, want error", name)
			}
			if !errors.Is(err, ErrInvalidAppName) {
				t.Errorf("error = %v, want ErrInvalidAppName", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Errorf("error is not a *ValidationError: %v", err)
			} else if ve.Field != "appName" {
				t.Errorf("Field = %q, want appName", ve.Field)
			}
		})
	}
}

func TestBuildTrimsName(t *testing.T) {
	cfg, err := Build(RawAnswers{AppName: "  demo  "})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if cfg.AppName != "demo" {
		t.Errorf("AppName = %q, want demo", cfg.AppName)
	}
}

func TestParseFont(t *testing.T) {
	cases := map[string]Font{
		"Inter":      FontInter,
		"roboto":     FontRoboto,
		"POPPINS":    FontPoppins,
		"Montserrat": FontMontserrat,
		"lato":       FontLato,
		"":           DefaultFont,
		"ComicSans":  DefaultFont,
	}
	for input, want := range cases {
		if got := ParseFont(input); got != want {
			t.Errorf("ParseFont(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestBuildTabsDefault(t *testing.T) {
	t.Run("unanswered_without_auth_defaults_true", func(t *testing.T) {
		cfg, err := Build(RawAnswers{AppName: "demo", NeedsAuth: false})
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if !cfg.NeedsBottomTabs {
			t.Error("NeedsBottomTabs = false, want true")
		}
	})

	t.Run("explicit_answer_kept", func(t *testing.T) {
		cfg, err := Build(RawAnswers{
			AppName:      "demo",
			NeedsAuth:    true,
			NeedsTabs:    false,
			TabsAnswered: true,
		})
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if cfg.NeedsBottomTabs {
			t.Error("NeedsBottomTabs = true, want false")
		}
	})

	t.Run("unanswered_with_auth_stays_false", func(t *testing.T) {
		cfg, err := Build(RawAnswers{AppName: "demo", NeedsAuth: true})
		if err != nil {
			t.Fatalf("Build error: %v", err)
		}
		if cfg.NeedsBottomTabs {
			t.Error("NeedsBottomTabs = true, want false")
		}
	})
}

func TestScheme(t *testing.T) {
	cases := map[string]string{
		"demo":      "demo",
		"MyApp":     "myapp",
		"my-app_22": "myapp22",
		"A_B-C":     "abc",
	}
	for name, want := range cases {
		cfg := &Configuration{AppName: name}
		if got := cfg.Scheme(); got != want {
			t.Errorf("Scheme(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestFontPackage(t *testing.T) {
	cfg := &Configuration{Font: FontMontserrat}
	if got := cfg.FontPackage(); got != "@expo-google-fonts/montserrat" {
		t.Errorf("FontPackage = %q", got)
	}
}
