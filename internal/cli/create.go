package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/JamesHardey/create-expo-jmobile/internal/cli/wizard"
	"github.com/JamesHardey/create-expo-jmobile/internal/config"
	"github.com/JamesHardey/create-expo-jmobile/internal/generator"
	"github.com/JamesHardey/create-expo-jmobile/internal/plan"
	"github.com/JamesHardey/create-expo-jmobile/internal/scaffold"
	"github.com/JamesHardey/create-expo-jmobile/internal/template"
	"github.com/JamesHardey/create-expo-jmobile/internal/theme"
	"github.com/JamesHardey/create-expo-jmobile/internal/ui"
	"github.com/JamesHardey/create-expo-jmobile/pkg/version"
)

func init() {
	rootCmd.Flags().String("name", "", "App name (default: positional argument)")
	rootCmd.Flags().String("font", "", "Font family: Inter, Poppins, Montserrat, Roboto, or Lato")
	rootCmd.Flags().String("primary-color", "", "Primary theme color (hex)")
	rootCmd.Flags().String("secondary-color", "", "Secondary theme color (hex)")
	rootCmd.Flags().Bool("auth", false, "Include login and signup screens")
	rootCmd.Flags().Bool("tabs", false, "Include bottom tab navigation (requires --auth)")
	rootCmd.Flags().Bool("non-interactive", false, "Skip the wizard; use flags and defaults")
	rootCmd.Flags().Bool("skip-scaffold", false, "Skip create-expo-app (the app directory must already exist)")
	rootCmd.Flags().Bool("skip-install", false, "Skip npm dependency installation")
	rootCmd.Flags().String("root", "", "Parent directory for the new app (default: current directory)")
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// validateCreateFlags validates flag values before execution.
func validateCreateFlags(cmd *cobra.Command, _ []string) error {
	font := getStringFlag(cmd, "font")
	if font != "" {
		valid := false
		for _, f := range config.Fonts {
			if strings.EqualFold(string(f), font) {
				valid = true
				break
			}
		}
		if !valid {
			names := make([]string, len(config.Fonts))
			for i, f := range config.Fonts {
				names[i] = string(f)
			}
			return fmt.Errorf("invalid --font value %q: must be one of: %s", font, strings.Join(names, ", "))
		}
	}

	if getBoolFlag(cmd, "tabs") && cmd.Flags().Changed("tabs") &&
		cmd.Flags().Changed("auth") && !getBoolFlag(cmd, "auth") {
		return errors.New("--tabs requires --auth: tab navigation lives behind the authenticated area")
	}

	return nil
}

// barReporter feeds generator progress into a terminal progress bar.
type barReporter struct {
	bar ui.ProgressBar
}

func (r *barReporter) FileWritten(relPath string) {
	r.bar.SetTitle("Writing " + relPath)
	r.bar.Increment(1)
}

// runCreate executes the project creation workflow.
func runCreate(cmd *cobra.Command, args []string) error {
	raw := config.RawAnswers{
		AppName:        getStringFlag(cmd, "name"),
		Font:           getStringFlag(cmd, "font"),
		PrimaryColor:   getStringFlag(cmd, "primary-color"),
		SecondaryColor: getStringFlag(cmd, "secondary-color"),
		NeedsAuth:      getBoolFlag(cmd, "auth"),
		NeedsTabs:      getBoolFlag(cmd, "tabs"),
		TabsAnswered:   cmd.Flags().Changed("tabs"),
	}
	if raw.AppName == "" && len(args) > 0 {
		raw.AppName = args[0]
	}

	nonInteractive := getBoolFlag(cmd, "non-interactive")
	interactive := !nonInteractive && isatty.IsTerminal(os.Stdin.Fd())

	if interactive {
		PrintBanner(version.GetVersion())

		result, err := wizard.RunWithDefaults()
		if err != nil {
			if errors.Is(err, wizard.ErrCancelled) {
				_, _ = fmt.Fprintln(cmd.OutOrStderr(), "Cancelled.")
				return nil
			}
			return fmt.Errorf("wizard failed: %w", err)
		}

		// Wizard answers fill in anything not already set by flags.
		if raw.AppName == "" {
			raw.AppName = result.AppName
		}
		if raw.Font == "" {
			raw.Font = result.Font
		}
		if raw.PrimaryColor == "" {
			raw.PrimaryColor = result.PrimaryColor
		}
		if raw.SecondaryColor == "" {
			raw.SecondaryColor = result.SecondaryColor
		}
		if !cmd.Flags().Changed("auth") {
			raw.NeedsAuth = result.NeedsAuth
		}
		if !raw.TabsAnswered {
			raw.NeedsTabs = result.NeedsTabs
			raw.TabsAnswered = result.TabsAnswered
		}
	}

	cfg, err := config.Build(raw)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	parentDir := getStringFlag(cmd, "root")
	if parentDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("get working directory: %w", err)
		}
		parentDir = cwd
	}
	projectRoot := filepath.Join(parentDir, cfg.AppName)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	hm := ui.NewHeadlessManager()
	if nonInteractive {
		hm.ForceHeadless(true)
	}
	progress := ui.NewProgress(hm)
	runner := scaffold.NewExecRunner(io.Discard, cmd.ErrOrStderr(), nil)

	skipScaffold := getBoolFlag(cmd, "skip-scaffold")
	if !skipScaffold {
		if _, err := exec.LookPath("npx"); err != nil {
			return fmt.Errorf("npx not found in PATH: install Node.js to scaffold Expo apps: %w", err)
		}

		sp := progress.Spinner("Scaffolding Expo app with create-expo-app...")
		err := scaffold.CreateApp(ctx, runner, parentDir, cfg.AppName)
		sp.Stop()
		if err != nil {
			return err
		}
	}

	if !getBoolFlag(cmd, "skip-install") {
		sp := progress.Spinner("Installing dependencies with npm...")
		err := scaffold.InstallDependencies(ctx, runner, projectRoot, cfg)
		sp.Stop()
		if err != nil {
			return err
		}
	}

	embeddedFS, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}
	gen := generator.New(template.NewRenderer(embeddedFS), nil)

	entries := plan.Build(cfg, theme.Resolve(cfg))
	bar := progress.Bar("Writing project files", len(entries))
	gen.SetReporter(&barReporter{bar: bar})

	result, err := gen.Generate(ctx, generator.ProjectContext{RootPath: projectRoot}, cfg)
	bar.Done()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	details := []string{
		renderKeyValueLines([]kvPair{
			{"App", cfg.AppName},
			{"Font", string(cfg.Font)},
			{"Auth", fmt.Sprintf("%t", cfg.NeedsAuth)},
			{"Tabs", fmt.Sprintf("%t", cfg.NeedsBottomTabs)},
			{"Files", fmt.Sprintf("%d written", len(result.CreatedFiles))},
		}),
	}
	for _, w := range result.Warnings {
		details = append(details, cliWarn.Render("Warning: "+w))
	}
	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard("Project created", details...))
	_, _ = fmt.Fprintln(out, renderNextSteps(cfg.AppName))

	return nil
}
