package scaffold

import (
	"context"
	"fmt"

	"github.com/JamesHardey/create-expo-jmobile/internal/config"
)

// expoTemplate is the fixed create-expo-app template the skeleton is
// built from.
const expoTemplate = "blank-typescript"

// basePackages is the fixed dependency set installed into every
// generated app; the Google-font package is appended per configuration.
var basePackages = []string{
	"expo-router",
	"expo-linking",
	"expo-constants",
	"expo-status-bar",
	"expo-font",
	"react-native-safe-area-context",
	"react-native-screens",
	"@expo/vector-icons",
	"nativewind",
	"tailwindcss",
}

// CreateApp invokes create-expo-app inside parentDir. On success the
// tool leaves a directory named after the app containing at minimum
// app.json and package.json.
func CreateApp(ctx context.Context, r Runner, parentDir, appName string) error {
	args := []string{
		"--yes",
		"create-expo-app@latest",
		appName,
		"--template", expoTemplate,
		"--no-install",
	}
	if err := r.Run(ctx, parentDir, "npx", args...); err != nil {
		return fmt.Errorf("%w: %v", ErrScaffoldFailed, err)
	}
	return nil
}

// InstallDependencies installs the fixed package list plus the package
// providing the chosen font into projectRoot.
func InstallDependencies(ctx context.Context, r Runner, projectRoot string, cfg *config.Configuration) error {
	args := append([]string{"install"}, basePackages...)
	args = append(args, cfg.FontPackage())
	if err := r.Run(ctx, projectRoot, "npm", args...); err != nil {
		return fmt.Errorf("%w: %v", ErrInstallFailed, err)
	}
	return nil
}
