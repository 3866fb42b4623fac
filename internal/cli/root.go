// Package cli implements the create-expo-jmobile command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JamesHardey/create-expo-jmobile/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "create-expo-jmobile [app-name]",
	Short: "Scaffold a themed Expo Router mobile app",
	Long: `create-expo-jmobile scaffolds a React Native project with Expo Router,
NativeWind styling, a generated theme, and optional authentication screens
and bottom tab navigation.

Run without flags for the interactive wizard, or pass --non-interactive
with flags to script project creation.`,
	Version: version.GetVersion(),
	Args:    cobra.MaximumNArgs(1),
	PreRunE: validateCreateFlags,
	RunE:    runCreate,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("create-expo-jmobile %s\n", version.GetVersion()))
}
