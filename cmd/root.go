package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cfgFile holds an explicit config file path from --config. Empty means
// the default lookup (.hcg-setup.yaml in the working directory or $HOME).
var cfgFile string

// version is overridden at release time via
// -ldflags "-X hcg-setup/cmd.version=v1.2.3".
var version = "dev"

// rootCmd is the whole CLI: one positional argument, the game name.
// Provisioning and file-generation failures are advisory and end up in
// the final summary; the command only fails outright on a usage error or
// an unrecoverable prerequisite.
var rootCmd = &cobra.Command{
	Use:   "hcg-setup <game name>",
	Short: "Bootstrap CI/CD for a Homecooked Games Unity project",
	Long: `hcg-setup wires a Unity project into the Homecooked Games build
pipeline. Run it once from the Unity project root:

  hcg-setup "My Game"

It checks local tooling, creates the Firebase project, registers the iOS
and Android apps found in ProjectSettings, downloads their config files,
writes the GitHub Actions and fastlane boilerplate, and prints the
remaining manual steps.`,
	Version: version,
	Args:    cobra.ExactArgs(1),
	RunE:    runSetup,
}

// Execute runs the root command. Cobra already printed the error, so a
// failure only needs the exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to a config file (default: .hcg-setup.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.Flags().Bool("dry-run", false, "Print external commands instead of running them")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("dry-run", rootCmd.Flags().Lookup("dry-run"))

	rootCmd.AddCommand(versionCmd)
}
