package cli

import (
	"github.com/spf13/cobra"
	"github.com/ytplugin-labs/ytplugin/internal/branding"
	"github.com/ytplugin-labs/ytplugin/internal/config"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose   bool
	logFormat string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", logFormatConsole, "Log output format (console, json)")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds and validates YouTube plugin manifests, checks the
starter repository layout, and previews NovaFlux automation requests.

Source: https://github.com/` + branding.GitHubRepo(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd.ErrOrStderr(), verbose, logFormat); err != nil {
			return err
		}
		config.Load()
		return nil
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
