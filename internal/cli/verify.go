package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ytplugin-labs/ytplugin/internal/config"
	"github.com/ytplugin-labs/ytplugin/internal/repocheck"
)

var (
	verifyJSON bool
	verifyRoot string
)

func init() {
	verifyCmd.Flags().BoolVar(&verifyJSON, "json", false, "Print results as JSON")
	verifyCmd.Flags().StringVar(&verifyRoot, "root", "", "Repository root (default: repo.root setting or current directory)")
	rootCmd.AddCommand(verifyCmd)
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the starter repository layout",
	Long: `Check that the starter repository contains its README, refresh-rate and
roadmap notes, the playground entry point and its bundled resources.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRepoRoot(verifyRoot)
		if err != nil {
			return err
		}
		log.Debug().Str("root", root).Msg("verifying repository layout")

		results := repocheck.Verify(root)
		if err := repocheck.Print(cmd.OutOrStdout(), results, verifyJSON); err != nil {
			return err
		}
		if failed := repocheck.Failed(results); len(failed) > 0 {
			return fmt.Errorf("%d of %d repository checks failed", len(failed), len(results))
		}
		return nil
	},
}

// resolveRepoRoot picks the repository root from the flag, then the
// repo.root setting, then the working directory.
func resolveRepoRoot(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if root := config.RepoRoot(); root != "" {
		return root, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	return wd, nil
}
