package cli

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ytplugin-labs/ytplugin/internal/automation"
	"github.com/ytplugin-labs/ytplugin/internal/repocheck"
)

var actionsRoot string

func init() {
	actionsCmd.Flags().StringVar(&actionsRoot, "root", "", "Repository root (default: repo.root setting or current directory)")
	rootCmd.AddCommand(actionsCmd)
}

var actionsCmd = &cobra.Command{
	Use:   "actions",
	Short: "List the playground quick actions",
	Long: `List the Markdown quick actions bundled in the playground resources
directory, sorted by name, with their prompt text.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveRepoRoot(actionsRoot)
		if err != nil {
			return err
		}
		dir := filepath.Join(root, filepath.FromSlash(repocheck.ResourcesDir))
		log.Debug().Str("dir", dir).Msg("listing quick actions")

		actions, err := automation.ListQuickActions(dir)
		if err != nil {
			return fmt.Errorf("listing quick actions: %w", err)
		}
		return printJSON(cmd.OutOrStdout(), actions)
	},
}
