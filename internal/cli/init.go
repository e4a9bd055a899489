package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ytplugin-labs/ytplugin/internal/manifest"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Write a starter plugin manifest",
	Long: `Write the default plugin manifest template to <path>. Parent directories
are created as needed and an existing file is overwritten.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		written, err := manifest.WriteTemplate(args[0])
		if err != nil {
			return fmt.Errorf("writing template: %w", err)
		}
		log.Debug().Str("path", written).Msg("manifest template written")
		fmt.Fprintf(cmd.OutOrStdout(), "Template written to %s\n", written)
		return nil
	},
}
