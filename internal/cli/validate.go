package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ytplugin-labs/ytplugin/internal/manifest"
)

var validateOutput string

func init() {
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", outputJSON, "Summary format (json, yaml)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a plugin manifest and print its summary",
	Long: `Parse the manifest at <path> and print its name, entry point,
permissions and the sorted list of extra keys. Any decode or validation
failure exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		log.Debug().Str("path", path).Msg("validating manifest")

		m, err := manifest.ParseFile(path)
		if err != nil {
			return fmt.Errorf("validating %s: %w", path, err)
		}
		return printStructured(cmd.OutOrStdout(), m.Summary(), validateOutput)
	},
}
