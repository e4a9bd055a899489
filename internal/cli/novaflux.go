package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ytplugin-labs/ytplugin/internal/automation"
	"github.com/ytplugin-labs/ytplugin/internal/config"
)

var (
	novafluxBase string
	novafluxKey  string
)

func init() {
	novafluxCmd.Flags().StringVar(&novafluxBase, "base", "", "API base URL (overrides config and "+automation.EnvBaseURL+")")
	novafluxCmd.Flags().StringVar(&novafluxKey, "key", "", "API key (overrides config and "+automation.EnvAPIKey+")")
	rootCmd.AddCommand(novafluxCmd)
}

var novafluxCmd = &cobra.Command{
	Use:   "novaflux <prompt>",
	Short: "Preview a NovaFlux automation request",
	Long: `Assemble the request that would be sent to the NovaFlux automation API
for <prompt> and print it. Nothing is sent over the network.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base := firstNonEmpty(novafluxBase, config.AutomationBaseURL())
		key := firstNonEmpty(novafluxKey, config.AutomationAPIKey())

		builder := automation.New(automation.WithBaseURL(base), automation.WithAPIKey(key))
		log.Debug().Str("base_url", builder.BaseURL()).Msg("building automation request")

		return printJSON(cmd.OutOrStdout(), builder.Build(args[0]))
	},
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
