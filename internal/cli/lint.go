package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/ytplugin-labs/ytplugin/internal/manifest"
)

func init() {
	rootCmd.AddCommand(lintCmd)
}

var lintCmd = &cobra.Command{
	Use:   "lint <path>",
	Short: "Check a plugin manifest against the JSON Schema",
	Long: `Run the manifest at <path> through the JSON Schema and report every
issue at once, including advisory warnings such as a non-SemVer version.
Only errors make the command fail.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLint(cmd.OutOrStdout(), args[0])
	},
}

func runLint(w io.Writer, path string) error {
	fmt.Fprintf(w, "Manifest lint: %s\n", path)

	result, err := manifest.LintFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("linting %s: %w", path, err)
	}

	if len(result.Issues) == 0 {
		fmt.Fprintln(w, "  [ OK ] Valid manifest")
		return nil
	}

	status := "[WARN]"
	if !result.Valid {
		status = "[FAIL]"
	}
	fmt.Fprintf(w, "  %s %d issue(s):\n", status, len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s %s: %s\n", issue.Severity, issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s %s\n", issue.Severity, issue.Message)
		}
	}

	if !result.Valid {
		return fmt.Errorf("manifest %s has %d error(s)", path, result.Errors())
	}
	return nil
}
