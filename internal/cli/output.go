package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// printJSON writes v as two-space indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printStructured writes v in the requested output format.
func printStructured(w io.Writer, v any, format string) error {
	switch format {
	case outputJSON:
		return printJSON(w, v)
	case outputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshaling output: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", format, outputJSON, outputYAML)
	}
}
