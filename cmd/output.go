package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
)

func writeOutput[T any](cmd *cobra.Command, value T, asJSON bool, render func(T) (string, error)) error {
	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(value)
	}

	rendered, err := render(value)
	if err != nil {
		return fmt.Errorf("render output: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// callProvider runs call behind a spinner unless the output is JSON.
func callProvider(cmd *cobra.Command, asJSON bool, label string, call func(context.Context) error) error {
	if asJSON {
		return call(cmd.Context())
	}

	return runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), label, call)
}

func sanitizeForTerminal(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, value)
}
