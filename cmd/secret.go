package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newSecretCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Store API keys referenced as secret:<ref> in credential lists",
	}

	cmd.AddCommand(
		newSecretSetCmd(a),
		newSecretDeleteCmd(a),
	)

	return cmd
}

func newSecretSetCmd(a *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set <ref>",
		Short: "Store a secret in pass, or the secrets directory when pass is unavailable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := strings.TrimSpace(args[0])
			if err := a.secrets.Put(cmd.Context(), ref, value); err != nil {
				return fmt.Errorf("store secret %s: %w", ref, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Stored secret %s\n", sanitizeForTerminal(ref))
			return nil
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Secret value")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newSecretDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <ref>",
		Short: "Delete a stored secret from every backend",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := strings.TrimSpace(args[0])
			if err := a.secrets.Delete(cmd.Context(), ref); err != nil {
				return fmt.Errorf("delete secret %s: %w", ref, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted secret %s\n", sanitizeForTerminal(ref))
			return nil
		},
	}
}
