package cmd

import (
	"fmt"

	"github.com/bnema/careerhub/internal/application"
	"github.com/spf13/cobra"
)

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Manage key rotation sessions",
	}

	cmd.AddCommand(
		newSessionStartCmd(),
		newSessionShowCmd(a),
		newSessionEndCmd(a),
	)

	return cmd
}

func newSessionStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Print a fresh session ID",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id := application.NewSessionID()
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "export %s=%s\n", envSessionID, id)
			return nil
		},
	}
}

func newSessionShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the session ID this shell resolves to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := a.sessionID()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newSessionEndCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the session and reset its rotation cursors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			keyPool, err := a.pool(cmd.Context())
			if err != nil {
				return err
			}

			id, err := a.sessionID()
			if err != nil {
				return err
			}

			if err := keyPool.EndSession(cmd.Context(), id); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Ended session %s\n", id)
			return nil
		},
	}
}
