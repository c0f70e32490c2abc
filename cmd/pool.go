package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/spf13/cobra"
)

func newPoolCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Inspect credential key pools",
	}

	cmd.AddCommand(
		newPoolStatusCmd(a),
		newPoolNextCmd(a),
	)

	return cmd
}

func newPoolStatusCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show pool sizes and this session's rotation cursors",
		RunE: func(cmd *cobra.Command, _ []string) error {
			keyPool, err := a.pool(cmd.Context())
			if err != nil {
				return err
			}

			sessionID, err := a.sessionID()
			if err != nil {
				return err
			}

			statuses, err := keyPool.Status(cmd.Context(), sessionID)
			if err != nil {
				return err
			}

			return writeOutput(cmd, statuses, asJSON, a.renderer.pools)
		},
	}
	cmd.Annotations = requiresPools()

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newPoolNextCmd(a *app) *cobra.Command {
	var poolName string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Draw the next key from a pool and print it masked",
		RunE: func(cmd *cobra.Command, _ []string) error {
			keyPool, err := a.pool(cmd.Context())
			if err != nil {
				return err
			}

			sessionID, err := a.sessionID()
			if err != nil {
				return err
			}

			name := domain.PoolName(strings.ToLower(strings.TrimSpace(poolName)))
			key, err := keyPool.NextKey(cmd.Context(), sessionID, name)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, domain.MaskKey(key))
			return nil
		},
	}
	cmd.Annotations = requiresPools()

	cmd.Flags().StringVar(&poolName, "pool", string(domain.PoolGeneration), "Pool name (generation or search)")

	return cmd
}
