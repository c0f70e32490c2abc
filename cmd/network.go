package cmd

import (
	"context"

	"github.com/bnema/careerhub/internal/application"
	"github.com/spf13/cobra"
)

func newNetworkCmd(a *app) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "network",
		Short: "Find mentors in your target ecosystem and draft a pitch for each",
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := a.features(cmd.Context())
			if err != nil {
				return err
			}

			sessionID, err := a.sessionID()
			if err != nil {
				return err
			}

			var result application.NetworkResult
			err = callProvider(cmd, asJSON, "Searching for mentors...", func(ctx context.Context) error {
				var callErr error
				result, callErr = services.network.FindMentors(ctx, application.FindMentorsCommand{
					SessionID: sessionID,
					ProfileID: a.profileID(),
					Limit:     limit,
				})
				return callErr
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, result, asJSON, a.renderer.network)
		},
	}
	cmd.Annotations = requiresPools()

	cmd.Flags().IntVar(&limit, "limit", application.DefaultMentorLimit, "Number of mentors to find")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
