package cmd

import (
	"context"

	"github.com/bnema/careerhub/internal/application"
	"github.com/spf13/cobra"
)

func newBrandCmd(a *app) *cobra.Command {
	var headline string
	var about string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "brand",
		Short: "Critique a LinkedIn headline and about section and rewrite them in your voice",
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := a.features(cmd.Context())
			if err != nil {
				return err
			}

			sessionID, err := a.sessionID()
			if err != nil {
				return err
			}

			var result application.BrandingResult
			err = callProvider(cmd, asJSON, "Optimizing profile...", func(ctx context.Context) error {
				var callErr error
				result, callErr = services.branding.Optimize(ctx, application.OptimizeProfileCommand{
					SessionID: sessionID,
					ProfileID: a.profileID(),
					Headline:  headline,
					About:     about,
				})
				return callErr
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, result, asJSON, a.renderer.branding)
		},
	}
	cmd.Annotations = requiresPools()

	cmd.Flags().StringVar(&headline, "headline", "", "Current LinkedIn headline")
	cmd.Flags().StringVar(&about, "about", "", "Current LinkedIn about section")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("headline")
	_ = cmd.MarkFlagRequired("about")

	return cmd
}
