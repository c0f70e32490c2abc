package cmd

import (
	"context"

	"github.com/bnema/careerhub/internal/application"
	"github.com/spf13/cobra"
)

func newSkillsCmd(a *app) *cobra.Command {
	var target string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "Compare your skill matrix against a target job and build a roadmap",
		RunE: func(cmd *cobra.Command, _ []string) error {
			services, err := a.features(cmd.Context())
			if err != nil {
				return err
			}

			sessionID, err := a.sessionID()
			if err != nil {
				return err
			}

			var result application.SkillGapResult
			err = callProvider(cmd, asJSON, "Analyzing skill gaps...", func(ctx context.Context) error {
				var callErr error
				result, callErr = services.skillGap.Analyze(ctx, application.AnalyzeSkillGapCommand{
					SessionID: sessionID,
					ProfileID: a.profileID(),
					TargetJob: target,
				})
				return callErr
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, result, asJSON, a.renderer.skillGap)
		},
	}
	cmd.Annotations = requiresPools()

	cmd.Flags().StringVar(&target, "target", "", "Target job, e.g. \"SDE at Google\"")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}
