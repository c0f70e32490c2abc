package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/careerhub/internal/application"
	"github.com/spf13/cobra"
)

const maxPostBytes = 64 << 10

func newScoreCmd(a *app) *cobra.Command {
	var post string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "score [post]",
		Short: "Predict engagement and critique a post draft (reads stdin when no post is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post = strings.TrimSpace(post)
			if len(args) == 1 {
				post = args[0]
			}
			if post == "" {
				raw, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), maxPostBytes))
				if err != nil {
					return fmt.Errorf("read post from stdin: %w", err)
				}
				post = string(raw)
			}

			services, err := a.features(cmd.Context())
			if err != nil {
				return err
			}

			sessionID, err := a.sessionID()
			if err != nil {
				return err
			}

			var result application.ScorecardResult
			err = callProvider(cmd, asJSON, "Scoring draft...", func(ctx context.Context) error {
				var callErr error
				result, callErr = services.scorecard.Score(ctx, application.ScorePostCommand{
					SessionID: sessionID,
					ProfileID: a.profileID(),
					Post:      post,
				})
				return callErr
			})
			if err != nil {
				return err
			}

			return writeOutput(cmd, result, asJSON, a.renderer.scorecard)
		},
	}
	cmd.Annotations = requiresPools()

	cmd.Flags().StringVar(&post, "post", "", "Post draft text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
