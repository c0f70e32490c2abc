package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// annotationRequiresPools marks commands that must have every key pool
// configured before they run.
const annotationRequiresPools = "careerhub/requires-pools"

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd, a := newRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	return errors.Join(err, a.Close())
}

func requiresPools() map[string]string {
	return map[string]string{annotationRequiresPools: "true"}
}

func newRootCmd() (*cobra.Command, *app) {
	opts := &rootOptions{}
	a := newApp(opts)

	rootCmd := &cobra.Command{
		Use:           "ch",
		Short:         "careerhub (ch): personal branding assistant backed by rotating API keys",
		Long:          "ch (careerhub) rewrites LinkedIn profiles, maps skill gaps, scores post drafts and finds mentors. Every Gemini and Serper call draws its key round-robin from a per-session key pool.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.wire(); err != nil {
				return err
			}
			if _, ok := cmd.Annotations[annotationRequiresPools]; ok {
				if _, err := a.pool(cmd.Context()); err != nil {
					return err
				}
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configDir, "config", "", "Config directory (default ~/.careerhub)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&opts.sessionID, "session", "", "Session ID for key rotation (default derived from working directory)")
	flags.StringVar(&opts.profileID, "profile", "", "Profile ID (default from config profiles.default)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newPoolCmd(a),
		newSessionCmd(a),
		newSecretCmd(a),
		newProfileCmd(a),
		newBrandCmd(a),
		newSkillsCmd(a),
		newScoreCmd(a),
		newNetworkCmd(a),
	)

	return rootCmd, a
}
