package cmd

import (
	"errors"
	"fmt"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/spf13/cobra"
)

// New profiles start from the onboarding defaults.
var defaultProfile = domain.Profile{
	VoiceTone: "Professional",
	Skills:    domain.SkillMatrix{DSA: 3, OOPS: 3, DBMS: 3, OS: 3, SystemDesign: 1},
}

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update the career profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(a),
		newProfileSetCmd(a),
	)

	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the profile and skill matrix",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := a.profiles(cmd.Context())
			if err != nil {
				return err
			}

			profile, err := profiles.Get(cmd.Context(), a.profileID())
			if err != nil {
				if errors.Is(err, domain.ErrProfileNotFound) {
					return fmt.Errorf("profile %s not found, create it with `ch profile set --role ... --ecosystem ...`: %w", a.profileID(), err)
				}
				return err
			}

			return writeOutput(cmd, profile, asJSON, a.renderer.profile)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

type profileFlags struct {
	email        string
	role         string
	ecosystem    string
	tone         string
	dsa          int
	oops         int
	dbms         int
	os           int
	systemDesign int
}

func newProfileSetCmd(a *app) *cobra.Command {
	var flags profileFlags

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Create or update the profile; unset flags keep their current value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := a.profiles(cmd.Context())
			if err != nil {
				return err
			}

			id := a.profileID()
			profile, err := profiles.Get(cmd.Context(), id)
			switch {
			case errors.Is(err, domain.ErrProfileNotFound):
				profile = defaultProfile
				profile.ID = id
			case err != nil:
				return err
			}

			applyProfileFlags(cmd, &profile, flags)

			if err := profiles.Save(cmd.Context(), profile); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %s (core match %.1f%%)\n", profile.ID, profile.Skills.CoreReadiness())
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.email, "email", "", "Contact email")
	f.StringVar(&flags.role, "role", "", "Target role, e.g. SDE or ML Engineer")
	f.StringVar(&flags.ecosystem, "ecosystem", "", "Target ecosystem, e.g. FAANG/Big Tech")
	f.StringVar(&flags.tone, "tone", "", "Branding voice tone, e.g. Professional or Witty")
	f.IntVar(&flags.dsa, "dsa", 0, "Data structures and algorithms level (0-5)")
	f.IntVar(&flags.oops, "oops", 0, "Object oriented programming level (0-5)")
	f.IntVar(&flags.dbms, "dbms", 0, "Database management level (0-5)")
	f.IntVar(&flags.os, "os", 0, "Operating systems level (0-5)")
	f.IntVar(&flags.systemDesign, "system-design", 0, "System design level (0-5)")

	return cmd
}

func applyProfileFlags(cmd *cobra.Command, profile *domain.Profile, flags profileFlags) {
	changed := cmd.Flags().Changed

	if changed("email") {
		profile.Email = flags.email
	}
	if changed("role") {
		profile.TargetRole = flags.role
	}
	if changed("ecosystem") {
		profile.TargetEcosystem = flags.ecosystem
	}
	if changed("tone") {
		profile.VoiceTone = flags.tone
	}
	if changed("dsa") {
		profile.Skills.DSA = flags.dsa
	}
	if changed("oops") {
		profile.Skills.OOPS = flags.oops
	}
	if changed("dbms") {
		profile.Skills.DBMS = flags.dbms
	}
	if changed("os") {
		profile.Skills.OS = flags.os
	}
	if changed("system-design") {
		profile.Skills.SystemDesign = flags.systemDesign
	}
}
