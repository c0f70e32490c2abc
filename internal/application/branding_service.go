package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/careerhub/internal/domain"
)

type ProfileReader interface {
	Get(ctx context.Context, id domain.ProfileID) (domain.Profile, error)
}

type BrandingService struct {
	profiles  ProfileReader
	generator TextGenerator
}

func NewBrandingService(profiles ProfileReader, generator TextGenerator) *BrandingService {
	return &BrandingService{profiles: profiles, generator: generator}
}

func (s *BrandingService) Optimize(ctx context.Context, cmd OptimizeProfileCommand) (BrandingResult, error) {
	if strings.TrimSpace(cmd.Headline) == "" || strings.TrimSpace(cmd.About) == "" {
		return BrandingResult{}, &domain.ValidationError{Field: "profile", Reason: "provide both your current headline and about section"}
	}

	profile, err := s.profiles.Get(ctx, cmd.ProfileID)
	if err != nil {
		return BrandingResult{}, err
	}

	critique, err := s.generator.Generate(ctx, cmd.SessionID,
		fmt.Sprintf(critiquePrompt, profile.TargetRole, profile.TargetEcosystem, cmd.Headline, cmd.About))
	if err != nil {
		return BrandingResult{}, fmt.Errorf("critique profile: %w", err)
	}

	rewritten, err := s.generator.Generate(ctx, cmd.SessionID,
		fmt.Sprintf(rewritePrompt, profile.TargetRole, profile.TargetEcosystem, voiceTone(profile), cmd.Headline, cmd.About))
	if err != nil {
		return BrandingResult{}, fmt.Errorf("rewrite profile: %w", err)
	}

	return BrandingResult{Critique: critique, Rewrite: domain.ParseRewrite(rewritten)}, nil
}

func voiceTone(profile domain.Profile) string {
	if strings.TrimSpace(profile.VoiceTone) == "" {
		return "Professional"
	}
	return profile.VoiceTone
}
