package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	"go.uber.org/zap"
)

const DefaultTargetRole = "Software Engineer"

type ScorecardService struct {
	profiles  ProfileReader
	generator TextGenerator
	model     ports.EngagementModel
	logger    *zap.Logger
}

func NewScorecardService(profiles ProfileReader, generator TextGenerator, model ports.EngagementModel, logger *zap.Logger) *ScorecardService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ScorecardService{profiles: profiles, generator: generator, model: model, logger: logger}
}

func (s *ScorecardService) Score(ctx context.Context, cmd ScorePostCommand) (ScorecardResult, error) {
	if err := domain.ValidatePost(cmd.Post); err != nil {
		return ScorecardResult{}, err
	}

	targetRole, err := s.targetRole(ctx, cmd.ProfileID)
	if err != nil {
		return ScorecardResult{}, err
	}

	result := ScorecardResult{
		Engagement: domain.FallbackEngagementScore,
		Clarity:    domain.ClarityScore(cmd.Post),
	}

	if s.model != nil {
		score, err := s.model.PredictEngagement(ctx, cmd.Post)
		if err != nil {
			s.logger.Warn("engagement model unavailable, using fallback score", zap.Error(err))
		} else {
			result.Engagement = score
			result.EngagementPredicted = true
		}
	}

	critique, err := s.generator.Generate(ctx, cmd.SessionID, fmt.Sprintf(postCritiquePrompt, cmd.Post, targetRole))
	if err != nil {
		return ScorecardResult{}, fmt.Errorf("critique post: %w", err)
	}
	result.Critique = critique

	return result, nil
}

func (s *ScorecardService) targetRole(ctx context.Context, id domain.ProfileID) (string, error) {
	if id == "" || s.profiles == nil {
		return DefaultTargetRole, nil
	}

	profile, err := s.profiles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return DefaultTargetRole, nil
		}
		return "", err
	}

	return profile.TargetRole, nil
}
