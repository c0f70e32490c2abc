package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/careerhub/internal/domain"
	"github.com/bnema/careerhub/internal/ports"
	"go.uber.org/zap"
)

type SkillGapService struct {
	profiles  ProfileReader
	generator TextGenerator
	clusterer ports.SkillClusterer
	logger    *zap.Logger
}

// NewSkillGapService accepts a nil clusterer; cohort detection is then skipped.
func NewSkillGapService(profiles ProfileReader, generator TextGenerator, clusterer ports.SkillClusterer, logger *zap.Logger) *SkillGapService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SkillGapService{profiles: profiles, generator: generator, clusterer: clusterer, logger: logger}
}

func (s *SkillGapService) Analyze(ctx context.Context, cmd AnalyzeSkillGapCommand) (SkillGapResult, error) {
	if strings.TrimSpace(cmd.TargetJob) == "" {
		return SkillGapResult{}, &domain.ValidationError{Field: "target_job", Reason: "is required"}
	}

	profile, err := s.profiles.Get(ctx, cmd.ProfileID)
	if err != nil {
		return SkillGapResult{}, err
	}

	target := domain.TargetRequirements(cmd.TargetJob)
	result := SkillGapResult{
		TargetJob: cmd.TargetJob,
		Current:   profile.Skills,
		Target:    target,
		Gaps:      domain.Gaps(profile.Skills, target),
		Cluster:   s.cluster(ctx, profile.Skills),
	}

	if len(result.Gaps) == 0 {
		return result, nil
	}

	roadmap, err := s.generator.Generate(ctx, cmd.SessionID,
		fmt.Sprintf(roadmapPrompt, cmd.TargetJob, domain.FormatGaps(result.Gaps)))
	if err != nil {
		return SkillGapResult{}, fmt.Errorf("generate roadmap: %w", err)
	}
	result.Roadmap = roadmap

	return result, nil
}

func (s *SkillGapService) cluster(ctx context.Context, skills domain.SkillMatrix) *int {
	if s.clusterer == nil {
		return nil
	}

	cluster, err := s.clusterer.PredictCluster(ctx, skills.Values())
	if err != nil {
		s.logger.Warn("skill clusterer offline", zap.Error(err))
		return nil
	}

	return &cluster
}
