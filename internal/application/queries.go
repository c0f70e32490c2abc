package application

import "github.com/bnema/careerhub/internal/domain"

type BrandingResult struct {
	Critique string
	Rewrite  domain.ProfileRewrite
}

type SkillGapResult struct {
	TargetJob string
	Current   domain.SkillMatrix
	Target    domain.SkillMatrix
	Gaps      []domain.SkillGap
	// Cluster is nil when the clusterer is offline.
	Cluster *int
	Roadmap string
}

type ScorecardResult struct {
	Engagement          float64
	EngagementPredicted bool
	Clarity             int
	Critique            string
}

type NetworkResult struct {
	Query   string
	Mentors []domain.Mentor
}
