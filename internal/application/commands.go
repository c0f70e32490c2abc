package application

import "github.com/bnema/careerhub/internal/domain"

type OptimizeProfileCommand struct {
	SessionID string
	ProfileID domain.ProfileID
	Headline  string
	About     string
}

type AnalyzeSkillGapCommand struct {
	SessionID string
	ProfileID domain.ProfileID
	TargetJob string
}

type ScorePostCommand struct {
	SessionID string
	// ProfileID is optional; without it the critique targets DefaultTargetRole.
	ProfileID domain.ProfileID
	Post      string
}

type FindMentorsCommand struct {
	SessionID string
	ProfileID domain.ProfileID
	Limit     int
}
